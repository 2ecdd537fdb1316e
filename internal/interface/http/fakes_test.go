package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func ptr[T any](v T) *T { return &v }

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string            `json:"code"`
		Field   string            `json:"field"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst), string(env.Data))
}

type fakeStudents struct {
	create  func(application.CreateStudentInput) (*entity.Student, error)
	get     func(int64) (*entity.Student, error)
	lookup  func(application.StudentKey) (*entity.Student, error)
	list    func() ([]entity.Student, error)
	search  func(string, int) ([]map[string]any, error)
	update  func(application.StudentKey, entity.StudentPatch) (*entity.Student, error)
	delete  func(application.StudentKey) error
	welcome func(int64) (bool, error)
}

func (f *fakeStudents) Create(_ context.Context, in application.CreateStudentInput) (*entity.Student, error) {
	return f.create(in)
}
func (f *fakeStudents) Get(_ context.Context, id int64) (*entity.Student, error) { return f.get(id) }
func (f *fakeStudents) Lookup(_ context.Context, k application.StudentKey) (*entity.Student, error) {
	return f.lookup(k)
}
func (f *fakeStudents) List(context.Context) ([]entity.Student, error) { return f.list() }
func (f *fakeStudents) Search(_ context.Context, q string, size int) ([]map[string]any, error) {
	return f.search(q, size)
}
func (f *fakeStudents) Update(_ context.Context, k application.StudentKey, p entity.StudentPatch) (*entity.Student, error) {
	return f.update(k, p)
}
func (f *fakeStudents) Delete(_ context.Context, k application.StudentKey) error { return f.delete(k) }
func (f *fakeStudents) ResendWelcome(_ context.Context, id int64) (bool, error) {
	return f.welcome(id)
}

type fakeMeasurements struct {
	create func(application.CreateMeasurementInput) (*entity.Measurement, error)
	get    func(int64) (*entity.Measurement, error)
	list   func(int64) ([]entity.Measurement, error)
	update func(int64, entity.MeasurementPatch) (*entity.Measurement, error)
	delete func(int64) error
}

func (f *fakeMeasurements) Create(_ context.Context, in application.CreateMeasurementInput) (*entity.Measurement, error) {
	return f.create(in)
}
func (f *fakeMeasurements) Get(_ context.Context, id int64) (*entity.Measurement, error) {
	return f.get(id)
}
func (f *fakeMeasurements) ListByStudent(_ context.Context, id int64) ([]entity.Measurement, error) {
	return f.list(id)
}
func (f *fakeMeasurements) Update(_ context.Context, id int64, p entity.MeasurementPatch) (*entity.Measurement, error) {
	return f.update(id, p)
}
func (f *fakeMeasurements) Delete(_ context.Context, id int64) error { return f.delete(id) }

type fakeAssessments struct {
	create func(application.CreateAssessmentInput) (*entity.Assessment, error)
	get    func(int64) (*entity.Assessment, error)
	list   func(int64) ([]entity.Assessment, error)
	update func(int64, entity.AssessmentPatch) (*entity.Assessment, error)
	delete func(int64) error
	upload func(id int64, body []byte, filename, contentType string) (*entity.Assessment, string, error)
}

func (f *fakeAssessments) Create(_ context.Context, in application.CreateAssessmentInput) (*entity.Assessment, error) {
	return f.create(in)
}
func (f *fakeAssessments) Get(_ context.Context, id int64) (*entity.Assessment, error) {
	return f.get(id)
}
func (f *fakeAssessments) ListByStudent(_ context.Context, id int64) ([]entity.Assessment, error) {
	return f.list(id)
}
func (f *fakeAssessments) Update(_ context.Context, id int64, p entity.AssessmentPatch) (*entity.Assessment, error) {
	return f.update(id, p)
}
func (f *fakeAssessments) Delete(_ context.Context, id int64) error { return f.delete(id) }
func (f *fakeAssessments) UploadPhoto(_ context.Context, id int64, r io.Reader, filename, contentType string) (*entity.Assessment, string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	return f.upload(id, body, filename, contentType)
}

type fakePlans struct {
	generate func(application.PlanRequest) []entity.Exercise
	forAsmt  func(int64) (*entity.Plan, error)
	list     func(int64) ([]entity.Plan, error)
}

func (f *fakePlans) Generate(_ context.Context, req application.PlanRequest) []entity.Exercise {
	return f.generate(req)
}
func (f *fakePlans) GenerateForAssessment(_ context.Context, id int64) (*entity.Plan, error) {
	return f.forAsmt(id)
}
func (f *fakePlans) ListByStudent(_ context.Context, id int64) ([]entity.Plan, error) {
	return f.list(id)
}

type fakeAuth struct {
	login     func(email, password string) (application.TokenPair, error)
	refresh   func(token string) (application.TokenPair, error)
	authorize func(token string) (string, error)
	logout    func(subject string) error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (application.TokenPair, error) {
	return f.login(email, password)
}
func (f *fakeAuth) Refresh(_ context.Context, token string) (application.TokenPair, error) {
	return f.refresh(token)
}
func (f *fakeAuth) Authorize(_ context.Context, token string) (string, error) {
	return f.authorize(token)
}
func (f *fakeAuth) Logout(_ context.Context, subject string) error { return f.logout(subject) }

type pingFunc func(context.Context) error

func (p pingFunc) Ping(ctx context.Context) error { return p(ctx) }
