package application

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
)

func ptr[T any](v T) *T { return &v }

var birth = time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC)

// memStudents mimics the store: unique cpf/email/phone, ids ascending.
type memStudents struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]entity.Student
	updates int
	pingErr error
}

func newMemStudents() *memStudents { return &memStudents{rows: map[int64]entity.Student{}} }

func (m *memStudents) conflict(s *entity.Student) error {
	for id, r := range m.rows {
		if id == s.ID {
			continue
		}
		switch {
		case r.CPF == s.CPF:
			return errs.Unique("students_cpf_key", "cpf")
		case s.Email != nil && r.Email != nil && *r.Email == *s.Email:
			return errs.Unique("students_email_key", "email")
		case s.Phone != nil && r.Phone != nil && *r.Phone == *s.Phone:
			return errs.Unique("students_phone_key", "phone")
		}
	}
	return nil
}

func (m *memStudents) Create(_ context.Context, s *entity.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.conflict(s); err != nil {
		return err
	}
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	m.rows[s.ID] = *s
	return nil
}

func (m *memStudents) GetByID(_ context.Context, id int64) (*entity.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &r, nil
}

func (m *memStudents) GetByCPF(_ context.Context, cpf string) (*entity.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.CPF == cpf {
			r := r
			return &r, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memStudents) List(_ context.Context) ([]entity.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Student, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStudents) Update(_ context.Context, s *entity.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[s.ID]
	if !ok {
		return errs.ErrNotFound
	}
	if err := m.conflict(s); err != nil {
		return err
	}
	s.CPF = cur.CPF
	s.CreatedAt = cur.CreatedAt
	m.rows[s.ID] = *s
	m.updates++
	return nil
}

func (m *memStudents) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memStudents) Ping(context.Context) error { return m.pingErr }

type memMeasurements struct {
	nextID   int64
	rows     map[int64]entity.Measurement
	students map[int64]bool
}

func newMemMeasurements(students ...int64) *memMeasurements {
	m := &memMeasurements{rows: map[int64]entity.Measurement{}, students: map[int64]bool{}}
	for _, id := range students {
		m.students[id] = true
	}
	return m
}

func (m *memMeasurements) Create(_ context.Context, x *entity.Measurement) error {
	if !m.students[x.StudentID] {
		return errs.ForeignKey("measurements_student_id_fkey", "student_id")
	}
	if x.MeasuredAt.IsZero() {
		x.MeasuredAt = time.Now()
	}
	for _, r := range m.rows {
		if r.StudentID == x.StudentID && r.MeasuredAt.Equal(x.MeasuredAt) {
			return errs.Unique("measurements_student_id_measured_at_key", "measured_at")
		}
	}
	m.nextID++
	x.ID = m.nextID
	m.rows[x.ID] = *x
	return nil
}

func (m *memMeasurements) GetByID(_ context.Context, id int64) (*entity.Measurement, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &r, nil
}

func (m *memMeasurements) ListByStudent(_ context.Context, studentID int64) ([]entity.Measurement, error) {
	out := make([]entity.Measurement, 0)
	for _, r := range m.rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeasuredAt.After(out[j].MeasuredAt) })
	return out, nil
}

func (m *memMeasurements) Update(_ context.Context, x *entity.Measurement) error {
	if _, ok := m.rows[x.ID]; !ok {
		return errs.ErrNotFound
	}
	m.rows[x.ID] = *x
	return nil
}

func (m *memMeasurements) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memAssessments struct {
	nextID int64
	rows   map[int64]entity.Assessment
}

func newMemAssessments() *memAssessments { return &memAssessments{rows: map[int64]entity.Assessment{}} }

func (m *memAssessments) Create(_ context.Context, a *entity.Assessment) error {
	m.nextID++
	a.ID = m.nextID
	m.rows[a.ID] = *a
	return nil
}

func (m *memAssessments) GetByID(_ context.Context, id int64) (*entity.Assessment, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &r, nil
}

func (m *memAssessments) ListByStudent(_ context.Context, studentID int64) ([]entity.Assessment, error) {
	out := make([]entity.Assessment, 0)
	for _, r := range m.rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memAssessments) Update(_ context.Context, a *entity.Assessment) error {
	if _, ok := m.rows[a.ID]; !ok {
		return errs.ErrNotFound
	}
	m.rows[a.ID] = *a
	return nil
}

func (m *memAssessments) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memPlans struct {
	rows []entity.Plan
}

func (m *memPlans) Create(_ context.Context, p *entity.Plan) error {
	p.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memPlans) ListByStudent(_ context.Context, studentID int64) ([]entity.Plan, error) {
	out := make([]entity.Plan, 0)
	for _, p := range m.rows {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeIndex struct {
	indexed  []int64
	removed  []int64
	err      error
	searchQ  string
	searched []map[string]any
}

func (f *fakeIndex) Index(_ context.Context, s *entity.Student) error {
	f.indexed = append(f.indexed, s.ID)
	return f.err
}

func (f *fakeIndex) Remove(_ context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeIndex) Search(_ context.Context, q string, _ int) ([]map[string]any, error) {
	f.searchQ = q
	return f.searched, f.err
}

type fakeQueue struct {
	jobs []any
	err  error
}

func (f *fakeQueue) PublishJSON(_ context.Context, body any) error {
	f.jobs = append(f.jobs, body)
	return f.err
}

type fakePhotos struct {
	paths []string
	err   error
}

func (f *fakePhotos) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, r)
	f.paths = append(f.paths, objectPath)
	return "https://cdn.test/" + objectPath, nil
}

type memSessions struct {
	sids map[string]string
}

func newMemSessions() *memSessions { return &memSessions{sids: map[string]string{}} }

func (m *memSessions) Save(_ context.Context, subject, sid string, _ time.Duration) error {
	m.sids[subject] = sid
	return nil
}

func (m *memSessions) Get(_ context.Context, subject string) (string, error) {
	return m.sids[subject], nil
}

func (m *memSessions) Delete(_ context.Context, subject string) error {
	delete(m.sids, subject)
	return nil
}
