package handlers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/optional"
	"github.com/oksasatya/fitness-gen-api/pkg/validation"
)

// naiveDateTime is an ISO 8601 local time without offset; it is read as UTC.
const naiveDateTime = "2006-01-02T15:04:05"

// Timestamp accepts a calendar date (2006-01-02), an RFC 3339 instant,
// or an ISO date-time without offset (2006-01-02T15:04:05, fractions allowed).
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		t.Time = d
		return nil
	}
	if d, err := time.Parse(naiveDateTime, s); err == nil {
		t.Time = d
		return nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = ts
	return nil
}

func timeField(f optional.Field[Timestamp]) optional.Field[time.Time] {
	return optional.Map(f, func(t Timestamp) time.Time { return t.Time })
}

func notNull[T any](field string, f optional.Field[T]) error {
	if f.Set && f.Null {
		return &validation.FieldError{Field: field, Message: "must not be null"}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ---- students ----

type createStudentRequest struct {
	CPF       string     `json:"cpf" binding:"required,cpf"`
	Name      string     `json:"name" binding:"required,notblank,max=200"`
	BirthDate *Timestamp `json:"birth_date" binding:"required"`
	Sex       *string    `json:"sex" binding:"omitempty,max=20"`
	Email     *string    `json:"email" binding:"omitempty,optemail"`
	Phone     *string    `json:"phone" binding:"omitempty,max=32"`
}

func (r createStudentRequest) input() application.CreateStudentInput {
	return application.CreateStudentInput{
		CPF:       r.CPF,
		Name:      r.Name,
		BirthDate: r.BirthDate.Time,
		Sex:       r.Sex,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// updateStudentRequest carries cpf so that clients can echo the full record back; it is ignored.
type updateStudentRequest struct {
	CPF       optional.Field[string]    `json:"cpf"`
	Name      optional.Field[string]    `json:"name"`
	BirthDate optional.Field[Timestamp] `json:"birth_date"`
	Sex       optional.Field[string]    `json:"sex"`
	Email     optional.Field[string]    `json:"email"`
	Phone     optional.Field[string]    `json:"phone"`
}

func (r updateStudentRequest) patch() (entity.StudentPatch, error) {
	err := firstError(
		notNull("name", r.Name),
		notNull("birth_date", r.BirthDate),
	)
	if err == nil && r.Name.HasValue() {
		err = validation.Var("name", r.Name.Value, "notblank,max=200")
	}
	if err == nil && r.Email.HasValue() {
		err = validation.Var("email", r.Email.Value, "optemail")
	}
	if err != nil {
		return entity.StudentPatch{}, err
	}
	return entity.StudentPatch{
		CPF:       r.CPF,
		Name:      r.Name,
		BirthDate: timeField(r.BirthDate),
		Sex:       r.Sex,
		Email:     r.Email,
		Phone:     r.Phone,
	}, nil
}

type studentResponse struct {
	ID        int64     `json:"id"`
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"`
	Age       int       `json:"age"`
	Sex       *string   `json:"sex"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func toStudentResponse(s *entity.Student, now time.Time) studentResponse {
	return studentResponse{
		ID:        s.ID,
		CPF:       s.CPF,
		Name:      s.Name,
		BirthDate: s.BirthDate.Format(time.DateOnly),
		Age:       s.Age(now),
		Sex:       s.Sex,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}

func toStudentResponses(list []entity.Student, now time.Time) []studentResponse {
	out := make([]studentResponse, 0, len(list))
	for i := range list {
		out = append(out, toStudentResponse(&list[i], now))
	}
	return out
}

// studentKey reads the id/cpf query pair. A non-numeric id is a 400, an empty pair is left to the service.
func studentKey(c *gin.Context) (application.StudentKey, error) {
	var key application.StudentKey
	if raw := strings.TrimSpace(c.Query("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return key, &validation.FieldError{Field: "id", Message: "must be a positive integer"}
		}
		key.ID = &id
	}
	if raw := strings.TrimSpace(c.Query("cpf")); raw != "" {
		key.CPF = &raw
	}
	return key, nil
}

// ---- measurements ----

type createMeasurementRequest struct {
	StudentID      int64      `json:"student_id" binding:"required,gt=0"`
	MeasuredAt     *Timestamp `json:"measured_at"`
	HeightM        *float64   `json:"height_m" binding:"omitempty,gt=0"`
	WeightKg       *float64   `json:"weight_kg" binding:"omitempty,gt=0"`
	BodyFatPercent *float64   `json:"body_fat_percent"`
	MuscleMassKg   *float64   `json:"muscle_mass_kg"`
	Source         *string    `json:"source" binding:"omitempty,max=64"`
	Notes          *string    `json:"notes"`
}

func (r createMeasurementRequest) input() application.CreateMeasurementInput {
	in := application.CreateMeasurementInput{
		StudentID:      r.StudentID,
		HeightM:        r.HeightM,
		WeightKg:       r.WeightKg,
		BodyFatPercent: r.BodyFatPercent,
		MuscleMassKg:   r.MuscleMassKg,
		Source:         r.Source,
		Notes:          r.Notes,
	}
	if r.MeasuredAt != nil {
		t := r.MeasuredAt.Time
		in.MeasuredAt = &t
	}
	return in
}

type updateMeasurementRequest struct {
	MeasuredAt     optional.Field[Timestamp] `json:"measured_at"`
	HeightM        optional.Field[float64]   `json:"height_m"`
	WeightKg       optional.Field[float64]   `json:"weight_kg"`
	BodyFatPercent optional.Field[float64]   `json:"body_fat_percent"`
	MuscleMassKg   optional.Field[float64]   `json:"muscle_mass_kg"`
	Source         optional.Field[string]    `json:"source"`
	Notes          optional.Field[string]    `json:"notes"`
}

func (r updateMeasurementRequest) patch() (entity.MeasurementPatch, error) {
	err := notNull("measured_at", r.MeasuredAt)
	if err == nil && r.HeightM.HasValue() {
		err = validation.Var("height_m", r.HeightM.Value, "gt=0")
	}
	if err == nil && r.WeightKg.HasValue() {
		err = validation.Var("weight_kg", r.WeightKg.Value, "gt=0")
	}
	if err != nil {
		return entity.MeasurementPatch{}, err
	}
	return entity.MeasurementPatch{
		MeasuredAt:     timeField(r.MeasuredAt),
		HeightM:        r.HeightM,
		WeightKg:       r.WeightKg,
		BodyFatPercent: r.BodyFatPercent,
		MuscleMassKg:   r.MuscleMassKg,
		Source:         r.Source,
		Notes:          r.Notes,
	}, nil
}

type measurementResponse struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	MeasuredAt     time.Time `json:"measured_at"`
	HeightM        *float64  `json:"height_m"`
	WeightKg       *float64  `json:"weight_kg"`
	BodyFatPercent *float64  `json:"body_fat_percent"`
	MuscleMassKg   *float64  `json:"muscle_mass_kg"`
	BMI            *float64  `json:"bmi"`
	Source         *string   `json:"source"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

func toMeasurementResponse(m *entity.Measurement) measurementResponse {
	return measurementResponse{
		ID:             m.ID,
		StudentID:      m.StudentID,
		MeasuredAt:     m.MeasuredAt,
		HeightM:        m.HeightM,
		WeightKg:       m.WeightKg,
		BodyFatPercent: m.BodyFatPercent,
		MuscleMassKg:   m.MuscleMassKg,
		BMI:            m.BMI,
		Source:         m.Source,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

// ---- assessments ----

type createAssessmentRequest struct {
	StudentID      int64           `json:"student_id" binding:"required,gt=0"`
	MeasurementID  *int64          `json:"measurement_id" binding:"omitempty,gt=0"`
	Objectives     entity.Document `json:"objectives"`
	Posture        entity.Document `json:"posture"`
	Injuries       entity.Document `json:"injuries"`
	Restrictions   entity.Document `json:"restrictions"`
	History        entity.Document `json:"history"`
	Equipment      entity.Document `json:"equipment"`
	RedFlags       entity.Document `json:"red_flags"`
	Readiness      entity.Document `json:"readiness"`
	Periodization  entity.Document `json:"periodization"`
	Level          *string         `json:"level" binding:"omitempty,max=32"`
	FreqPerWeek    *int            `json:"freq_per_week" binding:"omitempty,gte=0"`
	SessionTimeMin *int            `json:"session_time_min" binding:"omitempty,gte=0"`
	CaseNotes      *string         `json:"case_notes"`
	Status         *string         `json:"status" binding:"omitempty,max=32"`
}

func (r createAssessmentRequest) input() application.CreateAssessmentInput {
	return application.CreateAssessmentInput{
		StudentID:      r.StudentID,
		MeasurementID:  r.MeasurementID,
		Objectives:     r.Objectives,
		Posture:        r.Posture,
		Injuries:       r.Injuries,
		Restrictions:   r.Restrictions,
		History:        r.History,
		Equipment:      r.Equipment,
		RedFlags:       r.RedFlags,
		Readiness:      r.Readiness,
		Periodization:  r.Periodization,
		Level:          r.Level,
		FreqPerWeek:    r.FreqPerWeek,
		SessionTimeMin: r.SessionTimeMin,
		CaseNotes:      r.CaseNotes,
		Status:         r.Status,
	}
}

type updateAssessmentRequest struct {
	MeasurementID  optional.Field[int64]           `json:"measurement_id"`
	Objectives     optional.Field[entity.Document] `json:"objectives"`
	Posture        optional.Field[entity.Document] `json:"posture"`
	Injuries       optional.Field[entity.Document] `json:"injuries"`
	Restrictions   optional.Field[entity.Document] `json:"restrictions"`
	History        optional.Field[entity.Document] `json:"history"`
	Equipment      optional.Field[entity.Document] `json:"equipment"`
	RedFlags       optional.Field[entity.Document] `json:"red_flags"`
	Readiness      optional.Field[entity.Document] `json:"readiness"`
	Periodization  optional.Field[entity.Document] `json:"periodization"`
	Level          optional.Field[string]          `json:"level"`
	FreqPerWeek    optional.Field[int]             `json:"freq_per_week"`
	SessionTimeMin optional.Field[int]             `json:"session_time_min"`
	CaseNotes      optional.Field[string]          `json:"case_notes"`
	Status         optional.Field[string]          `json:"status"`
}

func (r updateAssessmentRequest) patch() (entity.AssessmentPatch, error) {
	err := notNull("status", r.Status)
	if err == nil && r.Status.HasValue() {
		err = validation.Var("status", r.Status.Value, "notblank,max=32")
	}
	if err == nil && r.FreqPerWeek.HasValue() {
		err = validation.Var("freq_per_week", r.FreqPerWeek.Value, "gte=0")
	}
	if err == nil && r.SessionTimeMin.HasValue() {
		err = validation.Var("session_time_min", r.SessionTimeMin.Value, "gte=0")
	}
	if err != nil {
		return entity.AssessmentPatch{}, err
	}
	return entity.AssessmentPatch{
		MeasurementID:  r.MeasurementID,
		Objectives:     r.Objectives,
		Posture:        r.Posture,
		Injuries:       r.Injuries,
		Restrictions:   r.Restrictions,
		History:        r.History,
		Equipment:      r.Equipment,
		RedFlags:       r.RedFlags,
		Readiness:      r.Readiness,
		Periodization:  r.Periodization,
		Level:          r.Level,
		FreqPerWeek:    r.FreqPerWeek,
		SessionTimeMin: r.SessionTimeMin,
		CaseNotes:      r.CaseNotes,
		Status:         r.Status,
	}, nil
}

type assessmentResponse struct {
	ID             int64           `json:"id"`
	StudentID      int64           `json:"student_id"`
	MeasurementID  *int64          `json:"measurement_id"`
	Objectives     entity.Document `json:"objectives"`
	Posture        entity.Document `json:"posture"`
	Injuries       entity.Document `json:"injuries"`
	Restrictions   entity.Document `json:"restrictions"`
	History        entity.Document `json:"history"`
	Equipment      entity.Document `json:"equipment"`
	RedFlags       entity.Document `json:"red_flags"`
	Readiness      entity.Document `json:"readiness"`
	Periodization  entity.Document `json:"periodization"`
	Level          *string         `json:"level"`
	FreqPerWeek    *int            `json:"freq_per_week"`
	SessionTimeMin *int            `json:"session_time_min"`
	CaseNotes      *string         `json:"case_notes"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toAssessmentResponse(a *entity.Assessment) assessmentResponse {
	return assessmentResponse{
		ID:             a.ID,
		StudentID:      a.StudentID,
		MeasurementID:  a.MeasurementID,
		Objectives:     a.Objectives,
		Posture:        a.Posture,
		Injuries:       a.Injuries,
		Restrictions:   a.Restrictions,
		History:        a.History,
		Equipment:      a.Equipment,
		RedFlags:       a.RedFlags,
		Readiness:      a.Readiness,
		Periodization:  a.Periodization,
		Level:          a.Level,
		FreqPerWeek:    a.FreqPerWeek,
		SessionTimeMin: a.SessionTimeMin,
		CaseNotes:      a.CaseNotes,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}

// ---- plans ----

type generatePlanRequest struct {
	Name            string   `json:"name" binding:"required"`
	Age             *int     `json:"age" binding:"required,gte=0"`
	Sex             string   `json:"sex" binding:"required"`
	Weight          *float64 `json:"weight" binding:"required"`
	Height          *float64 `json:"height" binding:"required"`
	PostureIssues   []string `json:"posture_issues"`
	Injuries        []string `json:"injuries"`
	TrainingHistory *string  `json:"training_history"`
	Goals           []string `json:"goals"`
}

func (r generatePlanRequest) input() application.PlanRequest {
	return application.PlanRequest{
		Name:            r.Name,
		Age:             *r.Age,
		Sex:             r.Sex,
		Weight:          *r.Weight,
		Height:          *r.Height,
		PostureIssues:   r.PostureIssues,
		Injuries:        r.Injuries,
		TrainingHistory: r.TrainingHistory,
		Goals:           r.Goals,
	}
}

type planResponse struct {
	ID           int64             `json:"id"`
	StudentID    int64             `json:"student_id"`
	AssessmentID int64             `json:"assessment_id"`
	Plan         []entity.Exercise `json:"plan"`
	CreatedAt    time.Time         `json:"created_at"`
}

func toPlanResponse(p *entity.Plan) planResponse {
	return planResponse{
		ID:           p.ID,
		StudentID:    p.StudentID,
		AssessmentID: p.AssessmentID,
		Plan:         p.Exercises,
		CreatedAt:    p.CreatedAt,
	}
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &validation.FieldError{Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}
