package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

var assessmentColumns = []string{
	"id", "student_id", "measurement_id",
	"objectives", "posture", "injuries", "restrictions", "history",
	"equipment", "red_flags", "readiness", "periodization",
	"level", "freq_per_week", "session_time_min", "case_notes", "status", "created_at",
}

var assessmentReturning = "RETURNING " + strings.Join(assessmentColumns, ", ")

type AssessmentRepository struct {
	db DBTX
}

func NewAssessmentRepository(db DBTX) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// documents returns the JSONB columns of a in column order.
func documents(a *entity.Assessment) []*entity.Document {
	return []*entity.Document{
		&a.Objectives, &a.Posture, &a.Injuries, &a.Restrictions, &a.History,
		&a.Equipment, &a.RedFlags, &a.Readiness, &a.Periodization,
	}
}

func scanAssessment(row rowScanner, a *entity.Assessment) error {
	docs := documents(a)
	raw := make([][]byte, len(docs))

	dest := []any{&a.ID, &a.StudentID, &a.MeasurementID}
	for i := range raw {
		dest = append(dest, &raw[i])
	}
	dest = append(dest, &a.Level, &a.FreqPerWeek, &a.SessionTimeMin, &a.CaseNotes, &a.Status, &a.CreatedAt)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	for i, d := range docs {
		doc, err := entity.DecodeDocument(raw[i])
		if err != nil {
			return fmt.Errorf("decode %s: %w", assessmentColumns[3+i], err)
		}
		*d = doc
	}
	return nil
}

// docParam encodes a document for a JSONB parameter; nil stays SQL NULL.
func docParam(d entity.Document) (any, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// assessmentValues returns the writable columns of a, paired with their values.
func assessmentValues(a *entity.Assessment) ([]string, []any, error) {
	cols := []string{"measurement_id"}
	vals := []any{a.MeasurementID}
	for i, d := range documents(a) {
		p, err := docParam(*d)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, assessmentColumns[3+i])
		vals = append(vals, p)
	}
	cols = append(cols, "level", "freq_per_week", "session_time_min", "case_notes", "status")
	vals = append(vals, a.Level, a.FreqPerWeek, a.SessionTimeMin, a.CaseNotes, a.Status)
	return cols, vals, nil
}

func (r *AssessmentRepository) Create(ctx context.Context, a *entity.Assessment) error {
	cols, vals, err := assessmentValues(a)
	if err != nil {
		return err
	}
	q := psql.Insert("assessments").
		Columns(append([]string{"student_id"}, cols...)...).
		Values(append([]any{a.StudentID}, vals...)...).
		Suffix(assessmentReturning)

	return queryOne(ctx, r.db, q, func(row rowScanner) error { return scanAssessment(row, a) })
}

func (r *AssessmentRepository) GetByID(ctx context.Context, id int64) (*entity.Assessment, error) {
	a := &entity.Assessment{}
	q := psql.Select(assessmentColumns...).From("assessments").Where(sq.Eq{"id": id})
	if err := queryOne(ctx, r.db, q, func(row rowScanner) error { return scanAssessment(row, a) }); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AssessmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]entity.Assessment, error) {
	q := psql.Select(assessmentColumns...).
		From("assessments").
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("id DESC")

	out := make([]entity.Assessment, 0)
	err := queryAll(ctx, r.db, q, func(row rowScanner) error {
		var a entity.Assessment
		if err := scanAssessment(row, &a); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AssessmentRepository) Update(ctx context.Context, a *entity.Assessment) error {
	cols, vals, err := assessmentValues(a)
	if err != nil {
		return err
	}
	q := psql.Update("assessments")
	for i, c := range cols {
		q = q.Set(c, vals[i])
	}
	q = q.Where(sq.Eq{"id": a.ID}).Suffix(assessmentReturning)

	return queryOne(ctx, r.db, q, func(row rowScanner) error { return scanAssessment(row, a) })
}

func (r *AssessmentRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, psql.Delete("assessments").Where(sq.Eq{"id": id}))
}

var _ repository.AssessmentRepository = (*AssessmentRepository)(nil)
