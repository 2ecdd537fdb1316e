package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

const measurementReturning = "RETURNING id, student_id, measured_at, height_m, weight_kg, body_fat_percent, muscle_mass_kg, bmi, source, notes, created_at"

var measurementColumns = []string{
	"id", "student_id", "measured_at", "height_m", "weight_kg",
	"body_fat_percent", "muscle_mass_kg", "bmi", "source", "notes", "created_at",
}

type MeasurementRepository struct {
	db DBTX
}

func NewMeasurementRepository(db DBTX) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

func scanMeasurement(row rowScanner, m *entity.Measurement) error {
	return row.Scan(&m.ID, &m.StudentID, &m.MeasuredAt, &m.HeightM, &m.WeightKg,
		&m.BodyFatPercent, &m.MuscleMassKg, &m.BMI, &m.Source, &m.Notes, &m.CreatedAt)
}

// Create inserts m. A zero MeasuredAt is left out so the column default (now) applies.
func (r *MeasurementRepository) Create(ctx context.Context, m *entity.Measurement) error {
	cols := []string{"student_id", "height_m", "weight_kg", "body_fat_percent", "muscle_mass_kg", "bmi", "source", "notes"}
	vals := []any{m.StudentID, m.HeightM, m.WeightKg, m.BodyFatPercent, m.MuscleMassKg, m.BMI, m.Source, m.Notes}
	if !m.MeasuredAt.IsZero() {
		cols = append(cols, "measured_at")
		vals = append(vals, m.MeasuredAt)
	}
	q := psql.Insert("measurements").Columns(cols...).Values(vals...).Suffix(measurementReturning)

	return queryOne(ctx, r.db, q, func(row rowScanner) error { return scanMeasurement(row, m) })
}

func (r *MeasurementRepository) GetByID(ctx context.Context, id int64) (*entity.Measurement, error) {
	m := &entity.Measurement{}
	q := psql.Select(measurementColumns...).From("measurements").Where(sq.Eq{"id": id})
	if err := queryOne(ctx, r.db, q, func(row rowScanner) error { return scanMeasurement(row, m) }); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MeasurementRepository) ListByStudent(ctx context.Context, studentID int64) ([]entity.Measurement, error) {
	q := psql.Select(measurementColumns...).
		From("measurements").
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("measured_at DESC")

	out := make([]entity.Measurement, 0)
	err := queryAll(ctx, r.db, q, func(row rowScanner) error {
		var m entity.Measurement
		if err := scanMeasurement(row, &m); err != nil {
			return err
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MeasurementRepository) Update(ctx context.Context, m *entity.Measurement) error {
	q := psql.Update("measurements").
		Set("measured_at", m.MeasuredAt).
		Set("height_m", m.HeightM).
		Set("weight_kg", m.WeightKg).
		Set("body_fat_percent", m.BodyFatPercent).
		Set("muscle_mass_kg", m.MuscleMassKg).
		Set("bmi", m.BMI).
		Set("source", m.Source).
		Set("notes", m.Notes).
		Where(sq.Eq{"id": m.ID}).
		Suffix(measurementReturning)

	return queryOne(ctx, r.db, q, func(row rowScanner) error { return scanMeasurement(row, m) })
}

func (r *MeasurementRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, psql.Delete("measurements").Where(sq.Eq{"id": id}))
}

var _ repository.MeasurementRepository = (*MeasurementRepository)(nil)
