package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/identity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

type MeasurementService struct {
	Repo   repository.MeasurementRepository
	Logger *logrus.Logger
}

func NewMeasurementService(repo repository.MeasurementRepository, logger *logrus.Logger) *MeasurementService {
	return &MeasurementService{Repo: repo, Logger: logger}
}

type CreateMeasurementInput struct {
	StudentID      int64
	MeasuredAt     *time.Time
	HeightM        *float64
	WeightKg       *float64
	BodyFatPercent *float64
	MuscleMassKg   *float64
	Source         *string
	Notes          *string
}

// Create stores a new measurement with its BMI computed from height and weight.
// Without MeasuredAt the store stamps the current time.
func (s *MeasurementService) Create(ctx context.Context, in CreateMeasurementInput) (*entity.Measurement, error) {
	m := &entity.Measurement{
		StudentID:      in.StudentID,
		HeightM:        in.HeightM,
		WeightKg:       in.WeightKg,
		BodyFatPercent: in.BodyFatPercent,
		MuscleMassKg:   in.MuscleMassKg,
		Source:         identity.NormalizeBlank(in.Source),
		Notes:          identity.NormalizeBlank(in.Notes),
	}
	if in.MeasuredAt != nil {
		m.MeasuredAt = *in.MeasuredAt
	}
	m.RecomputeBMI()

	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MeasurementService) Get(ctx context.Context, id int64) (*entity.Measurement, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *MeasurementService) ListByStudent(ctx context.Context, studentID int64) ([]entity.Measurement, error) {
	return s.Repo.ListByStudent(ctx, studentID)
}

// Update merges patch onto the stored measurement; touching height or weight refreshes the BMI.
func (s *MeasurementService) Update(ctx context.Context, id int64, patch entity.MeasurementPatch) (*entity.Measurement, error) {
	cur, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Source = normalizeBlankField(patch.Source)
	patch.Notes = normalizeBlankField(patch.Notes)

	merged := entity.MergeMeasurement(*cur, patch)
	if err := s.Repo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"measurement_id": id, "student_id": merged.StudentID}).Debug("measurement updated")
	}
	return &merged, nil
}

func (s *MeasurementService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
