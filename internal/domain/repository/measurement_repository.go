package repository

import (
	"context"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
)

type MeasurementRepository interface {
	Create(ctx context.Context, m *entity.Measurement) error
	GetByID(ctx context.Context, id int64) (*entity.Measurement, error)
	ListByStudent(ctx context.Context, studentID int64) ([]entity.Measurement, error)
	Update(ctx context.Context, m *entity.Measurement) error
	Delete(ctx context.Context, id int64) error
}
