package repository

import (
	"context"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
)

type AssessmentRepository interface {
	Create(ctx context.Context, a *entity.Assessment) error
	GetByID(ctx context.Context, id int64) (*entity.Assessment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]entity.Assessment, error)
	Update(ctx context.Context, a *entity.Assessment) error
	Delete(ctx context.Context, id int64) error
}
