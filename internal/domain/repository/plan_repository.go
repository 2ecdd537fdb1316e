package repository

import (
	"context"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
)

type PlanRepository interface {
	Create(ctx context.Context, p *entity.Plan) error
	ListByStudent(ctx context.Context, studentID int64) ([]entity.Plan, error)
}
