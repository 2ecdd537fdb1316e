package postgres

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, p *entity.Plan) error {
	body, err := json.Marshal(p.Exercises)
	if err != nil {
		return err
	}
	q := psql.Insert("plans").
		Columns("student_id", "assessment_id", "plan_json").
		Values(p.StudentID, p.AssessmentID, body).
		Suffix("RETURNING id, created_at")

	return queryOne(ctx, r.db, q, func(row rowScanner) error {
		return row.Scan(&p.ID, &p.CreatedAt)
	})
}

func (r *PlanRepository) ListByStudent(ctx context.Context, studentID int64) ([]entity.Plan, error) {
	q := psql.Select("id", "student_id", "assessment_id", "plan_json", "created_at").
		From("plans").
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("id DESC")

	out := make([]entity.Plan, 0)
	err := queryAll(ctx, r.db, q, func(row rowScanner) error {
		var (
			p   entity.Plan
			raw []byte
		)
		if err := row.Scan(&p.ID, &p.StudentID, &p.AssessmentID, &raw, &p.CreatedAt); err != nil {
			return err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &p.Exercises); err != nil {
				return err
			}
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var _ repository.PlanRepository = (*PlanRepository)(nil)
