package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
)

func TestMockPlan(t *testing.T) {
	p := MockPlan()
	require.Len(t, p, 3)
	assert.Equal(t, entity.Exercise{
		Exercise:    "Agachamento",
		Sets:        3,
		Reps:        12,
		Focus:       "Força de pernas",
		Explanation: "O agachamento fortalece quadríceps e glúteos, ajuda a melhorar postura.",
	}, p[0])
	assert.Equal(t, "Remada Curvada", p[1].Exercise)
	assert.Equal(t, 60, p[2].Reps)

	p[0].Sets = 99
	assert.Equal(t, 3, MockPlan()[0].Sets)
}

func TestPlanService_GenerateForAssessment(t *testing.T) {
	assessments := newMemAssessments()
	plans := &memPlans{}
	svc := NewPlanService(plans, assessments, nil)
	ctx := context.Background()

	a := &entity.Assessment{StudentID: 4, Status: "draft"}
	require.NoError(t, assessments.Create(ctx, a))

	p, err := svc.GenerateForAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.StudentID)
	assert.Equal(t, a.ID, p.AssessmentID)
	assert.Len(t, p.Exercises, 3)

	list, err := svc.ListByStudent(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GenerateForAssessment(ctx, 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestPlanService_Generate(t *testing.T) {
	svc := NewPlanService(&memPlans{}, newMemAssessments(), nil)
	out := svc.Generate(context.Background(), PlanRequest{Name: "Ana", Age: 30, Goals: []string{"core"}})
	assert.Equal(t, MockPlan(), out)
}
