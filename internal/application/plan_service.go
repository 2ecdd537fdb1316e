package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

// mockPlan is returned for every request until plan generation is backed by a model.
var mockPlan = []entity.Exercise{
	{
		Exercise:    "Agachamento",
		Sets:        3,
		Reps:        12,
		Focus:       "Força de pernas",
		Explanation: "O agachamento fortalece quadríceps e glúteos, ajuda a melhorar postura.",
	},
	{
		Exercise:    "Remada Curvada",
		Sets:        3,
		Reps:        10,
		Focus:       "Costas",
		Explanation: "Fortalece a musculatura das costas e melhora a postura, especialmente em casos de desvio postural leve.",
	},
	{
		Exercise:    "Prancha",
		Sets:        3,
		Reps:        60,
		Focus:       "Core",
		Explanation: "Melhora estabilidade do core, previne lesões e ajuda na postura.",
	},
}

type PlanService struct {
	Plans       repository.PlanRepository
	Assessments repository.AssessmentRepository
	Logger      *logrus.Logger
}

func NewPlanService(plans repository.PlanRepository, assessments repository.AssessmentRepository, logger *logrus.Logger) *PlanService {
	return &PlanService{Plans: plans, Assessments: assessments, Logger: logger}
}

// PlanRequest is the ad-hoc assessment accepted by the plan generator.
type PlanRequest struct {
	Name            string
	Age             int
	Sex             string
	Weight          float64
	Height          float64
	PostureIssues   []string
	Injuries        []string
	TrainingHistory *string
	Goals           []string
}

// Generate returns the mock plan. The request is only logged.
func (s *PlanService) Generate(_ context.Context, req PlanRequest) []entity.Exercise {
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"age": req.Age, "goals": len(req.Goals)}).Debug("generating mock plan")
	}
	return MockPlan()
}

// GenerateForAssessment builds the plan for a stored assessment and persists it.
func (s *PlanService) GenerateForAssessment(ctx context.Context, assessmentID int64) (*entity.Plan, error) {
	a, err := s.Assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	p := &entity.Plan{StudentID: a.StudentID, AssessmentID: a.ID, Exercises: MockPlan()}
	if err := s.Plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlanService) ListByStudent(ctx context.Context, studentID int64) ([]entity.Plan, error) {
	return s.Plans.ListByStudent(ctx, studentID)
}

// MockPlan returns a fresh copy of the static plan.
func MockPlan() []entity.Exercise {
	out := make([]entity.Exercise, len(mockPlan))
	copy(out, mockPlan)
	return out
}
