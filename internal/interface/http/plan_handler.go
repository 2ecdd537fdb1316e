package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

type PlanUseCase interface {
	Generate(ctx context.Context, req application.PlanRequest) []entity.Exercise
	GenerateForAssessment(ctx context.Context, assessmentID int64) (*entity.Plan, error)
	ListByStudent(ctx context.Context, studentID int64) ([]entity.Plan, error)
}

type PlanHandler struct {
	Svc    PlanUseCase
	Logger *logrus.Logger
}

func NewPlanHandler(svc PlanUseCase, logger *logrus.Logger) *PlanHandler {
	return &PlanHandler{Svc: svc, Logger: logger}
}

// Generate POST /api/generate-plan
// The payload is an ad-hoc assessment; nothing is stored.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req generatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	plan := h.Svc.Generate(c.Request.Context(), req.input())
	response.Success(c, http.StatusOK, plan, "plan generated", nil)
}

// GenerateForAssessment POST /api/assessments/:id/plan
func (h *PlanHandler) GenerateForAssessment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	p, err := h.Svc.GenerateForAssessment(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toPlanResponse(p), "plan generated", nil)
}

// ListByStudent GET /api/plans/student/:student_id
func (h *PlanHandler) ListByStudent(c *gin.Context) {
	studentID, err := pathID(c, "student_id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	list, err := h.Svc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]planResponse, 0, len(list))
	for i := range list {
		out = append(out, toPlanResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out, "plans", map[string]any{"count": len(out)})
}
