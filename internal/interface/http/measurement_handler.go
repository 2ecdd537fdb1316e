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

type MeasurementUseCase interface {
	Create(ctx context.Context, in application.CreateMeasurementInput) (*entity.Measurement, error)
	Get(ctx context.Context, id int64) (*entity.Measurement, error)
	ListByStudent(ctx context.Context, studentID int64) ([]entity.Measurement, error)
	Update(ctx context.Context, id int64, patch entity.MeasurementPatch) (*entity.Measurement, error)
	Delete(ctx context.Context, id int64) error
}

type MeasurementHandler struct {
	Svc    MeasurementUseCase
	Logger *logrus.Logger
}

func NewMeasurementHandler(svc MeasurementUseCase, logger *logrus.Logger) *MeasurementHandler {
	return &MeasurementHandler{Svc: svc, Logger: logger}
}

// Create POST /api/measurements
func (h *MeasurementHandler) Create(c *gin.Context) {
	var req createMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toMeasurementResponse(m), "measurement created", nil)
}

// ListByStudent GET /api/measurements/student/:student_id
func (h *MeasurementHandler) ListByStudent(c *gin.Context) {
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
	out := make([]measurementResponse, 0, len(list))
	for i := range list {
		out = append(out, toMeasurementResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out, "measurements", map[string]any{"count": len(out)})
}

// Get GET /api/measurements/:id
func (h *MeasurementHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMeasurementResponse(m), "measurement", nil)
}

// Update PUT /api/measurements/:id
func (h *MeasurementHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	var req updateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toMeasurementResponse(m), "measurement updated", nil)
}

// Delete DELETE /api/measurements/:id
func (h *MeasurementHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
