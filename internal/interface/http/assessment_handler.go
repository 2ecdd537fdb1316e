package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

const maxPhotoBytes = 10 << 20

type AssessmentUseCase interface {
	Create(ctx context.Context, in application.CreateAssessmentInput) (*entity.Assessment, error)
	Get(ctx context.Context, id int64) (*entity.Assessment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]entity.Assessment, error)
	Update(ctx context.Context, id int64, patch entity.AssessmentPatch) (*entity.Assessment, error)
	Delete(ctx context.Context, id int64) error
	UploadPhoto(ctx context.Context, id int64, r io.Reader, filename, contentType string) (*entity.Assessment, string, error)
}

type AssessmentHandler struct {
	Svc    AssessmentUseCase
	Logger *logrus.Logger
}

func NewAssessmentHandler(svc AssessmentUseCase, logger *logrus.Logger) *AssessmentHandler {
	return &AssessmentHandler{Svc: svc, Logger: logger}
}

// Create POST /api/assessments
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req createAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toAssessmentResponse(a), "assessment created", nil)
}

// ListByStudent GET /api/assessments/student/:student_id
func (h *AssessmentHandler) ListByStudent(c *gin.Context) {
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
	out := make([]assessmentResponse, 0, len(list))
	for i := range list {
		out = append(out, toAssessmentResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out, "assessments", map[string]any{"count": len(out)})
}

// Get GET /api/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toAssessmentResponse(a), "assessment", nil)
}

// Update PUT /api/assessments/:id
func (h *AssessmentHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	var req updateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toAssessmentResponse(a), "assessment updated", nil)
}

// Delete DELETE /api/assessments/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
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

// UploadPhoto POST /api/assessments/:id/photos (multipart, field "file")
func (h *AssessmentHandler) UploadPhoto(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		writeFieldError(c, "file", "is required")
		return
	}
	if fh.Size > maxPhotoBytes {
		writeFieldError(c, "file", "must be at most 10MB")
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer f.Close()

	a, url, err := h.Svc.UploadPhoto(c.Request.Context(), id, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url, "assessment": toAssessmentResponse(a)}, "photo uploaded", nil)
}
