package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

// StudentUseCase is implemented by *application.StudentService.
type StudentUseCase interface {
	Create(ctx context.Context, in application.CreateStudentInput) (*entity.Student, error)
	Get(ctx context.Context, id int64) (*entity.Student, error)
	Lookup(ctx context.Context, key application.StudentKey) (*entity.Student, error)
	List(ctx context.Context) ([]entity.Student, error)
	Search(ctx context.Context, q string, size int) ([]map[string]any, error)
	Update(ctx context.Context, key application.StudentKey, patch entity.StudentPatch) (*entity.Student, error)
	Delete(ctx context.Context, key application.StudentKey) error
	ResendWelcome(ctx context.Context, id int64) (bool, error)
}

type StudentHandler struct {
	Svc    StudentUseCase
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewStudentHandler(svc StudentUseCase, logger *logrus.Logger) *StudentHandler {
	return &StudentHandler{Svc: svc, Logger: logger, Now: time.Now}
}

// Create POST /api/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	st, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toStudentResponse(st, h.Now()), "student created", nil)
}

// List GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toStudentResponses(list, h.Now()), "students", map[string]any{"count": len(list)})
}

// Get GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	st, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toStudentResponse(st, h.Now()), "student", nil)
}

// Lookup GET /api/students/lookup?id=&cpf=
func (h *StudentHandler) Lookup(c *gin.Context) {
	key, err := studentKey(c)
	if err != nil {
		writeBindError(c, err)
		return
	}
	st, err := h.Svc.Lookup(c.Request.Context(), key)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toStudentResponse(st, h.Now()), "student", nil)
}

// Search GET /api/students/search?q=&size=
func (h *StudentHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		writeFieldError(c, "q", "is required")
		return
	}
	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeFieldError(c, "size", "must be a non-negative integer")
			return
		}
		size = n
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// Update PUT /api/students/update?id=&cpf=
func (h *StudentHandler) Update(c *gin.Context) {
	key, err := studentKey(c)
	if err != nil {
		writeBindError(c, err)
		return
	}
	var req updateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		writeBindError(c, err)
		return
	}
	st, err := h.Svc.Update(c.Request.Context(), key, patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toStudentResponse(st, h.Now()), "student updated", nil)
}

// Delete DELETE /api/students/delete?id=&cpf=
func (h *StudentHandler) Delete(c *gin.Context) {
	key, err := studentKey(c)
	if err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), key); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
