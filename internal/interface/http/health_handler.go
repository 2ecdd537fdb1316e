package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

const Banner = "Projeto Fitness Genativo ativo!"

// Pinger is anything that can tell whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB      Pinger
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger, Timeout: 2 * time.Second}
}

// Root GET /api/
func (h *HealthHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": Banner}, Banner, nil)
}

// Health GET /api/healthz
// The service itself is up whenever this answers, so a failed ping still returns 200.
func (h *HealthHandler) Health(c *gin.Context) {
	dbOK := false
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()
		err := h.DB.Ping(ctx)
		dbOK = err == nil
		if err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("database ping failed")
		}
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok", "database": dbOK}, "ok", nil)
}
