package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

// WelcomeSender re-queues the welcome email of a student.
type WelcomeSender interface {
	ResendWelcome(ctx context.Context, id int64) (bool, error)
}

type EmailHandler struct {
	Svc    WelcomeSender
	Logger *logrus.Logger
}

func NewEmailHandler(svc WelcomeSender, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{Svc: svc, Logger: logger}
}

// ResendWelcome POST /api/students/:id/welcome-email
func (h *EmailHandler) ResendWelcome(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeBindError(c, err)
		return
	}
	enqueued, err := h.Svc.ResendWelcome(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if !enqueued {
		response.Success(c, http.StatusAccepted, gin.H{"enqueued": false, "disabled": true}, "email sending disabled", nil)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"enqueued": true}, "email enqueued", nil)
}
