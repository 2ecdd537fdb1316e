package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
)

// HealthModule serves the public banner and liveness routes.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule { return &HealthModule{Handler: h} }

func (m *HealthModule) Name() string { return "health" }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/healthz", m.Handler.Health)
}
