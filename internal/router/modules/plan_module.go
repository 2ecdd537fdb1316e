package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
)

type PlanModule struct {
	Handler *handlers.PlanHandler
	Guards  Guards
}

func NewPlanModule(h *handlers.PlanHandler, g Guards) *PlanModule {
	return &PlanModule{Handler: h, Guards: g}
}

func (m *PlanModule) Name() string { return "plans" }

func (m *PlanModule) Register(rg *gin.RouterGroup) {
	// the ad-hoc generator stores nothing, so it stays public like the banner
	rg.POST("/generate-plan", m.Guards.write(m.Handler.Generate)...)

	g := m.Guards.group(rg, "/plans")
	g.GET("/student/:student_id", m.Handler.ListByStudent)
}
