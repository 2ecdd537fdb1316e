package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
)

// AssessmentModule wires assessments together with their plan and photo sub-resources.
type AssessmentModule struct {
	Handler *handlers.AssessmentHandler
	Plans   *handlers.PlanHandler
	Guards  Guards
}

func NewAssessmentModule(h *handlers.AssessmentHandler, plans *handlers.PlanHandler, g Guards) *AssessmentModule {
	return &AssessmentModule{Handler: h, Plans: plans, Guards: g}
}

func (m *AssessmentModule) Name() string { return "assessments" }

func (m *AssessmentModule) Register(rg *gin.RouterGroup) {
	g := m.Guards.group(rg, "/assessments")
	g.POST("", m.Guards.write(m.Handler.Create)...)
	g.GET("/student/:student_id", m.Handler.ListByStudent)
	g.GET("/:id", m.Handler.Get)
	g.PUT("/:id", m.Guards.write(m.Handler.Update)...)
	g.DELETE("/:id", m.Guards.write(m.Handler.Delete)...)
	g.POST("/:id/plan", m.Guards.write(m.Plans.GenerateForAssessment)...)
	g.POST("/:id/photos", m.Guards.write(m.Handler.UploadPhoto)...)
}
