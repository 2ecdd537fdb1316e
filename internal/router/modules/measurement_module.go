package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
)

type MeasurementModule struct {
	Handler *handlers.MeasurementHandler
	Guards  Guards
}

func NewMeasurementModule(h *handlers.MeasurementHandler, g Guards) *MeasurementModule {
	return &MeasurementModule{Handler: h, Guards: g}
}

func (m *MeasurementModule) Name() string { return "measurements" }

func (m *MeasurementModule) Register(rg *gin.RouterGroup) {
	g := m.Guards.group(rg, "/measurements")
	g.POST("", m.Guards.write(m.Handler.Create)...)
	g.GET("/student/:student_id", m.Handler.ListByStudent)
	g.GET("/:id", m.Handler.Get)
	g.PUT("/:id", m.Guards.write(m.Handler.Update)...)
	g.DELETE("/:id", m.Guards.write(m.Handler.Delete)...)
}
