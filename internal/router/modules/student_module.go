package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
)

// StudentModule wires the student registry routes under /students.
type StudentModule struct {
	Handler *handlers.StudentHandler
	Email   *handlers.EmailHandler
	Guards  Guards
}

func NewStudentModule(h *handlers.StudentHandler, email *handlers.EmailHandler, g Guards) *StudentModule {
	return &StudentModule{Handler: h, Email: email, Guards: g}
}

func (m *StudentModule) Name() string { return "students" }

func (m *StudentModule) Register(rg *gin.RouterGroup) {
	g := m.Guards.group(rg, "/students")
	g.POST("", m.Guards.write(m.Handler.Create)...)
	g.GET("", m.Handler.List)
	g.GET("/lookup", m.Handler.Lookup)
	g.GET("/search", m.Handler.Search)
	g.PUT("/update", m.Guards.write(m.Handler.Update)...)
	g.DELETE("/delete", m.Guards.write(m.Handler.Delete)...)
	g.GET("/:id", m.Handler.Get)
	if m.Email != nil {
		g.POST("/:id/welcome-email", m.Guards.write(m.Email.ResendWelcome)...)
	}
}
