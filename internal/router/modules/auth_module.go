package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
)

// AuthModule exposes coach login. Login and refresh sit behind a stricter per-IP limiter.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Limiter gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, limiter gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Limiter: limiter}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	if m.Limiter != nil {
		g.Use(m.Limiter)
	}
	g.POST("/login", m.Handler.Login)
	g.POST("/refresh", m.Handler.Refresh)
	g.POST("/logout", m.Handler.Logout)
}
