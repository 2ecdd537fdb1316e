package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

// DebugModule publishes expvar metrics, rate-limited per IP.
type DebugModule struct {
	Limiter gin.HandlerFunc
}

func NewDebugModule(limiter gin.HandlerFunc) *DebugModule { return &DebugModule{Limiter: limiter} }

func (m *DebugModule) Name() string { return "debug" }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	h := gin.WrapH(expvar.Handler())
	if m.Limiter != nil {
		rg.GET("/debug/vars", m.Limiter, h)
		return
	}
	rg.GET("/debug/vars", h)
}
