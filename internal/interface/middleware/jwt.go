package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/fitness-gen-api/pkg/helpers"
	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

// CtxCoachKey holds the authenticated subject in the gin context.
const CtxCoachKey = "coach"

// Authorizer validates an access token against the live session and returns its subject.
type Authorizer interface {
	Authorize(ctx context.Context, accessToken string) (string, error)
}

// JWTAuth reads the access_token cookie (or a Bearer header), validates it and injects the coach into context.
func JWTAuth(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", response.ErrorBody{Code: "unauthorized"})
			c.Abort()
			return
		}
		subject, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", response.ErrorBody{Code: "unauthorized"})
			c.Abort()
			return
		}
		c.Set(CtxCoachKey, subject)
		c.Next()
	}
}

func accessToken(c *gin.Context) string {
	if tok, err := c.Cookie(helpers.AccessCookie); err == nil && tok != "" {
		return tok
	}
	if h := c.GetHeader("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
