package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
)

func TestHealth(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want bool
	}{
		{"database up", nil, true},
		{"database down", errors.New("dial tcp: refused"), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler(pingFunc(func(context.Context) error { return tc.err }), nil)
			r := gin.New()
			r.GET("/api/healthz", h.Health)

			w := do(t, r, http.MethodGet, "/api/healthz", nil)
			require.Equal(t, http.StatusOK, w.Code)
			var data map[string]any
			decodeData(t, decode(t, w), &data)
			assert.Equal(t, "ok", data["status"])
			assert.Equal(t, tc.want, data["database"])
		})
	}
}

func TestRootBanner(t *testing.T) {
	h := NewHealthHandler(nil, nil)
	r := gin.New()
	r.GET("/api/", h.Root)

	w := do(t, r, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data map[string]any
	decodeData(t, decode(t, w), &data)
	assert.Equal(t, "Projeto Fitness Genativo ativo!", data["message"])
}

func TestResendWelcome(t *testing.T) {
	svc := &fakeStudents{welcome: func(id int64) (bool, error) {
		switch id {
		case 1:
			return true, nil
		case 2:
			return false, nil
		case 3:
			return false, application.ErrNoEmail
		default:
			return false, errs.ErrNotFound
		}
	}}
	h := NewEmailHandler(svc, nil)
	r := gin.New()
	r.POST("/api/students/:id/welcome-email", h.ResendWelcome)

	w := do(t, r, http.MethodPost, "/api/students/1/welcome-email", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	var data map[string]any
	decodeData(t, decode(t, w), &data)
	assert.Equal(t, true, data["enqueued"])

	w = do(t, r, http.MethodPost, "/api/students/2/welcome-email", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	decodeData(t, decode(t, w), &data)
	assert.Equal(t, false, data["enqueued"])

	w = do(t, r, http.MethodPost, "/api/students/3/welcome-email", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no_email", decode(t, w).Error.Code)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/api/students/9/welcome-email", nil).Code)
}
