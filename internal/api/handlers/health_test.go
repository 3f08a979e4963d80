package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := handlers.PingFunc(func(context.Context) error { return nil })
	down := handlers.PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	tests := []struct {
		name   string
		checks map[string]handlers.Pinger
		code   int
		body   string
	}{
		{"no backends", nil, http.StatusOK, `{"status":"ok"}`},
		{"all up", map[string]handlers.Pinger{"database": ok, "redis": ok}, http.StatusOK, `{"status":"ok","database":"ok","redis":"ok"}`},
		{"redis down", map[string]handlers.Pinger{"database": ok, "redis": down}, http.StatusServiceUnavailable, `{"status":"degraded","database":"ok","redis":"unavailable"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", handlers.NewHealthHandler(tt.checks).HealthCheck)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
