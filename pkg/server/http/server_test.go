package http_server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duccv/go-profile-guard/config"
	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEnv() *config.Env {
	return &config.Env{
		AppConfig: config.AppConfig{PathPrefix: "/api", Environment: "test"},
		CORSConfig: config.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"https://app.example.org"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Authorization"},
		},
	}
}

func TestRoutes(t *testing.T) {
	s := New(testEnv(), func(api *gin.RouterGroup) {
		api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	})

	tests := []struct {
		path   string
		status int
	}{
		{path: "/health", status: http.StatusOK},
		{path: "/api/ping", status: http.StatusOK},
		{path: "/api/swagger/doc.json", status: http.StatusOK},
		{path: "/missing", status: http.StatusNotFound},
		{path: "/api/v1/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		s.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.status, w.Code, tt.path)
		assert.NotEmpty(t, w.Header().Get(constant.CorrelationIDHeader), tt.path)
	}
}

func TestCORS(t *testing.T) {
	s := New(testEnv(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	// must differ from the request host, or cors treats it as same-origin
	req.Header.Set("Origin", "https://app.example.org")
	w := httptest.NewRecorder()
	s.App.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTimeout(t *testing.T) {
	if raceEnabled {
		t.Skip("gin-contrib/timeout shares the gin context with its handler goroutine")
	}

	s := New(testEnv(), func(api *gin.RouterGroup) {
		api.GET("/slow", func(c *gin.Context) {
			time.Sleep(200 * time.Millisecond)
			c.String(http.StatusOK, "late")
		})
	}, Timeout(20*time.Millisecond))

	w := httptest.NewRecorder()
	s.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/slow", nil))
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}

func TestNotFoundBody(t *testing.T) {
	s := New(testEnv(), func(api *gin.RouterGroup) {})

	w := httptest.NewRecorder()
	s.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ec":404,"msg":"Not found"}`, w.Body.String())
}

func TestStartShutdown(t *testing.T) {
	s := New(testEnv(), nil, Port("0"), ShutdownTimeout(time.Second))
	s.Start()

	require.NoError(t, s.Shutdown(context.Background()))

	select {
	case err := <-s.Notify():
		assert.True(t, errors.Is(err, http.ErrServerClosed))
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
