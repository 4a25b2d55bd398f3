package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/duccv/go-profile-guard/config"
	"github.com/duccv/go-profile-guard/internal/handler"
	"github.com/duccv/go-profile-guard/internal/middleware"
	"github.com/duccv/go-profile-guard/internal/token"
	http_server "github.com/duccv/go-profile-guard/pkg/server/http"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewHTTPServer wires the token decoder, middleware and handlers into an
// HTTP server. The returned cleanup releases the decoder.
func NewHTTPServer(env *config.Env) (*http_server.Server, func()) {
	decoder := token.NewDecoder(env.JWTConfig)
	auth := middleware.NewJWTAuthMiddleware(decoder, middleware.DefaultMiddlewareConfig())
	profile := handler.NewProfileHandler(env.SanitizerConfig)

	srv := http_server.New(env,
		func(api *gin.RouterGroup) {
			profile.RegisterRoutes(api.Group("/v1"), auth)
		},
		http_server.Port(strconv.Itoa(env.AppConfig.Port)),
		http_server.Timeout(time.Duration(env.AppConfig.Timeout)*time.Second),
	)

	return srv, decoder.Close
}

// StartServer runs the HTTP server until it fails or the process receives
// SIGINT or SIGTERM.
func StartServer(env *config.Env) {
	if env.JWTConfig.Secret == "" {
		zap.L().Warn("JWT secret is empty, every authenticated request will be rejected")
	}

	srv, cleanup := NewHTTPServer(env)
	defer cleanup()

	srv.Start()
	zap.L().Info("HTTP server started", zap.Int("port", env.AppConfig.Port))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-interrupt:
		zap.L().Info("Shutting down", zap.String("signal", sig.String()))
	case err := <-srv.Notify():
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("HTTP server stopped", zap.Error(err))
		}
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		zap.L().Error("HTTP server shutdown failed", zap.Error(err))
	}
}
