package http_server

import (
	"context"
	"net/http"
	"time"

	"github.com/duccv/go-profile-guard/config"
	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/duccv/go-profile-guard/internal/middleware"
	"github.com/duccv/go-profile-guard/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/duccv/go-profile-guard/docs"
)

// RouteRegistrar mounts application routes under the API path prefix.
type RouteRegistrar func(api *gin.RouterGroup)

type Server struct {
	App    *gin.Engine
	server *http.Server
	notify chan error

	address         string
	timeout         time.Duration
	shutdownTimeout time.Duration
}

// New -.
func New(env *config.Env, register RouteRegistrar, opts ...Option) *Server {
	s := &Server{
		notify:          make(chan error, 1),
		address:         _defaultAddr,
		timeout:         _defaultTimeout,
		shutdownTimeout: _defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.App = s.initGinServer(env, register)
	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.App,
		ReadHeaderTimeout: s.timeout,
	}

	return s
}

func timeoutResponse(c *gin.Context) {
	c.JSON(http.StatusRequestTimeout, constant.REQUEST_TIMEOUT)
}

func timeoutMiddleware(to time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(to),
		timeout.WithResponse(timeoutResponse),
	)
}

func (s *Server) initGinServer(env *config.Env, register RouteRegistrar) *gin.Engine {
	pathPrefix := env.AppConfig.PathPrefix
	if pathPrefix == "" {
		pathPrefix = "/api"
	}
	if env.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(middleware.DefaultMiddlewareConfig()).RequestLogger())

	if env.MetricsConfig.Enabled {
		m := metrics.GetMonitor(env.MetricsConfig.Path)
		m.Use(r)
	}

	if env.CORSConfig.Enabled {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     env.CORSConfig.AllowedOrigins,
			AllowMethods:     env.CORSConfig.AllowedMethods,
			AllowHeaders:     env.CORSConfig.AllowedHeaders,
			ExposeHeaders:    env.CORSConfig.ExposedHeaders,
			AllowCredentials: env.CORSConfig.AllowCredentials,
			MaxAge:           time.Duration(env.CORSConfig.MaxAge) * time.Second,
		}))
	}

	// HealthCheck godoc
	//
	//	@Summary		Health Check
	//	@Description	Returns status 200 if the service is running
	//	@Tags			Health
	//	@Produce		json
	//	@Success		200	{object}	map[string]string
	//	@Router			/health [get]
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET(pathPrefix+"/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// The timeout wrapper stays off the engine: on gin's NoRoute chain it
	// flushes a 200 before the 404 is written.
	if register != nil {
		register(r.Group(pathPrefix, timeoutMiddleware(s.timeout)))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, constant.NOT_FOUND)
	})

	return r
}

// Start -.
func (s *Server) Start() {
	go func() {
		s.notify <- s.server.ListenAndServe()
		close(s.notify)
	}()
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown stops accepting connections and waits for in-flight requests,
// at most for the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
