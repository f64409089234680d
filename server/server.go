package server

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/model"
)

// GeneratePath is where the web UI and the CLI send product input
const GeneratePath = "/api/generate-product"

//go:embed web/index.html
var indexHTML []byte

// Generator produces listing copy for a product
type Generator interface {
	Generate(ctx context.Context, input model.ProductInput) (model.GenerationResult, error)
}

// Server serves the single-page UI and the generation endpoint
type Server struct {
	generator Generator
	settings  common.Settings
	service   string
	version   string
	limiter   *rate.Limiter
	engine    *gin.Engine
}

// New builds the router. A nil generator is allowed: generation requests then fail
// with 500 until an API key is configured.
func New(generator Generator, settings common.Settings, service, version string) *Server {
	s := &Server{
		generator: generator,
		settings:  settings,
		service:   service,
		version:   version,
	}
	if settings.Server.RateLimit > 0 {
		burst := settings.Server.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(settings.Server.RateLimit), burst)
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery(), RequestIDMiddleware(), TracingMiddleware(), cors.New(corsConfig()))

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	r.GET("/", s.handleIndex)
	r.GET("/health", s.handleHealth)
	r.POST(GeneratePath, s.rateLimit(), s.handleGenerateProduct)

	return r
}

func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type"},
		MaxAge:                    86400 * time.Second,
		OptionsResponseStatusCode: http.StatusOK,
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting web server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
