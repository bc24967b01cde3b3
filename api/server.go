// Package api provides the HTTP API server for height predictions.
// It stands in for the form screens: it accepts raw form values and returns
// the report the results screen renders.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/TheMirberrys/height-lab-app/internal/form"
	"github.com/TheMirberrys/height-lab-app/internal/prediction"
	"github.com/TheMirberrys/height-lab-app/pkg/platform"
)

// Version is reported by /health and /version.
var Version = "dev"

// Server is the HTTP API server
type Server struct {
	httpServer *http.Server
	submitter  *form.Submitter
	config     *Config
	logger     zerolog.Logger
	startedAt  time.Time
}

// Config holds server configuration
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	MaxRequestSize int64
	CORSOrigins    []string
	APIKey         string
	AccessLog      bool
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		RequestTimeout: 5 * time.Second,
		MaxRequestSize: 64 * 1024,
		CORSOrigins:    []string{"*"},
		AccessLog:      true,
	}
}

// ConfigFromEnv overlays HEIGHTLAB_* environment variables on the defaults.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.Port = platform.GetEnvInt("HEIGHTLAB_PORT", cfg.Port)
	cfg.CORSOrigins = platform.GetEnvList("HEIGHTLAB_CORS_ORIGINS", cfg.CORSOrigins)
	cfg.APIKey = platform.GetEnv("HEIGHTLAB_API_KEY", cfg.APIKey)
	cfg.AccessLog = platform.GetEnvBool("HEIGHTLAB_ACCESS_LOG", cfg.AccessLog)
	return cfg
}

// NewServer creates a new API server
func NewServer(engine *prediction.Engine, config *Config, logger zerolog.Logger) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if engine == nil {
		engine = prediction.NewEngine()
	}

	return &Server{
		submitter: form.NewSubmitter(engine, logger),
		config:    config,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Handler builds the router with all middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.config.AccessLog {
		r.Use(s.loggingMiddleware)
	}
	r.Use(middleware.Recoverer)
	if s.config.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.config.RequestTimeout))
	}
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(platform.APIKeyMiddleware(s.config.APIKey))

		r.Post("/predict", s.handlePredict)
		r.Post("/validate", s.handleValidate)
		r.Post("/convert/height", s.handleConvertHeight)
		r.Post("/convert/age", s.handleConvertAge)
		r.Post("/form/height-unit", s.handleHeightUnitChange)
		r.Get("/format/height", s.handleFormatHeight)
		r.Get("/methods", s.handleMethods)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info().
		Int("port", s.config.Port).
		Str("version", Version).
		Msg("Starting height prediction API server")
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown starts server with graceful shutdown handling
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.logger.Info().Msg("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		allowed := false
		for _, o := range s.config.CORSOrigins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// HEALTH ENDPOINTS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": Version,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"version": Version,
		"service": "heightlab-api",
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
