package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/internal/history"
	"github.com/SoarGroup/soarcli/internal/kernel"
	"github.com/SoarGroup/soarcli/pkg/core/health"
)

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration // WebSocket read deadline, extended by every message
	Version      string

	Agent          *kernel.Agent
	AliasLines     []string
	History        history.Store
	AllowedOrigins []string
	Logger         *mdwlog.Logger
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:         "127.0.0.1",
		Port:         9470,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  defaultIdleTimeout,
	}
}

// Server serves the remote console
type Server struct {
	httpServer *http.Server
	handler    *Handler
	health     *health.Registry
	logger     *mdwlog.Logger
	config     Config
}

// New creates a new server
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	logger := cfg.Logger.WithField("component", "remote-server")

	wsHandler := NewHandler(HandlerConfig{
		Agent:          cfg.Agent,
		AliasLines:     cfg.AliasLines,
		History:        cfg.History,
		IdleTimeout:    cfg.IdleTimeout,
		Logger:         cfg.Logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	s := &Server{
		handler: wsHandler,
		health:  newHealthRegistry(cfg, wsHandler),
		logger:  logger,
		config:  cfg,
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.HandleFunc("/health", s.handleHealth)

	// ReadTimeout and WriteTimeout do not apply to hijacked WebSocket
	// connections; those use IdleTimeout.
	s.httpServer = &http.Server{
		Addr:         s.Address(),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the HTTP handler, for use with httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newHealthRegistry(cfg Config, h *Handler) *health.Registry {
	registry := health.NewRegistry("soarcli-remote", cfg.Version)
	registry.RegisterFunc("sessions", func(ctx context.Context) health.CheckResult {
		return health.CheckResult{
			Status:  health.StatusHealthy,
			Details: map[string]interface{}{"active": h.Active()},
		}
	})
	if cfg.History != nil {
		registry.RegisterFunc("history", func(ctx context.Context) health.CheckResult {
			count, err := cfg.History.Count(ctx, "")
			if err != nil {
				return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
			}
			return health.CheckResult{
				Status:  health.StatusHealthy,
				Details: map[string]interface{}{"entries": count},
			}
		})
	}
	return registry
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	report := s.health.Check(ctx)

	w.Header().Set("Content-Type", "application/json")
	if !report.Healthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(report)
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *mdwlog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("HTTP request", mdwlog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting remote console", mdwlog.Fields{
		"host": s.config.Host,
		"port": s.config.Port,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("remote console: %w", err)
	}
	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping remote console")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
