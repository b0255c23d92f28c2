package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/address-parsing/internal/logger"
	"github.com/address-parsing/internal/metrics"
	"github.com/address-parsing/internal/web/handlers"
	"github.com/address-parsing/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	engine     handlers.Engine
	httpServer *http.Server
	router     *mux.Router
	handler    http.Handler
}

// NewServer creates a new web server instance over engine
func NewServer(config *Config, engine handlers.Engine) (*Server, error) {
	if engine == nil {
		return nil, errors.New("web server needs an engine")
	}
	if config.Auth.Enabled && config.Auth.APIKey == "" {
		return nil, errors.New("auth is enabled but no API key is set")
	}

	server := &Server{
		config: config,
		engine: engine,
	}
	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.handler
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	handlerConfig := handlers.DefaultConfig()
	limits := s.config.Limits
	if limits.MaxBatch > 0 {
		handlerConfig.MaxBatch = limits.MaxBatch
	}
	if limits.SearchLimit > 0 {
		handlerConfig.SearchLimit = limits.SearchLimit
	}
	if limits.MaxSearchLimit > 0 {
		handlerConfig.MaxSearchLimit = limits.MaxSearchLimit
	}

	parseHandler := &handlers.ParseHandler{Engine: s.engine, Config: handlerConfig}
	searchHandler := &handlers.SearchHandler{Engine: s.engine, Config: handlerConfig}
	regionsHandler := &handlers.RegionsHandler{Engine: s.engine}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/parse", parseHandler.ParseAddress).Methods("GET")
	api.HandleFunc("/parse", parseHandler.ParseBatch).Methods("POST")
	api.HandleFunc("/search", searchHandler.SearchRegions).Methods("GET")
	api.HandleFunc("/regions/{id}", regionsHandler.GetRegion).Methods("GET")

	s.router.HandleFunc("/healthz", handlers.Health).Methods("GET")
	s.router.Handle("/metrics", metrics.Handler()).Methods("GET")

	s.router.Use(middleware.RequestLogging())

	if s.config.Auth.Enabled {
		api.Use(middleware.Authentication(s.config.Auth.APIKey))
	}

	// Preflight requests match no route, so CORS wraps the router.
	s.handler = middleware.CORS()(s.router)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("starting server", "addr", "http://"+s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.L().Info("server stopped")
	return nil
}
