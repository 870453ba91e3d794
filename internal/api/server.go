package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/moneysaver/offset-calculator/internal/cache"
	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/config"
	"github.com/moneysaver/offset-calculator/internal/logging"
)

// ShutdownTimeout bounds how long in-flight requests may run after shutdown starts.
const ShutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	OpportunityCostPercent float64
	// Cache is optional; nil disables result caching.
	Cache     cache.ResultCache
	Logger    *slog.Logger
	RateLimit float64
	RateBurst int
}

// Server serves the calculator over HTTP.
type Server struct {
	engine  *calculation.CalculationEngine
	parser  *config.InputParser
	cache   cache.ResultCache
	logger  *slog.Logger
	limiter *RateLimiter
	handler http.Handler
}

// NewServer builds the router and middleware chain. Call Close to release
// the rate limiter.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	engine := calculation.NewCalculationEngine()
	engine.OpportunityCostPercent = opts.OpportunityCostPercent
	engine.SetLogger(logging.NewCalcLogger(logger))

	s := &Server{
		engine:  engine,
		parser:  config.NewInputParser(),
		cache:   opts.Cache,
		logger:  logger,
		limiter: NewRateLimiter(opts.RateLimit, opts.RateBurst),
	}

	var h http.Handler = s.routes()
	h = s.limiter.Middleware(s)(h)
	h = s.recoverMiddleware(h)
	h = NewRequestLoggingMiddleware(logger)(h)
	h = requestIDMiddleware(h)
	s.handler = h
	return s
}

func (s *Server) routes() *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(s.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(s.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodPost, "/api/v1/calculate", s.calculateHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/sweep", s.sweepHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/report/:format", s.reportHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", s.healthHandler)
	return router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.LogOperation(s.logger, "server_started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.LogOperation(s.logger, "server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logging.LogOperation(s.logger, "server_stopped")
	return nil
}
