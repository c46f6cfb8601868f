// Package server exposes the composer and grammar corrector over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/signbridge/signbridge/internal/compose"
	"github.com/signbridge/signbridge/internal/grammar"
	"github.com/signbridge/signbridge/internal/model"
)

// Server hosts the HTTP API. All request state is per-call; the only shared
// state is the read-only vocabulary and the corrector, which must be safe for
// concurrent use.
type Server struct {
	cfg       model.ServerConfig
	log       *zap.Logger
	corrector grammar.Corrector
	composer  *compose.Composer
	router    *gin.Engine
	httpSrv   *http.Server
}

// New creates a server. The corrector may be nil, in which case /beautify
// answers 503 and composer fallbacks fail.
func New(cfg model.ServerConfig, log *zap.Logger, corrector grammar.Corrector) *Server {
	s := &Server{
		cfg:       cfg,
		log:       log,
		corrector: corrector,
		composer:  compose.New(corrector),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))
	r.Use(CORS(s.cfg.AllowedOrigins))
	if s.cfg.RateLimit.RPS > 0 {
		r.Use(RateLimit(s.cfg.RateLimit))
	}

	r.GET("/", s.handleRoot)
	r.POST("/beautify", s.handleBeautify)
	r.POST("/process-words", s.handleProcessWords)

	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the context is canceled, then drains in-flight
// requests within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
