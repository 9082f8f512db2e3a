// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the generators over HTTP with gin.
//
// Routes:
//
//	POST /v1/blueprints/project   project form JSON -> blueprint
//	POST /v1/blueprints/creative  creative form JSON -> blueprint
//	GET  /v1/forms/:engine        seed form for an engine
//	GET  /v1/runs                 archived runs, newest first
//	GET  /v1/runs/:id             one archived run
//	GET  /healthz
//	GET  /metrics
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/internal/monitoring"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// RunStore is the read side of the archive.
type RunStore interface {
	List(ctx context.Context, opts archive.ListOptions) ([]archive.Run, error)
	Get(ctx context.Context, id string) (archive.Run, error)
	Count(ctx context.Context, engine types.Engine) (int, error)
}

// Deps are the collaborators a Server uses. Runs and Metrics may be nil.
type Deps struct {
	Service *blueprint.Service
	Runs    RunStore
	Metrics *monitoring.Metrics
	Logger  *zap.Logger
}

// Server is the HTTP API.
type Server struct {
	cfg     types.ServerConfig
	router  *gin.Engine
	service *blueprint.Service
	runs    RunStore
	metrics *monitoring.Metrics
	log     *zap.Logger
}

// New builds the router. It does not start listening.
func New(cfg types.ServerConfig, deps Deps) *Server {
	s := &Server{
		cfg:     cfg,
		service: deps.Service,
		runs:    deps.Runs,
		metrics: deps.Metrics,
		log:     deps.Logger,
	}
	if s.service == nil {
		s.service = &blueprint.Service{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	if s.metrics != nil {
		r.Use(monitoring.Middleware(s.metrics))
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	r.GET("/healthz", s.health)

	v1 := r.Group("/v1")
	if cfg.Token != "" {
		v1.Use(bearerAuth(cfg.Token))
	}
	v1.POST("/blueprints/project", s.generateProject)
	v1.POST("/blueprints/creative", s.generateCreative)
	v1.GET("/forms/:engine", s.defaultForm)
	v1.GET("/runs", s.listRuns)
	v1.GET("/runs/:id", s.getRun)

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server starting", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Authorization", "Accept", "Origin"},
		ExposeHeaders: []string{"X-Blueprint-Digest", "X-Blueprint-Source"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
