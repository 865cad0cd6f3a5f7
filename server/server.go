// SPDX-License-Identifier: MIT
// Package server exposes a Navigator over HTTP.
//
// Routes:
//
//	GET  /healthz                liveness
//	GET  /v1/buildings?q=        building search (whole catalogue without q)
//	POST /v1/routes[?format=gpx] meeting point and both legs
//	GET  /v1/stats               map and graph statistics
//	GET  /metrics                Prometheus exposition
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/osmmap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Server serves one Navigator.
type Server struct {
	nav      *navigator.Navigator
	stats    osmmap.Stats
	gatherer prometheus.Gatherer
	origins  []string
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithStats sets the body of GET /v1/stats.
func WithStats(s osmmap.Stats) Option {
	return func(srv *Server) { srv.stats = s }
}

// WithGatherer enables GET /metrics for the collectors registered on g.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(srv *Server) { srv.gatherer = g }
}

// WithAllowOrigins sets the CORS origins; "*" or an empty list allows all.
func WithAllowOrigins(origins ...string) Option {
	return func(srv *Server) { srv.origins = origins }
}

// WithLogger sets the access logger.
func WithLogger(l *slog.Logger) Option {
	return func(srv *Server) {
		if l != nil {
			srv.logger = l
		}
	}
}

// New returns a Server for nav.
func New(nav *navigator.Navigator, opts ...Option) *Server {
	srv := &Server{nav: nav, logger: slog.Default()}
	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

// Handler builds the gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog(), cors.New(s.corsConfig()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	v1.GET("/buildings", s.handleBuildings)
	v1.POST("/routes", s.handleRoute)
	v1.GET("/stats", s.handleStats)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(s.origins) == 0 || (len(s.origins) == 1 && s.origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}

	return cfg
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("http server stopped")

	return nil
}
