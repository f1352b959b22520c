// Package api serves grid searches over HTTP with gin.
//
// Routes:
//
//	POST /api/v1/search      run one search on a maze
//	GET  /api/v1/algorithms  registered algorithm names
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus exposition
package api

import (
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Server bundles the dependencies of the HTTP handlers.
type Server struct {
	cfg      config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewServer returns a Server; reg and m may be nil to disable /metrics and
// search instrumentation.
func NewServer(cfg config.Config, logger zerolog.Logger, reg *prometheus.Registry, m *metrics.Metrics) *Server {
	return &Server{cfg: cfg, logger: logger, registry: reg, metrics: m}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(s.logger), DecodeBrotli())
	if s.cfg.Server.Brotli {
		router.Use(CompressBrotli(brotli.DefaultCompression))
	}

	router.GET("/healthz", s.healthz)
	if s.registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(s.registry)))
	}

	v1 := router.Group("/api/v1")
	v1.GET("/algorithms", s.listAlgorithms)
	v1.POST("/search", s.search)

	return router
}

// HTTPServer wraps Router in an http.Server using the configured address
// and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout(),
		WriteTimeout:      s.cfg.WriteTimeout(),
		IdleTimeout:       s.cfg.IdleTimeout(),
	}
}
