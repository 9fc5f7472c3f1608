package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"MCXTracker/internal/tracker"
)

// Server is the presentation boundary: JSON over HTTP, no rendering.
type Server struct {
	svc    *tracker.Service
	engine *gin.Engine

	// Defaults applied when a query omits the knob.
	defaultContract string
	defaultDuty     float64
}

// New builds the router around the core service.
func New(svc *tracker.Service, defaultContract string, defaultDuty float64) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		svc:             svc,
		engine:          gin.New(),
		defaultContract: defaultContract,
		defaultDuty:     defaultDuty,
	}
	s.engine.Use(gin.Recovery())

	v1 := s.engine.Group("/api/v1")
	v1.GET("/contracts", s.getContracts)
	v1.GET("/analysis", s.getAnalysis)
	v1.POST("/refresh", s.postRefresh)

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return s
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.engine }
