package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"MCXTracker/internal/contract"
	"MCXTracker/internal/metrics"
	"MCXTracker/internal/model"
	"MCXTracker/internal/tracker"
)

func (s *Server) getContracts(c *gin.Context) {
	names := s.svc.Registry.Names()
	specs := make([]model.ContractSpec, 0, len(names))
	for _, n := range names {
		spec, err := s.svc.Registry.Lookup(n)
		if err != nil {
			continue
		}
		specs = append(specs, spec)
	}
	c.JSON(http.StatusOK, specs)
}

func (s *Server) getAnalysis(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := s.svc.Analyze(req)
	if err != nil {
		s.writeAnalyzeError(c, req, err)
		return
	}
	metrics.AnalysisRequests.WithLabelValues(req.Contract, "ok").Inc()
	c.JSON(http.StatusOK, toAnalysisDTO(a))
}

func (s *Server) postRefresh(c *gin.Context) {
	s.svc.InvalidateAll()
	c.JSON(http.StatusOK, gin.H{"status": "cache cleared"})
}

func (s *Server) parseRequest(c *gin.Context) (tracker.Request, error) {
	period, err := model.ParsePeriod(c.DefaultQuery("period", string(model.Period6Mo)))
	if err != nil {
		return tracker.Request{}, err
	}
	interval, err := model.ParseInterval(c.DefaultQuery("interval", string(model.IntervalDaily)))
	if err != nil {
		return tracker.Request{}, err
	}
	duty := s.defaultDuty
	if v := c.Query("duty"); v != "" {
		duty, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return tracker.Request{}, errors.New("duty must be a number")
		}
	}
	return tracker.Request{
		Contract:    c.DefaultQuery("contract", s.defaultContract),
		Period:      period,
		Interval:    interval,
		DutyPercent: duty,
		Refresh:     c.Query("refresh") == "true",
	}, nil
}

// writeAnalyzeError maps pipeline errors to specific statuses; the body
// always names the rejected input or the unavailable tuple.
func (s *Server) writeAnalyzeError(c *gin.Context, req tracker.Request, err error) {
	switch {
	case errors.Is(err, contract.ErrUnknownContract):
		metrics.AnalysisRequests.WithLabelValues(req.Contract, "rejected").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrDutyOutOfRange):
		metrics.AnalysisRequests.WithLabelValues(req.Contract, "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrDataUnavailable):
		metrics.AnalysisRequests.WithLabelValues(req.Contract, "unavailable").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		metrics.AnalysisRequests.WithLabelValues(req.Contract, "error").Inc()
		log.Printf("[ERROR] analysis %s: %v", req.Contract, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
