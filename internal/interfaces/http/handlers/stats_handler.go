package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
)

// Endpoint is one row of the API index.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type StatsHandler struct {
	statsUsecase *usecases.StatsUsecase
	endpoints    []Endpoint
}

// NewStatsHandler builds the stats, health and index handler. endpoints is what GET /api reports.
func NewStatsHandler(statsUsecase *usecases.StatsUsecase, endpoints []Endpoint) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase, endpoints: endpoints}
}

// GetStats returns the four dashboard counts.
// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Health reports liveness and store connectivity; 503 when the store cannot be reached.
// GET /api/health
func (h *StatsHandler) Health(c *gin.Context) {
	health := h.statsUsecase.Health(c.Request.Context())
	status := http.StatusOK
	if !health.Connected {
		status = http.StatusServiceUnavailable
	}
	response.Raw(c, status, health)
}

// Index lists the available endpoints.
// GET /api
func (h *StatsHandler) Index(c *gin.Context) {
	response.Raw(c, http.StatusOK, gin.H{
		"name":      "team-showcase API",
		"envelope":  response.Envelope(),
		"endpoints": h.endpoints,
	})
}
