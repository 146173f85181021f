package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/adapters/http/dto"
	"github.com/claudeomosa/NETconf25/internal/app"
)

// StatsHandler handles the process statistics endpoint.
type StatsHandler struct {
	service *app.StatsService
}

// NewStatsHandler builds a handler over the stats service.
func NewStatsHandler(service *app.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// ProcessInfo carries per-process measurements.
type ProcessInfo struct {
	WorkingSet string `json:"workingSet"`
}

// StatsResponse is the wire shape of the stats report. Field naming and
// nesting are part of the public contract.
type StatsResponse struct {
	ProcessInfo ProcessInfo `json:"processInfo"`
}

// GetStats handles GET /stats
// Reports the live working set of the serving process.
//
// @Summary Get process statistics
// @Description Reports the resident memory of the running process
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	workingSet, err := h.service.GetWorkingSet(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &StatsResponse{
		ProcessInfo: ProcessInfo{
			WorkingSet: workingSet,
		},
	})
}

// RegisterStatsRoutes mounts the stats route on rg.
func (h *StatsHandler) RegisterStatsRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.GetStats)
}
