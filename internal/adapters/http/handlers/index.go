package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexHandler serves the API discovery document at the root path.
type IndexHandler struct{}

// NewIndexHandler builds the stateless index handler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// IndexResponse describes the service and its endpoints.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// GetIndex handles GET /
// Returns a welcome message and a map of the public endpoints.
//
// @Summary API index
// @Description Lists the public endpoints of the service
// @Tags index
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (h *IndexHandler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, &IndexResponse{
		Message: "Welcome to the Quotes API",
		Endpoints: map[string]string{
			"/quote/random":     "Get a random quote",
			"/quotes":           "List all quotes",
			"/quotes/tag/{tag}": "List quotes with a given tag",
			"/stats":            "Get process statistics",
		},
	})
}

// RegisterIndexRoutes mounts the root route on rg.
func (h *IndexHandler) RegisterIndexRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.GetIndex)
}
