package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/adapters/http/dto"
	"github.com/claudeomosa/NETconf25/internal/app"
	"github.com/claudeomosa/NETconf25/internal/domain"
)

// QuoteHandler handles quote catalog HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler builds a handler over the quote service.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the wire shape of a single quote. Field names and
// casing are part of the public contract.
type QuoteResponse struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// toQuoteResponse maps a domain quote onto the wire shape. Untagged
// quotes serialize with an empty tags array rather than null.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	return &QuoteResponse{
		Text:   q.Text,
		Author: q.Author,
		Tags:   tags,
	}
}

// toQuoteResponses converts a slice of domain quotes, preserving order.
func toQuoteResponses(quotes []domain.Quote) []*QuoteResponse {
	responses := make([]*QuoteResponse, 0, len(quotes))
	for i := range quotes {
		responses = append(responses, toQuoteResponse(&quotes[i]))
	}

	return responses
}

// GetRandomQuote handles GET /quote/random
// Returns a uniformly random quote from the catalog.
//
// @Summary Pick a random quote
// @Description Picks one quote from the catalog uniformly at random
// @Tags quotes
// @Produce json
// @Success 200 {object} QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quote/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// GetQuotesByTag handles GET /quotes/tag/:tag
// Returns all quotes carrying the tag, in catalog order. Matching is
// case-insensitive on the caller's side of the comparison; the 404 message
// echoes the tag exactly as supplied.
//
// @Summary List quotes by tag
// @Description Filters the catalog by tag, case-insensitively
// @Tags quotes
// @Produce json
// @Param tag path string true "Tag to filter by"
// @Success 200 {array} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/tag/{tag} [get]
func (h *QuoteHandler) GetQuotesByTag(c *gin.Context) {
	tag := c.Param("tag")

	quotes, err := h.service.GetQuotesByTag(c.Request.Context(), tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

// ListQuotes handles GET /quotes
// Returns the whole catalog in its fixed order.
//
// @Summary List all quotes
// @Description Returns every quote in the catalog
// @Tags quotes
// @Produce json
// @Success 200 {array} QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

// RegisterQuoteRoutes mounts the three public quote routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quote/random", h.GetRandomQuote)
	rg.GET("/quotes", h.ListQuotes)
	rg.GET("/quotes/tag/:tag", h.GetQuotesByTag)
}
