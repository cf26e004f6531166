package handlers

import (
	"net/http"

	"fantasy-league-backend/internal/events"
	"fantasy-league-backend/internal/logger"
	"fantasy-league-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchResultHandler handles HTTP requests for match results. Created records
// are broadcast to the event publisher best-effort; a publish failure never
// changes the response.
type MatchResultHandler struct {
	matchResultService service.MatchResultServiceInterface
	publisher          events.Publisher
	topic              string
}

// NewMatchResultHandler creates a new match result handler. The publisher may
// be nil when eventing is disabled.
func NewMatchResultHandler(matchResultService service.MatchResultServiceInterface, publisher events.Publisher, topic string) *MatchResultHandler {
	return &MatchResultHandler{
		matchResultService: matchResultService,
		publisher:          publisher,
		topic:              topic,
	}
}

// CreateMatchResult handles POST /match-results
// @Summary Record a match result
// @Description Create a match result record and broadcast it to subscribers. The record is not stored.
// @Tags match-results
// @Accept json
// @Produce json
// @Param result body service.CreateMatchResultRequest true "Match result data"
// @Success 201 {object} service.MatchResultResponse "Created match result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match-results [post]
func (h *MatchResultHandler) CreateMatchResult(c *gin.Context) {
	var req service.CreateMatchResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.matchResultService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(c.Request.Context(), h.topic, result); err != nil {
			logger.WithContext(c.Request.Context()).
				WithError(err).
				WithField("match_id", result.MatchID).
				Warn("match result publish failed")
		}
	}

	c.JSON(http.StatusCreated, result)
}
