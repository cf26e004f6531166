package handlers

import (
	"errors"
	"net/http"

	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameWeekHandler handles HTTP requests for game week operations
type GameWeekHandler struct {
	gameWeekService service.GameWeekServiceInterface
}

// NewGameWeekHandler creates a new game week handler
func NewGameWeekHandler(gameWeekService service.GameWeekServiceInterface) *GameWeekHandler {
	return &GameWeekHandler{
		gameWeekService: gameWeekService,
	}
}

// CreateGameWeek handles POST /gameweeks
// @Summary Create a game week
// @Description Create a game week with a positive week number and start before end
// @Tags gameweeks
// @Accept json
// @Produce json
// @Param gameweek body service.CreateGameWeekRequest true "Game week data"
// @Success 201 {object} service.GameWeekResponse "Successfully created game week"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gameweeks [post]
func (h *GameWeekHandler) CreateGameWeek(c *gin.Context) {
	var req service.CreateGameWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameWeek, err := h.gameWeekService.Create(c.Request.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gameWeek)
}

// GetGameWeek handles GET /gameweeks/:id
// @Summary Get game week by ID
// @Description Get a specific game week by its UUID
// @Tags gameweeks
// @Accept json
// @Produce json
// @Param id path string true "Game week ID (UUID)"
// @Success 200 {object} service.GameWeekResponse "Successfully retrieved game week"
// @Failure 400 {object} map[string]interface{} "Invalid game week ID"
// @Failure 404 {object} map[string]interface{} "Game week not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gameweeks/{id} [get]
func (h *GameWeekHandler) GetGameWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game week ID"})
		return
	}

	gameWeek, err := h.gameWeekService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameWeek)
}

// ListGameWeeks handles GET /gameweeks
// @Summary List all game weeks
// @Description Get all game weeks ordered by week number
// @Tags gameweeks
// @Accept json
// @Produce json
// @Success 200 {array} service.GameWeekResponse "Successfully retrieved game weeks"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gameweeks [get]
func (h *GameWeekHandler) ListGameWeeks(c *gin.Context) {
	gameWeeks, err := h.gameWeekService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameWeeks)
}

// GetActiveGameWeek handles GET /gameweeks/active
// @Summary Get the active game week
// @Description Get the currently active game week, if any
// @Tags gameweeks
// @Accept json
// @Produce json
// @Success 200 {object} service.GameWeekResponse "Active game week"
// @Failure 404 {object} map[string]interface{} "No active game week"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gameweeks/active [get]
func (h *GameWeekHandler) GetActiveGameWeek(c *gin.Context) {
	gameWeek, err := h.gameWeekService.GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrGameWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameWeek)
}

// ActivateGameWeek handles POST /gameweeks/:id/activate
// @Summary Activate a game week
// @Description Transition a game week to the Active state. Fails once the week has completed.
// @Tags gameweeks
// @Accept json
// @Produce json
// @Param id path string true "Game week ID (UUID)"
// @Success 200 {object} service.GameWeekResponse "Activated game week"
// @Failure 400 {object} map[string]interface{} "Illegal state transition"
// @Failure 404 {object} map[string]interface{} "Game week not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gameweeks/{id}/activate [post]
func (h *GameWeekHandler) ActivateGameWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game week ID"})
		return
	}

	gameWeek, err := h.gameWeekService.Activate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidState(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameWeek)
}

// CompleteGameWeek handles POST /gameweeks/:id/complete
// @Summary Complete a game week
// @Description Transition an active game week to the Completed state
// @Tags gameweeks
// @Accept json
// @Produce json
// @Param id path string true "Game week ID (UUID)"
// @Success 200 {object} service.GameWeekResponse "Completed game week"
// @Failure 400 {object} map[string]interface{} "Illegal state transition"
// @Failure 404 {object} map[string]interface{} "Game week not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gameweeks/{id}/complete [post]
func (h *GameWeekHandler) CompleteGameWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game week ID"})
		return
	}

	gameWeek, err := h.gameWeekService.Complete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidState(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameWeek)
}
