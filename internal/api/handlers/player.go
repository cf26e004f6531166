package handlers

import (
	"errors"
	"net/http"

	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayer handles POST /players
// @Summary Register a new player
// @Description Register a player with name, position, club and price
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Create(c.Request.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Description Get a specific player by its UUID
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	player, err := h.playerService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, player)
}

// ListPlayers handles GET /players
// @Summary List all players
// @Description Get all registered players
// @Tags players
// @Accept json
// @Produce json
// @Success 200 {array} service.PlayerResponse "Successfully retrieved players"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, players)
}

// ListPlayersByPosition handles GET /players/position/:position
// @Summary List players by position
// @Description Get all players in a given position
// @Tags players
// @Accept json
// @Produce json
// @Param position path string true "Position (Goalkeeper/Defender/Midfielder/Forward)"
// @Success 200 {array} service.PlayerResponse "Successfully retrieved players"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/position/{position} [get]
func (h *PlayerHandler) ListPlayersByPosition(c *gin.Context) {
	players, err := h.playerService.GetByPosition(c.Request.Context(), c.Param("position"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, players)
}

// UpdatePlayerStats handles PUT /players/:id/stats
// @Summary Update player stats
// @Description Apply goal/assist/clean-sheet deltas to a player, accruing points
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param stats body service.UpdatePlayerStatsRequest true "Stat deltas"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/{id}/stats [put]
func (h *PlayerHandler) UpdatePlayerStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	var req service.UpdatePlayerStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdateStats(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayerPrice handles PUT /players/:id/price
// @Summary Update player price
// @Description Replace a player's price; it must stay greater than zero
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param price body service.UpdatePlayerPriceRequest true "New price"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/{id}/price [put]
func (h *PlayerHandler) UpdatePlayerPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	var req service.UpdatePlayerPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePrice(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/:id
// @Summary Delete player
// @Description Delete a player by its UUID
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 204 "Successfully deleted player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	if err := h.playerService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
