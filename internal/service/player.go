package service

import (
	"context"
	"errors"
	"fmt"

	"fantasy-league-backend/internal/database/models"
	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for players and their season stats
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to register a player
type CreatePlayerRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Position string  `json:"position" validate:"required,min=1,max=20"`
	Club     string  `json:"club" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// UpdatePlayerStatsRequest represents the stat deltas applied to a player
type UpdatePlayerStatsRequest struct {
	GoalsScored int `json:"goals_scored" validate:"gte=0"`
	Assists     int `json:"assists" validate:"gte=0"`
	CleanSheets int `json:"clean_sheets" validate:"gte=0"`
}

// UpdatePlayerPriceRequest represents a price change for a player
type UpdatePlayerPriceRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Club        string    `json:"club"`
	Price       float64   `json:"price"`
	Points      int       `json:"points"`
	GoalsScored int       `json:"goals_scored"`
	Assists     int       `json:"assists"`
	CleanSheets int       `json:"clean_sheets"`
}

// Create registers a new player
func (s *PlayerService) Create(ctx context.Context, req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := models.NewPlayer(req.Name, req.Position, req.Club, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return s.toResponse(player), nil
}

// GetByID retrieves a player by ID
func (s *PlayerService) GetByID(ctx context.Context, id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return s.toResponse(player), nil
}

// GetAll retrieves all players
func (s *PlayerService) GetAll(ctx context.Context) ([]PlayerResponse, error) {
	players, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, 0, len(players))
	for i := range players {
		responses = append(responses, *s.toResponse(&players[i]))
	}
	return responses, nil
}

// GetByPosition retrieves all players in a position
func (s *PlayerService) GetByPosition(ctx context.Context, position string) ([]PlayerResponse, error) {
	players, err := s.repo.GetByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by position: %w", err)
	}

	responses := make([]PlayerResponse, 0, len(players))
	for i := range players {
		responses = append(responses, *s.toResponse(&players[i]))
	}
	return responses, nil
}

// UpdateStats applies stat deltas to a player and accrues points
func (s *PlayerService) UpdateStats(ctx context.Context, id uuid.UUID, req *UpdatePlayerStatsRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if err := player.UpdateStats(req.GoalsScored, req.Assists, req.CleanSheets); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toResponse(player), nil
}

// UpdatePrice replaces a player's price
func (s *PlayerService) UpdatePrice(ctx context.Context, id uuid.UUID, req *UpdatePlayerPriceRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if err := player.UpdatePrice(req.Price); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toResponse(player), nil
}

// Delete removes a player
func (s *PlayerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) toResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:          player.ID,
		Name:        player.Name,
		Position:    player.Position,
		Club:        player.Club,
		Price:       player.Price,
		Points:      player.Points,
		GoalsScored: player.GoalsScored,
		Assists:     player.Assists,
		CleanSheets: player.CleanSheets,
	}
}
