package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fantasy-league-backend/internal/database/models"
	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameWeekService handles business logic for game weeks
type GameWeekService struct {
	repo      repository.GameWeekRepositoryInterface
	validator *validator.Validate
}

// NewGameWeekService creates a new game week service
func NewGameWeekService(repo repository.GameWeekRepositoryInterface, validator *validator.Validate) *GameWeekService {
	return &GameWeekService{
		repo:      repo,
		validator: validator,
	}
}

// CreateGameWeekRequest represents the request to create a game week
type CreateGameWeekRequest struct {
	WeekNumber int       `json:"week_number" validate:"required,gt=0"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

// GameWeekResponse represents the response for game week operations
type GameWeekResponse struct {
	ID          uuid.UUID `json:"id"`
	WeekNumber  int       `json:"week_number"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	IsCompleted bool      `json:"is_completed"`
}

// Create creates a new game week in the NotStarted state
func (s *GameWeekService) Create(ctx context.Context, req *CreateGameWeekRequest) (*GameWeekResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	gameWeek, err := models.NewGameWeek(req.WeekNumber, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, gameWeek); err != nil {
		return nil, fmt.Errorf("failed to create game week: %w", err)
	}

	return s.toResponse(gameWeek), nil
}

// GetByID retrieves a game week by ID
func (s *GameWeekService) GetByID(ctx context.Context, id uuid.UUID) (*GameWeekResponse, error) {
	gameWeek, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameWeekNotFound
		}
		return nil, fmt.Errorf("failed to get game week: %w", err)
	}
	return s.toResponse(gameWeek), nil
}

// GetAll retrieves all game weeks
func (s *GameWeekService) GetAll(ctx context.Context) ([]GameWeekResponse, error) {
	gameWeeks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game weeks: %w", err)
	}

	responses := make([]GameWeekResponse, 0, len(gameWeeks))
	for i := range gameWeeks {
		responses = append(responses, *s.toResponse(&gameWeeks[i]))
	}
	return responses, nil
}

// GetActive retrieves the currently active game week
func (s *GameWeekService) GetActive(ctx context.Context) (*GameWeekResponse, error) {
	gameWeek, err := s.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameWeekNotFound
		}
		return nil, fmt.Errorf("failed to get active game week: %w", err)
	}
	return s.toResponse(gameWeek), nil
}

// Activate transitions a game week to the Active state
func (s *GameWeekService) Activate(ctx context.Context, id uuid.UUID) (*GameWeekResponse, error) {
	gameWeek, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameWeekNotFound
		}
		return nil, fmt.Errorf("failed to get game week: %w", err)
	}

	if err := gameWeek.Activate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, gameWeek); err != nil {
		return nil, fmt.Errorf("failed to update game week: %w", err)
	}

	return s.toResponse(gameWeek), nil
}

// Complete transitions an active game week to the Completed state
func (s *GameWeekService) Complete(ctx context.Context, id uuid.UUID) (*GameWeekResponse, error) {
	gameWeek, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameWeekNotFound
		}
		return nil, fmt.Errorf("failed to get game week: %w", err)
	}

	if err := gameWeek.Complete(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, gameWeek); err != nil {
		return nil, fmt.Errorf("failed to update game week: %w", err)
	}

	return s.toResponse(gameWeek), nil
}

func (s *GameWeekService) toResponse(gameWeek *models.GameWeek) *GameWeekResponse {
	return &GameWeekResponse{
		ID:          gameWeek.ID,
		WeekNumber:  gameWeek.WeekNumber,
		StartDate:   gameWeek.StartDate,
		EndDate:     gameWeek.EndDate,
		IsActive:    gameWeek.IsActive,
		IsCompleted: gameWeek.IsCompleted,
	}
}
