package repository

import (
	"context"

	"fantasy-league-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	GetByPosition(ctx context.Context, position string) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByManagerName(ctx context.Context, managerName string) (*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GameWeekRepositoryInterface defines the interface for game week repository operations
type GameWeekRepositoryInterface interface {
	Create(ctx context.Context, gameWeek *models.GameWeek) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GameWeek, error)
	GetAll(ctx context.Context) ([]models.GameWeek, error)
	GetActive(ctx context.Context) (*models.GameWeek, error)
	Update(ctx context.Context, gameWeek *models.GameWeek) error
}
