package repository

import (
	"context"

	"fantasy-league-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameWeekRepository handles database operations for game weeks
type GameWeekRepository struct {
	db *gorm.DB
}

// NewGameWeekRepository creates a new game week repository
func NewGameWeekRepository(db *gorm.DB) *GameWeekRepository {
	return &GameWeekRepository{db: db}
}

// Create creates a new game week
func (r *GameWeekRepository) Create(ctx context.Context, gameWeek *models.GameWeek) error {
	return r.db.WithContext(ctx).Create(gameWeek).Error
}

// GetByID retrieves a game week by ID
func (r *GameWeekRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GameWeek, error) {
	var gameWeek models.GameWeek
	err := r.db.WithContext(ctx).First(&gameWeek, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gameWeek, nil
}

// GetAll retrieves all game weeks ordered by week number
func (r *GameWeekRepository) GetAll(ctx context.Context) ([]models.GameWeek, error) {
	var gameWeeks []models.GameWeek
	err := r.db.WithContext(ctx).Order("week_number").Find(&gameWeeks).Error
	if err != nil {
		return nil, err
	}
	return gameWeeks, nil
}

// GetActive retrieves the currently active game week
func (r *GameWeekRepository) GetActive(ctx context.Context) (*models.GameWeek, error) {
	var gameWeek models.GameWeek
	err := r.db.WithContext(ctx).First(&gameWeek, "is_active = ?", true).Error
	if err != nil {
		return nil, err
	}
	return &gameWeek, nil
}

// Update updates a game week
func (r *GameWeekRepository) Update(ctx context.Context, gameWeek *models.GameWeek) error {
	return r.db.WithContext(ctx).Save(gameWeek).Error
}
