package models

import (
	"time"

	apperrors "fantasy-league-backend/internal/errors"
)

// GameWeek tracks a scoring period through its NotStarted -> Active ->
// Completed lifecycle. There is no transition back from Completed.
type GameWeek struct {
	BaseModel
	WeekNumber  int       `json:"week_number" gorm:"not null" validate:"required,gt=0"`
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:false;index"`
	IsCompleted bool      `json:"is_completed" gorm:"not null;default:false"`
}

// TableName returns the table name for GameWeek
func (GameWeek) TableName() string {
	return "game_weeks"
}

// NewGameWeek constructs a GameWeek in the NotStarted state
func NewGameWeek(weekNumber int, startDate, endDate time.Time) (*GameWeek, error) {
	if weekNumber <= 0 {
		return nil, apperrors.NewValidationError("week_number", "must be greater than zero")
	}
	if !startDate.Before(endDate) {
		return nil, apperrors.NewValidationError("start_date", "must be before end date")
	}

	return &GameWeek{
		WeekNumber: weekNumber,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// Activate marks the week active. Idempotent when already active.
func (g *GameWeek) Activate() error {
	if g.IsCompleted {
		return apperrors.ErrGameWeekCompleted
	}
	g.IsActive = true
	return nil
}

// Complete marks an active week completed
func (g *GameWeek) Complete() error {
	if !g.IsActive {
		return apperrors.ErrGameWeekNotActive
	}
	g.IsActive = false
	g.IsCompleted = true
	return nil
}
