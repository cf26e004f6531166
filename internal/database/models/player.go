package models

import (
	apperrors "fantasy-league-backend/internal/errors"
)

// Conventional player positions. Position is stored as a free string so that
// new competition formats don't require a schema change.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionForward    = "Forward"
)

// Points awarded per stat event
const (
	PointsPerGoal       = 5
	PointsPerAssist     = 3
	PointsPerCleanSheet = 4
)

// Player represents a registered player and their accumulated season stats
type Player struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;not null" validate:"required"`
	Position    string  `json:"position" gorm:"size:20;not null;index" validate:"required"`
	Club        string  `json:"club" gorm:"size:100;not null" validate:"required"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null" validate:"required,gt=0"`
	Points      int     `json:"points" gorm:"not null;default:0"`
	GoalsScored int     `json:"goals_scored" gorm:"not null;default:0"`
	Assists     int     `json:"assists" gorm:"not null;default:0"`
	CleanSheets int     `json:"clean_sheets" gorm:"not null;default:0"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// NewPlayer constructs a Player, enforcing the price > 0 invariant
func NewPlayer(name, position, club string, price float64) (*Player, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if position == "" {
		return nil, apperrors.NewValidationError("position", "must not be empty")
	}
	if club == "" {
		return nil, apperrors.NewValidationError("club", "must not be empty")
	}
	if price <= 0 {
		return nil, apperrors.NewValidationError("price", "must be greater than zero")
	}

	return &Player{
		Name:     name,
		Position: position,
		Club:     club,
		Price:    price,
	}, nil
}

// UpdateStats adds the deltas to the cumulative counters and accrues points.
// Negative deltas are rejected so cumulative totals can never go below zero.
func (p *Player) UpdateStats(goalsScored, assists, cleanSheets int) error {
	if goalsScored < 0 || assists < 0 || cleanSheets < 0 {
		return apperrors.NewValidationError("stats", "deltas must not be negative")
	}

	p.GoalsScored += goalsScored
	p.Assists += assists
	p.CleanSheets += cleanSheets
	p.Points += goalsScored*PointsPerGoal + assists*PointsPerAssist + cleanSheets*PointsPerCleanSheet
	return nil
}

// UpdatePrice replaces the player's price, keeping the price > 0 invariant
func (p *Player) UpdatePrice(newPrice float64) error {
	if newPrice <= 0 {
		return apperrors.NewValidationError("price", "must be greater than zero")
	}
	p.Price = newPrice
	return nil
}
