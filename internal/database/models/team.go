package models

import (
	"time"

	apperrors "fantasy-league-backend/internal/errors"

	"github.com/google/uuid"
)

const (
	// InitialBudget is the salary-cap budget every team starts with
	InitialBudget = 100.0
	// MaxPlayers is the roster size limit
	MaxPlayers = 15
)

// Team is the roster aggregate. It owns its TeamPlayer membership records and
// enforces the budget, capacity and uniqueness invariants on every mutation.
// Players are referenced by id only; the aggregate never holds live Player rows.
type Team struct {
	BaseModel
	Name        string       `json:"name" gorm:"size:100;not null" validate:"required"`
	ManagerName string       `json:"manager_name" gorm:"size:100;not null;index" validate:"required"`
	Budget      float64      `json:"budget" gorm:"type:decimal(10,2);not null"`
	TotalPoints int          `json:"total_points" gorm:"not null;default:0"`
	Players     []TeamPlayer `json:"players" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamPlayer is a roster membership record owned by its Team
type TeamPlayer struct {
	ID       uint      `json:"-" gorm:"primaryKey"`
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	PlayerID uuid.UUID `json:"player_id" gorm:"type:uuid;not null"`
	AddedOn  time.Time `json:"added_on" gorm:"not null"`
}

// TableName returns the table name for TeamPlayer
func (TeamPlayer) TableName() string {
	return "team_players"
}

// NewTeam constructs a Team with the initial budget and zero points
func NewTeam(name, managerName string) (*Team, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if managerName == "" {
		return nil, apperrors.NewValidationError("manager_name", "must not be empty")
	}

	return &Team{
		Name:        name,
		ManagerName: managerName,
		Budget:      InitialBudget,
		TotalPoints: 0,
	}, nil
}

// AddPlayer appends a membership record for the player and consumes budget.
// The checks run in capacity, budget, uniqueness order; a failed call leaves
// the roster and budget untouched.
func (t *Team) AddPlayer(player *Player) error {
	if player == nil {
		return apperrors.NewValidationError("player", "must not be nil")
	}

	if len(t.Players) >= MaxPlayers {
		return apperrors.NewCapacityError(MaxPlayers)
	}

	if t.Budget < player.Price {
		return apperrors.NewBudgetError(t.Budget, player.Price)
	}

	for _, tp := range t.Players {
		if tp.PlayerID == player.ID {
			return apperrors.ErrPlayerAlreadyInTeam
		}
	}

	t.Players = append(t.Players, TeamPlayer{
		TeamID:   t.ID,
		PlayerID: player.ID,
		AddedOn:  time.Now().UTC(),
	})
	t.Budget -= player.Price
	return nil
}

// RemovePlayer drops the membership record and refunds refundPrice to the
// budget. Callers choose the refund policy; by convention they pass the
// player's current price, not the price paid when they were added.
func (t *Team) RemovePlayer(playerID uuid.UUID, refundPrice float64) error {
	for i, tp := range t.Players {
		if tp.PlayerID == playerID {
			t.Players = append(t.Players[:i], t.Players[i+1:]...)
			t.Budget += refundPrice
			return nil
		}
	}
	return apperrors.ErrPlayerNotInTeam
}

// UpdatePoints adds delta to the team's total points
func (t *Team) UpdatePoints(delta int) {
	t.TotalPoints += delta
}

// HasPlayer reports whether the player id is currently rostered
func (t *Team) HasPlayer(playerID uuid.UUID) bool {
	for _, tp := range t.Players {
		if tp.PlayerID == playerID {
			return true
		}
	}
	return false
}
