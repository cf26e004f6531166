package testutils

import (
	"time"

	"fantasy-league-backend/internal/database/models"

	"github.com/google/uuid"
)

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Bukayo Saka",
		Position: models.PositionForward,
		Club:     "Arsenal",
		Price:    9.5,
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(name string) *models.Player {
	player := f.Create()
	player.Name = name
	return player
}

// WithPosition sets a custom position for the player
func (f *PlayerFactory) WithPosition(position string) *models.Player {
	player := f.Create()
	player.Position = position
	return player
}

// WithPrice sets a custom price for the player
func (f *PlayerFactory) WithPrice(price float64) *models.Player {
	player := f.Create()
	player.Price = price
	return player
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a fresh budget and empty roster
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test United",
		ManagerName: "Alex Manager",
		Budget:      models.InitialBudget,
		TotalPoints: 0,
	}
}

// WithManager sets a custom manager name for the team
func (f *TeamFactory) WithManager(managerName string) *models.Team {
	team := f.Create()
	team.ManagerName = managerName
	return team
}

// WithBudget sets a custom remaining budget for the team
func (f *TeamFactory) WithBudget(budget float64) *models.Team {
	team := f.Create()
	team.Budget = budget
	return team
}

// WithPlayers rosters the given player ids and charges nothing to the budget
func (f *TeamFactory) WithPlayers(playerIDs ...uuid.UUID) *models.Team {
	team := f.Create()
	for _, id := range playerIDs {
		team.Players = append(team.Players, models.TeamPlayer{
			TeamID:   team.ID,
			PlayerID: id,
			AddedOn:  time.Now().UTC(),
		})
	}
	return team
}

// GameWeekFactory provides methods to create test GameWeek data
type GameWeekFactory struct{}

// NewGameWeekFactory creates a new GameWeekFactory
func NewGameWeekFactory() *GameWeekFactory {
	return &GameWeekFactory{}
}

// Create creates a test GameWeek in the not-started state
func (f *GameWeekFactory) Create() *models.GameWeek {
	start := time.Now().Truncate(time.Hour)
	return &models.GameWeek{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WeekNumber: 1,
		StartDate:  start,
		EndDate:    start.Add(7 * 24 * time.Hour),
	}
}

// WithWeekNumber sets a custom week number
func (f *GameWeekFactory) WithWeekNumber(weekNumber int) *models.GameWeek {
	gw := f.Create()
	gw.WeekNumber = weekNumber
	return gw
}

// Active creates a game week already in the active state
func (f *GameWeekFactory) Active() *models.GameWeek {
	gw := f.Create()
	gw.IsActive = true
	return gw
}

// Completed creates a game week already in the completed state
func (f *GameWeekFactory) Completed() *models.GameWeek {
	gw := f.Create()
	gw.IsCompleted = true
	return gw
}
