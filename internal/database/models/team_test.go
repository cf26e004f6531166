package models_test

import (
	"fmt"
	"testing"

	"fantasy-league-backend/internal/database/models"
	apperrors "fantasy-league-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, name string, price float64) *models.Player {
	t.Helper()
	player, err := models.NewPlayer(name, models.PositionForward, "Arsenal", price)
	require.NoError(t, err)
	player.ID = uuid.New()
	return player
}

func TestNewTeam(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)

	assert.Equal(t, "Arsenal Dream", team.Name)
	assert.Equal(t, "Mikel", team.ManagerName)
	assert.Equal(t, models.InitialBudget, team.Budget)
	assert.Zero(t, team.TotalPoints)
	assert.Empty(t, team.Players)
}

func TestNewTeamValidation(t *testing.T) {
	_, err := models.NewTeam("", "Mikel")
	assert.True(t, apperrors.IsValidation(err))

	_, err = models.NewTeam("Arsenal Dream", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestTeamAddPlayer(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	player := newTestPlayer(t, "Bukayo Saka", 9.5)

	require.NoError(t, team.AddPlayer(player))

	assert.Len(t, team.Players, 1)
	assert.Equal(t, player.ID, team.Players[0].PlayerID)
	assert.InDelta(t, models.InitialBudget-9.5, team.Budget, 0.001)
	assert.True(t, team.HasPlayer(player.ID))
}

func TestTeamAddPlayerDuplicate(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	player := newTestPlayer(t, "Bukayo Saka", 9.5)
	require.NoError(t, team.AddPlayer(player))

	err = team.AddPlayer(player)

	assert.ErrorIs(t, err, apperrors.ErrPlayerAlreadyInTeam)
	assert.Len(t, team.Players, 1)
	assert.InDelta(t, models.InitialBudget-9.5, team.Budget, 0.001)
}

func TestTeamAddPlayerInsufficientBudget(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	team.Budget = 5.0
	player := newTestPlayer(t, "Bukayo Saka", 9.5)

	err = team.AddPlayer(player)

	assert.Error(t, err)
	assert.True(t, apperrors.IsBudget(err))
	assert.Empty(t, team.Players)
	assert.Equal(t, 5.0, team.Budget)
}

func TestTeamAddPlayerRosterFull(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	for i := 0; i < models.MaxPlayers; i++ {
		p := newTestPlayer(t, fmt.Sprintf("Player %d", i), 1.0)
		require.NoError(t, team.AddPlayer(p))
	}
	extra := newTestPlayer(t, "One Too Many", 1.0)

	err = team.AddPlayer(extra)

	assert.Error(t, err)
	assert.True(t, apperrors.IsCapacity(err))
	assert.Len(t, team.Players, models.MaxPlayers)
}

// Capacity is checked before budget, so a full roster fails with a capacity
// error even when the budget is also exhausted.
func TestTeamAddPlayerCapacityBeforeBudget(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	for i := 0; i < models.MaxPlayers; i++ {
		p := newTestPlayer(t, fmt.Sprintf("Player %d", i), 1.0)
		require.NoError(t, team.AddPlayer(p))
	}
	team.Budget = 0
	extra := newTestPlayer(t, "One Too Many", 50.0)

	err = team.AddPlayer(extra)

	assert.True(t, apperrors.IsCapacity(err))
	assert.False(t, apperrors.IsBudget(err))
}

func TestTeamRemovePlayer(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	player := newTestPlayer(t, "Bukayo Saka", 9.5)
	require.NoError(t, team.AddPlayer(player))

	require.NoError(t, team.RemovePlayer(player.ID, player.Price))

	assert.Empty(t, team.Players)
	assert.InDelta(t, models.InitialBudget, team.Budget, 0.001)
	assert.False(t, team.HasPlayer(player.ID))
}

func TestTeamRemovePlayerNotRostered(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	player := newTestPlayer(t, "Bukayo Saka", 9.5)
	require.NoError(t, team.AddPlayer(player))

	err = team.RemovePlayer(uuid.New(), 5.0)

	assert.ErrorIs(t, err, apperrors.ErrPlayerNotInTeam)
	assert.Len(t, team.Players, 1)
	assert.InDelta(t, models.InitialBudget-9.5, team.Budget, 0.001)
}

// The refund uses the price passed by the caller, which may differ from the
// price paid when the player was added.
func TestTeamRemovePlayerRefundsGivenPrice(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)
	player := newTestPlayer(t, "Bukayo Saka", 9.5)
	require.NoError(t, team.AddPlayer(player))

	require.NoError(t, team.RemovePlayer(player.ID, 11.0))

	assert.InDelta(t, models.InitialBudget-9.5+11.0, team.Budget, 0.001)
}

func TestTeamUpdatePoints(t *testing.T) {
	team, err := models.NewTeam("Arsenal Dream", "Mikel")
	require.NoError(t, err)

	team.UpdatePoints(12)
	team.UpdatePoints(8)
	assert.Equal(t, 20, team.TotalPoints)

	team.UpdatePoints(-5)
	assert.Equal(t, 15, team.TotalPoints)
}
