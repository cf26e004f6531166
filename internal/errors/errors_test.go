package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "fantasy-league-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrors(t *testing.T) {
	assert.Equal(t, "player not found", apperrors.ErrPlayerNotFound.Error())
	assert.Equal(t, "team not found", apperrors.ErrTeamNotFound.Error())
	assert.Equal(t, "game week not found", apperrors.ErrGameWeekNotFound.Error())

	assert.True(t, apperrors.IsNotFound(apperrors.ErrPlayerNotFound))
	assert.True(t, apperrors.IsNotFound(apperrors.ErrPlayerNotInTeam))
	assert.False(t, apperrors.IsNotFound(errors.New("boom")))
}

func TestNotFoundSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(apperrors.ErrPlayerNotFound, apperrors.ErrTeamNotFound))
	assert.False(t, errors.Is(apperrors.ErrPlayerNotInTeam, apperrors.ErrPlayerNotFound))
	assert.True(t, errors.Is(apperrors.NewNotFoundError("player"), apperrors.ErrPlayerNotFound))
}

func TestWrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("add player: %w", apperrors.ErrPlayerAlreadyInTeam)

	assert.True(t, errors.Is(wrapped, apperrors.ErrPlayerAlreadyInTeam))
	assert.True(t, apperrors.IsAlreadyExists(wrapped))
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("price", "must be greater than zero")

	assert.Equal(t, "validation error: price - must be greater than zero", err.Error())
	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsValidation(apperrors.ErrPlayerNotFound))
}

func TestCapacityError(t *testing.T) {
	err := apperrors.NewCapacityError(15)

	assert.Equal(t, "cannot have more than 15 players", err.Error())
	assert.True(t, apperrors.IsCapacity(err))
	assert.False(t, apperrors.IsCapacity(apperrors.NewValidationError("x", "y")))
}

func TestBudgetError(t *testing.T) {
	err := apperrors.NewBudgetError(5.0, 9.5)

	assert.Equal(t, "insufficient budget: have 5.0, need 9.5", err.Error())
	assert.True(t, apperrors.IsBudget(err))
}

func TestInvalidStateErrors(t *testing.T) {
	assert.Equal(t, "cannot activate a completed game week", apperrors.ErrGameWeekCompleted.Error())
	assert.Equal(t, "cannot complete an inactive game week", apperrors.ErrGameWeekNotActive.Error())

	assert.True(t, apperrors.IsInvalidState(apperrors.ErrGameWeekCompleted))
	assert.True(t, apperrors.IsInvalidState(fmt.Errorf("complete: %w", apperrors.ErrGameWeekNotActive)))
	assert.False(t, apperrors.IsInvalidState(apperrors.ErrTeamNotFound))
}
