package service_test

import (
	"context"
	"testing"
	"time"

	"fantasy-league-backend/internal/database/models"
	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/mocks"
	"fantasy-league-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GameWeekServiceTestSuite defines the test suite for GameWeekService
type GameWeekServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockGameWeekRepositoryInterface
	gameWeekService *service.GameWeekService
	ctx             context.Context
}

// SetupTest sets up the test suite
func (suite *GameWeekServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockGameWeekRepositoryInterface(suite.ctrl)
	suite.gameWeekService = service.NewGameWeekService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *GameWeekServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GameWeekServiceTestSuite) newGameWeek() *models.GameWeek {
	start := time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC)
	return &models.GameWeek{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		WeekNumber: 1,
		StartDate:  start,
		EndDate:    start.Add(7 * 24 * time.Hour),
	}
}

// TestCreateGameWeek tests creating a game week
func (suite *GameWeekServiceTestSuite) TestCreateGameWeek() {
	start := time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC)
	req := &service.CreateGameWeekRequest{
		WeekNumber: 1,
		StartDate:  start,
		EndDate:    start.Add(7 * 24 * time.Hour),
	}

	suite.mockRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.gameWeekService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.WeekNumber)
	assert.False(suite.T(), response.IsActive)
	assert.False(suite.T(), response.IsCompleted)
}

// TestCreateGameWeekBadDates tests that start must precede end
func (suite *GameWeekServiceTestSuite) TestCreateGameWeekBadDates() {
	start := time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC)
	req := &service.CreateGameWeekRequest{
		WeekNumber: 1,
		StartDate:  start,
		EndDate:    start.Add(-time.Hour),
	}

	response, err := suite.gameWeekService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetActiveGameWeek tests fetching the active week
func (suite *GameWeekServiceTestSuite) TestGetActiveGameWeek() {
	gw := suite.newGameWeek()
	gw.IsActive = true

	suite.mockRepo.EXPECT().
		GetActive(suite.ctx).
		Return(gw, nil).
		Times(1)

	response, err := suite.gameWeekService.GetActive(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsActive)
}

// TestGetActiveGameWeekNone tests fetching the active week when there is none
func (suite *GameWeekServiceTestSuite) TestGetActiveGameWeekNone() {
	suite.mockRepo.EXPECT().
		GetActive(suite.ctx).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.gameWeekService.GetActive(suite.ctx)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGameWeekNotFound)
}

// TestActivateGameWeek tests the NotStarted to Active transition
func (suite *GameWeekServiceTestSuite) TestActivateGameWeek() {
	gw := suite.newGameWeek()

	suite.mockRepo.EXPECT().
		GetByID(suite.ctx, gw.ID).
		Return(gw, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(suite.ctx, gw).
		Return(nil).
		Times(1)

	response, err := suite.gameWeekService.Activate(suite.ctx, gw.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsActive)
}

// TestActivateCompletedGameWeek tests that a completed week cannot restart
func (suite *GameWeekServiceTestSuite) TestActivateCompletedGameWeek() {
	gw := suite.newGameWeek()
	gw.IsCompleted = true

	suite.mockRepo.EXPECT().
		GetByID(suite.ctx, gw.ID).
		Return(gw, nil).
		Times(1)

	response, err := suite.gameWeekService.Activate(suite.ctx, gw.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGameWeekCompleted)
}

// TestCompleteGameWeek tests the Active to Completed transition
func (suite *GameWeekServiceTestSuite) TestCompleteGameWeek() {
	gw := suite.newGameWeek()
	gw.IsActive = true

	suite.mockRepo.EXPECT().
		GetByID(suite.ctx, gw.ID).
		Return(gw, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(suite.ctx, gw).
		Return(nil).
		Times(1)

	response, err := suite.gameWeekService.Complete(suite.ctx, gw.ID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsActive)
	assert.True(suite.T(), response.IsCompleted)
}

// TestCompleteInactiveGameWeek tests completing a week that never started
func (suite *GameWeekServiceTestSuite) TestCompleteInactiveGameWeek() {
	gw := suite.newGameWeek()

	suite.mockRepo.EXPECT().
		GetByID(suite.ctx, gw.ID).
		Return(gw, nil).
		Times(1)

	response, err := suite.gameWeekService.Complete(suite.ctx, gw.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGameWeekNotActive)
}

// TestGameWeekNotFound tests transitions against an unknown id
func (suite *GameWeekServiceTestSuite) TestGameWeekNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(suite.ctx, id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.gameWeekService.Activate(suite.ctx, id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGameWeekNotFound)
}

// TestGameWeekServiceTestSuite runs the test suite
func TestGameWeekServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameWeekServiceTestSuite))
}
