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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	teamService    *service.TeamService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockPlayerRepo, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) newTeam() *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Arsenal Dream",
		ManagerName: "Mikel",
		Budget:      models.InitialBudget,
	}
}

func (suite *TeamServiceTestSuite) newPlayer(price float64) *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Bukayo Saka",
		Position:  models.PositionForward,
		Club:      "Arsenal",
		Price:     price,
	}
}

// TestCreateTeam tests creating a team with the initial budget
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	req := &service.CreateTeamRequest{
		Name:        "Arsenal Dream",
		ManagerName: "Mikel",
	}

	suite.mockTeamRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.teamService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), req.ManagerName, response.ManagerName)
	assert.Equal(suite.T(), models.InitialBudget, response.Budget)
	assert.Zero(suite.T(), response.TotalPoints)
	assert.Empty(suite.T(), response.Players)
}

// TestCreateTeamValidationError tests creating a team with a bad request
func (suite *TeamServiceTestSuite) TestCreateTeamValidationError() {
	req := &service.CreateTeamRequest{
		Name:        "",
		ManagerName: "Mikel",
	}

	response, err := suite.teamService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetTeamByIDNotFound tests getting a team that does not exist
func (suite *TeamServiceTestSuite) TestGetTeamByIDNotFound() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.GetByID(suite.ctx, teamID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestGetTeamByManagerName tests looking a team up by its manager
func (suite *TeamServiceTestSuite) TestGetTeamByManagerName() {
	team := suite.newTeam()

	suite.mockTeamRepo.EXPECT().
		GetByManagerName(suite.ctx, "Mikel").
		Return(team, nil).
		Times(1)

	response, err := suite.teamService.GetByManagerName(suite.ctx, "Mikel")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), team.ID, response.ID)
	assert.Equal(suite.T(), "Mikel", response.ManagerName)
}

// TestGetTeamByManagerNameNotFound tests looking up an unknown manager
func (suite *TeamServiceTestSuite) TestGetTeamByManagerNameNotFound() {
	suite.mockTeamRepo.EXPECT().
		GetByManagerName(suite.ctx, "Unknown").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.GetByManagerName(suite.ctx, "Unknown")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestGetAllDropsStaleRosterIDs tests that roster ids that no longer resolve
// to a player are dropped from the listing instead of failing it
func (suite *TeamServiceTestSuite) TestGetAllDropsStaleRosterIDs() {
	team := suite.newTeam()
	player := suite.newPlayer(9.5)
	staleID := uuid.New()
	team.Players = []models.TeamPlayer{
		{TeamID: team.ID, PlayerID: player.ID, AddedOn: time.Now().UTC()},
		{TeamID: team.ID, PlayerID: staleID, AddedOn: time.Now().UTC()},
	}

	suite.mockTeamRepo.EXPECT().
		GetAll(suite.ctx).
		Return([]models.Team{*team}, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, staleID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, err := suite.teamService.GetAll(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Len(suite.T(), responses[0].Players, 1)
	assert.Equal(suite.T(), player.ID, responses[0].Players[0].ID)
}

// TestAddPlayer tests signing a player onto the roster
func (suite *TeamServiceTestSuite) TestAddPlayer() {
	team := suite.newTeam()
	player := suite.newPlayer(9.5)

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	// looked up once for the roster change and once to resolve the response
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(2)
	suite.mockTeamRepo.EXPECT().
		Update(suite.ctx, team).
		Return(nil).
		Times(1)

	response, err := suite.teamService.AddPlayer(suite.ctx, team.ID, player.ID)

	assert.NoError(suite.T(), err)
	assert.InDelta(suite.T(), models.InitialBudget-9.5, response.Budget, 0.001)
	assert.Len(suite.T(), response.Players, 1)
	assert.Equal(suite.T(), player.ID, response.Players[0].ID)
}

// TestAddPlayerTeamNotFound tests that an absent team is reported as such
func (suite *TeamServiceTestSuite) TestAddPlayerTeamNotFound() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.AddPlayer(suite.ctx, teamID, uuid.New())

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestAddPlayerPlayerNotFound tests that an absent player is a distinct failure
func (suite *TeamServiceTestSuite) TestAddPlayerPlayerNotFound() {
	team := suite.newTeam()
	playerID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, playerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.AddPlayer(suite.ctx, team.ID, playerID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestAddPlayerInsufficientBudget tests that a too-expensive player is rejected
func (suite *TeamServiceTestSuite) TestAddPlayerInsufficientBudget() {
	team := suite.newTeam()
	team.Budget = 5.0
	player := suite.newPlayer(9.5)

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(1)

	response, err := suite.teamService.AddPlayer(suite.ctx, team.ID, player.ID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsBudget(err))
	assert.Equal(suite.T(), 5.0, team.Budget)
}

// TestAddPlayerDuplicate tests signing an already-rostered player
func (suite *TeamServiceTestSuite) TestAddPlayerDuplicate() {
	team := suite.newTeam()
	player := suite.newPlayer(9.5)
	team.Players = []models.TeamPlayer{{TeamID: team.ID, PlayerID: player.ID, AddedOn: time.Now()}}

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(1)

	response, err := suite.teamService.AddPlayer(suite.ctx, team.ID, player.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerAlreadyInTeam)
}

// TestRemovePlayer tests releasing a player and refunding their current price
func (suite *TeamServiceTestSuite) TestRemovePlayer() {
	team := suite.newTeam()
	player := suite.newPlayer(9.5)
	team.Players = []models.TeamPlayer{{TeamID: team.ID, PlayerID: player.ID, AddedOn: time.Now()}}
	team.Budget = models.InitialBudget - 9.5

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		Update(suite.ctx, team).
		Return(nil).
		Times(1)

	response, err := suite.teamService.RemovePlayer(suite.ctx, team.ID, player.ID)

	assert.NoError(suite.T(), err)
	assert.InDelta(suite.T(), models.InitialBudget, response.Budget, 0.001)
	assert.Empty(suite.T(), response.Players)
}

// TestRemovePlayerRefundsCurrentPrice tests that the refund tracks the market price
func (suite *TeamServiceTestSuite) TestRemovePlayerRefundsCurrentPrice() {
	team := suite.newTeam()
	player := suite.newPlayer(9.5)
	team.Players = []models.TeamPlayer{{TeamID: team.ID, PlayerID: player.ID, AddedOn: time.Now()}}
	team.Budget = models.InitialBudget - 9.5

	// price rose after the player was signed
	player.Price = 11.0

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		Update(suite.ctx, team).
		Return(nil).
		Times(1)

	response, err := suite.teamService.RemovePlayer(suite.ctx, team.ID, player.ID)

	assert.NoError(suite.T(), err)
	assert.InDelta(suite.T(), models.InitialBudget-9.5+11.0, response.Budget, 0.001)
}

// TestRemovePlayerNotInTeam tests releasing a player who is not rostered
func (suite *TeamServiceTestSuite) TestRemovePlayerNotInTeam() {
	team := suite.newTeam()
	player := suite.newPlayer(9.5)

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(suite.ctx, player.ID).
		Return(player, nil).
		Times(1)

	response, err := suite.teamService.RemovePlayer(suite.ctx, team.ID, player.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotInTeam)
}

// TestUpdateTeamPoints tests applying a points delta
func (suite *TeamServiceTestSuite) TestUpdateTeamPoints() {
	team := suite.newTeam()
	team.TotalPoints = 20

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		Update(suite.ctx, team).
		Return(nil).
		Times(1)

	req := &service.UpdateTeamPointsRequest{Points: 12}
	response, err := suite.teamService.UpdatePoints(suite.ctx, team.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 32, response.TotalPoints)
}

// TestDeleteTeam tests deleting a team
func (suite *TeamServiceTestSuite) TestDeleteTeam() {
	team := suite.newTeam()

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.ctx, team.ID).
		Return(team, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		Delete(suite.ctx, team.ID).
		Return(nil).
		Times(1)

	err := suite.teamService.Delete(suite.ctx, team.ID)

	assert.NoError(suite.T(), err)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
