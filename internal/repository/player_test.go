//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"fantasy-league-backend/internal/database/models"
	"fantasy-league-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository against Postgres
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	factory       *testutils.PlayerFactory
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewPlayerFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new player
func (suite *PlayerRepositoryTestSuite) TestCreate() {
	player := suite.factory.Create()

	err := suite.repo.Create(suite.ctx, player)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, player.ID)
	suite.NotZero(player.CreatedAt)
}

// TestGetByID tests retrieving a player by ID
func (suite *PlayerRepositoryTestSuite) TestGetByID() {
	player := suite.factory.Create()
	suite.NoError(suite.repo.Create(suite.ctx, player))

	found, err := suite.repo.GetByID(suite.ctx, player.ID)

	suite.NoError(err)
	suite.Equal(player.ID, found.ID)
	suite.Equal(player.Name, found.Name)
	suite.Equal(player.Price, found.Price)
}

// TestGetByIDNotFound tests retrieving a player that does not exist
func (suite *PlayerRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests listing players ordered by name
func (suite *PlayerRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.ctx, suite.factory.WithName("Zinchenko")))
	suite.NoError(suite.repo.Create(suite.ctx, suite.factory.WithName("Arteta")))

	players, err := suite.repo.GetAll(suite.ctx)

	suite.NoError(err)
	suite.Len(players, 2)
	suite.Equal("Arteta", players[0].Name)
	suite.Equal("Zinchenko", players[1].Name)
}

// TestGetByPosition tests filtering players by position
func (suite *PlayerRepositoryTestSuite) TestGetByPosition() {
	keeper := suite.factory.WithPosition(models.PositionGoalkeeper)
	forward := suite.factory.WithPosition(models.PositionForward)
	suite.NoError(suite.repo.Create(suite.ctx, keeper))
	suite.NoError(suite.repo.Create(suite.ctx, forward))

	players, err := suite.repo.GetByPosition(suite.ctx, models.PositionGoalkeeper)

	suite.NoError(err)
	suite.Len(players, 1)
	suite.Equal(keeper.ID, players[0].ID)
}

// TestUpdate tests persisting stat and price changes
func (suite *PlayerRepositoryTestSuite) TestUpdate() {
	player := suite.factory.Create()
	suite.NoError(suite.repo.Create(suite.ctx, player))

	suite.NoError(player.UpdateStats(2, 1, 0))
	suite.NoError(player.UpdatePrice(10.5))
	suite.NoError(suite.repo.Update(suite.ctx, player))

	found, err := suite.repo.GetByID(suite.ctx, player.ID)
	suite.NoError(err)
	suite.Equal(2, found.GoalsScored)
	suite.Equal(2*models.PointsPerGoal+models.PointsPerAssist, found.Points)
	suite.Equal(10.5, found.Price)
}

// TestDelete tests removing a player
func (suite *PlayerRepositoryTestSuite) TestDelete() {
	player := suite.factory.Create()
	suite.NoError(suite.repo.Create(suite.ctx, player))

	suite.NoError(suite.repo.Delete(suite.ctx, player.ID))

	_, err := suite.repo.GetByID(suite.ctx, player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPlayerRepositoryTestSuite runs the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
