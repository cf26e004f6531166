package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fantasy-league-backend/internal/api/handlers"
	"fantasy-league-backend/internal/database/models"
	apperrors "fantasy-league-backend/internal/errors"
	"fantasy-league-backend/internal/mocks"
	"fantasy-league-backend/internal/service"
	"fantasy-league-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPlayerServiceInterface
	handler     *handlers.PlayerHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPlayerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPlayerHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	players := v1.Group("/players")
	{
		players.GET("", suite.handler.ListPlayers)
		players.POST("", suite.handler.CreatePlayer)
		players.GET("/position/:position", suite.handler.ListPlayersByPosition)
		players.GET("/:id", suite.handler.GetPlayer)
		players.PUT("/:id/stats", suite.handler.UpdatePlayerStats)
		players.PUT("/:id/price", suite.handler.UpdatePlayerPrice)
		players.DELETE("/:id", suite.handler.DeletePlayer)
	}
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreatePlayer tests the CreatePlayer handler
func (suite *PlayerHandlerTestSuite) TestCreatePlayer() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":     "Bukayo Saka",
			"position": "Forward",
			"club":     "Arsenal",
			"price":    9.5,
		}

		expectedResponse := &service.PlayerResponse{
			ID:       uuid.New(),
			Name:     "Bukayo Saka",
			Position: models.PositionForward,
			Club:     "Arsenal",
			Price:    9.5,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Bukayo Saka", response.Name)
		assert.Equal(t, 9.5, response.Price)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/players")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("price", "must be greater than zero")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players", map[string]interface{}{
			"name":     "Bukayo Saka",
			"position": "Forward",
			"club":     "Arsenal",
			"price":    -1.0,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetPlayer tests the GetPlayer handler
func (suite *PlayerHandlerTestSuite) TestGetPlayer() {
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()
		expectedResponse := &service.PlayerResponse{
			ID:     playerID,
			Name:   "Bukayo Saka",
			Points: 12,
		}

		suite.mockService.EXPECT().
			GetByID(gomock.Any(), playerID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/"+playerID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, playerID, response.ID)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(gomock.Any(), playerID).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/"+playerID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "player not found")
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListPlayers tests the ListPlayers handler
func (suite *PlayerHandlerTestSuite) TestListPlayers() {
	expectedResponse := []service.PlayerResponse{
		{ID: uuid.New(), Name: "Bukayo Saka", Position: models.PositionForward},
		{ID: uuid.New(), Name: "David Raya", Position: models.PositionGoalkeeper},
	}

	suite.mockService.EXPECT().
		GetAll(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.PlayerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestListPlayersByPosition tests the ListPlayersByPosition handler
func (suite *PlayerHandlerTestSuite) TestListPlayersByPosition() {
	expectedResponse := []service.PlayerResponse{
		{ID: uuid.New(), Name: "David Raya", Position: models.PositionGoalkeeper},
	}

	suite.mockService.EXPECT().
		GetByPosition(gomock.Any(), "Goalkeeper").
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/position/Goalkeeper", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.PlayerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestUpdatePlayerStats tests the UpdatePlayerStats handler
func (suite *PlayerHandlerTestSuite) TestUpdatePlayerStats() {
	playerID := uuid.New()
	statsURL := fmt.Sprintf("/api/v1/players/%s/stats", playerID)

	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.PlayerResponse{
			ID:          playerID,
			Name:        "Bukayo Saka",
			GoalsScored: 2,
			Assists:     1,
			Points:      13,
		}

		suite.mockService.EXPECT().
			UpdateStats(gomock.Any(), playerID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", statsURL, map[string]interface{}{
			"goals_scored": 2,
			"assists":      1,
			"clean_sheets": 0,
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 13, response.Points)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateStats(gomock.Any(), playerID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", statsURL, map[string]interface{}{
			"goals_scored": 1,
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("NegativeDelta", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateStats(gomock.Any(), playerID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("stats", "deltas must not be negative")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", statsURL, map[string]interface{}{
			"goals_scored": -1,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdatePlayerPrice tests the UpdatePlayerPrice handler
func (suite *PlayerHandlerTestSuite) TestUpdatePlayerPrice() {
	playerID := uuid.New()

	expectedResponse := &service.PlayerResponse{
		ID:    playerID,
		Name:  "Bukayo Saka",
		Price: 10.5,
	}

	suite.mockService.EXPECT().
		UpdatePrice(gomock.Any(), playerID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/players/%s/price", playerID), map[string]interface{}{
		"price": 10.5,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PlayerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 10.5, response.Price)
}

// TestDeletePlayer tests the DeletePlayer handler
func (suite *PlayerHandlerTestSuite) TestDeletePlayer() {
	playerID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(gomock.Any(), playerID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/players/"+playerID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(gomock.Any(), playerID).
			Return(apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/players/"+playerID.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
