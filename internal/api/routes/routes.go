package routes

import (
	"fantasy-league-backend/internal/api/handlers"
	"fantasy-league-backend/internal/api/middleware"
	"fantasy-league-backend/internal/config"
	"fantasy-league-backend/internal/events"
	"fantasy-league-backend/internal/repository"
	"fantasy-league-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, publisher events.Publisher) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	gameWeekRepo := repository.NewGameWeekRepository(db)

	// Initialize services
	playerService := service.NewPlayerService(playerRepo, validator)
	teamService := service.NewTeamService(teamRepo, playerRepo, validator)
	gameWeekService := service.NewGameWeekService(gameWeekRepo, validator)
	matchResultService := service.NewMatchResultService(validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	playerHandler := handlers.NewPlayerHandler(playerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	gameWeekHandler := handlers.NewGameWeekHandler(gameWeekService)
	matchResultHandler := handlers.NewMatchResultHandler(matchResultService, publisher, cfg.MatchEventsTopic)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Player routes
		players := v1.Group("/players")
		{
			players.GET("", playerHandler.ListPlayers)
			players.POST("", playerHandler.CreatePlayer)
			players.GET("/position/:position", playerHandler.ListPlayersByPosition)
			players.GET("/:id", playerHandler.GetPlayer)
			players.PUT("/:id/stats", playerHandler.UpdatePlayerStats)
			players.PUT("/:id/price", playerHandler.UpdatePlayerPrice)
			players.DELETE("/:id", playerHandler.DeletePlayer)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/by-manager/:name", teamHandler.GetTeamByManager)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("/:id/players", teamHandler.AddPlayer)
			teams.DELETE("/:id/players/:playerId", teamHandler.RemovePlayer)
			teams.PUT("/:id/points", teamHandler.UpdateTeamPoints)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Game week routes
		gameWeeks := v1.Group("/gameweeks")
		{
			gameWeeks.GET("", gameWeekHandler.ListGameWeeks)
			gameWeeks.POST("", gameWeekHandler.CreateGameWeek)
			gameWeeks.GET("/active", gameWeekHandler.GetActiveGameWeek)
			gameWeeks.GET("/:id", gameWeekHandler.GetGameWeek)
			gameWeeks.POST("/:id/activate", gameWeekHandler.ActivateGameWeek)
			gameWeeks.POST("/:id/complete", gameWeekHandler.CompleteGameWeek)
		}

		// Match result routes
		v1.POST("/match-results", matchResultHandler.CreateMatchResult)
	}

	return router
}
