package routes

import (
	"football-voting-backend/internal/api/handlers"
	"football-voting-backend/internal/api/middleware"
	"football-voting-backend/internal/config"
	"football-voting-backend/internal/repository"
	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes wires the store, the voting service and all handlers onto a
// gin engine. A store load failure here aborts startup.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	store := repository.NewGormStore(db)
	voting, err := service.NewVotingService(store, validator.New())
	if err != nil {
		return nil, err
	}

	teamHandler := handlers.NewTeamHandler(voting)
	playerHandler := handlers.NewPlayerHandler(voting)
	matchHandler := handlers.NewMatchHandler(voting)
	voteHandler := handlers.NewVoteHandler(voting)
	statsHandler := handlers.NewStatsHandler(voting)
	dashboardHandler := handlers.NewDashboardHandler(voting)

	router.GET("/health", handlers.Health)
	router.GET("/", handlers.Root)

	api := router.Group("/api")
	{
		api.GET("", handlers.Root)
		api.GET("/teams", teamHandler.ListTeams)
		api.GET("/players", playerHandler.ListPlayers)
		api.GET("/matches", matchHandler.ListMatches)
		api.GET("/stats", statsHandler.GetStats)
		api.GET("/match-stats", statsHandler.GetMatchStats)
		api.GET("/match-stats/:matchId", statsHandler.GetMatchStatsByID)
		api.GET("/votes/:matchId", voteHandler.GetVotes)
		api.GET("/dashboard", dashboardHandler.Dashboard)
		api.GET("/matches-page", dashboardHandler.MatchesPage)
		api.GET("/players-page", dashboardHandler.PlayersPage)
		api.GET("/stats-page", dashboardHandler.StatsPage)

		api.POST("/teams/add", teamHandler.AddTeam)
		api.POST("/players/add", playerHandler.AddPlayer)
		api.POST("/matches/add", matchHandler.AddMatch)
		api.POST("/vote", voteHandler.Vote)
		api.POST("/matches/close", matchHandler.CloseMatch)
		api.POST("/matches/set-active", matchHandler.SetMatchActive)
		api.POST("/matches/update-stats", statsHandler.UpdateMatchStats)
		api.POST("/matches/delete", matchHandler.DeleteMatch)
	}

	return router, nil
}
