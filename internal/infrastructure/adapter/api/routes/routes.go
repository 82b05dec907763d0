package routes

import (
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/handler"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	registrationHandler *handler.RegistrationHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	verificationHandler *handler.VerificationHandler,
) {
	// POST /registerWallet
	router.POST("/registerWallet", registrationHandler.RegisterWallet)

	// GET /leaderboard (never cached, fresh ranks on every request)
	router.GET("/leaderboard", middleware.NoCache(), leaderboardHandler.GetLeaderboard)

	// POST /verifyTelegram
	router.POST("/verifyTelegram", verificationHandler.VerifyTelegram)

	// POST /verifyXFollow
	router.POST("/verifyXFollow", verificationHandler.VerifyXFollow)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
