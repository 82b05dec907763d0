package handler

import (
	"net/http"

	domainerr "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(
	leaderboardUseCase usecase.LeaderboardUseCase,
	logger coreport.Logger,
) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// GetLeaderboard handles the GET /leaderboard endpoint
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardUseCase.GetLeaderboard(c.Request.Context())
	if err != nil {
		h.logger.Error("Error building leaderboard", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Leaderboard: entries,
	})
}
