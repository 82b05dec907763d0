package dto

import (
	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
)

// LeaderboardResponse represents the API response for the public leaderboard
type LeaderboardResponse struct {
	Leaderboard []entity.LeaderboardEntry `json:"leaderboard"`
}
