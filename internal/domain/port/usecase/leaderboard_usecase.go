package usecase

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
)

// LeaderboardUseCase defines the public leaderboard read operation
type LeaderboardUseCase interface {
	// GetLeaderboard reads the entire user set, reconciles cached referral
	// counts against the ledger and returns the ranked rows. Two calls with
	// no intervening registrations yield identical lists.
	GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}
