package leaderboard

import (
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/persistence"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
)

// Service implements the leaderboard business logic
type Service struct {
	userRepo     persistence.UserRepository
	referralRepo persistence.ReferralRepository
	logger       coreport.Logger
}

// NewService creates a new leaderboard service instance
func NewService(
	userRepo persistence.UserRepository,
	referralRepo persistence.ReferralRepository,
	logger coreport.Logger,
) usecase.LeaderboardUseCase {
	return &Service{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		logger:       logger,
	}
}
