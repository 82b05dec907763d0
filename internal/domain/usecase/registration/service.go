package registration

import (
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/persistence"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
)

// Service implements the wallet registration business logic
type Service struct {
	userRepo     persistence.UserRepository
	referralRepo persistence.ReferralRepository
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new registration service instance
func NewService(
	userRepo persistence.UserRepository,
	referralRepo persistence.ReferralRepository,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RegistrationUseCase {
	return &Service{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
