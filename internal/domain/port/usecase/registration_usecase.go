package usecase

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
)

// ReferralInfo describes how the referral code on a registration resolved
type ReferralInfo struct {
	HadReferralCode bool    `json:"hadReferralCode"`
	ReferrerFound   bool    `json:"referrerFound"`
	ReferredBy      *string `json:"referredBy"`
}

// RegistrationResult is the outcome of a successful wallet registration
type RegistrationResult struct {
	User         *entity.User
	ReferralInfo ReferralInfo
}

// RegistrationUseCase defines the wallet registration operation
type RegistrationUseCase interface {
	// RegisterWallet validates the wallet address, resolves the optional
	// referral code and creates the user. A referral code that resolves to
	// no user is non-fatal: registration proceeds without a referrer.
	//
	// Possible errors:
	// - ErrInvalidWalletAddress: address does not match 0x + 40 hex chars
	// - ErrWalletAlreadyRegistered: wallet already has a user row
	RegisterWallet(ctx context.Context, walletAddress, referralCode string) (*RegistrationResult, error)
}
