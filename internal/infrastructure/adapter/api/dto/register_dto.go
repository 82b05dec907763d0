package dto

import (
	"time"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
)

// RegisterWalletRequest represents the API request for wallet registration
type RegisterWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	ReferralCode  string `json:"referralCode"`
}

// RegisteredUser is the user payload returned after registration
type RegisteredUser struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	ReferralCode  string    `json:"referralCode"`
	ReferredBy    *string   `json:"referredBy"`
	ReferralCount int64     `json:"referralCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReferralInfo describes how the referral code on the request resolved
type ReferralInfo struct {
	HadReferralCode bool    `json:"hadReferralCode"`
	ReferrerFound   bool    `json:"referrerFound"`
	ReferredBy      *string `json:"referredBy"`
}

// RegisterWalletResponse represents the API response for a successful registration
type RegisterWalletResponse struct {
	User         RegisteredUser `json:"user"`
	ReferralInfo ReferralInfo   `json:"referralInfo"`
}

// NewRegisterWalletResponse builds the response DTO from the usecase result
func NewRegisterWalletResponse(result *usecase.RegistrationResult) RegisterWalletResponse {
	return RegisterWalletResponse{
		User:         newRegisteredUser(result.User),
		ReferralInfo: ReferralInfo(result.ReferralInfo),
	}
}

func newRegisteredUser(user *entity.User) RegisteredUser {
	return RegisteredUser{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		ReferralCode:  user.ReferralCode,
		ReferredBy:    user.ReferredBy,
		ReferralCount: user.ReferralCount,
		CreatedAt:     user.CreatedAt,
	}
}
