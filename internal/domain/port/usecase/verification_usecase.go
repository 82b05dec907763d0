package usecase

import "context"

// TelegramVerification is the outcome of a channel membership check.
// Upstream failures surface as a soft Error field with IsMember false,
// never as a failed request, so the client can degrade gracefully.
type TelegramVerification struct {
	IsMember bool   `json:"isMember"`
	Status   string `json:"status,omitempty"`
	UserID   int64  `json:"userId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// XFollowVerification is the outcome of an X follow check.
// The check is a stub pending OAuth integration.
type XFollowVerification struct {
	IsFollowing bool   `json:"isFollowing"`
	Message     string `json:"message,omitempty"`
}

// VerificationUseCase defines the social verification operations
type VerificationUseCase interface {
	// VerifyTelegramMembership checks whether the Telegram user is a member
	// of the configured channel
	//
	// Possible errors:
	// - ErrInvalidRequest: neither userId nor username supplied
	// - ErrVerifierNotConfigured: bot token missing
	VerifyTelegramMembership(ctx context.Context, userID int64, username string) (*TelegramVerification, error)

	// VerifyXFollow reports whether the user follows the project account.
	// Always returns isFollowing false until OAuth integration lands.
	//
	// Possible errors:
	// - ErrInvalidRequest: userId or accessToken missing
	VerifyXFollow(ctx context.Context, userID, accessToken string) (*XFollowVerification, error)
}
