package verification

import (
	"context"
	"errors"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/social"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
)

// Service implements the social verification business logic
type Service struct {
	telegram social.TelegramVerifier
	logger   coreport.Logger
}

// NewService creates a new verification service instance
func NewService(telegram social.TelegramVerifier, logger coreport.Logger) usecase.VerificationUseCase {
	return &Service{
		telegram: telegram,
		logger:   logger,
	}
}

// VerifyTelegramMembership checks whether the Telegram user is a member of
// the configured channel. Upstream failures come back as a soft Error field
// with IsMember false so the client can degrade gracefully.
func (s *Service) VerifyTelegramMembership(ctx context.Context, userID int64, username string) (*usecase.TelegramVerification, error) {
	if userID == 0 && username == "" {
		return nil, errs.ErrInvalidRequest
	}

	// The Bot API can only look up numeric user ids, not usernames
	if userID == 0 {
		return &usecase.TelegramVerification{
			IsMember: false,
			Error:    errs.ErrTelegramUserRequired.Error() + "; get your user ID from @userinfobot on Telegram",
		}, nil
	}

	membership, err := s.telegram.GetChatMember(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrVerifierNotConfigured) {
			return nil, err
		}

		s.logger.Error("Telegram membership lookup failed", map[string]any{
			"telegram_user_id": userID,
			"error":            err.Error(),
		})
		return &usecase.TelegramVerification{
			IsMember: false,
			Error:    err.Error(),
		}, nil
	}

	s.logger.Info("Telegram membership checked", map[string]any{
		"telegram_user_id": membership.UserID,
		"status":           membership.Status,
		"is_member":        membership.IsMember(),
	})

	return &usecase.TelegramVerification{
		IsMember: membership.IsMember(),
		Status:   membership.Status,
		UserID:   membership.UserID,
	}, nil
}

// VerifyXFollow reports whether the user follows the project account on X.
// TODO: wire the X API v2 following lookup once OAuth app credentials exist.
func (s *Service) VerifyXFollow(ctx context.Context, userID, accessToken string) (*usecase.XFollowVerification, error) {
	if userID == "" || accessToken == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &usecase.XFollowVerification{
		IsFollowing: false,
		Message:     "X verification requires OAuth integration",
	}, nil
}
