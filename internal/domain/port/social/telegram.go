package social

import "context"

// Membership statuses returned by the Telegram Bot API
const (
	StatusCreator       = "creator"
	StatusAdministrator = "administrator"
	StatusMember        = "member"
	StatusRestricted    = "restricted"
	StatusLeft          = "left"
	StatusKicked        = "kicked"
)

// ChatMembership is the result of a channel membership lookup
type ChatMembership struct {
	Status string // One of the Status* constants
	UserID int64  // Telegram user id the lookup resolved to
}

// IsMember reports whether the status counts as channel membership
func (m *ChatMembership) IsMember() bool {
	switch m.Status {
	case StatusMember, StatusAdministrator, StatusCreator:
		return true
	default:
		return false
	}
}

// TelegramVerifier checks channel membership through the Telegram Bot API
type TelegramVerifier interface {
	// GetChatMember looks up the membership status of a Telegram user
	// in the configured channel
	//
	// Possible errors:
	// - ErrVerifierNotConfigured: if the bot token is missing
	// - ErrUpstreamFailure: if the Bot API call fails
	GetChatMember(ctx context.Context, userID int64) (*ChatMembership, error)
}
