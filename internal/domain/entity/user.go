package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
)

// walletAddressPattern matches an EVM wallet address: 0x followed by 40 hex chars
var walletAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ReferralCodeLength is the length of generated referral codes
const ReferralCodeLength = 8

// User represents a whitelist participant keyed by wallet address
type User struct {
	ID            string     // Unique identifier for the user
	WalletAddress string     // Lowercased EVM address, unique
	ReferralCode  string     // 8-char uppercase token, unique
	ReferredBy    *string    // ID of the referring user, nil when none
	ReferralCount int64      // Cached count, reconciled against the referral ledger on read
	Seq           uint64     // Monotonic insertion sequence, final ranking tie-breaker
	CreatedAt     time.Time  // When the user joined the whitelist
}

// NormalizeWalletAddress validates the address format and lowercases it.
// Addresses are stored and compared in lowercase.
func NormalizeWalletAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if !walletAddressPattern.MatchString(trimmed) {
		return "", errs.ErrInvalidWalletAddress
	}
	return strings.ToLower(trimmed), nil
}

// NormalizeReferralCode trims and uppercases a referral code.
// Codes are stored in uppercase; an empty string means no code was supplied.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewUser creates a new user with the given id, wallet address and referral code
func NewUser(id, walletAddress, referralCode string, referredBy *string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInternalServer
	}

	normalized, err := NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, err
	}

	if len(referralCode) != ReferralCodeLength {
		return nil, errs.ErrInternalServer
	}

	return &User{
		ID:            id,
		WalletAddress: normalized,
		ReferralCode:  strings.ToUpper(referralCode),
		ReferredBy:    referredBy,
		ReferralCount: 0,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Tier returns the display tier derived from the user's referral count
func (u *User) Tier() string {
	return TierForCount(u.ReferralCount)
}
