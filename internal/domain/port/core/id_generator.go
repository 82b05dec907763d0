package core

// IDGenerator produces entity identifiers and referral codes
type IDGenerator interface {
	// NewID returns a fresh unique identifier for a user or referral row
	NewID() string
	// NewReferralCode returns a fresh 8-character uppercase referral code
	NewReferralCode() string
}
