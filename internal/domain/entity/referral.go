package entity

import (
	"time"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
)

// Referral is one entry in the append-only referral ledger.
// The ledger is the source of truth for referral counts; rows are never
// mutated or deleted after creation.
type Referral struct {
	ID             string    // Unique identifier for the ledger row
	ReferrerID     string    // User whose code was used
	ReferredUserID string    // User who signed up with the code
	CreatedAt      time.Time // When the referred signup happened
}

// NewReferral creates a new ledger entry for a referred signup
func NewReferral(id, referrerID, referredUserID string, timeProvider coreport.TimeProvider) (*Referral, error) {
	if id == "" || referrerID == "" || referredUserID == "" {
		return nil, errs.ErrInternalServer
	}

	return &Referral{
		ID:             id,
		ReferrerID:     referrerID,
		ReferredUserID: referredUserID,
		CreatedAt:      timeProvider.Now(),
	}, nil
}
