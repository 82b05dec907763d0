package persistence

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
)

// ReferralRepository gives access to the append-only referral ledger,
// the authoritative source for referral counts
type ReferralRepository interface {
	// Append inserts one ledger row for a referred signup
	Append(ctx context.Context, referral *entity.Referral) error

	// CountByReferrer returns the number of ledger rows crediting the given user
	CountByReferrer(ctx context.Context, referrerID string) (int64, error)

	// CountsByReferrer returns ledger counts for every referrer in one query.
	// Users absent from the map have zero referrals.
	CountsByReferrer(ctx context.Context) (map[string]int64, error)
}
