package leaderboard

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
)

// GetLeaderboard reads the entire user set, reconciles every cached referral
// count against the ledger and returns the ranked rows.
//
// The ledger recount is one grouped query; cached counts that disagree with
// it are overwritten in place and repaired in the store opportunistically.
// Reconciliation failures never fail the read: the response falls back to
// the cached values.
func (s *Service) GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for leaderboard", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	counts, err := s.referralRepo.CountsByReferrer(ctx)
	if err != nil {
		s.logger.Error("Failed to recount referrals from ledger, serving cached counts", map[string]any{
			"error": err.Error(),
		})
	} else {
		s.reconcileCounts(ctx, users, counts)
	}

	entries := entity.RankUsers(users)

	s.logger.Debug("Leaderboard assembled", map[string]any{
		"users": len(entries),
	})

	return entries, nil
}

// reconcileCounts overwrites stale cached counts with the ledger-derived
// values and repairs the stored cache. Repair failures are logged and
// swallowed; the next read retries.
func (s *Service) reconcileCounts(ctx context.Context, users []*entity.User, counts map[string]int64) {
	for _, user := range users {
		ledgerCount := counts[user.ID]
		if ledgerCount == user.ReferralCount {
			continue
		}

		s.logger.Warn("Cached referral count out of sync with ledger, repairing", map[string]any{
			"user_id":      user.ID,
			"cached_count": user.ReferralCount,
			"ledger_count": ledgerCount,
		})

		if err := s.userRepo.UpdateReferralCount(ctx, user.ID, ledgerCount); err != nil {
			s.logger.Error("Failed to repair cached referral count", map[string]any{
				"user_id": user.ID,
				"error":   err.Error(),
			})
		}

		user.ReferralCount = ledgerCount
	}
}
