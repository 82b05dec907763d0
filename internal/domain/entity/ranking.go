package entity

import (
	"sort"
	"time"
)

// LeaderboardEntry is one ranked row of the public leaderboard
type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	WalletAddress string    `json:"walletAddress"`
	ReferralCount int64     `json:"referralCount"`
	Tier          string    `json:"tier"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// RankUsers produces the leaderboard ordering for the given users.
//
// Sort keys, in order: referral count descending, join time ascending
// (first come first served on ties), insertion sequence ascending so the
// order stays deterministic even for users created in the same instant.
// Ranks are sequential starting at 1; no shared ranks.
func RankUsers(users []*User) []LeaderboardEntry {
	sorted := make([]*User, len(users))
	copy(sorted, users)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ReferralCount != b.ReferralCount {
			return a.ReferralCount > b.ReferralCount
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.Seq < b.Seq
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, user := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:          i + 1,
			WalletAddress: user.WalletAddress,
			ReferralCount: user.ReferralCount,
			Tier:          user.Tier(),
			JoinedAt:      user.CreatedAt,
		}
	}

	return entries
}
