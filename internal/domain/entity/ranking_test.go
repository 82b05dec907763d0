package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankUsers(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Orders by referral count descending", func(t *testing.T) {
		users := []*User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 2, CreatedAt: base},
			{ID: "b", WalletAddress: "0xbbb", ReferralCount: 30, CreatedAt: base.Add(time.Hour)},
			{ID: "c", WalletAddress: "0xccc", ReferralCount: 7, CreatedAt: base.Add(2 * time.Hour)},
		}

		entries := RankUsers(users)

		require.Len(t, entries, 3)
		assert.Equal(t, "0xbbb", entries[0].WalletAddress)
		assert.Equal(t, "0xccc", entries[1].WalletAddress)
		assert.Equal(t, "0xaaa", entries[2].WalletAddress)
	})

	t.Run("Ties break on earlier join time", func(t *testing.T) {
		users := []*User{
			{ID: "late", WalletAddress: "0xlate", ReferralCount: 5, CreatedAt: base.Add(time.Minute)},
			{ID: "early", WalletAddress: "0xearly", ReferralCount: 5, CreatedAt: base},
		}

		entries := RankUsers(users)

		assert.Equal(t, "0xearly", entries[0].WalletAddress)
		assert.Equal(t, "0xlate", entries[1].WalletAddress)
	})

	t.Run("Identical join times fall back to insertion sequence", func(t *testing.T) {
		users := []*User{
			{ID: "second", WalletAddress: "0xsecond", ReferralCount: 5, Seq: 2, CreatedAt: base},
			{ID: "first", WalletAddress: "0xfirst", ReferralCount: 5, Seq: 1, CreatedAt: base},
		}

		entries := RankUsers(users)

		assert.Equal(t, "0xfirst", entries[0].WalletAddress)
		assert.Equal(t, "0xsecond", entries[1].WalletAddress)
	})

	t.Run("Ranks are sequential with no sharing", func(t *testing.T) {
		users := []*User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 5, Seq: 1, CreatedAt: base},
			{ID: "b", WalletAddress: "0xbbb", ReferralCount: 5, Seq: 2, CreatedAt: base},
			{ID: "c", WalletAddress: "0xccc", ReferralCount: 5, Seq: 3, CreatedAt: base},
		}

		entries := RankUsers(users)

		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Rank)
		}
	})

	t.Run("Tier reflects the referral count", func(t *testing.T) {
		users := []*User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 26, CreatedAt: base},
			{ID: "b", WalletAddress: "0xbbb", ReferralCount: 0, CreatedAt: base.Add(time.Hour)},
		}

		entries := RankUsers(users)

		assert.Equal(t, TierPeakCope, entries[0].Tier)
		assert.Equal(t, TierTourist, entries[1].Tier)
	})

	t.Run("Input slice order is preserved", func(t *testing.T) {
		users := []*User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 1, CreatedAt: base},
			{ID: "b", WalletAddress: "0xbbb", ReferralCount: 9, CreatedAt: base},
		}

		RankUsers(users)

		assert.Equal(t, "a", users[0].ID)
		assert.Equal(t, "b", users[1].ID)
	})

	t.Run("Empty input yields empty leaderboard", func(t *testing.T) {
		entries := RankUsers(nil)

		assert.Empty(t, entries)
	})
}
