package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	coremocks "github.com/copeonbnb/whitelist-api/mocks/port/core"
	persistencemocks "github.com/copeonbnb/whitelist-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Users are ranked by ledger counts", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		users := []*entity.User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 1, CreatedAt: base},
			{ID: "b", WalletAddress: "0xbbb", ReferralCount: 8, CreatedAt: base.Add(time.Hour)},
		}
		mockUserRepo.On("ListAll", mock.Anything).Return(users, nil).Once()
		mockReferralRepo.On("CountsByReferrer", mock.Anything).
			Return(map[string]int64{"a": 1, "b": 8}, nil).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "0xbbb", entries[0].WalletAddress)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "0xaaa", entries[1].WalletAddress)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("Stale cached count is repaired from the ledger", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		users := []*entity.User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 0, CreatedAt: base},
			{ID: "b", WalletAddress: "0xbbb", ReferralCount: 2, CreatedAt: base.Add(time.Hour)},
		}
		mockUserRepo.On("ListAll", mock.Anything).Return(users, nil).Once()

		// Ledger says user a actually has 4 referrals
		mockReferralRepo.On("CountsByReferrer", mock.Anything).
			Return(map[string]int64{"a": 4, "b": 2}, nil).Once()
		mockUserRepo.On("UpdateReferralCount", mock.Anything, "a", int64(4)).Return(nil).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, "0xaaa", entries[0].WalletAddress)
		assert.Equal(t, int64(4), entries[0].ReferralCount)
		assert.Equal(t, entity.TierPainHolder, entries[0].Tier)
	})

	t.Run("Users absent from the ledger are repaired to zero", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		users := []*entity.User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 3, CreatedAt: base},
		}
		mockUserRepo.On("ListAll", mock.Anything).Return(users, nil).Once()
		mockReferralRepo.On("CountsByReferrer", mock.Anything).
			Return(map[string]int64{}, nil).Once()
		mockUserRepo.On("UpdateReferralCount", mock.Anything, "a", int64(0)).Return(nil).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(0), entries[0].ReferralCount)
		assert.Equal(t, entity.TierTourist, entries[0].Tier)
	})

	t.Run("Cache repair failure still serves the ledger count", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		users := []*entity.User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 0, CreatedAt: base},
		}
		mockUserRepo.On("ListAll", mock.Anything).Return(users, nil).Once()
		mockReferralRepo.On("CountsByReferrer", mock.Anything).
			Return(map[string]int64{"a": 2}, nil).Once()
		mockUserRepo.On("UpdateReferralCount", mock.Anything, "a", int64(2)).
			Return(errors.New("update failed")).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(2), entries[0].ReferralCount)
	})

	t.Run("Ledger recount failure falls back to cached counts", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		users := []*entity.User{
			{ID: "a", WalletAddress: "0xaaa", ReferralCount: 6, CreatedAt: base},
		}
		mockUserRepo.On("ListAll", mock.Anything).Return(users, nil).Once()
		mockReferralRepo.On("CountsByReferrer", mock.Anything).
			Return(nil, errors.New("query failed")).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(6), entries[0].ReferralCount)
		mockUserRepo.AssertNotCalled(t, "UpdateReferralCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("User listing failure propagates", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		databaseError := errors.New("connection refused")
		mockUserRepo.On("ListAll", mock.Anything).Return(nil, databaseError).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		assert.Nil(t, entries)
		assert.Equal(t, databaseError, err)
	})

	t.Run("Empty whitelist yields empty leaderboard", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		mockUserRepo.On("ListAll", mock.Anything).Return([]*entity.User{}, nil).Once()
		mockReferralRepo.On("CountsByReferrer", mock.Anything).
			Return(map[string]int64{}, nil).Once()

		service := NewService(mockUserRepo, mockReferralRepo, relaxedLogger(t))

		entries, err := service.GetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
