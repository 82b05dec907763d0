package entity

import (
	"testing"
	"time"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coremocks "github.com/copeonbnb/whitelist-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferral(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful ledger entry creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Once()

		referral, err := NewReferral("ref-1", "user-1", "user-2", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ref-1", referral.ID)
		assert.Equal(t, "user-1", referral.ReferrerID)
		assert.Equal(t, "user-2", referral.ReferredUserID)
		assert.Equal(t, fixedTime, referral.CreatedAt)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		for _, ids := range [][3]string{
			{"", "user-1", "user-2"},
			{"ref-1", "", "user-2"},
			{"ref-1", "user-1", ""},
		} {
			referral, err := NewReferral(ids[0], ids[1], ids[2], mockTime)
			assert.Nil(t, referral)
			assert.ErrorIs(t, err, errs.ErrInternalServer)
		}
	})
}
