package persistence

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockReferralRepository is a mock implementation of the persistence.ReferralRepository interface
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Append(ctx context.Context, referral *entity.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

func (m *MockReferralRepository) CountByReferrer(ctx context.Context, referrerID string) (int64, error) {
	args := m.Called(ctx, referrerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReferralRepository) CountsByReferrer(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// NewMockReferralRepository creates a new instance of MockReferralRepository.
// It also registers a testing interface on the mock and a cleanup function to
// assert the mocks expectations.
func NewMockReferralRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReferralRepository {
	m := &MockReferralRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
