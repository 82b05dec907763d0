package usecase

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockLeaderboardUseCase is a mock implementation of the usecase.LeaderboardUseCase interface
type MockLeaderboardUseCase struct {
	mock.Mock
}

func (m *MockLeaderboardUseCase) GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeaderboardEntry), args.Error(1)
}

// NewMockLeaderboardUseCase creates a new instance of MockLeaderboardUseCase.
// It also registers a testing interface on the mock and a cleanup function to
// assert the mocks expectations.
func NewMockLeaderboardUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLeaderboardUseCase {
	m := &MockLeaderboardUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
