package social

import (
	"context"

	socialport "github.com/copeonbnb/whitelist-api/internal/domain/port/social"
	"github.com/stretchr/testify/mock"
)

// MockTelegramVerifier is a mock implementation of the social.TelegramVerifier interface
type MockTelegramVerifier struct {
	mock.Mock
}

func (m *MockTelegramVerifier) GetChatMember(ctx context.Context, userID int64) (*socialport.ChatMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*socialport.ChatMembership), args.Error(1)
}

// NewMockTelegramVerifier creates a new instance of MockTelegramVerifier. It
// also registers a testing interface on the mock and a cleanup function to
// assert the mocks expectations.
func NewMockTelegramVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTelegramVerifier {
	m := &MockTelegramVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
