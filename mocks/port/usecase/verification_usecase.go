package usecase

import (
	"context"

	usecaseport "github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockVerificationUseCase is a mock implementation of the usecase.VerificationUseCase interface
type MockVerificationUseCase struct {
	mock.Mock
}

func (m *MockVerificationUseCase) VerifyTelegramMembership(ctx context.Context, userID int64, username string) (*usecaseport.TelegramVerification, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecaseport.TelegramVerification), args.Error(1)
}

func (m *MockVerificationUseCase) VerifyXFollow(ctx context.Context, userID, accessToken string) (*usecaseport.XFollowVerification, error) {
	args := m.Called(ctx, userID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecaseport.XFollowVerification), args.Error(1)
}

// NewMockVerificationUseCase creates a new instance of MockVerificationUseCase.
// It also registers a testing interface on the mock and a cleanup function to
// assert the mocks expectations.
func NewMockVerificationUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVerificationUseCase {
	m := &MockVerificationUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
