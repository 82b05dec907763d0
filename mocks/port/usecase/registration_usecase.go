package usecase

import (
	"context"

	usecaseport "github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockRegistrationUseCase is a mock implementation of the usecase.RegistrationUseCase interface
type MockRegistrationUseCase struct {
	mock.Mock
}

func (m *MockRegistrationUseCase) RegisterWallet(ctx context.Context, walletAddress, referralCode string) (*usecaseport.RegistrationResult, error) {
	args := m.Called(ctx, walletAddress, referralCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecaseport.RegistrationResult), args.Error(1)
}

// NewMockRegistrationUseCase creates a new instance of MockRegistrationUseCase.
// It also registers a testing interface on the mock and a cleanup function to
// assert the mocks expectations.
func NewMockRegistrationUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegistrationUseCase {
	m := &MockRegistrationUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
