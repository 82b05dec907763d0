package core

import (
	"github.com/stretchr/testify/mock"
)

// MockIDGenerator is a mock implementation of the core.IDGenerator interface
type MockIDGenerator struct {
	mock.Mock
}

func (m *MockIDGenerator) NewID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIDGenerator) NewReferralCode() string {
	args := m.Called()
	return args.String(0)
}

// NewMockIDGenerator creates a new instance of MockIDGenerator. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewMockIDGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIDGenerator {
	m := &MockIDGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
