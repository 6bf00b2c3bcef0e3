package testutil

import (
	"hoopmania/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock for repository.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) RegisterUser(userID int64, username, firstName string) (bool, error) {
	args := m.Called(userID, username, firstName)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CommitOrder(userID int64, username, firstName string, draft domain.Draft) (*domain.Order, error) {
	args := m.Called(userID, username, firstName, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) GetOrder(orderID string) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) GetUserOrders(userID int64) ([]*domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockStore) GetRecentOrders(limit int) ([]*domain.Order, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockStore) GetAllUsers() ([]domain.UserSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *MockStore) CountUsers() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockStore) CountOrders() int {
	args := m.Called()
	return args.Int(0)
}

// MockMessenger is a mock for service.Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendText(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockMessenger) SendPhoto(chatID int64, fileID, caption string) error {
	args := m.Called(chatID, fileID, caption)
	return args.Error(0)
}
