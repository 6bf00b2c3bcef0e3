package repository

import (
	"errors"

	"hoopmania/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Store defines durable user and order operations
type Store interface {
	// RegisterUser creates a user record iff absent. Returns true when a new
	// record was created.
	RegisterUser(userID int64, username, firstName string) (bool, error)
	// CommitOrder allocates the next sequential order id, snapshots the
	// user's display fields and durably writes the order. The passed
	// username/firstName take precedence over the stored user record.
	CommitOrder(userID int64, username, firstName string, draft domain.Draft) (*domain.Order, error)
	GetOrder(orderID string) (*domain.Order, error)
	GetUserOrders(userID int64) ([]*domain.Order, error)
	// GetRecentOrders returns up to limit orders, most recent first.
	GetRecentOrders(limit int) ([]*domain.Order, error)
	GetAllUsers() ([]domain.UserSummary, error)
	CountUsers() int
	CountOrders() int
}
