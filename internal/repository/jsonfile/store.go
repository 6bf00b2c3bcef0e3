package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"hoopmania/internal/domain"
	"hoopmania/internal/repository"

	"go.uber.org/zap"
)

const (
	usersFile  = "users.json"
	ordersFile = "orders.json"

	// unknownName substitutes missing Telegram profile fields
	unknownName = "Невідомий"
)

// Store implements repository.Store on top of two human-diffable JSON files.
// All operations are serialized behind a single mutex, which also guards the
// sequential order-id allocation against concurrent handlers.
type Store struct {
	mu         sync.Mutex
	usersPath  string
	ordersPath string
	users      map[string]*domain.User
	orders     map[string]*domain.Order
	logger     *zap.Logger
}

// New creates a store backed by users.json and orders.json under dir.
// Unreadable or corrupt files are treated as empty collections so a damaged
// store never prevents startup.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		usersPath:  filepath.Join(dir, usersFile),
		ordersPath: filepath.Join(dir, ordersFile),
		users:      make(map[string]*domain.User),
		orders:     make(map[string]*domain.Order),
		logger:     logger,
	}

	s.loadUsers()
	s.loadOrders()

	return s, nil
}

func (s *Store) loadUsers() {
	data, err := os.ReadFile(s.usersPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read users file, starting empty",
				zap.String("path", s.usersPath),
				zap.Error(err),
			)
		}
		return
	}

	if err := json.Unmarshal(data, &s.users); err != nil {
		s.logger.Warn("Corrupt users file, starting empty",
			zap.String("path", s.usersPath),
			zap.Error(err),
		)
		s.users = make(map[string]*domain.User)
		return
	}

	for key, user := range s.users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			s.logger.Warn("Skipping user with malformed id", zap.String("key", key))
			delete(s.users, key)
			continue
		}
		user.ID = id
	}
}

func (s *Store) loadOrders() {
	data, err := os.ReadFile(s.ordersPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read orders file, starting empty",
				zap.String("path", s.ordersPath),
				zap.Error(err),
			)
		}
		return
	}

	if err := json.Unmarshal(data, &s.orders); err != nil {
		s.logger.Warn("Corrupt orders file, starting empty",
			zap.String("path", s.ordersPath),
			zap.Error(err),
		)
		s.orders = make(map[string]*domain.Order)
	}
}

func (s *Store) saveUsers() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := os.WriteFile(s.usersPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}

func (s *Store) saveOrders() error {
	data, err := json.MarshalIndent(s.orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	if err := os.WriteFile(s.ordersPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write orders file: %w", err)
	}
	return nil
}

// RegisterUser creates a user record iff absent
func (s *Store) RegisterUser(userID int64, username, firstName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strconv.FormatInt(userID, 10)
	if _, exists := s.users[key]; exists {
		return false, nil
	}

	if username == "" {
		username = unknownName
	}
	if firstName == "" {
		firstName = unknownName
	}

	s.users[key] = &domain.User{
		ID:         userID,
		Username:   username,
		FirstName:  firstName,
		JoinedDate: time.Now(),
		OrderIDs:   []string{},
	}

	if err := s.saveUsers(); err != nil {
		delete(s.users, key)
		return false, err
	}
	return true, nil
}

// CommitOrder allocates the next sequential id and durably writes the order
// together with the owning user's updated order list
func (s *Store) CommitOrder(userID int64, username, firstName string, draft domain.Draft) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strconv.FormatInt(userID, 10)
	user := s.users[key]

	if username == "" && user != nil {
		username = user.Username
	}
	if firstName == "" && user != nil {
		firstName = user.FirstName
	}
	if username == "" {
		username = unknownName
	}
	if firstName == "" {
		firstName = unknownName
	}

	order := &domain.Order{
		ID:          fmt.Sprintf("ORDER_%06d", len(s.orders)+1),
		UserID:      userID,
		Username:    username,
		FirstName:   firstName,
		Data:        draft,
		Status:      domain.OrderStatusNew,
		CreatedDate: time.Now(),
	}

	s.orders[order.ID] = order
	if user != nil {
		user.OrderIDs = append(user.OrderIDs, order.ID)
	}

	if err := s.saveOrders(); err != nil {
		delete(s.orders, order.ID)
		if user != nil {
			user.OrderIDs = user.OrderIDs[:len(user.OrderIDs)-1]
		}
		return nil, err
	}
	if user != nil {
		if err := s.saveUsers(); err != nil {
			s.logger.Error("Failed to persist user order list",
				zap.Int64("user_id", userID),
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// GetOrder returns an order by id
func (s *Store) GetOrder(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return order, nil
}

// GetUserOrders returns all orders placed by the given user
func (s *Store) GetUserOrders(userID int64) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[strconv.FormatInt(userID, 10)]
	if !ok {
		return nil, nil
	}

	orders := make([]*domain.Order, 0, len(user.OrderIDs))
	for _, id := range user.OrderIDs {
		if order, ok := s.orders[id]; ok {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// GetRecentOrders returns up to limit orders, most recent first
func (s *Store) GetRecentOrders(limit int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedDate.Equal(orders[j].CreatedDate) {
			return orders[i].CreatedDate.After(orders[j].CreatedDate)
		}
		// Equal timestamps happen for back-to-back commits; ids are
		// monotonic so fall back to them.
		return orders[i].ID > orders[j].ID
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// GetAllUsers returns a summary projection of every known user
func (s *Store) GetAllUsers() ([]domain.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.UserSummary, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, domain.UserSummary{
			UserID:     user.ID,
			Username:   user.Username,
			FirstName:  user.FirstName,
			JoinedDate: user.JoinedDate,
			OrderCount: len(user.OrderIDs),
		})
	}

	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

// CountUsers returns the number of known users
func (s *Store) CountUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// CountOrders returns the number of committed orders
func (s *Store) CountOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
