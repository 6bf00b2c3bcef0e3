package service

import (
	"fmt"

	"hoopmania/internal/domain"
	"hoopmania/internal/repository"
	"hoopmania/internal/session"

	"go.uber.org/zap"
)

// OrderService owns the order conversation state machine. Every transition
// acquires the per-user lock, validates its guard and either mutates the
// session or returns a typed error. Confirm is the only path that writes to
// the store.
type OrderService struct {
	sessions *session.Manager
	store    repository.Store
	logger   *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(sessions *session.Manager, store repository.Store, logger *zap.Logger) *OrderService {
	return &OrderService{
		sessions: sessions,
		store:    store,
		logger:   logger,
	}
}

// Begin starts a fresh draft with the chosen order type, discarding any
// previous draft. An in-progress broadcast draft is kept; an admin ordering
// for themselves must not lose a half-composed announcement.
func (s *OrderService) Begin(userID int64, orderType domain.OrderType) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	var broadcast *session.BroadcastDraft
	if sess := s.sessions.Get(userID); sess != nil {
		broadcast = sess.Broadcast
	}

	s.sessions.Set(userID, &session.Session{
		State:     domain.StateEnteringOrder,
		Draft:     &domain.Draft{OrderType: orderType},
		Broadcast: broadcast,
	})

	s.logger.Info("Order draft started",
		zap.Int64("user_id", userID),
		zap.String("order_type", string(orderType)),
	)
}

// AttachPhoto appends a photo to the draft. The state does not advance;
// photos may arrive at any point after the order type is chosen.
func (s *OrderService) AttachPhoto(userID int64, fileID string) error {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.sessions.Get(userID)
	if sess == nil || sess.Draft == nil || sess.Draft.OrderType == "" {
		return ErrNoDraft
	}

	sess.Draft.Photos = append(sess.Draft.Photos, fileID)
	return nil
}

// SetDetails records the free-text order details and advances to payment
// selection
func (s *OrderService) SetDetails(userID int64, text string) error {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.sessions.Get(userID)
	if sess == nil || sess.Draft == nil || sess.Draft.OrderType == "" {
		return ErrNoDraft
	}
	if sess.Draft.Details != "" {
		return ErrWrongStep
	}

	sess.Draft.Details = text
	sess.State = domain.StateChoosingPayment
	return nil
}

// SetPayment records the payment method and advances to address entry
func (s *OrderService) SetPayment(userID int64, method domain.PaymentMethod) error {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.sessions.Get(userID)
	if sess == nil || sess.Draft == nil || sess.Draft.OrderType == "" {
		return ErrNoDraft
	}

	sess.Draft.Payment = method
	sess.State = domain.StateEnteringAddress
	return nil
}

// SetAddress records the delivery address and advances to confirmation.
// Returns the draft so the caller can render the order summary.
func (s *OrderService) SetAddress(userID int64, text string) (*domain.Draft, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.sessions.Get(userID)
	if sess == nil || sess.Draft == nil || sess.Draft.Payment == "" {
		return nil, ErrNoDraft
	}
	if sess.Draft.Address != "" {
		return nil, ErrWrongStep
	}

	sess.Draft.Address = text
	sess.State = domain.StateConfirmingOrder
	return sess.Draft, nil
}

// Confirm commits the draft as an order. Requires all four mandatory fields;
// otherwise no write happens. On success the session is cleared and the user
// is back at the main menu.
func (s *OrderService) Confirm(userID int64, username, firstName string) (*domain.Order, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.sessions.Get(userID)
	if sess == nil || sess.Draft == nil {
		return nil, ErrNoDraft
	}
	if !sess.Draft.Complete() {
		return nil, ErrIncompleteDraft
	}

	order, err := s.store.CommitOrder(userID, username, firstName, *sess.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	s.sessions.Clear(userID)

	s.logger.Info("Order committed",
		zap.Int64("user_id", userID),
		zap.String("order_id", order.ID),
	)
	return order, nil
}

// Reset discards the user's session. Safe to call repeatedly; /start and the
// back-to-main button both land here.
func (s *OrderService) Reset(userID int64) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.sessions.Clear(userID)
}

// AwaitingDetails reports whether the next text message should be treated as
// order details
func (s *OrderService) AwaitingDetails(userID int64) bool {
	sess := s.sessions.Get(userID)
	return sess != nil && sess.Draft != nil &&
		sess.Draft.OrderType != "" && sess.Draft.Details == ""
}

// AwaitingAddress reports whether the next text message should be treated as
// a delivery address
func (s *OrderService) AwaitingAddress(userID int64) bool {
	sess := s.sessions.Get(userID)
	return sess != nil && sess.Draft != nil &&
		sess.Draft.Payment != "" && sess.Draft.Address == ""
}
