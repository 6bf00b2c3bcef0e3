package testutil

import (
	"time"

	"hoopmania/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDraft creates a complete order draft
func NewTestDraft() domain.Draft {
	return domain.Draft{
		OrderType: domain.OrderTypeInStock,
		Details:   "basketball size 7",
		Payment:   domain.PaymentCashOnDelivery,
		Address:   "Kyiv, branch 12",
	}
}

// NewTestOrder creates an order committed by the given user
func NewTestOrder(id string, userID int64) *domain.Order {
	return &domain.Order{
		ID:          id,
		UserID:      userID,
		Username:    "hooper",
		FirstName:   "Ivan",
		Data:        NewTestDraft(),
		Status:      domain.OrderStatusNew,
		CreatedDate: time.Now(),
	}
}

// NewTestUserSummary creates a user summary row
func NewTestUserSummary(userID int64, orderCount int) domain.UserSummary {
	return domain.UserSummary{
		UserID:     userID,
		Username:   "hooper",
		FirstName:  "Ivan",
		JoinedDate: time.Now(),
		OrderCount: orderCount,
	}
}
