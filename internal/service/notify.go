package service

import (
	"fmt"

	"hoopmania/internal/domain"
	"hoopmania/internal/repository"

	"go.uber.org/zap"
)

// Notifier formats and sends order alerts to admins and free-form admin
// messages to customers.
type Notifier struct {
	store    repository.Store
	msgr     Messenger
	adminIDs []int64
	shopName string
	logger   *zap.Logger
}

// NewNotifier creates a new notifier
func NewNotifier(store repository.Store, msgr Messenger, adminIDs []int64, shopName string, logger *zap.Logger) *Notifier {
	return &Notifier{
		store:    store,
		msgr:     msgr,
		adminIDs: adminIDs,
		shopName: shopName,
		logger:   logger,
	}
}

// NotifyNewOrder sends the new-order alert to every admin. Each send is
// attempted independently; one admin's failure does not block the rest.
func (n *Notifier) NotifyNewOrder(order *domain.Order) {
	text := newOrderAlert(order)

	for _, adminID := range n.adminIDs {
		if err := n.msgr.SendText(adminID, text); err != nil {
			n.logger.Error("Failed to notify admin about new order",
				zap.Int64("admin_id", adminID),
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
		}
	}
}

// MessageCustomer sends a free-form message to the user who placed the given
// order. Returns repository.ErrNotFound when the order id is unknown.
func (n *Notifier) MessageCustomer(orderID, text string) error {
	order, err := n.store.GetOrder(orderID)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("💬 Повідомлення від %s:\n\n%s", n.shopName, text)
	if err := n.msgr.SendText(order.UserID, msg); err != nil {
		return fmt.Errorf("failed to message customer: %w", err)
	}
	return nil
}

func newOrderAlert(order *domain.Order) string {
	return fmt.Sprintf(`🆕 НОВЕ ЗАМОВЛЕННЯ!

🆔 Номер: %s
👤 Користувач: %s (@%s)
🆔 ID користувача: %d
📦 Тип: %s
💳 Спосіб оплати: %s
📍 Адреса: %s
📝 Деталі: %s

💬 Для відправки повідомлення замовнику використовуйте:
/message %s ТЕКСТ_ПОВІДОМЛЕННЯ`,
		order.ID,
		order.FirstName,
		order.Username,
		order.UserID,
		order.Data.OrderType.Label(),
		order.Data.Payment.Label(),
		order.Data.Address,
		order.Data.Details,
		order.ID,
	)
}
