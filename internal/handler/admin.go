package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hoopmania/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// sendChunked sends text as one message, or several when it exceeds the
// Telegram message limit
func (h *Handler) sendChunked(c tele.Context, text string) error {
	for _, chunk := range chunkText(text, maxMessageLen) {
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

// handleAdminCommand handles /admin
func (h *Handler) handleAdminCommand(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(accessDeniedPanel)
	}
	return c.Send(adminPanelMessage, adminMarkup())
}

// handleAdminPanel shows the admin panel from a callback
func (h *Handler) handleAdminPanel(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}
	return h.editOrSend(c, adminPanelMessage, adminMarkup())
}

// handleAdminBroadcast shows the broadcast type menu
func (h *Handler) handleAdminBroadcast(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}
	return h.editOrSend(c, broadcastMenuText, broadcastTypeMarkup())
}

// handleBroadcastTextOnly starts a text-only broadcast draft
func (h *Handler) handleBroadcastTextOnly(c tele.Context) error {
	userID := c.Sender().ID
	if !h.cfg.IsAdmin(userID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}

	h.broadcaster.BeginText(userID)
	return h.editOrSend(c,
		"📢 Розсилка тексту\n\nВведіть текст повідомлення для розсилки всім користувачам:",
		backMarkup())
}

// handleBroadcastPhotoText starts a photo broadcast draft
func (h *Handler) handleBroadcastPhotoText(c tele.Context) error {
	userID := c.Sender().ID
	if !h.cfg.IsAdmin(userID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}

	h.broadcaster.BeginPhoto(userID)
	return h.editOrSend(c,
		"📸 Розсилка фото з текстом\n\nСпочатку прикріпіть фото:",
		backMarkup())
}

// handleConfirmBroadcast runs the broadcast and reports delivery counters
func (h *Handler) handleConfirmBroadcast(c tele.Context) error {
	userID := c.Sender().ID
	if !h.cfg.IsAdmin(userID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}

	draft, ok := h.broadcaster.Pending(userID)
	if !ok {
		return h.editOrSend(c, "❌ Помилка: текст для розсилки не знайдено", adminMarkup())
	}

	if err := h.editOrSend(c, "📢 Виконую розсилку...", backMarkup()); err != nil {
		h.logger.Warn("Failed to show broadcast progress", zap.Error(err))
	}

	sent, failed := h.broadcaster.Broadcast(draft.Text, draft.Photo)
	h.broadcaster.Discard(userID)

	return c.Send(broadcastResult(sent, failed), adminMarkup())
}

// handleChangeBroadcast drops the broadcast draft and restarts the flow
func (h *Handler) handleChangeBroadcast(c tele.Context) error {
	userID := c.Sender().ID
	if !h.cfg.IsAdmin(userID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}

	h.broadcaster.Discard(userID)
	return h.editOrSend(c, broadcastMenuText, broadcastTypeMarkup())
}

// handleAdminViewOrders shows the most recent orders
func (h *Handler) handleAdminViewOrders(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}

	orders, err := h.store.GetRecentOrders(h.cfg.RecentOrdersLimit)
	if err != nil {
		return fmt.Errorf("failed to load recent orders: %w", err)
	}
	if len(orders) == 0 {
		return h.editOrSend(c, "📭 Поки що немає замовлень", adminMarkup())
	}

	text := recentOrdersText(orders)
	if utf8.RuneCountInString(text) > maxMessageLen {
		if c.Callback() != nil {
			c.Respond()
		}
		return h.sendChunked(c, text)
	}
	return h.editOrSend(c, text, adminMarkup())
}

// handleAdminStats shows runtime statistics from a callback
func (h *Handler) handleAdminStats(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.editOrSend(c, accessDeniedPanel, backMarkup())
	}
	return h.editOrSend(c, statsText(h.stats.Snapshot()), adminMarkup())
}

// handleMessageCommand handles /message <orderId> <text>
func (h *Handler) handleMessageCommand(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(accessDeniedCommand)
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Send("❌ Неправильний формат! Використовуйте:\n/message НОМЕР_ЗАМОВЛЕННЯ ТЕКСТ_ПОВІДОМЛЕННЯ")
	}

	orderID := args[0]
	text := strings.Join(args[1:], " ")

	if err := h.notifier.MessageCustomer(orderID, text); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Send("❌ Замовлення не знайдено!")
		}
		h.logger.Error("Failed to message customer",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return c.Send(fmt.Sprintf("❌ Помилка відправки: %v", err))
	}

	return c.Send(fmt.Sprintf("✅ Повідомлення відправлено замовнику %s", orderID))
}

// handleBroadcastCommand handles /broadcast
func (h *Handler) handleBroadcastCommand(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(accessDeniedCommand)
	}
	return c.Send(broadcastMenuText, broadcastTypeMarkup())
}

// handleViewUsersCommand handles /view_users
func (h *Handler) handleViewUsersCommand(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(accessDeniedCommand)
	}

	users, err := h.store.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	if len(users) == 0 {
		return c.Send("📭 Поки що немає користувачів")
	}

	return h.sendChunked(c, usersListText(users))
}

// handleStatsCommand handles /stats
func (h *Handler) handleStatsCommand(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(accessDeniedCommand)
	}
	return c.Send(statsText(h.stats.Snapshot()))
}

// handlePing handles /ping
func (h *Handler) handlePing(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(accessDeniedCommand)
	}

	started := time.Now()
	if err := c.Send("🏓 Pong!"); err != nil {
		return err
	}
	elapsed := float64(time.Since(started).Microseconds()) / 1000

	return c.Send(fmt.Sprintf("⏱️ Час відповіді: %.2f мс", elapsed))
}
