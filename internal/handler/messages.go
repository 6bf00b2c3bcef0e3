package handler

import (
	"errors"
	"strings"

	"hoopmania/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes free-text messages by conversation state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are handled by their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Admin composing a broadcast
	if h.cfg.IsAdmin(userID) && h.broadcaster.CaptureText(userID, text) {
		return c.Send(broadcastPreview(text), broadcastConfirmMarkup())
	}

	// Order details
	if h.orders.AwaitingDetails(userID) {
		if err := h.orders.SetDetails(userID, text); err != nil {
			return h.transitionRejected(c, err)
		}
		return c.Send("💳 Тепер оберіть спосіб оплати:", paymentMarkup())
	}

	// Delivery address
	if h.orders.AwaitingAddress(userID) {
		draft, err := h.orders.SetAddress(userID, text)
		if err != nil {
			return h.transitionRejected(c, err)
		}
		return c.Send(orderSummary(draft), confirmMarkup())
	}

	// Unrecognized input: no mutation, back to the main menu
	return c.Send(unrecognizedMessage, mainMenuMarkup())
}

// handlePhoto routes photo messages: broadcast attachment for admins in the
// photo stage, otherwise an order draft attachment
func (h *Handler) handlePhoto(c tele.Context) error {
	userID := c.Sender().ID

	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	if h.cfg.IsAdmin(userID) && h.broadcaster.CapturePhoto(userID, photo.FileID) {
		return c.Send("📸 Фото додано! Тепер введіть текст для розсилки:")
	}

	if err := h.orders.AttachPhoto(userID, photo.FileID); err != nil {
		// Photo outside of an order flow is simply ignored
		h.logger.Debug("Photo without an active draft", zap.Int64("user_id", userID))
		return nil
	}

	return c.Send("📸 Фото додано! Тепер введіть деталі замовлення:")
}

// transitionRejected reports a guard failure and resets to the main menu
// without touching persisted state
func (h *Handler) transitionRejected(c tele.Context, err error) error {
	if errors.Is(err, service.ErrNoDraft) || errors.Is(err, service.ErrWrongStep) {
		return c.Send(draftMissingMessage, mainMenuMarkup())
	}
	return err
}
