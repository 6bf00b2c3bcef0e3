package handler

import (
	"errors"
	"strings"
	"unicode"

	"hoopmania/internal/domain"
	"hoopmania/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if the message is not
// modified, just acknowledge the callback. Otherwise acknowledge and return
// the error so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the message behind a callback, falling back to a fresh
// message when editing is impossible
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handled := h.handleEditError(err, c, c.Sender().ID); handled == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleOrderType starts a new draft for the selected order type
func (h *Handler) handleOrderType(c tele.Context, orderType domain.OrderType) error {
	userID := c.Sender().ID

	h.orders.Begin(userID, orderType)

	return h.editOrSend(c, orderPrompt(orderType), backMarkup())
}

// handlePayment records the payment method and asks for a delivery address
func (h *Handler) handlePayment(c tele.Context, method domain.PaymentMethod) error {
	userID := c.Sender().ID

	if err := h.orders.SetPayment(userID, method); err != nil {
		h.logger.Info("Payment selected without a draft", zap.Int64("user_id", userID))
		return h.editOrSend(c, draftMissingMessage, mainMenuMarkup())
	}

	if err := h.editOrSend(c, paymentChosen(method), backMarkup()); err != nil {
		return err
	}
	return c.Send("📍 Введіть адресу доставки або відділення пошти:")
}

// handleConfirmOrder commits the draft; the only transition that writes to
// the store
func (h *Handler) handleConfirmOrder(c tele.Context) error {
	user := c.Sender()

	order, err := h.orders.Confirm(user.ID, user.Username, user.FirstName)
	if err != nil {
		if errors.Is(err, service.ErrNoDraft) || errors.Is(err, service.ErrIncompleteDraft) {
			h.logger.Info("Confirm rejected",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
			return h.editOrSend(c, incompleteMessage, mainMenuMarkup())
		}
		return err
	}

	h.stats.OrderCommitted()

	if err := h.editOrSend(c, orderConfirmation(order), mainMenuMarkup()); err != nil {
		h.logger.Warn("Failed to send order confirmation",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	}

	h.notifier.NotifyNewOrder(order)
	return nil
}

// handleBackToMain clears the conversation and shows the main menu
func (h *Handler) handleBackToMain(c tele.Context) error {
	h.orders.Reset(c.Sender().ID)
	return h.editOrSend(c, h.welcomeMessage(), mainMenuMarkup())
}

// handleCallback catches callbacks that no registered button claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}
