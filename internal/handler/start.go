package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: registers the user if unseen and
// unconditionally resets any in-progress conversation
func (h *Handler) handleStart(c tele.Context) error {
	user := c.Sender()

	h.orders.Reset(user.ID)

	created, err := h.store.RegisterUser(user.ID, user.Username, user.FirstName)
	if err != nil {
		h.logger.Error("Failed to register user",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return err
	}
	if created {
		h.stats.UserSeen()
	}

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("new", created),
	)

	return c.Send(h.welcomeMessage(), mainMenuMarkup())
}
