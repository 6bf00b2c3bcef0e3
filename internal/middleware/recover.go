package middleware

import (
	"runtime/debug"

	"hoopmania/internal/service"
	"hoopmania/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const retryMessage = "❌ Помилка обробки запиту. Спробуйте ще раз."

// Recover is the single fault adapter at the transport boundary: it catches
// panics and handler errors, counts them, resets the user's conversation and
// shows a generic retry message. Nothing a handler does can crash the bot.
func Recover(logger *zap.Logger, stats *service.Stats, sessions *session.Manager) tele.MiddlewareFunc {
	fail := func(c tele.Context) {
		stats.ErrorOccurred()
		if sender := c.Sender(); sender != nil {
			sessions.Clear(sender.ID)
		}
		if err := c.Send(retryMessage); err != nil {
			logger.Warn("Failed to send retry message", zap.Error(err))
		}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic in handler",
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()),
					)
					fail(c)
				}
			}()

			if err := next(c); err != nil {
				logger.Error("Handler failed", zap.Error(err))
				fail(c)
			}
			return nil
		}
	}
}
