package telegram

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Client implements service.Messenger over a telebot bot. Used by the
// broadcaster and notifier, which send outside of an inbound handler.
type Client struct {
	bot    *tele.Bot
	logger *zap.Logger
}

// NewClient wraps a telebot bot
func NewClient(bot *tele.Bot, logger *zap.Logger) *Client {
	return &Client{bot: bot, logger: logger}
}

// SendText sends a plain text message to the given chat
func (c *Client) SendText(chatID int64, text string) error {
	_, err := c.bot.Send(tele.ChatID(chatID), text)
	return err
}

// SendPhoto sends a previously uploaded photo by file id with a caption
func (c *Client) SendPhoto(chatID int64, fileID, caption string) error {
	photo := &tele.Photo{
		File:    tele.File{FileID: fileID},
		Caption: caption,
	}
	_, err := c.bot.Send(tele.ChatID(chatID), photo)
	return err
}
