package service

// Messenger sends messages to chats outside of an inbound handler context.
// Implemented by internal/telegram; mocked in tests.
type Messenger interface {
	SendText(chatID int64, text string) error
	SendPhoto(chatID int64, fileID, caption string) error
}
