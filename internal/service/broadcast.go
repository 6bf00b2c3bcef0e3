package service

import (
	"time"

	"hoopmania/internal/domain"
	"hoopmania/internal/repository"
	"hoopmania/internal/session"

	"go.uber.org/zap"
)

// Broadcaster owns the admin announcement lifecycle: the draft stages an
// admin walks through and the fan-out to every known user. Stage transitions
// acquire the per-user lock, same as the order state machine, because the
// transport dispatches an admin's updates concurrently.
type Broadcaster struct {
	sessions *session.Manager
	store    repository.Store
	msgr     Messenger
	logger   *zap.Logger
	delay    time.Duration
}

// NewBroadcaster creates a broadcaster with the given inter-send delay
func NewBroadcaster(sessions *session.Manager, store repository.Store, msgr Messenger, delay time.Duration, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		sessions: sessions,
		store:    store,
		msgr:     msgr,
		logger:   logger,
		delay:    delay,
	}
}

// BeginText starts a text-only announcement draft, replacing any previous one
func (b *Broadcaster) BeginText(adminID int64) {
	lock := b.sessions.UserLock(adminID)
	lock.Lock()
	defer lock.Unlock()

	b.sessions.SetBroadcast(adminID, &session.BroadcastDraft{
		Stage: domain.BroadcastAwaitingText,
	})
}

// BeginPhoto starts a photo announcement draft, replacing any previous one
func (b *Broadcaster) BeginPhoto(adminID int64) {
	lock := b.sessions.UserLock(adminID)
	lock.Lock()
	defer lock.Unlock()

	b.sessions.SetBroadcast(adminID, &session.BroadcastDraft{
		Stage: domain.BroadcastAwaitingPhoto,
	})
}

// CapturePhoto attaches the announcement photo and advances to text entry.
// Reports false when no draft is waiting for a photo.
func (b *Broadcaster) CapturePhoto(adminID int64, fileID string) bool {
	lock := b.sessions.UserLock(adminID)
	lock.Lock()
	defer lock.Unlock()

	draft := b.sessions.Broadcast(adminID)
	if draft == nil || draft.Stage != domain.BroadcastAwaitingPhoto {
		return false
	}

	draft.Photo = fileID
	draft.Stage = domain.BroadcastAwaitingText

	b.logger.Info("Broadcast photo captured", zap.Int64("admin_id", adminID))
	return true
}

// CaptureText records the announcement text and advances to confirmation.
// Reports false when no draft is waiting for text.
func (b *Broadcaster) CaptureText(adminID int64, text string) bool {
	lock := b.sessions.UserLock(adminID)
	lock.Lock()
	defer lock.Unlock()

	draft := b.sessions.Broadcast(adminID)
	if draft == nil || draft.Stage != domain.BroadcastAwaitingText {
		return false
	}

	draft.Text = text
	draft.Stage = domain.BroadcastConfirming

	b.logger.Info("Broadcast text captured", zap.Int64("admin_id", adminID))
	return true
}

// Pending returns a copy of the draft that is ready to send, if there is one
// with its text captured
func (b *Broadcaster) Pending(adminID int64) (session.BroadcastDraft, bool) {
	lock := b.sessions.UserLock(adminID)
	lock.Lock()
	defer lock.Unlock()

	draft := b.sessions.Broadcast(adminID)
	if draft == nil || draft.Text == "" {
		return session.BroadcastDraft{}, false
	}
	return *draft, true
}

// Discard drops the admin's announcement draft
func (b *Broadcaster) Discard(adminID int64) {
	lock := b.sessions.UserLock(adminID)
	lock.Lock()
	defer lock.Unlock()

	b.sessions.ClearBroadcast(adminID)
}

// Broadcast sends text (with an optional photo) to every user sequentially.
// A failed send is logged and counted but never aborts the remaining sends.
// Returns (successCount, errorCount). Runs in the calling handler's
// goroutine, so other users' updates keep flowing while it works.
func (b *Broadcaster) Broadcast(text, photoID string) (int, int) {
	users, err := b.store.GetAllUsers()
	if err != nil {
		b.logger.Error("Failed to list users for broadcast", zap.Error(err))
		return 0, 0
	}

	successCount := 0
	errorCount := 0

	for _, user := range users {
		var sendErr error
		if photoID != "" {
			sendErr = b.msgr.SendPhoto(user.UserID, photoID, text)
		} else {
			sendErr = b.msgr.SendText(user.UserID, text)
		}

		if sendErr != nil {
			errorCount++
			b.logger.Error("Failed to deliver broadcast",
				zap.Int64("user_id", user.UserID),
				zap.Error(sendErr),
			)
			continue
		}

		successCount++
		// Courtesy pause so the transport is not flooded
		time.Sleep(b.delay)
	}

	b.logger.Info("Broadcast finished",
		zap.Int("sent", successCount),
		zap.Int("failed", errorCount),
	)
	return successCount, errorCount
}
