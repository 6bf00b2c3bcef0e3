package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"hoopmania/internal/domain"
	"hoopmania/internal/session"
	"hoopmania/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBroadcaster(store *testutil.MockStore, msgr *testutil.MockMessenger) (*Broadcaster, *session.Manager) {
	sessions := session.NewManager()
	return NewBroadcaster(sessions, store, msgr, 0, testutil.NewTestLogger()), sessions
}

func TestBroadcaster_ContinuesPastFailures(t *testing.T) {
	store := new(testutil.MockStore)
	msgr := new(testutil.MockMessenger)

	users := []domain.UserSummary{
		testutil.NewTestUserSummary(1, 0),
		testutil.NewTestUserSummary(2, 0),
		testutil.NewTestUserSummary(3, 0),
	}
	store.On("GetAllUsers").Return(users, nil)

	msgr.On("SendText", int64(1), "Sale tomorrow").Return(nil).Once()
	msgr.On("SendText", int64(2), "Sale tomorrow").Return(fmt.Errorf("blocked by user")).Once()
	msgr.On("SendText", int64(3), "Sale tomorrow").Return(nil).Once()

	b, _ := newBroadcaster(store, msgr)

	sent, failed := b.Broadcast("Sale tomorrow", "")
	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, failed)

	msgr.AssertExpectations(t)
}

func TestBroadcaster_WithPhoto(t *testing.T) {
	store := new(testutil.MockStore)
	msgr := new(testutil.MockMessenger)

	users := []domain.UserSummary{
		testutil.NewTestUserSummary(1, 0),
		testutil.NewTestUserSummary(2, 0),
	}
	store.On("GetAllUsers").Return(users, nil)

	msgr.On("SendPhoto", int64(1), "photo-id", "Sale tomorrow").Return(nil).Once()
	msgr.On("SendPhoto", int64(2), "photo-id", "Sale tomorrow").Return(nil).Once()

	b, _ := newBroadcaster(store, msgr)

	sent, failed := b.Broadcast("Sale tomorrow", "photo-id")
	assert.Equal(t, 2, sent)
	assert.Equal(t, 0, failed)

	msgr.AssertExpectations(t)
	msgr.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything)
}

func TestBroadcaster_StoreError(t *testing.T) {
	store := new(testutil.MockStore)
	msgr := new(testutil.MockMessenger)

	store.On("GetAllUsers").Return(nil, fmt.Errorf("disk error"))

	b, _ := newBroadcaster(store, msgr)

	sent, failed := b.Broadcast("Sale tomorrow", "")
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}

func TestBroadcaster_NoUsers(t *testing.T) {
	store := new(testutil.MockStore)
	msgr := new(testutil.MockMessenger)

	store.On("GetAllUsers").Return([]domain.UserSummary{}, nil)

	b, _ := newBroadcaster(store, msgr)

	sent, failed := b.Broadcast("Sale tomorrow", "")
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}

func TestBroadcaster_TextDraftLifecycle(t *testing.T) {
	b, sessions := newBroadcaster(new(testutil.MockStore), new(testutil.MockMessenger))

	// Nothing to send before any text is captured
	_, ok := b.Pending(1)
	assert.False(t, ok)

	b.BeginText(1)
	_, ok = b.Pending(1)
	assert.False(t, ok)

	require.True(t, b.CaptureText(1, "Sale tomorrow"))

	draft, ok := b.Pending(1)
	require.True(t, ok)
	assert.Equal(t, "Sale tomorrow", draft.Text)
	assert.Equal(t, domain.BroadcastConfirming, draft.Stage)
	assert.Empty(t, draft.Photo)

	b.Discard(1)
	_, ok = b.Pending(1)
	assert.False(t, ok)
	assert.Nil(t, sessions.Broadcast(1))
}

func TestBroadcaster_PhotoDraftLifecycle(t *testing.T) {
	b, _ := newBroadcaster(new(testutil.MockStore), new(testutil.MockMessenger))

	b.BeginPhoto(1)

	// Text is refused until the photo arrives
	assert.False(t, b.CaptureText(1, "too early"))

	require.True(t, b.CapturePhoto(1, "photo-id"))
	require.True(t, b.CaptureText(1, "Sale tomorrow"))

	draft, ok := b.Pending(1)
	require.True(t, ok)
	assert.Equal(t, "photo-id", draft.Photo)
	assert.Equal(t, "Sale tomorrow", draft.Text)
}

func TestBroadcaster_CaptureWithoutDraft(t *testing.T) {
	b, _ := newBroadcaster(new(testutil.MockStore), new(testutil.MockMessenger))

	assert.False(t, b.CaptureText(1, "Sale tomorrow"))
	assert.False(t, b.CapturePhoto(1, "photo-id"))
}

func TestBroadcaster_CaptureText_Concurrent(t *testing.T) {
	b, _ := newBroadcaster(new(testutil.MockStore), new(testutil.MockMessenger))

	b.BeginText(1)

	// Simultaneous messages from the same admin must serialize on the
	// per-user lock: exactly one capture wins, the rest see the advanced
	// stage and are refused.
	var captured int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if b.CaptureText(1, fmt.Sprintf("announcement %d", n)) {
				atomic.AddInt32(&captured, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), captured)

	draft, ok := b.Pending(1)
	require.True(t, ok)
	assert.Equal(t, domain.BroadcastConfirming, draft.Stage)
	assert.Contains(t, draft.Text, "announcement")
}
