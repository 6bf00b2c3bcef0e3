package service

import (
	"testing"

	"hoopmania/internal/domain"
	"hoopmania/internal/session"
	"hoopmania/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(store *testutil.MockStore) (*OrderService, *session.Manager) {
	sessions := session.NewManager()
	return NewOrderService(sessions, store, testutil.NewTestLogger()), sessions
}

func TestOrderService_FullFlow(t *testing.T) {
	store := new(testutil.MockStore)
	svc, sessions := newOrderService(store)

	expected := testutil.NewTestOrder("ORDER_000001", 1)
	store.On("CommitOrder", int64(1), "hooper", "Ivan", mock.AnythingOfType("domain.Draft")).
		Return(expected, nil).Once()

	svc.Begin(1, domain.OrderTypeInStock)
	assert.Equal(t, domain.StateEnteringOrder, sessions.State(1))
	assert.True(t, svc.AwaitingDetails(1))

	require.NoError(t, svc.SetDetails(1, "basketball size 7"))
	assert.Equal(t, domain.StateChoosingPayment, sessions.State(1))
	assert.False(t, svc.AwaitingDetails(1))

	require.NoError(t, svc.SetPayment(1, domain.PaymentCashOnDelivery))
	assert.Equal(t, domain.StateEnteringAddress, sessions.State(1))
	assert.True(t, svc.AwaitingAddress(1))

	draft, err := svc.SetAddress(1, "Kyiv, branch 12")
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmingOrder, sessions.State(1))
	assert.Equal(t, "Kyiv, branch 12", draft.Address)
	assert.True(t, draft.Complete())

	order, err := svc.Confirm(1, "hooper", "Ivan")
	require.NoError(t, err)
	assert.Equal(t, "ORDER_000001", order.ID)

	// Session is cleared on commit
	assert.Nil(t, sessions.Get(1))
	assert.Equal(t, domain.StateChoosingOption, sessions.State(1))

	store.AssertExpectations(t)

	committed := store.Calls[0].Arguments.Get(3).(domain.Draft)
	assert.Equal(t, domain.OrderTypeInStock, committed.OrderType)
	assert.Equal(t, "basketball size 7", committed.Details)
	assert.Equal(t, domain.PaymentCashOnDelivery, committed.Payment)
	assert.Equal(t, "Kyiv, branch 12", committed.Address)
}

func TestOrderService_Confirm_RequiresAllFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Draft)
	}{
		{name: "missing details", mutate: func(d *domain.Draft) { d.Details = "" }},
		{name: "missing payment", mutate: func(d *domain.Draft) { d.Payment = "" }},
		{name: "missing address", mutate: func(d *domain.Draft) { d.Address = "" }},
		{name: "missing order type", mutate: func(d *domain.Draft) { d.OrderType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(testutil.MockStore)
			svc, sessions := newOrderService(store)

			draft := testutil.NewTestDraft()
			tt.mutate(&draft)
			sessions.Set(1, &session.Session{
				State: domain.StateConfirmingOrder,
				Draft: &draft,
			})

			_, err := svc.Confirm(1, "hooper", "Ivan")
			assert.ErrorIs(t, err, ErrIncompleteDraft)

			// No write happened and the draft is still there
			store.AssertNotCalled(t, "CommitOrder",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			assert.NotNil(t, sessions.Get(1))
		})
	}
}

func TestOrderService_Confirm_NoDraft(t *testing.T) {
	store := new(testutil.MockStore)
	svc, _ := newOrderService(store)

	_, err := svc.Confirm(1, "hooper", "Ivan")
	assert.ErrorIs(t, err, ErrNoDraft)

	store.AssertNotCalled(t, "CommitOrder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Reset_Idempotent(t *testing.T) {
	store := new(testutil.MockStore)
	svc, sessions := newOrderService(store)

	svc.Begin(1, domain.OrderTypePreOrder)
	require.NotNil(t, sessions.Get(1))

	svc.Reset(1)
	assert.Nil(t, sessions.Get(1))

	svc.Reset(1)
	assert.Nil(t, sessions.Get(1))
}

func TestOrderService_Begin_DiscardsPreviousDraft(t *testing.T) {
	store := new(testutil.MockStore)
	svc, sessions := newOrderService(store)

	svc.Begin(1, domain.OrderTypeInStock)
	require.NoError(t, svc.SetDetails(1, "old details"))

	svc.Begin(1, domain.OrderTypePreOrder)

	sess := sessions.Get(1)
	require.NotNil(t, sess)
	assert.Equal(t, domain.OrderTypePreOrder, sess.Draft.OrderType)
	assert.Empty(t, sess.Draft.Details)
}

func TestOrderService_Begin_KeepsBroadcastDraft(t *testing.T) {
	store := new(testutil.MockStore)
	svc, sessions := newOrderService(store)

	// An admin with a half-composed announcement starts an order of their own
	sessions.SetBroadcast(1, &session.BroadcastDraft{
		Stage: domain.BroadcastAwaitingText,
		Photo: "photo-id",
	})

	svc.Begin(1, domain.OrderTypeInStock)

	sess := sessions.Get(1)
	require.NotNil(t, sess)
	assert.Equal(t, domain.OrderTypeInStock, sess.Draft.OrderType)
	require.NotNil(t, sess.Broadcast)
	assert.Equal(t, domain.BroadcastAwaitingText, sess.Broadcast.Stage)
	assert.Equal(t, "photo-id", sess.Broadcast.Photo)
}

func TestOrderService_SetDetails_Guards(t *testing.T) {
	store := new(testutil.MockStore)
	svc, _ := newOrderService(store)

	err := svc.SetDetails(1, "no draft yet")
	assert.ErrorIs(t, err, ErrNoDraft)

	svc.Begin(1, domain.OrderTypeInStock)
	require.NoError(t, svc.SetDetails(1, "basketball size 7"))

	err = svc.SetDetails(1, "second details")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestOrderService_SetPayment_WithoutDraft(t *testing.T) {
	store := new(testutil.MockStore)
	svc, _ := newOrderService(store)

	err := svc.SetPayment(1, domain.PaymentPrepayment)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestOrderService_SetAddress_Guards(t *testing.T) {
	store := new(testutil.MockStore)
	svc, _ := newOrderService(store)

	_, err := svc.SetAddress(1, "Kyiv, branch 12")
	assert.ErrorIs(t, err, ErrNoDraft)

	// Address requires a chosen payment method first
	svc.Begin(1, domain.OrderTypeInStock)
	require.NoError(t, svc.SetDetails(1, "basketball size 7"))
	_, err = svc.SetAddress(1, "Kyiv, branch 12")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestOrderService_AttachPhoto(t *testing.T) {
	store := new(testutil.MockStore)
	svc, sessions := newOrderService(store)

	err := svc.AttachPhoto(1, "file-1")
	assert.ErrorIs(t, err, ErrNoDraft)

	svc.Begin(1, domain.OrderTypeInStock)
	require.NoError(t, svc.AttachPhoto(1, "file-1"))
	require.NoError(t, svc.AttachPhoto(1, "file-2"))

	sess := sessions.Get(1)
	assert.Equal(t, []string{"file-1", "file-2"}, sess.Draft.Photos)
	// Photos never advance the state
	assert.Equal(t, domain.StateEnteringOrder, sess.State)
}
