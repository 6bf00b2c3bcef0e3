package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft_Complete(t *testing.T) {
	full := Draft{
		OrderType: OrderTypeInStock,
		Details:   "basketball size 7",
		Payment:   PaymentCashOnDelivery,
		Address:   "Kyiv, branch 12",
	}

	tests := []struct {
		name     string
		mutate   func(*Draft)
		expected bool
	}{
		{
			name:     "all required fields set",
			mutate:   func(d *Draft) {},
			expected: true,
		},
		{
			name:     "photos are optional",
			mutate:   func(d *Draft) { d.Photos = nil },
			expected: true,
		},
		{
			name:     "missing order type",
			mutate:   func(d *Draft) { d.OrderType = "" },
			expected: false,
		},
		{
			name:     "missing details",
			mutate:   func(d *Draft) { d.Details = "" },
			expected: false,
		},
		{
			name:     "missing payment method",
			mutate:   func(d *Draft) { d.Payment = "" },
			expected: false,
		},
		{
			name:     "missing address",
			mutate:   func(d *Draft) { d.Address = "" },
			expected: false,
		},
		{
			name: "empty draft",
			mutate: func(d *Draft) {
				*d = Draft{}
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := full
			tt.mutate(&draft)
			assert.Equal(t, tt.expected, draft.Complete())
		})
	}
}

func TestOrderType_Label(t *testing.T) {
	assert.Equal(t, "В наявності", OrderTypeInStock.Label())
	assert.Equal(t, "Під замовлення", OrderTypePreOrder.Label())
}

func TestPaymentMethod_Label(t *testing.T) {
	assert.Equal(t, "Накладний платіж", PaymentCashOnDelivery.Label())
	assert.Equal(t, "Передплата", PaymentPrepayment.Label())
}
