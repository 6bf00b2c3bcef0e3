package domain

import "time"

// OrderType distinguishes the two order flows offered on the main menu.
type OrderType string

const (
	OrderTypeInStock  OrderType = "in_stock"
	OrderTypePreOrder OrderType = "pre_order"
)

// Label returns the user-facing name of the order type.
func (t OrderType) Label() string {
	if t == OrderTypeInStock {
		return "В наявності"
	}
	return "Під замовлення"
}

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentPrepayment     PaymentMethod = "prepayment"
)

// Label returns the user-facing name of the payment method.
func (p PaymentMethod) Label() string {
	if p == PaymentCashOnDelivery {
		return "Накладний платіж"
	}
	return "Передплата"
}

// OrderStatusNew is the status assigned to every freshly committed order.
const OrderStatusNew = "new"

// Draft is a partially filled order under construction by a single user.
type Draft struct {
	OrderType OrderType     `json:"order_type"`
	Details   string        `json:"order_details"`
	Photos    []string      `json:"photos,omitempty"`
	Payment   PaymentMethod `json:"payment_method"`
	Address   string        `json:"address"`
}

// Complete reports whether all fields required to commit an order are
// present. Photos are optional.
func (d Draft) Complete() bool {
	return d.OrderType != "" && d.Details != "" && d.Payment != "" && d.Address != ""
}

// Order is a committed order record. Immutable after creation except for
// status, which is managed outside the bot.
type Order struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	Data        Draft     `json:"order_data"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
}
