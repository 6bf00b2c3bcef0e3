package domain

// State identifies the conversation step a user is currently at.
type State string

const (
	StateChoosingOption  State = "choosing_option"
	StateEnteringOrder   State = "entering_order"
	StateChoosingPayment State = "choosing_payment"
	StateEnteringAddress State = "entering_address"
	StateConfirmingOrder State = "confirming_order"
)

// BroadcastStage tracks an admin's progress through the broadcast flow.
type BroadcastStage string

const (
	BroadcastAwaitingPhoto BroadcastStage = "awaiting_photo"
	BroadcastAwaitingText  BroadcastStage = "awaiting_text"
	BroadcastConfirming    BroadcastStage = "confirming"
)
