package service

import "errors"

// Transition guard failures. Handlers translate these into user-visible
// messages and a safe reset to the main menu; none of them mutates
// persisted state.
var (
	// ErrNoDraft means the user has no order draft in progress.
	ErrNoDraft = errors.New("no active order draft")
	// ErrWrongStep means the input does not match the current step.
	ErrWrongStep = errors.New("input does not match the current step")
	// ErrIncompleteDraft means confirm was attempted before all required
	// fields were collected.
	ErrIncompleteDraft = errors.New("order draft is incomplete")
)
