package handler

import (
	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the small slice of tele.Context the handlers use.
// Unstubbed methods panic through the embedded nil interface, which is
// exactly what we want in tests.
type fakeContext struct {
	tele.Context

	sender   *tele.User
	text     string
	args     []string
	callback *tele.Callback
	message  *tele.Message

	// shown collects every text the user saw, sent or edited, in order
	shown   []string
	editErr error
}

func (f *fakeContext) Sender() *tele.User       { return f.sender }
func (f *fakeContext) Text() string             { return f.text }
func (f *fakeContext) Args() []string           { return f.args }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }
func (f *fakeContext) Message() *tele.Message   { return f.message }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.shown = append(f.shown, s)
	}
	return nil
}

func (f *fakeContext) Edit(what interface{}, _ ...interface{}) error {
	if f.editErr != nil {
		return f.editErr
	}
	if s, ok := what.(string); ok {
		f.shown = append(f.shown, s)
	}
	return nil
}

func (f *fakeContext) Respond(_ ...*tele.CallbackResponse) error { return nil }

// lastShown returns the most recent message shown to the user
func (f *fakeContext) lastShown() string {
	if len(f.shown) == 0 {
		return ""
	}
	return f.shown[len(f.shown)-1]
}
