package view

import (
	"github.com/pkg/errors"

	"github.com/weegigs/wee-counter-go/we"
)

// Action is the message a button emits when pressed, kept encoded so the
// tree stays comparable.
type Action struct {
	Message we.MessageName `json:"message"`
	Payload we.Data        `json:"payload"`
}

func NewAction(message we.Message) (Action, error) {
	name, data, err := we.EncodeMessage(message)
	if err != nil {
		return Action{}, err
	}

	return Action{Message: name, Payload: data}, nil
}

func (a Action) Remote() we.RemoteMessage {
	return we.RemoteMessage{Message: a.Message, Payload: a.Payload}
}

// InputChange is the payload every input bound message decodes from: the
// full text of the input after the edit.
type InputChange struct {
	Value string `json:"value"`
}

// Change builds the message a text input emits when its content becomes
// value.
func (n Node) Change(value string) (we.RemoteMessage, error) {
	if n.Kind != KindTextInput || n.Input == "" {
		return we.RemoteMessage{}, errors.Errorf("%s node %q does not accept input", n.Kind, n.Handle)
	}

	return we.NewRemoteMessage(n.Input, InputChange{Value: value})
}

// Pressed returns the message a button emits.
func (n Node) Pressed() (we.RemoteMessage, error) {
	if n.Kind != KindButton || n.Press == nil {
		return we.RemoteMessage{}, errors.Errorf("%s node %q cannot be pressed", n.Kind, n.Handle)
	}

	return n.Press.Remote(), nil
}
