package counter

import (
	"github.com/weegigs/wee-counter-go/view"
	"github.com/weegigs/wee-counter-go/we"
)

const (
	IncrementMsg   = we.MessageName("counter:increment")
	DecrementMsg   = we.MessageName("counter:decrement")
	TextChangedMsg = we.MessageName("counter:text-changed")
)

type Increment struct{}

func (Increment) TypeName() string {
	return IncrementMsg.String()
}

type Decrement struct{}

func (Decrement) TypeName() string {
	return DecrementMsg.String()
}

// TextChanged replaces the input text. It decodes from view.InputChange.
type TextChanged view.InputChange

func (TextChanged) TypeName() string {
	return TextChangedMsg.String()
}
