package counter

import "github.com/weegigs/wee-counter-go/we"

const EntityType = we.EntityType("counter")

// Counter is the whole application state. Value and Text never change
// together.
type Counter struct {
	Value int32  `json:"value"`
	Text  string `json:"text"`
}

func (Counter) EntityType() we.EntityType {
	return EntityType
}
