package counter

import "github.com/weegigs/wee-counter-go/we"

func increment(state Counter, message Increment) Counter {
	return Apply(state, message)
}

func decrement(state Counter, message Decrement) Counter {
	return Apply(state, message)
}

func textChanged(state Counter, message TextChanged) Counter {
	return Apply(state, message)
}

func Reducers() we.Reducers[Counter] {
	return we.Reducers[Counter]{
		IncrementMsg:   we.Transition(increment),
		DecrementMsg:   we.Transition(decrement),
		TextChangedMsg: we.Transition(textChanged),
	}
}
