package counter

// Apply is the transition function. It is total: unknown messages leave the
// state as it was. Value wraps around at the int32 bounds.
func Apply(state Counter, message any) Counter {
	switch msg := message.(type) {
	case Increment:
		state.Value++
	case Decrement:
		state.Value--
	case *Increment:
		if msg != nil {
			state.Value++
		}
	case *Decrement:
		if msg != nil {
			state.Value--
		}
	case TextChanged:
		state.Text = msg.Value
	case *TextChanged:
		if msg != nil {
			state.Text = msg.Value
		}
	}

	return state
}
