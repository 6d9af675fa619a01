package we

type Reducer[S any] interface {
	Reduce(state *S, message *RecordedMessage) error
}

type Reducers[S any] map[MessageName]Reducer[S]

// ReducerFunction decodes the recorded payload into M before applying it.
type ReducerFunction[S any, M any] func(state *S, message *M) error

func (f ReducerFunction[S, M]) Reduce(state *S, message *RecordedMessage) error {
	var decoded M
	if err := UnmarshalFromData(message.Data, &decoded); err != nil {
		return err
	}

	return f(state, &decoded)
}

// Transition adapts a pure state transition into a reducer.
func Transition[S any, M any](apply func(state S, message M) S) Reducer[S] {
	var reducer ReducerFunction[S, M] = func(state *S, message *M) error {
		*state = apply(*state, *message)
		return nil
	}

	return reducer
}
