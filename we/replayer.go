package we

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Replayer folds recorded messages into state, starting from the zero value
// of S. Messages without a reducer are skipped.
type Replayer[S any] struct {
	Reducers Reducers[S]
}

func (r *Replayer[S]) Initial(id StreamId) Entity[S] {
	var state S

	return Entity[S]{
		Stream:   id,
		Revision: InitialRevision,
		Type:     EntityTypeOf(state),
		State:    &state,
	}
}

func (r *Replayer[S]) Replay(ctx context.Context, stream Stream) (Entity[S], error) {
	return r.Continue(ctx, r.Initial(stream.Id), stream.Messages)
}

// Continue applies messages on top of entity. The entity passed in is left
// untouched.
func (r *Replayer[S]) Continue(ctx context.Context, entity Entity[S], messages []RecordedMessage) (Entity[S], error) {
	var state S
	if entity.State != nil {
		state = *entity.State
	}

	_, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("replay %s", EntityTypeOf(state)))
	defer span.End()
	span.SetAttributes(attribute.Int("messages", len(messages)))

	revision := entity.Revision
	for i := range messages {
		message := &messages[i]
		if err := r.Step(&state, message); err != nil {
			return Entity[S]{}, errors.Wrap(
				err,
				fmt.Sprintf("failed to apply %s at %s", message.Message, message.Revision),
			)
		}

		revision = message.Revision
	}

	return Entity[S]{
		Stream:   entity.Stream,
		Revision: revision,
		Type:     EntityTypeOf(state),
		State:    &state,
	}, nil
}

func (r *Replayer[S]) Step(state *S, message *RecordedMessage) error {
	reducer := r.Reducers[message.Message]
	if reducer == nil {
		return nil
	}

	return reducer.Reduce(state, message)
}
