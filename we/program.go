package we

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "wee-counter"

const DefaultStreamKey = "default"

// Program owns a single piece of state. Messages are delivered one at a time
// and recorded in a journal; the state is whatever replaying that journal
// produces.
type Program[S any] interface {
	Load(ctx context.Context) (Entity[S], error)
	Dispatch(ctx context.Context, message Message) (Entity[S], error)
}

type ProgramOption[S any] func(p *program[S])

func WithStream[S any](id StreamId) ProgramOption[S] {
	return func(p *program[S]) {
		p.stream = id
	}
}

func WithLogger[S any](log *zerolog.Logger) ProgramOption[S] {
	return func(p *program[S]) {
		p.log = log
	}
}

// WithConflictAttempts bounds how often a dispatch is retried when another
// writer moved the stream between load and append.
func WithConflictAttempts[S any](attempts uint) ProgramOption[S] {
	return func(p *program[S]) {
		p.attempts = attempts
	}
}

func NewProgram[S any](journal Journal, reducers Reducers[S], options ...ProgramOption[S]) *program[S] {
	var state S

	p := &program[S]{
		journal:  journal,
		replayer: &Replayer[S]{Reducers: reducers},
		stream:   StreamId{Type: EntityTypeOf(state).String(), Key: DefaultStreamKey},
		attempts: 3,
	}

	for _, option := range options {
		option(p)
	}

	if p.log == nil {
		p.log = &log.Logger
	}

	p.entity = p.replayer.Initial(p.stream)

	return p
}

type program[S any] struct {
	lk       sync.Mutex
	journal  Journal
	replayer *Replayer[S]
	stream   StreamId
	attempts uint
	log      *zerolog.Logger

	// entity caches the replay of the first applied messages of the stream
	entity  Entity[S]
	applied int
}

func (p *program[S]) Stream() StreamId {
	return p.stream
}

func (p *program[S]) Load(ctx context.Context) (Entity[S], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "load")
	defer span.End()

	p.lk.Lock()
	defer p.lk.Unlock()

	entity, err := p.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return Entity[S]{}, err
	}

	return snapshot(entity), nil
}

func (p *program[S]) Dispatch(ctx context.Context, message Message) (Entity[S], error) {
	name := MessageNameOf(message)

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", name))
	defer span.End()

	entity, err := p.dispatch(ctx, name, message)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		p.log.Info().Err(err).Str("stream", p.stream.Encode().String()).Str("name", name.String()).Msg("message rejected")
		return Entity[S]{}, err
	}

	p.log.Debug().
		Str("stream", p.stream.Encode().String()).
		Str("name", name.String()).
		Str("revision", entity.Revision.String()).
		Msg("message applied")

	return snapshot(entity), nil
}

func (p *program[S]) dispatch(ctx context.Context, name MessageName, message Message) (Entity[S], error) {
	if p.replayer.Reducers[name] == nil {
		return Entity[S]{}, MessageNotFound(name)
	}

	_, data, err := EncodeMessage(message)
	if err != nil {
		return Entity[S]{}, InvalidMessage(name, err)
	}

	p.lk.Lock()
	defer p.lk.Unlock()

	var entity Entity[S]
	err = retry.Do(
		func() error {
			current, err := p.load(ctx)
			if err != nil {
				return err
			}

			// a payload that cannot be applied must never reach the journal,
			// every later replay would fail on it
			trial := *current.State
			candidate := RecordedMessage{Stream: p.stream, Message: name, Data: data}
			if err := p.replayer.Step(&trial, &candidate); err != nil {
				return InvalidMessage(name, err)
			}

			_, err = p.journal.Append(ctx, p.stream, Options(WithExpectedRevision(current.Revision)), message)
			if err != nil {
				return err
			}

			entity, err = p.load(ctx)
			return err
		},
		retry.Attempts(p.attempts),
		retry.Delay(time.Millisecond),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, RevisionConflict)
		}),
		retry.LastErrorOnly(true),
	)

	return entity, err
}

// load brings the cached entity up to date with the journal, replaying from
// scratch when the stream no longer extends the cached prefix.
func (p *program[S]) load(ctx context.Context) (Entity[S], error) {
	stream, err := p.journal.Load(ctx, p.stream)
	if err != nil {
		return Entity[S]{}, errors.Wrap(err, fmt.Sprintf("failed to load stream %s", p.stream.Encode()))
	}

	base := p.entity
	pending := stream.Messages
	if p.extends(stream) {
		pending = stream.Messages[p.applied:]
	} else {
		base = p.replayer.Initial(p.stream)
	}

	entity, err := p.replayer.Continue(ctx, base, pending)
	if err != nil {
		return Entity[S]{}, err
	}

	p.entity = entity
	p.applied = len(stream.Messages)

	return entity, nil
}

func (p *program[S]) extends(stream Stream) bool {
	if p.applied > len(stream.Messages) {
		return false
	}

	if p.applied == 0 {
		return true
	}

	return stream.Messages[p.applied-1].Revision == p.entity.Revision
}

func snapshot[S any](entity Entity[S]) Entity[S] {
	state := *entity.State
	entity.State = &state

	return entity
}
