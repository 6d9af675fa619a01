package we

import (
	"context"
	"errors"
)

// Journal records the messages delivered to a program.
type Journal interface {
	Load(ctx context.Context, id StreamId) (Stream, error)
	Append(ctx context.Context, id StreamId, options AppendOptions, messages ...Message) (Revision, error)
}

type StreamLoader = func(ctx context.Context, id StreamId) (Stream, error)

var RevisionConflict = errors.New("revision-conflict")

type AppendOptions struct {
	RecordedMessageMetadata
	ExpectedRevision Revision
}

type AppendOption func(modifier *AppendOptions)

func Options(options ...AppendOption) AppendOptions {
	modifiers := &AppendOptions{}
	for _, option := range options {
		option(modifiers)
	}

	return *modifiers
}

// WithExpectedRevision makes the append fail with RevisionConflict unless the
// stream is currently at the given revision.
func WithExpectedRevision(expectedRevision Revision) AppendOption {
	return func(modifier *AppendOptions) {
		modifier.ExpectedRevision = expectedRevision
	}
}

func WithCorrelationId(correlationId CorrelationID) AppendOption {
	return func(modifier *AppendOptions) {
		modifier.RecordedMessageMetadata.CorrelationId = correlationId
	}
}

func WithCausationId(correlationId CorrelationID, causationId MessageID) AppendOption {
	return func(modifier *AppendOptions) {
		modifier.RecordedMessageMetadata.CausationId = causationId
		modifier.RecordedMessageMetadata.CorrelationId = correlationId
	}
}
