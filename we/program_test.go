package we_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/stores/memory"
	"github.com/weegigs/wee-counter-go/we"
)

type tally struct {
	Total int      `json:"total"`
	Notes []string `json:"notes"`
}

type Add struct {
	Amount int `json:"amount"`
}

type Note struct {
	Text string `json:"text"`
}

func reducers() we.Reducers[tally] {
	var add we.ReducerFunction[tally, Add] = func(state *tally, message *Add) error {
		state.Total += message.Amount
		return nil
	}

	note := we.Transition(func(state tally, message Note) tally {
		state.Notes = append(state.Notes, message.Text)
		return state
	})

	return we.Reducers[tally]{
		we.MessageNameOf(Add{}):  add,
		we.MessageNameOf(Note{}): note,
	}
}

// conflicting fails the first appends with a revision conflict.
type conflicting struct {
	we.Journal
	conflicts int
	appends   int
}

func (c *conflicting) Append(ctx context.Context, id we.StreamId, options we.AppendOptions, messages ...we.Message) (we.Revision, error) {
	c.appends++
	if c.conflicts > 0 {
		c.conflicts--
		return "", we.RevisionConflict
	}

	return c.Journal.Append(ctx, id, options, messages...)
}

func TestProgram(t *testing.T) {
	ctx := context.Background()

	t.Run("names messages by package and type", func(t *testing.T) {
		assert.Equal(t, we.MessageName("we-test:add"), we.MessageNameOf(Add{}))
		assert.Equal(t, we.MessageName("we-test:add"), we.MessageNameOf(&Add{}))
		assert.Equal(t, we.MessageName("x:y"), we.MessageNameOf(we.RemoteMessage{Message: "x:y"}))
	})

	t.Run("applies messages in order", func(t *testing.T) {
		program := we.NewProgram(memory.NewJournal(), reducers())

		_, err := program.Dispatch(ctx, Add{Amount: 2})
		require.Nil(t, err)
		_, err = program.Dispatch(ctx, Note{Text: "first"})
		require.Nil(t, err)
		entity, err := program.Dispatch(ctx, Add{Amount: 5})
		require.Nil(t, err)

		assert.Equal(t, tally{Total: 7, Notes: []string{"first"}}, *entity.State)
		assert.Equal(t, we.StreamId{Type: "we-test:tally", Key: we.DefaultStreamKey}, entity.Stream)
	})

	t.Run("retries on revision conflicts", func(t *testing.T) {
		journal := &conflicting{Journal: memory.NewJournal(), conflicts: 2}
		program := we.NewProgram(journal, reducers())

		entity, err := program.Dispatch(ctx, Add{Amount: 1})
		require.Nil(t, err)
		assert.Equal(t, 1, entity.State.Total)
		assert.Equal(t, 3, journal.appends)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		journal := &conflicting{Journal: memory.NewJournal(), conflicts: 10}
		program := we.NewProgram(journal, reducers(), we.WithConflictAttempts[tally](2))

		_, err := program.Dispatch(ctx, Add{Amount: 1})
		assert.True(t, errors.Is(err, we.RevisionConflict))
		assert.Equal(t, 2, journal.appends)
	})

	t.Run("does not record unknown messages", func(t *testing.T) {
		journal := memory.NewJournal()
		program := we.NewProgram(journal, reducers())

		_, err := program.Dispatch(ctx, struct{ Unknown bool }{})
		assert.NotNil(t, err)

		stream, err := journal.Load(ctx, we.StreamId{Type: "we-test:tally", Key: we.DefaultStreamKey})
		require.Nil(t, err)
		assert.Empty(t, stream.Messages)
	})

	t.Run("logs the message name apart from the log message", func(t *testing.T) {
		var out bytes.Buffer
		logger := zerolog.New(&out).Level(zerolog.DebugLevel)
		program := we.NewProgram(memory.NewJournal(), reducers(), we.WithLogger[tally](&logger))

		_, err := program.Dispatch(ctx, Add{Amount: 1})
		require.Nil(t, err)

		lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
		require.Len(t, lines, 1)
		assert.Equal(t, 1, bytes.Count(lines[0], []byte(`"message":`)))

		var entry map[string]any
		require.Nil(t, json.Unmarshal(lines[0], &entry))
		assert.Equal(t, "we-test:add", entry["name"])
		assert.Equal(t, "message applied", entry["message"])
	})

	t.Run("rejects nil remote messages", func(t *testing.T) {
		journal := memory.NewJournal()
		program := we.NewProgram(journal, reducers())

		assert.NotPanics(t, func() {
			assert.Equal(t, we.MessageName(""), we.MessageNameOf((*we.RemoteMessage)(nil)))
		})

		var notFound we.MessageNotFoundError
		_, err := program.Dispatch(ctx, (*we.RemoteMessage)(nil))
		assert.True(t, errors.As(err, &notFound))

		_, _, err = we.EncodeMessage((*we.RemoteMessage)(nil))
		assert.NotNil(t, err)
	})

	t.Run("skips recorded messages without a reducer on replay", func(t *testing.T) {
		journal := memory.NewJournal()
		id := we.StreamId{Type: "tally", Key: "skip"}

		_, err := journal.Append(ctx, id, we.Options(), Add{Amount: 3}, struct{ Other int }{Other: 1}, Add{Amount: 4})
		require.Nil(t, err)

		entity, err := we.NewProgram(journal, reducers(), we.WithStream[tally](id)).Load(ctx)
		require.Nil(t, err)
		assert.Equal(t, 7, entity.State.Total)
	})
}

func TestReplayer(t *testing.T) {
	ctx := context.Background()
	journal := memory.NewJournal()
	id := we.StreamId{Type: "tally", Key: "replayer"}
	replayer := &we.Replayer[tally]{Reducers: reducers()}

	_, err := journal.Append(ctx, id, we.Options(), Add{Amount: 1}, Note{Text: "a"})
	require.Nil(t, err)

	stream, err := journal.Load(ctx, id)
	require.Nil(t, err)

	t.Run("replays a stream", func(t *testing.T) {
		entity, err := replayer.Replay(ctx, stream)
		require.Nil(t, err)

		assert.Equal(t, tally{Total: 1, Notes: []string{"a"}}, *entity.State)
		assert.Equal(t, stream.Revision, entity.Revision)
		assert.True(t, entity.Initialized())
	})

	t.Run("continues without touching the base entity", func(t *testing.T) {
		base, err := replayer.Replay(ctx, we.Stream{Id: id, Messages: stream.Messages[:1], Revision: stream.Messages[0].Revision})
		require.Nil(t, err)

		next, err := replayer.Continue(ctx, base, stream.Messages[1:])
		require.Nil(t, err)

		assert.Equal(t, 1, base.State.Total)
		assert.Empty(t, base.State.Notes)
		assert.Equal(t, []string{"a"}, next.State.Notes)
	})

	t.Run("reports messages that fail to decode", func(t *testing.T) {
		broken := we.RecordedMessage{
			Message:  we.MessageNameOf(Add{}),
			Revision: stream.Revision,
			Data:     we.Data{Encoding: "application/xml", Data: []byte("<add/>")},
		}

		_, err := replayer.Continue(ctx, replayer.Initial(id), []we.RecordedMessage{broken})

		var encoding *we.InvalidEncodingError
		assert.True(t, errors.As(err, &encoding))
	})
}
