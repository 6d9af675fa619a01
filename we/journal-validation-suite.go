package we

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

var entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

// JournalValidationSuite checks the behaviour every Journal must share.
func NewJournalValidationSuite(ctx context.Context, journal Journal) *JournalValidationSuite {
	return &JournalValidationSuite{
		journal: journal,
		ctx:     ctx,
		faker:   faker.New(),
	}
}

type JournalValidationSuite struct {
	journal Journal
	ctx     context.Context
	faker   faker.Faker
}

type ValidationMessage struct {
	TestStringValue string `json:"test_string_value"`
	TestIntValue    int    `json:"test_int_value"`
}

func (s *JournalValidationSuite) Run(t *testing.T) {
	t.Run("loads an initial revision", s.LoadInitial)
	t.Run("loads a revision with messages", s.LoadsRevisionWithMessages)
	t.Run("appends a single message", s.AppendsSingleMessage)
	t.Run("appends multiple messages in order", s.AppendsMultipleMessages)
	t.Run("keeps remote payloads", s.KeepsRemotePayloads)
	t.Run("returns a revision conflict with an initial revision", s.RevisionConflictOnInitialRevision)
	t.Run("returns a revision conflict on subsequent revision", s.RevisionConflictOnSubsequentRevision)
	t.Run("supports causation id", s.Causation)
}

func (s *JournalValidationSuite) MakeTestStreamId() StreamId {
	return StreamId{
		Type: "go-test",
		Key:  ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String(),
	}
}

func (s *JournalValidationSuite) MakeTestMessage() ValidationMessage {
	return ValidationMessage{
		TestStringValue: s.faker.Lorem().Sentence(10),
		TestIntValue:    s.faker.Int(),
	}
}

func (s *JournalValidationSuite) MakeTestMessages(count int) []Message {
	messages := make([]Message, count)
	for i := 0; i < count; i++ {
		messages[i] = s.MakeTestMessage()
	}

	return messages
}

func (s *JournalValidationSuite) LoadInitial(t *testing.T) {
	id := s.MakeTestStreamId()
	stream, err := s.journal.Load(s.ctx, id)
	if !assert.Nil(t, err) {
		return
	}

	assert.Empty(t, stream.Messages)
	assert.Equal(t, InitialRevision, stream.Revision)
	assert.EqualValues(t, id, stream.Id)
}

func (s *JournalValidationSuite) AppendsSingleMessage(t *testing.T) {
	id := s.MakeTestStreamId()
	revision, err := s.journal.Append(s.ctx, id, Options(), s.MakeTestMessage())
	if !assert.Nil(t, err) {
		return
	}

	assert.NotEqual(t, InitialRevision, revision)
}

func (s *JournalValidationSuite) AppendsMultipleMessages(t *testing.T) {
	id := s.MakeTestStreamId()
	messages := s.MakeTestMessages(17)

	revision, err := s.journal.Append(s.ctx, id, Options(), messages...)
	if !assert.Nil(t, err) {
		return
	}

	stream, err := s.journal.Load(s.ctx, id)
	if !assert.Nil(t, err) {
		return
	}

	if !assert.Len(t, stream.Messages, 17) {
		return
	}

	assert.Equal(t, revision, stream.Revision)
	for i, recorded := range stream.Messages {
		var decoded ValidationMessage
		if !assert.Nil(t, UnmarshalFromData(recorded.Data, &decoded)) {
			return
		}

		assert.Equal(t, messages[i], decoded)
		assert.Equal(t, MessageNameOf(messages[i]), recorded.Message)
		if i > 0 {
			assert.Greater(t, recorded.Revision.String(), stream.Messages[i-1].Revision.String())
		}
	}
}

func (s *JournalValidationSuite) LoadsRevisionWithMessages(t *testing.T) {
	id := s.MakeTestStreamId()

	_, err := s.journal.Append(s.ctx, id, Options(), s.MakeTestMessage())
	if !assert.Nil(t, err) {
		return
	}

	stream, err := s.journal.Load(s.ctx, id)
	if !assert.Nil(t, err) {
		return
	}

	assert.NotEmpty(t, stream.Messages)
	assert.NotEqual(t, InitialRevision, stream.Revision)
	assert.EqualValues(t, id, stream.Id)
}

func (s *JournalValidationSuite) KeepsRemotePayloads(t *testing.T) {
	id := s.MakeTestStreamId()
	remote, err := NewRemoteMessage("go-test:remote", s.MakeTestMessage())
	if !assert.Nil(t, err) {
		return
	}

	_, err = s.journal.Append(s.ctx, id, Options(), remote)
	if !assert.Nil(t, err) {
		return
	}

	last, err := s.Last(id)
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, MessageName("go-test:remote"), last.Message)
	assert.Equal(t, remote.Payload, last.Data)
}

func (s *JournalValidationSuite) Last(id StreamId) (*RecordedMessage, error) {
	loaded, err := s.journal.Load(s.ctx, id)
	if err != nil {
		return nil, err
	}

	length := len(loaded.Messages)
	if length == 0 {
		return nil, errors.New("no messages found")
	}

	return &loaded.Messages[length-1], nil
}

func (s *JournalValidationSuite) RevisionConflictOnInitialRevision(t *testing.T) {
	id := s.MakeTestStreamId()
	message := s.MakeTestMessage()

	_, err := s.journal.Append(s.ctx, id, Options(WithExpectedRevision(InitialRevision)), message)
	if !assert.Nil(t, err) {
		return
	}

	_, err = s.journal.Append(s.ctx, id, Options(WithExpectedRevision(InitialRevision)), message)
	assert.Equal(t, RevisionConflict, err)
}

func (s *JournalValidationSuite) RevisionConflictOnSubsequentRevision(t *testing.T) {
	id := s.MakeTestStreamId()
	message := s.MakeTestMessage()

	first, err := s.journal.Append(s.ctx, id, Options(), message)
	if !assert.Nil(t, err) {
		return
	}

	_, err = s.journal.Append(s.ctx, id, Options(WithExpectedRevision(first)), message)
	if !assert.Nil(t, err) {
		return
	}

	_, err = s.journal.Append(s.ctx, id, Options(WithExpectedRevision(first)), message)
	assert.Equal(t, RevisionConflict, err)
}

func (s *JournalValidationSuite) Causation(t *testing.T) {
	id := s.MakeTestStreamId()
	message := s.MakeTestMessage()

	_, err := s.journal.Append(s.ctx, id, Options(), message)
	if !assert.Nil(t, err) {
		return
	}

	first, err := s.Last(id)
	if !assert.Nil(t, err) {
		return
	}

	correlationId := CorrelationID(strings.Join([]string{"message/", first.MessageID.String()}, ""))

	_, err = s.journal.Append(s.ctx, id, Options(WithCausationId(correlationId, first.MessageID)), message)
	if !assert.Nil(t, err) {
		return
	}

	second, err := s.Last(id)
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, correlationId, second.Metadata.CorrelationId)
	assert.Equal(t, first.MessageID, second.Metadata.CausationId)
}
