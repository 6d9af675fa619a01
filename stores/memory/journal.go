// Package memory keeps journal streams in process memory. Nothing survives a
// restart.
package memory

import (
	"context"
	"sync"

	"github.com/weegigs/wee-counter-go/we"
)

type JournalOption func(*Journal)

func NewJournal(options ...JournalOption) *Journal {
	journal := &Journal{
		streams:   make(map[we.EncodedStreamId][]we.RecordedMessage),
		revisions: we.NewRevisionGenerator(),
	}

	for _, option := range options {
		option(journal)
	}

	if journal.clock == nil {
		journal.clock = defaultClock{}
	}

	if journal.ids == nil {
		journal.ids = NewDefaultIdGenerator(journal.clock)
	}

	return journal
}

type Journal struct {
	lk        sync.RWMutex
	streams   map[we.EncodedStreamId][]we.RecordedMessage
	revisions *we.RevisionGenerator
	clock     Clock
	ids       IDGenerator
}

func (j *Journal) Load(ctx context.Context, id we.StreamId) (we.Stream, error) {
	if err := ctx.Err(); err != nil {
		return we.Stream{}, err
	}

	j.lk.RLock()
	defer j.lk.RUnlock()

	recorded := j.streams[id.Encode()]
	messages := make([]we.RecordedMessage, len(recorded))
	copy(messages, recorded)

	return we.Stream{
		Id:       id,
		Messages: messages,
		Revision: revisionOf(recorded),
	}, nil
}

func (j *Journal) Append(ctx context.Context, id we.StreamId, options we.AppendOptions, messages ...we.Message) (we.Revision, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	records := make([]we.RecordedMessage, len(messages))
	for index, message := range messages {
		name, data, err := we.EncodeMessage(message)
		if err != nil {
			return "", err
		}

		records[index] = we.RecordedMessage{
			Stream:    id,
			MessageID: j.ids.Create(),
			Message:   name,
			Data:      data,
			Metadata:  options.RecordedMessageMetadata,
		}
	}

	j.lk.Lock()
	defer j.lk.Unlock()

	key := id.Encode()
	current := revisionOf(j.streams[key])

	expected := options.ExpectedRevision
	if expected != "" && expected != current {
		return "", we.RevisionConflict
	}

	if len(records) == 0 {
		return current, nil
	}

	now := j.clock.Now()
	timestamp := we.TimestampFromTime(now)
	for index := range records {
		records[index].Revision = j.revisions.NewRevision(now)
		records[index].Timestamp = timestamp
	}

	j.streams[key] = append(j.streams[key], records...)

	return records[len(records)-1].Revision, nil
}

// Remove drops a stream and reports how many messages it held.
func (j *Journal) Remove(ctx context.Context, id we.StreamId) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	j.lk.Lock()
	defer j.lk.Unlock()

	key := id.Encode()
	count := len(j.streams[key])
	delete(j.streams, key)

	return count, nil
}

func revisionOf(messages []we.RecordedMessage) we.Revision {
	if len(messages) == 0 {
		return we.InitialRevision
	}

	return messages[len(messages)-1].Revision
}
