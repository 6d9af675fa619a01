package we

import (
	"errors"
	"strings"
)

type MessageID string

func (id MessageID) String() string {
	return string(id)
}

type CorrelationID string

func (id CorrelationID) String() string {
	return string(id)
}

// StreamId names the journal stream a program records into.
type StreamId struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

type EncodedStreamId string

func (id StreamId) Encode() EncodedStreamId {
	return EncodedStreamId(strings.Join([]string{id.Type, id.Key}, "."))
}

func (id EncodedStreamId) String() string {
	return string(id)
}

func (id EncodedStreamId) Decode() (*StreamId, error) {
	separated := strings.Split(string(id), ".")
	if len(separated) < 2 {
		return nil, errors.New("expected . delimiter in stream id")
	}

	return &StreamId{
		Type: separated[0],
		Key:  strings.Join(separated[1:], "."),
	}, nil
}

type RecordedMessageMetadata struct {
	CausationId   MessageID     `json:"causationId,omitempty"`
	CorrelationId CorrelationID `json:"correlationId,omitempty"`
}

type RecordedMessage struct {
	Stream    StreamId                `json:"stream"`
	Revision  Revision                `json:"revision"`
	MessageID MessageID               `json:"id"`
	Message   MessageName             `json:"message"`
	Timestamp Timestamp               `json:"timestamp"`
	Metadata  RecordedMessageMetadata `json:"metadata"`
	Data      Data                    `json:"data"`
}

// Stream is every message recorded for a stream id, oldest first.
type Stream struct {
	Id       StreamId          `json:"id"`
	Messages []RecordedMessage `json:"messages,omitempty"`
	Revision Revision          `json:"revision"`
}
