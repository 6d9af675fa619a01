package we

import "github.com/pkg/errors"

type MessageName string

func (n MessageName) String() string {
	return string(n)
}

// Message is any value delivered to a program. Its name selects the reducer.
type Message any

// RemoteMessage is a message delivered by name with an encoded payload, as
// produced by hosts that cannot construct the typed value themselves.
type RemoteMessage struct {
	Message MessageName `json:"message"`
	Payload Data        `json:"payload"`
}

func (m RemoteMessage) TypeName() string {
	return m.Message.String()
}

func NewRemoteMessage(name MessageName, payload any) (RemoteMessage, error) {
	data, err := MarshalToData(payload)
	if err != nil {
		return RemoteMessage{}, err
	}

	return RemoteMessage{Message: name, Payload: data}, nil
}

func MessageNameOf(message Message) MessageName {
	switch msg := message.(type) {
	case RemoteMessage:
		return msg.Message
	case *RemoteMessage:
		if msg == nil {
			return ""
		}
		return msg.Message
	default:
		return MessageName(NameOf(message))
	}
}

// EncodeMessage returns the name and payload recorded for a message. Remote
// messages keep the payload they arrived with.
func EncodeMessage(message Message) (MessageName, Data, error) {
	switch msg := message.(type) {
	case RemoteMessage:
		return msg.Message, msg.Payload, nil
	case *RemoteMessage:
		if msg == nil {
			return "", Data{}, errors.New("nil remote message")
		}
		return msg.Message, msg.Payload, nil
	}

	data, err := MarshalToData(message)
	if err != nil {
		return "", Data{}, err
	}

	return MessageNameOf(message), data, nil
}
