package we

import "fmt"

type MessageNotFoundError struct {
	Message MessageName
}

func (e MessageNotFoundError) Error() string {
	return fmt.Sprintf("unknown message: %s", e.Message)
}

func MessageNotFound(message MessageName) MessageNotFoundError {
	return MessageNotFoundError{Message: message}
}

// InvalidMessageError is returned when a message cannot be applied to the
// current state, most often because its payload does not decode.
type InvalidMessageError struct {
	Message MessageName
	Cause   error
}

func (e InvalidMessageError) Error() string {
	return fmt.Sprintf("invalid message %s: %v", e.Message, e.Cause)
}

func (e InvalidMessageError) Unwrap() error {
	return e.Cause
}

func InvalidMessage(message MessageName, cause error) InvalidMessageError {
	return InvalidMessageError{Message: message, Cause: cause}
}
