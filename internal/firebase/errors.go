package firebase

import (
	"errors"
	"reflect"
)

var (
	ErrAPIResponse          = errors.New("api error")
	ErrArgument             = errors.New("argument error")
	ErrCommunication        = errors.New("communication error")
	ErrCommunicationTimeout = errors.New("communication timeout error")
	ErrConfiguration        = errors.New("configuration error")
	ErrInternal             = errors.New("internal error")
)

// DefaultExitCode is the exit code carried by every failure surfaced to the
// caller, regardless of whether the service reported a structured error or
// the response was entirely unexpected.
const DefaultExitCode = 2

type Error struct {
	Message string
	Exit    int
}

func NewError(message string) *Error { return &Error{Message: message, Exit: DefaultExitCode} }

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return reflect.TypeOf(e) == reflect.TypeOf(target) }
