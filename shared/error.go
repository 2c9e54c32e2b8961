package shared

import (
	"fmt"
)

// ClientError is a recoverable error carrying the HTTP status the
// boundary should answer with. Nothing in the room core is fatal to
// the process; one room's bad input or expiry never affects another.
type ClientError struct {
	code    int
	message string
}

// Error - implementing this on ClientError makes it compatible for places where want to return errors
func (err *ClientError) Error() string {
	return err.message
}

// Code is the HTTP status the controller should respond with
func (err *ClientError) Code() int {
	return err.code
}

// NewClientError - use this to return client errors from your service
func NewClientError(code int, message string) *ClientError {
	return &ClientError{
		code:    code,
		message: message,
	}
}

// NewInvalidInput flags bad creation or action parameters.
func NewInvalidInput(format string, args ...any) *ClientError {
	return NewClientError(StatusBadRequest, fmt.Sprintf(format, args...))
}

var (
	// ErrRoomNotFound covers reads and mutations against ids that do
	// not resolve, including rooms already purged after expiry.
	ErrRoomNotFound = NewClientError(StatusNotFound, "room not found")

	// ErrRoomExpired is distinct from not-found: the row may still be
	// readable before the purge sweep runs, but actions are refused.
	ErrRoomExpired = NewClientError(StatusGone, "room has expired")
)
