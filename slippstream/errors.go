package slippstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for the stream client.
var (
	// ErrNotRunning indicates Dispatch was called before a successful
	// Connect or after Shutdown.
	ErrNotRunning = errors.New("client is not running")

	// ErrDisconnected indicates the console closed the session. Every
	// message received before the disconnect is delivered first.
	ErrDisconnected = errors.New("stream disconnected")

	// ErrAlreadyConnected indicates Connect was called on a client that
	// already has a worker.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrMissingType indicates an envelope without a type discriminant.
	ErrMissingType = errors.New("envelope has no type")
)

// ConnectionError represents a failure to establish the session.
type ConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("connection failed: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a new connection error.
func NewConnectionError(message string, cause error) error {
	return &ConnectionError{Message: message, Cause: cause}
}

// EnvelopeError is returned by Dispatch when a packet is not a valid
// envelope. The session is still usable.
type EnvelopeError struct {
	Data  []byte
	Cause error
}

// Error implements the error interface.
func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("invalid envelope (%d bytes): %v", len(e.Data), e.Cause)
}

// Unwrap returns the underlying cause.
func (e *EnvelopeError) Unwrap() error {
	return e.Cause
}
