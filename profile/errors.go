package profile

import (
	"errors"
	"fmt"
)

// Sentinel errors for profile validation.
var (
	ErrMissingValue     = errors.New("value is required")
	ErrInvalidPort      = errors.New("invalid port")
	ErrPortInUse        = errors.New("port is already driven by the bot")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrUnknownStage     = errors.New("unknown stage")

	// ErrBadFastForward indicates a matchup known to crash the emulator in
	// fast-forward mode.
	ErrBadFastForward = errors.New("matchup crashes in fast-forward mode")
)

// FieldError names the profile field that failed validation.
type FieldError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the sentinel for errors.Is support.
func (e *FieldError) Unwrap() error {
	return e.Err
}
