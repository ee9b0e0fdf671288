package menu

import (
	"errors"
	"fmt"
)

// Sentinel errors for target configuration problems. They are reported by
// Target.Validate and NewNavigator before any input is synthesized.
var (
	// ErrInvalidCPULevel indicates a CPU level outside MinCPULevel..MaxCPULevel.
	ErrInvalidCPULevel = errors.New("cpu level out of range")

	// ErrSheikCPU indicates Sheik was requested for a CPU-controlled port.
	// Sheik is picked by holding A after stage select, which a CPU slot
	// cannot do.
	ErrSheikCPU = errors.New("sheik cannot be assigned to a cpu")

	// ErrNetplayCPU indicates a CPU level was requested together with a
	// connect code.
	ErrNetplayCPU = errors.New("cpu players are not available in netplay")

	// ErrNetplayZelda indicates Zelda was requested together with a connect
	// code. The online character select defaults the Zelda portrait to Sheik.
	ErrNetplayZelda = errors.New("zelda cannot be picked in netplay")

	// ErrUnsupportedStage indicates a stage with no known cursor position.
	ErrUnsupportedStage = errors.New("unsupported stage")

	// ErrUnsupportedCharacter indicates a character with no portrait.
	ErrUnsupportedCharacter = errors.New("unsupported character")

	// ErrInvalidConnectCode indicates a connect code character that is not
	// on the name entry grid.
	ErrInvalidConnectCode = errors.New("invalid connect code")
)

// ConfigError describes which Target field failed validation.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the sentinel for errors.Is support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field, value string, err error) error {
	return &ConfigError{Field: field, Value: value, Err: err}
}
