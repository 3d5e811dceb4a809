package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup.
var (
	// ErrInvalidMass indicates a body mass that is zero, negative, NaN or Inf.
	ErrInvalidMass = errors.New("dynamo: body mass must be positive and finite")

	// ErrInvalidState indicates a body position or velocity that is NaN or Inf.
	ErrInvalidState = errors.New("dynamo: body position and velocity must be finite")

	// ErrInvalidTicks indicates a tick budget below one.
	ErrInvalidTicks = errors.New("dynamo: tick count must be positive")

	// ErrInvalidParams indicates integration constants outside their valid range.
	ErrInvalidParams = errors.New("dynamo: invalid integration parameters")

	// ErrNoIntegrator indicates a simulator built without one of its passes.
	ErrNoIntegrator = errors.New("dynamo: force and position integrators are required")
)

// ConfigError wraps a setup error with the offending body index.
// Index is -1 when the error is not tied to a body.
type ConfigError struct {
	Index   int
	Wrapped error
}

func (e *ConfigError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("configuration error: %v", e.Wrapped)
	}
	return fmt.Sprintf("configuration error: body %d: %v", e.Index, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
