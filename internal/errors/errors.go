package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0   // Coordinator spawned every worker.
	ExitErrorGeneric  = 1   // A spawn, listen or serve failure.
	ExitErrorConfig   = 4   // The internal worker marker could not be parsed.
	ExitErrorCanceled = 130 // Startup was canceled before every worker was spawned.
)

// ConfigError reports an unusable configuration value.
type ConfigError struct {
	Message string
}

// Error returns the message.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// SpawnError reports that the coordinator failed to start a worker process.
type SpawnError struct {
	// Worker is the 1-based worker id that failed to start.
	Worker int
	// Cause is the underlying exec error.
	Cause error
}

// Error returns a message naming the worker and the cause.
func (e SpawnError) Error() string {
	return fmt.Sprintf("spawn worker %d: %v", e.Worker, e.Cause)
}

// Unwrap returns the underlying cause.
func (e SpawnError) Unwrap() error { return e.Cause }

// ListenError reports that a worker could not bind or keep serving its
// listening address.
type ListenError struct {
	// Addr is the address the worker tried to serve, e.g. ":8000".
	Addr string
	// Cause is the underlying network error.
	Cause error
}

// Error returns a message naming the address and the cause.
func (e ListenError) Error() string {
	return fmt.Sprintf("listen on %s: %v", e.Addr, e.Cause)
}

// Unwrap returns the underlying cause.
func (e ListenError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error returned by a role to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	return ExitErrorGeneric
}
