// Package apperrors defines the application's error types and exit codes.
//
// Failures in this program are few and all fatal: a worker that cannot be
// spawned, or a listener that cannot be bound. Each is carried as a typed
// error wrapping its cause, so callers can inspect it with errors.As and
// errors.Is before mapping it to an exit code.
package apperrors
