// Package errs declares sentinel errors shared across packages.
package errs

import "errors"

var (
	// ErrCoreOutOfRange is returned when the requested core is not in [0, core count).
	ErrCoreOutOfRange = errors.New("core out of range")
	// ErrColumnMismatch is returned when a row does not match the header width.
	ErrColumnMismatch = errors.New("row does not match header")
	// ErrWriterClosed is returned when writing to a closed writer.
	ErrWriterClosed = errors.New("writer is closed")
)
