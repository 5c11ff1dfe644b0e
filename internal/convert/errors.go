package convert

import (
	"errors"
	"fmt"
)

// ReadError reports a source file that was missing or unreadable.
type ReadError struct {
	// File is the source file's base name.
	File string

	// Cause is the underlying I/O error.
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.File, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ParseError reports source text that is not a valid project document.
type ParseError struct {
	// File is the source file's base name.
	File string

	// Cause is the underlying decode error.
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WriteError reports a destination that could not be written.
type WriteError struct {
	// File is the source file's base name.
	File string

	// Path is the destination path that failed.
	Path string

	// Cause is the underlying I/O error.
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s for %s: %v", e.Path, e.File, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Classify maps a conversion error to a stable failure-kind label for
// metrics and summaries.
func Classify(err error) string {
	var (
		readErr  *ReadError
		parseErr *ParseError
		writeErr *WriteError
	)
	switch {
	case errors.As(err, &readErr):
		return "read"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &writeErr):
		return "write"
	default:
		return "internal"
	}
}
