package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested file or artifact does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIssuesFound indicates validation completed and produced issues.
	// Validation mode maps this to a non-zero exit; audit mode ignores it.
	ErrIssuesFound = errors.New("validation issues found")

	// ErrSourceUnavailable indicates a translation source is not configured.
	ErrSourceUnavailable = errors.New("translation source unavailable")

	// ErrDeployNotConfigured indicates no deploy command is configured.
	ErrDeployNotConfigured = errors.New("deploy command not configured")
)

// ParseError indicates a survey file is not valid JSON.
// It is fatal for the run on that file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s: invalid JSON", e.Path)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
