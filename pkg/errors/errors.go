// Package errors provides custom error types for the guidemap system.
// These errors enable programmatic error checking across the reconciliation
// pipeline, in particular the distinction between failures that are terminal
// for a proposal and failures that are retried on a later pass.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the guidemap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguous indicates that a place lookup matched several equally
	// plausible locations and no single one could be chosen
	ErrAmbiguous = errors.New("ambiguous match")

	// ErrLookupUnavailable indicates a transient geocoder failure that may
	// succeed on a later reconciliation pass
	ErrLookupUnavailable = errors.New("lookup unavailable")

	// ErrInsufficientVotes indicates a proposal has not yet reached the vote
	// threshold. It is a deferral, not a failure.
	ErrInsufficientVotes = errors.New("insufficient votes")

	// ErrAlreadyProcessed indicates a proposal was already materialized by an
	// earlier or overlapping pass
	ErrAlreadyProcessed = errors.New("already processed")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrReadOnly indicates an attempt to modify a read-only resource
	ErrReadOnly = errors.New("read only")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// LookupError represents an error from the external geocoding service
type LookupError struct {
	City       string
	Country    string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lookup error for %q (status %d): %s", e.City, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("lookup error for %q: %s", e.City, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. All LookupErrors are transient; only the
// classified NotFound/Ambiguous outcomes are terminal for a proposal.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookupUnavailable
}

// NewLookupError creates a new LookupError
func NewLookupError(country, city string, statusCode int, err error) *LookupError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &LookupError{
		City:       city,
		Country:    country,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// IOError represents an error during document tree I/O
type IOError struct {
	Operation string // "read", "write", "list", "commit"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing structured data
type ParseError struct {
	Format  string // "yaml", "markdown", "body"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ProposalError represents a per-proposal failure during a reconciliation
// pass. A single ProposalError never aborts the pass for other proposals.
type ProposalError struct {
	ID        string
	Operation string // "tally", "validate", "materialize", "index", "report"
	Err       error
}

// Error implements the error interface
func (e *ProposalError) Error() string {
	return fmt.Sprintf("proposal %s: %s failed: %v", e.ID, e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ProposalError) Unwrap() error {
	return e.Err
}

// NewProposalError creates a new ProposalError
func NewProposalError(id, operation string, err error) *ProposalError {
	return &ProposalError{ID: id, Operation: operation, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsAmbiguous checks if an error is an ambiguous match error
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrAmbiguous)
}

// IsTransient checks if an error is a transient lookup failure that should
// be retried on a later pass rather than failing the proposal
func IsTransient(err error) bool {
	return errors.Is(err, ErrLookupUnavailable)
}

// IsAlreadyProcessed checks if an error marks a proposal as already handled
func IsAlreadyProcessed(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapProposal wraps an error as a ProposalError
func WrapProposal(id, operation string, err error) error {
	if err == nil {
		return nil
	}
	return NewProposalError(id, operation, err)
}
