package errors

import (
	"errors"
	"fmt"
)

// NoStraightsError indicates the straights input contained no extractable
// 5-digit sequences.
//
// Fields:
//   - Source: Human description of where the straights came from (may be empty)
type NoStraightsError struct {
	Source string
}

// Error implements the error interface.
//
// Returns:
//   - string: The error message, naming the source when known
func (e *NoStraightsError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("no straights detected in %s", e.Source)
	}
	return "no straights detected"
}

// NoWinnersError indicates the winners input (file or paste) contained no
// extractable 5-digit sequences.
//
// Fields:
//   - Source: Human description of the winners source (e.g. "file winners.csv")
type NoWinnersError struct {
	Source string
}

// Error implements the error interface.
//
// Returns:
//   - string: The error message, naming the source when known
func (e *NoWinnersError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("no valid 5-digit winners found in %s", e.Source)
	}
	return "no valid 5-digit winners found"
}

// SourceReadError indicates an input source could not be read.
//
// Decoding never fails (undecodable bytes are dropped), so only genuine
// read failures, missing files and oversize inputs end up here.
//
// Fields:
//   - Role: Which input failed ("straights", "winners", "exclude")
//   - Source: Human description of the source
//   - Err: The underlying I/O error
type SourceReadError struct {
	Role   string
	Source string
	Err    error
}

// Error implements the error interface.
//
// Returns:
//   - string: Message in the format "couldn't read <role> list from <source>: <err>"
func (e *SourceReadError) Error() string {
	msg := fmt.Sprintf("couldn't read %s list", e.Role)
	if e.Source != "" {
		msg += " from " + e.Source
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying I/O error.
func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// NewSourceReadError creates a SourceReadError.
//
// Parameters:
//   - role: Which input failed ("straights", "winners", "exclude")
//   - source: Human description of the source
//   - err: Underlying error
//
// Returns:
//   - *SourceReadError: New source read error
func NewSourceReadError(role, source string, err error) *SourceReadError {
	return &SourceReadError{Role: role, Source: source, Err: err}
}

// IsNoStraights checks if err is a NoStraightsError and returns it.
func IsNoStraights(err error) (*NoStraightsError, bool) {
	var e *NoStraightsError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNoWinners checks if err is a NoWinnersError and returns it.
func IsNoWinners(err error) (*NoWinnersError, bool) {
	var e *NoWinnersError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsSourceRead checks if err is a SourceReadError and returns it.
func IsSourceRead(err error) (*SourceReadError, bool) {
	var e *SourceReadError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsInputError reports whether err is any of the user-input errors
// (NoStraightsError, NoWinnersError, SourceReadError).
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err wraps one of the input error types
func IsInputError(err error) bool {
	if _, ok := IsNoStraights(err); ok {
		return true
	}
	if _, ok := IsNoWinners(err); ok {
		return true
	}
	_, ok := IsSourceRead(err)
	return ok
}
