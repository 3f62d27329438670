package stats

import (
	"errors"
	"fmt"

	"github.com/roach88/protstat/internal/fasta"
)

// ErrorCode categorizes statistics errors.
type ErrorCode string

const (
	// ErrCodeEmptyInput indicates the input held zero records.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeInsufficientData indicates too few records for the statistic.
	ErrCodeInsufficientData ErrorCode = "INSUFFICIENT_DATA"

	// ErrCodeStreamRead indicates the input stream could not be fully read.
	ErrCodeStreamRead ErrorCode = "STREAM_READ"
)

// Error is returned when a statistic cannot be computed.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Records is the number of records available when the error occurred.
	Records int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewEmptyInputError creates an Error for a database without records.
func NewEmptyInputError() *Error {
	return &Error{
		Code:    ErrCodeEmptyInput,
		Message: "no records found",
	}
}

// NewInsufficientDataError creates an Error for a statistic that needs at
// least need records but only got n.
func NewInsufficientDataError(statistic string, n, need int) *Error {
	return &Error{
		Code:    ErrCodeInsufficientData,
		Message: fmt.Sprintf("%s needs at least %d records, got %d", statistic, need, n),
		Records: n,
	}
}

// NewStreamReadError wraps a read failure.
func NewStreamReadError(err error) *Error {
	return &Error{
		Code:    ErrCodeStreamRead,
		Message: "input stream could not be read",
		Err:     err,
	}
}

// IsEmptyInput reports whether err is an EMPTY_INPUT error.
func IsEmptyInput(err error) bool {
	return hasCode(err, ErrCodeEmptyInput)
}

// IsInsufficientData reports whether err is an INSUFFICIENT_DATA error.
func IsInsufficientData(err error) bool {
	return hasCode(err, ErrCodeInsufficientData)
}

// IsStreamRead reports whether err is a STREAM_READ error.
// A bare *fasta.ReadError also matches.
func IsStreamRead(err error) bool {
	if hasCode(err, ErrCodeStreamRead) {
		return true
	}
	var re *fasta.ReadError
	return errors.As(err, &re)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
