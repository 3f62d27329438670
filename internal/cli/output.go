package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/roach88/protstat/internal/config"
	"github.com/roach88/protstat/internal/stats"
	"github.com/roach88/protstat/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Data failure (empty input, single record, unreadable stream)
	ExitCommandError = 2 // Command error (missing file, bad config, store unavailable)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric          = "E001" // Generic/unknown error
	ErrCodeEmptyInput       = "E002" // No records in a database
	ErrCodeInsufficientData = "E003" // Too few records for a statistic
	ErrCodeReadFailed       = "E004" // Input stream could not be read
	ErrCodeNotFound         = "E005" // Database file or stored run not found
	ErrCodeConfigInvalid    = "E006" // Config file or flags invalid
	ErrCodeStoreFailed      = "E007" // History store failure
)

// errStore marks errors raised by the history store.
var errStore = errors.New("history store")

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	reported bool // already written by an OutputFormatter
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already written to the user by an
// OutputFormatter, so callers should only set the exit status.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.reported
}

// classify maps an error onto a CLI error code and exit code.
func classify(err error) (code string, exit int) {
	var cfgErr *config.Error
	switch {
	case errors.As(err, &cfgErr):
		return ErrCodeConfigInvalid, ExitCommandError
	case errors.Is(err, errStore):
		return ErrCodeStoreFailed, ExitCommandError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, store.ErrNotFound):
		return ErrCodeNotFound, ExitCommandError
	case stats.IsEmptyInput(err):
		return ErrCodeEmptyInput, ExitFailure
	case stats.IsInsufficientData(err):
		return ErrCodeInsufficientData, ExitFailure
	case stats.IsStreamRead(err):
		return ErrCodeReadFailed, ExitFailure
	default:
		return ErrCodeGeneric, ExitFailure
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format. In text
// mode, render writes the human-readable form.
func (f *OutputFormatter) Success(data any, render func(w io.Writer) error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	if render == nil {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	}
	return render(f.Writer)
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.GetErrWriter(), "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.GetErrWriter(), "Details: %v\n", details)
	}
	return nil
}

// Fail reports err in the configured format and returns it as an
// ExitError carrying the matching exit code.
func (f *OutputFormatter) Fail(message string, err error) error {
	code, exit := classify(err)
	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err), nil)
	return &ExitError{Code: exit, Message: message, Err: err, reported: true}
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
