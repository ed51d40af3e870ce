// Package errdefs defines the error kinds surfaced by fdb workflows.
//
// Every failure that reaches a command handler belongs to one of the
// sentinel kinds below so the CLI can report a single diagnostic line
// and exit nonzero without re-classifying errors at the top level.
package errdefs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Wrap these with fmt.Errorf("...: %w", ...) so
// callers can test with errors.Is.
var (
	// ErrInvalidInput marks user-supplied values that cannot be sent downstream.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout marks an exhausted wait budget.
	ErrTimeout = errors.New("timeout")

	// ErrNotReady marks a resource that exists but has not converged yet.
	ErrNotReady = errors.New("resource not ready")

	// ErrDecode marks a malformed payload from an otherwise successful fetch.
	ErrDecode = errors.New("decode error")

	// ErrAborted marks an operation cancelled at the confirmation prompt.
	ErrAborted = errors.New("aborted")
)

// ToolError reports a failed external CLI invocation together with the
// diagnostics it produced.
type ToolError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Tool, strings.Join(e.Args, " "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError wraps a failed invocation of an external tool.
func NewToolError(tool string, args []string, stderr string, err error) error {
	return &ToolError{Tool: tool, Args: args, Stderr: stderr, Err: err}
}

// IsToolError checks whether err carries an external tool failure.
func IsToolError(err error) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr)
}
