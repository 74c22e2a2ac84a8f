package entry

import (
	"fmt"
	"strings"

	"github.com/gorewood/dayone/internal/output"
)

// ValidationError is returned when an identifier or location is rejected.
// The entry is left unchanged.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// ExitCode implements output.ExitCoder.
func (e *ValidationError) ExitCode() int {
	return output.ExitUserError
}

// IOError is returned when a template cannot be loaded or rendered, or the
// entry file cannot be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ExitCode implements output.ExitCoder.
func (e *IOError) ExitCode() int {
	return output.ExitSystemError
}
