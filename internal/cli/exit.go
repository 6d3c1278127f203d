package cli

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/tracalorie/internal/tracker"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1 // storage or unexpected failure
	ExitUsage = 2 // bad arguments, bad input, unknown id
)

// ExitCodeError carries the process exit code alongside the message.
type ExitCodeError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

func usageError(format string, args ...any) *ExitCodeError {
	return &ExitCodeError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// exitCode maps an error to a process exit code. Domain input errors are
// usage errors; everything else is a plain failure.
func exitCode(err error) int {
	var ee *ExitCodeError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, tracker.ErrInvalidInput),
		errors.Is(err, tracker.ErrNotFound),
		errors.Is(err, tracker.ErrNoSelection):
		return ExitUsage
	}
	return ExitError
}
