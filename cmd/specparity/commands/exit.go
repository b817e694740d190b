package commands

import (
	"errors"

	"github.com/erraggy/specparity/parityerrors"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitError  = 2
)

// failedError signals a completed run that found discrepancies. The report has
// already been printed.
type failedError struct{}

func (failedError) Error() string { return "validation failed" }

// reportedError wraps an error whose details were already written to the
// report output, so Execute does not print it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// usageErr marks invalid flags or arguments.
type usageErr struct {
	err error
}

func (e *usageErr) Error() string { return e.err.Error() }
func (e *usageErr) Unwrap() error { return e.err }

func usageError(err error) error {
	return &usageErr{err: err}
}

// alreadyReported reports whether err's details are already on the report
// output, so Execute must not print it again.
func alreadyReported(err error) bool {
	var (
		failed   failedError
		reported *reportedError
	)
	return errors.As(err, &failed) || errors.As(err, &reported)
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	var failed failedError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &failed):
		return ExitFailed
	case errors.Is(err, parityerrors.ErrMissingInput):
		return ExitFailed
	default:
		// malformed input, configuration and usage errors
		return ExitError
	}
}
