package javaswitch

import (
	"context"
	stderrors "errors"

	"github.com/arthur-debert/javaswitch/pkg/errors"
)

// Process exit codes
const (
	ExitOK        = 0
	ExitCancelled = 1
	ExitError     = 2
)

// ExitCode maps a command error to the process exit status.
// Filesystem failures during a switch are not errors at this level and exit 0.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.GetErrorCode(err) == errors.ErrUserCancelled || stderrors.Is(err, context.Canceled) {
		return ExitCancelled
	}
	return ExitError
}

// IsCancelled reports whether err means the user declined
func IsCancelled(err error) bool {
	return ExitCode(err) == ExitCancelled
}
