package cli

import (
	"io"

	apperrors "github.com/wordpace/wordpace/internal/errors"
)

// Exit codes for the wordpace CLI
const (
	// ExitSuccess indicates the session ended normally
	ExitSuccess = 0

	// ExitRuntimeFailure indicates the session stopped on an I/O or notification failure
	ExitRuntimeFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3
)

// ExitCode returns the exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := apperrors.AsCLIError(err)
	if cliErr == nil {
		return ExitRuntimeFailure
	}
	switch cliErr.Category {
	case apperrors.Argument, apperrors.Configuration:
		return ExitInvalidArguments
	default:
		return ExitRuntimeFailure
	}
}

// PrintError writes err to w with its remediation steps when it has any.
func PrintError(w io.Writer, err error) {
	apperrors.Fprint(w, err, apperrors.Runtime)
}
