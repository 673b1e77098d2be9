package cli

import (
	"errors"
	"fmt"
	"strings"

	verrors "github.com/iamNilotpal/verify/pkg/errors"
)

const (
	ExitSuccess      = 0
	ExitMismatch     = 1
	ExitUsageError   = 2
	ExitGeneralError = 3
	ExitConfigError  = 10
)

var (
	// ErrUsage marks invalid arguments or flags.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig marks configuration that could not be loaded or applied.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError maps an error returned by a command to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case verrors.IsVerificationError(err):
		return ExitMismatch
	case verrors.IsInvalidChecksumType(err), errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	// cobra has no typed error for unknown sub commands. legacyArgs in args.go
	// builds them as fmt.Errorf("unknown command %q for %q", ...).
	if strings.HasPrefix(err.Error(), "unknown command") {
		return ExitUsageError
	}

	return ExitGeneralError
}

func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
