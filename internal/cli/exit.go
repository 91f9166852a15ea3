package cli

import (
	"errors"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/variant"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitMalformed  = 3
	ExitCyclic     = 4
	ExitUnresolved = 5
)

// ToExitError classifies err into an ExitError. An ExitError is returned as
// is; a nil error yields nil.
func ToExitError(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitCode(err), Message: err.Error()}
}

// ExitCode maps the error taxonomy to process exit codes. The most specific
// configuration failure wins when several are joined.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, variant.ErrUnknownVariant):
		return ExitUsage
	case errors.Is(err, config.ErrMalformedConfig):
		return ExitMalformed
	case errors.Is(err, config.ErrCyclicVariantInheritance):
		return ExitCyclic
	case errors.Is(err, config.ErrUnresolvedConflict):
		return ExitUnresolved
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
