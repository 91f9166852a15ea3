package config

import "errors"

// The error taxonomy of a build-configuration run. Stages wrap these with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is.
var (
	ErrMalformedConfig          = errors.New("malformed configuration")
	ErrCyclicVariantInheritance = errors.New("cyclic variant inheritance")
	ErrUnresolvedConflict       = errors.New("unresolved dependency conflict")
	ErrPolicyViolation          = errors.New("policy violation")
)
