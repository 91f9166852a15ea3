package config

import (
	"errors"
	"fmt"
)

// Validate checks the invariants every loader must guarantee before a Model
// is handed to the rest of the pipeline. All violations are reported
// together, each wrapped as ErrMalformedConfig.
func Validate(m *Model) error {
	var errs []error
	if m.Project == nil {
		return fmt.Errorf("%w: missing required \"project\" block", ErrMalformedConfig)
	}

	p := m.Project
	if p.Namespace == "" {
		errs = append(errs, fmt.Errorf("%w: project namespace is required", ErrMalformedConfig))
	}
	bounds := []struct {
		name  string
		value int
	}{{"min_sdk", p.MinSdk}, {"target_sdk", p.TargetSdk}, {"compile_sdk", p.CompileSdk}}
	for _, b := range bounds {
		if b.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: project %s is required and must be positive", ErrMalformedConfig, b.name))
		}
	}
	if p.MinSdk > 0 && p.TargetSdk > 0 && p.CompileSdk > 0 {
		if p.MinSdk > p.TargetSdk || p.TargetSdk > p.CompileSdk {
			errs = append(errs, fmt.Errorf("%w: SDK bounds must satisfy min <= target <= compile, got min=%d target=%d compile=%d",
				ErrMalformedConfig, p.MinSdk, p.TargetSdk, p.CompileSdk))
		}
	}

	for _, name := range m.VariantOrder {
		v := m.Variants[name]
		if v.InitWith == "" {
			continue
		}
		if _, ok := m.Variants[v.InitWith]; !ok {
			errs = append(errs, fmt.Errorf("%w: variant %q initialises from undeclared variant %q (%s)",
				ErrMalformedConfig, name, v.InitWith, v.Location))
		}
	}

	for module, c := range m.Constraints {
		if c.Version == "" {
			errs = append(errs, fmt.Errorf("%w: constraint %q has no version", ErrMalformedConfig, module))
		}
	}

	return errors.Join(errs...)
}
