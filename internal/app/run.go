package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/depgraph"
	"github.com/specialistvlad/variantgrid/internal/fsutil"
	"github.com/specialistvlad/variantgrid/internal/lint"
	"github.com/specialistvlad/variantgrid/internal/report"
	"github.com/specialistvlad/variantgrid/internal/variant"
)

// Result is everything one run produced. Fields are filled as far as the
// pipeline got.
type Result struct {
	Model       *config.Model
	Variants    []*variant.Resolved
	Resolutions []*depgraph.Resolution
	Report      *lint.Report
	Written     []string
}

// Run executes the resolution pipeline. A policy violation still writes the
// reports before the error is returned.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.", "config", a.config.ConfigPath)
	res := &Result{}

	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return res, fmt.Errorf("failed to load configuration: %w", err)
	}
	res.Model = model
	a.logger.Info("Configuration loaded.", "project", model.Project.Namespace, "variants", len(model.VariantOrder))

	res.Variants, err = a.resolveVariants(ctx, model)
	if err != nil {
		return res, err
	}

	res.Resolutions, err = a.resolveDependencies(ctx, model, res.Variants)
	if err != nil {
		return res, err
	}

	rep, lintErr := lint.Check(ctx, model, res.Variants, res.Resolutions)
	res.Report = rep

	opts := report.OptionsFor(model)
	res.Written, err = report.Write(ctx, rep, opts)
	if err != nil {
		return res, err
	}

	shown := make([]string, len(res.Written))
	for i, p := range res.Written {
		shown[i] = fsutil.Display(model.ProjectDir, p, opts.AbsolutePaths)
	}
	report.Summary(a.outW, rep, shown)

	if lintErr != nil {
		return res, lintErr
	}
	a.logger.Debug("App.Run method finished.")
	return res, nil
}

func (a *App) resolveVariants(ctx context.Context, model *config.Model) ([]*variant.Resolved, error) {
	resolver, err := variant.NewResolver(ctx, model)
	if err != nil {
		return nil, err
	}
	if a.config.Variant == "" {
		return resolver.ResolveAll(ctx)
	}
	v, err := resolver.Resolve(ctx, a.config.Variant)
	if err != nil {
		return nil, err
	}
	return []*variant.Resolved{v}, nil
}

// resolveDependencies builds every classpath of every variant. Without
// variants the project-level declarations are still resolved. All conflicts
// are reported together.
func (a *App) resolveDependencies(ctx context.Context, model *config.Model, variants []*variant.Resolved) ([]*depgraph.Resolution, error) {
	targets := variants
	if len(targets) == 0 {
		targets = []*variant.Resolved{nil}
	}

	var resolutions []*depgraph.Resolution
	var errs []error
	for _, v := range targets {
		for _, cp := range depgraph.Classpaths {
			r, err := depgraph.Build(ctx, model, v, cp)
			if err != nil {
				name := "<project>"
				if v != nil {
					name = v.Name
				}
				errs = append(errs, fmt.Errorf("variant %s, %s classpath: %w", name, cp, err))
				continue
			}
			resolutions = append(resolutions, r)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	a.logger.Info("Dependencies resolved.", "resolutions", len(resolutions))
	return resolutions, nil
}
