// This file contains the logic for translating decoded HCL schema structs
// into the format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translator accumulates blocks from every file into a single model.
type translator struct {
	ctx      context.Context
	model    *config.Model
	lintSeen bool
	buildDir string
}

func newTranslator(ctx context.Context, buildDir, projectDir string) *translator {
	return &translator{
		ctx:      ctx,
		buildDir: buildDir,
		model: &config.Model{
			Plugins:     make(map[string]*config.Plugin),
			Variants:    make(map[string]*config.BuildVariant),
			Constraints: make(map[string]*config.Constraint),
			Artifacts:   make(map[string]*config.Artifact),
			Lint:        config.DefaultLintPolicy(buildDir),
			ProjectDir:  projectDir,
		},
	}
}

func location(r hcl.Range) config.Location {
	return config.Location{File: r.Filename, Line: r.Start.Line}
}

// merge folds one decoded file into the model.
func (t *translator) merge(root *fileRoot, evalCtx *hcl.EvalContext) error {
	for _, p := range root.Projects {
		if t.model.Project != nil {
			return fmt.Errorf("%w: duplicate \"project\" block at %s, first declared at %s",
				config.ErrMalformedConfig, location(p.DefRange), t.model.Project.Location)
		}
		t.model.Project = translateProject(p)
	}
	for _, p := range root.Plugins {
		if err := t.mergePlugin(p); err != nil {
			return err
		}
	}
	for _, v := range root.Variants {
		if err := t.addVariant(v, evalCtx); err != nil {
			return err
		}
	}
	for _, d := range root.Dependencies {
		decls, err := translateDependencies(d, evalCtx)
		if err != nil {
			return err
		}
		t.model.Dependencies = append(t.model.Dependencies, decls...)
	}
	for _, c := range root.Constraints {
		module, err := config.ParseModule(c.Module)
		if err != nil {
			return err
		}
		if prev, ok := t.model.Constraints[module]; ok {
			return fmt.Errorf("%w: duplicate constraint for %s at %s, first declared at %s",
				config.ErrMalformedConfig, module, location(c.DefRange), prev.Location)
		}
		t.model.Constraints[module] = &config.Constraint{Module: module, Version: c.Version, Location: location(c.DefRange)}
	}
	for _, a := range root.Artifacts {
		art, err := translateArtifact(a)
		if err != nil {
			return err
		}
		key := art.Coordinate.String()
		if _, ok := t.model.Artifacts[key]; ok {
			return fmt.Errorf("%w: duplicate artifact %s at %s", config.ErrMalformedConfig, key, location(a.DefRange))
		}
		t.model.Artifacts[key] = art
	}
	for _, l := range root.Lints {
		if t.lintSeen {
			return fmt.Errorf("%w: duplicate \"lint\" block", config.ErrMalformedConfig)
		}
		t.lintSeen = true
		policy, err := config.BuildLintPolicy(t.buildDir, config.LintSettings(*l))
		if err != nil {
			return err
		}
		t.model.Lint = policy
	}
	return nil
}

func translateProject(p *projectBlock) *config.ProjectConfig {
	pc := &config.ProjectConfig{
		Namespace:                 p.Namespace,
		ApplicationID:             p.ApplicationID,
		MinSdk:                    p.MinSdk,
		TargetSdk:                 p.TargetSdk,
		CompileSdk:                p.CompileSdk,
		VersionCode:               p.VersionCode,
		VersionName:               p.VersionName,
		TestInstrumentationRunner: p.TestInstrumentationRunner,
		BuildFeatures:             p.BuildFeatures,
		Location:                  location(p.DefRange),
	}
	if p.CompileOptions != nil {
		pc.CompileOptions = config.CompileOptions{
			SourceCompatibility: p.CompileOptions.SourceCompatibility,
			TargetCompatibility: p.CompileOptions.TargetCompatibility,
			JvmTarget:           p.CompileOptions.JvmTarget,
		}
	}
	return pc
}

// mergePlugin combines repeated plugin requests: the version comes from
// whichever block declares one and the plugin is applied if any block
// applies it.
func (t *translator) mergePlugin(p *pluginBlock) error {
	apply := p.Apply == nil || *p.Apply
	existing, ok := t.model.Plugins[p.ID]
	if !ok {
		t.model.Plugins[p.ID] = &config.Plugin{ID: p.ID, Version: p.Version, Apply: apply, Location: location(p.DefRange)}
		return nil
	}
	if p.Version != "" {
		if existing.Version != "" && existing.Version != p.Version {
			return fmt.Errorf("%w: plugin %q requested with versions %s and %s",
				config.ErrMalformedConfig, p.ID, existing.Version, p.Version)
		}
		existing.Version = p.Version
	}
	existing.Apply = existing.Apply || apply
	return nil
}

func (t *translator) addVariant(v *variantBlock, evalCtx *hcl.EvalContext) error {
	logger := ctxlog.FromContext(t.ctx).With("variant", v.Name)
	if prev, ok := t.model.Variants[v.Name]; ok {
		return fmt.Errorf("%w: variant %q declared twice (%s and %s)",
			config.ErrMalformedConfig, v.Name, prev.Location, location(v.DefRange))
	}

	bv := &config.BuildVariant{
		Name:              v.Name,
		InitWith:          v.InitWith,
		MinifyEnabled:     v.MinifyEnabled,
		ShrinkResources:   v.ShrinkResources,
		Debuggable:        v.Debuggable,
		ProguardFiles:     v.ProguardFiles,
		MatchingFallbacks: v.MatchingFallbacks,
		Location:          location(v.DefRange),
	}
	if v.Dependencies != nil {
		decls, err := translateDependencies(v.Dependencies, evalCtx)
		if err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
		bv.Dependencies = decls
	}

	t.model.Variants[v.Name] = bv
	t.model.VariantOrder = append(t.model.VariantOrder, v.Name)
	logger.Debug("Translated variant.", "init_with", v.InitWith, "dependencies", len(bv.Dependencies))
	return nil
}

// translateDependencies evaluates every scope attribute of a dependencies
// block. Each list element is evaluated on its own so that declarations keep
// their exact line.
func translateDependencies(d *dependenciesBlock, evalCtx *hcl.EvalContext) ([]*config.DependencyDeclaration, error) {
	attrs, diags := d.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", config.ErrMalformedConfig, diags)
	}

	// JustAttributes returns a map; sort by source position to keep
	// declaration order.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return attrs[names[i]].Range.Start.Byte < attrs[names[j]].Range.Start.Byte
	})

	var decls []*config.DependencyDeclaration
	for _, name := range names {
		attr := attrs[name]
		scope, err := config.ParseScope(name)
		if err != nil {
			return nil, fmt.Errorf("%w (%s)", err, location(attr.Range))
		}

		elems, diags := hcl.ExprList(attr.Expr)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: scope %s must be a list: %w", config.ErrMalformedConfig, name, diags)
		}
		for _, expr := range elems {
			raw, err := evalString(expr, evalCtx)
			if err != nil {
				return nil, err
			}
			c, err := config.ParseCoordinate(raw)
			if err != nil {
				return nil, fmt.Errorf("%w (%s)", err, location(expr.Range()))
			}
			decls = append(decls, &config.DependencyDeclaration{Scope: scope, Coordinate: c, Location: location(expr.Range())})
		}
	}
	return decls, nil
}

func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("%w: %w", config.ErrMalformedConfig, diags)
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil || val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("%w: expected a string at %s", config.ErrMalformedConfig, location(expr.Range()))
	}
	return val.AsString(), nil
}

func translateArtifact(a *artifactBlock) (*config.Artifact, error) {
	c, err := config.ParseCoordinate(a.Coordinate)
	if err != nil {
		return nil, err
	}
	art := &config.Artifact{Coordinate: c, Latest: a.Latest}
	for _, r := range a.Requires {
		req, err := config.ParseCoordinate(r)
		if err != nil {
			return nil, fmt.Errorf("artifact %s: %w", a.Coordinate, err)
		}
		art.Requires = append(art.Requires, req)
	}
	return art, nil
}
