package yamlconfig

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/variantgrid/internal/config"
	"gopkg.in/yaml.v3"
)

type translator struct {
	file   string
	pos    positions
	expand *strings.Replacer
}

func (t *translator) at(line int) config.Location {
	return config.Location{File: t.file, Line: line}
}

func (t *translator) expandAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = t.expand.Replace(s)
	}
	return out
}

func (t *translator) translate(doc *document, buildDir, projectDir string) (*config.Model, error) {
	m := &config.Model{
		Plugins:     make(map[string]*config.Plugin),
		Variants:    make(map[string]*config.BuildVariant),
		Constraints: make(map[string]*config.Constraint),
		Artifacts:   make(map[string]*config.Artifact),
		Lint:        config.DefaultLintPolicy(buildDir),
		ProjectDir:  projectDir,
	}

	if p := doc.Project; p != nil {
		m.Project = &config.ProjectConfig{
			Namespace:                 p.Namespace,
			ApplicationID:             p.ApplicationID,
			MinSdk:                    p.MinSdk,
			TargetSdk:                 p.TargetSdk,
			CompileSdk:                p.CompileSdk,
			VersionCode:               p.VersionCode,
			VersionName:               p.VersionName,
			TestInstrumentationRunner: p.TestInstrumentationRunner,
			BuildFeatures:             p.BuildFeatures,
			CompileOptions: config.CompileOptions{
				SourceCompatibility: p.CompileOptions.SourceCompatibility,
				TargetCompatibility: p.CompileOptions.TargetCompatibility,
				JvmTarget:           p.CompileOptions.JvmTarget,
			},
			Location: t.at(t.pos.project),
		}
	}

	for i, p := range doc.Plugins {
		if _, ok := m.Plugins[p.ID]; ok {
			return nil, fmt.Errorf("%w: plugin %q listed twice", config.ErrMalformedConfig, p.ID)
		}
		m.Plugins[p.ID] = &config.Plugin{ID: p.ID, Version: p.Version, Apply: p.Apply == nil || *p.Apply, Location: t.at(t.pos.plugin(i))}
	}

	for i := range doc.Variants {
		node := &doc.Variants[i]
		if err := checkVariantKeys(node); err != nil {
			return nil, err
		}
		var v variantDoc
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: variant at line %d: %w", config.ErrMalformedConfig, node.Line, err)
		}
		if v.Name == "" {
			return nil, fmt.Errorf("%w: variant at line %d has no name", config.ErrMalformedConfig, node.Line)
		}
		if _, ok := m.Variants[v.Name]; ok {
			return nil, fmt.Errorf("%w: variant %q declared twice", config.ErrMalformedConfig, v.Name)
		}
		deps, err := t.dependencies(&v.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.Name, err)
		}
		m.Variants[v.Name] = &config.BuildVariant{
			Name:              v.Name,
			InitWith:          v.InitWith,
			MinifyEnabled:     v.MinifyEnabled,
			ShrinkResources:   v.ShrinkResources,
			Debuggable:        v.Debuggable,
			ProguardFiles:     t.expandAll(v.ProguardFiles),
			MatchingFallbacks: v.MatchingFallbacks,
			Dependencies:      deps,
			Location:          t.at(node.Line),
		}
		m.VariantOrder = append(m.VariantOrder, v.Name)
	}

	deps, err := t.dependencies(&doc.Dependencies)
	if err != nil {
		return nil, err
	}
	m.Dependencies = deps

	for raw, version := range doc.Constraints {
		module, err := config.ParseModule(raw)
		if err != nil {
			return nil, err
		}
		m.Constraints[module] = &config.Constraint{Module: module, Version: version, Location: t.at(t.pos.constraints[raw])}
	}

	for _, a := range doc.Artifacts {
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
		if _, ok := m.Artifacts[c.String()]; ok {
			return nil, fmt.Errorf("%w: artifact %s listed twice", config.ErrMalformedConfig, c)
		}
		m.Artifacts[c.String()] = art
	}

	if doc.Lint != nil {
		policy, err := t.lint(doc.Lint, buildDir)
		if err != nil {
			return nil, err
		}
		m.Lint = policy
	}
	return m, nil
}

var variantKeys = map[string]bool{
	"name": true, "init_with": true, "minify_enabled": true, "shrink_resources": true,
	"debuggable": true, "proguard_files": true, "matching_fallbacks": true, "dependencies": true,
}

// checkVariantKeys rejects unknown variant keys; Node.Decode does not honour
// the decoder's KnownFields setting.
func checkVariantKeys(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: variant at line %d must be a mapping", config.ErrMalformedConfig, node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if !variantKeys[key.Value] {
			return fmt.Errorf("%w: line %d: unknown variant field %q", config.ErrMalformedConfig, key.Line, key.Value)
		}
	}
	return nil
}

// dependencies walks a scope → list mapping node so every declaration keeps
// its own line.
func (t *translator) dependencies(node *yaml.Node) ([]*config.DependencyDeclaration, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: dependencies at line %d must be a mapping of scope to list", config.ErrMalformedConfig, node.Line)
	}

	var decls []*config.DependencyDeclaration
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		scope, err := config.ParseScope(key.Value)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, key.Line)
		}
		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: scope %s at line %d must be a list", config.ErrMalformedConfig, key.Value, key.Line)
		}
		for _, item := range value.Content {
			c, err := config.ParseCoordinate(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, item.Line)
			}
			decls = append(decls, &config.DependencyDeclaration{Scope: scope, Coordinate: c, Location: t.at(item.Line)})
		}
	}
	return decls, nil
}

// lint expands path placeholders in the report destinations before the
// shared policy rules apply.
func (t *translator) lint(l *lintDoc, buildDir string) (*config.LintPolicy, error) {
	s := config.LintSettings(*l)
	s.HTMLOutput = t.expand.Replace(s.HTMLOutput)
	s.XMLOutput = t.expand.Replace(s.XMLOutput)
	s.SARIFOutput = t.expand.Replace(s.SARIFOutput)
	s.TextOutput = t.expand.Replace(s.TextOutput)
	return config.BuildLintPolicy(buildDir, s)
}
