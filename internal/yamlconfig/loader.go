// Package yamlconfig loads the build configuration from a single YAML
// document. It produces the same config.Model as the HCL loader; strings may
// reference ${build_dir} and ${project_dir}.
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type document struct {
	Project      *projectDoc       `yaml:"project"`
	Plugins      []pluginDoc       `yaml:"plugins"`
	Variants     []yaml.Node       `yaml:"variants"`
	Dependencies yaml.Node         `yaml:"dependencies"`
	Constraints  map[string]string `yaml:"constraints"`
	Artifacts    []artifactDoc     `yaml:"artifacts"`
	Lint         *lintDoc          `yaml:"lint"`
}

type projectDoc struct {
	Namespace                 string          `yaml:"namespace"`
	ApplicationID             string          `yaml:"application_id"`
	CompileSdk                int             `yaml:"compile_sdk"`
	MinSdk                    int             `yaml:"min_sdk"`
	TargetSdk                 int             `yaml:"target_sdk"`
	VersionCode               int             `yaml:"version_code"`
	VersionName               string          `yaml:"version_name"`
	TestInstrumentationRunner string          `yaml:"test_instrumentation_runner"`
	BuildFeatures             map[string]bool `yaml:"build_features"`
	CompileOptions            struct {
		SourceCompatibility string `yaml:"source_compatibility"`
		TargetCompatibility string `yaml:"target_compatibility"`
		JvmTarget           string `yaml:"jvm_target"`
	} `yaml:"compile_options"`
}

type pluginDoc struct {
	ID      string `yaml:"id"`
	Version string `yaml:"version"`
	Apply   *bool  `yaml:"apply"`
}

type variantDoc struct {
	Name              string    `yaml:"name"`
	InitWith          string    `yaml:"init_with"`
	MinifyEnabled     *bool     `yaml:"minify_enabled"`
	ShrinkResources   *bool     `yaml:"shrink_resources"`
	Debuggable        *bool     `yaml:"debuggable"`
	ProguardFiles     []string  `yaml:"proguard_files"`
	MatchingFallbacks []string  `yaml:"matching_fallbacks"`
	Dependencies      yaml.Node `yaml:"dependencies"`
}

type artifactDoc struct {
	Coordinate string   `yaml:"coordinate"`
	Requires   []string `yaml:"requires"`
	Latest     string   `yaml:"latest"`
}

type lintDoc struct {
	AbortOnError       *bool `yaml:"abort_on_error"`
	WarningsAsErrors   *bool `yaml:"warnings_as_errors"`
	CheckReleaseBuilds *bool `yaml:"check_release_builds"`
	CheckDependencies  *bool `yaml:"check_dependencies"`
	ExplainIssues      *bool `yaml:"explain_issues"`
	AbsolutePaths      *bool `yaml:"absolute_paths"`

	Enable        []string `yaml:"enable"`
	Disable       []string `yaml:"disable"`
	Error         []string `yaml:"error"`
	Warning       []string `yaml:"warning"`
	Informational []string `yaml:"informational"`

	HTMLReport  *bool  `yaml:"html_report"`
	XMLReport   *bool  `yaml:"xml_report"`
	SARIFReport *bool  `yaml:"sarif_report"`
	TextReport  *bool  `yaml:"text_report"`
	HTMLOutput  string `yaml:"html_output"`
	XMLOutput   string `yaml:"xml_output"`
	SARIFOutput string `yaml:"sarif_output"`
	TextOutput  string `yaml:"text_output"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct {
	buildDir string
}

// NewLoader creates a YAML loader. A relative buildDir is resolved against
// the directory of the configuration file.
func NewLoader(buildDir string) *Loader {
	if buildDir == "" {
		buildDir = "build"
	}
	return &Loader{buildDir: buildDir}
}

// IsYAML reports whether path names a YAML configuration file.
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads exactly one YAML file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	if len(paths) != 1 || !IsYAML(paths[0]) {
		return nil, fmt.Errorf("%w: the YAML loader expects exactly one .yaml file, got %v", config.ErrMalformedConfig, paths)
	}
	path := paths[0]
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrMalformedConfig, err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML file %s: %w", config.ErrMalformedConfig, path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML file %s: %w", config.ErrMalformedConfig, path, err)
	}

	projectDir := filepath.Dir(path)
	buildDir := l.buildDir
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(projectDir, buildDir)
	}
	t := &translator{
		file: path,
		pos:  indexPositions(&root),
		expand: strings.NewReplacer(
			"${build_dir}", filepath.ToSlash(buildDir),
			"${project_dir}", filepath.ToSlash(projectDir),
		),
	}

	model, err := t.translate(&doc, buildDir, projectDir)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", path, err)
	}
	if err := config.Validate(model); err != nil {
		return nil, err
	}

	logger.Debug("YAML loading complete.", "variants", len(model.VariantOrder), "dependencies", len(model.Dependencies))
	return model, nil
}
