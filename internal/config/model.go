package config

import (
	"fmt"
	"strings"
)

// Model is the unified, format-agnostic representation of one project's
// build configuration. It is built once by a Loader and never mutated
// afterwards.
type Model struct {
	Project      *ProjectConfig
	Plugins      map[string]*Plugin
	Variants     map[string]*BuildVariant
	VariantOrder []string // declaration order
	Dependencies []*DependencyDeclaration
	Constraints  map[string]*Constraint // keyed by group:artifact
	Artifacts    map[string]*Artifact   // keyed by group:artifact:version
	Lint         *LintPolicy

	// ProjectDir is the directory report paths are made relative to.
	ProjectDir string
}

// Location points at the place a declaration came from.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	if l.Line == 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ProjectConfig identifies the project and its SDK bounds.
type ProjectConfig struct {
	Namespace                 string
	ApplicationID             string
	MinSdk                    int
	TargetSdk                 int
	CompileSdk                int
	VersionCode               int
	VersionName               string
	TestInstrumentationRunner string
	BuildFeatures             map[string]bool
	CompileOptions            CompileOptions
	Location                  Location
}

// CompileOptions holds the Java/Kotlin language levels.
type CompileOptions struct {
	SourceCompatibility string
	TargetCompatibility string
	JvmTarget           string
}

// Plugin is a build plugin request.
type Plugin struct {
	ID       string
	Version  string
	Apply    bool
	Location Location
}

// BuildVariant is a named build configuration overlay. Scalar overrides are
// nil when the declaration leaves them unset.
type BuildVariant struct {
	Name              string
	InitWith          string
	MinifyEnabled     *bool
	ShrinkResources   *bool
	Debuggable        *bool
	ProguardFiles     []string
	MatchingFallbacks []string
	Dependencies      []*DependencyDeclaration
	Location          Location
}

// Scope is the configuration a dependency is declared in.
type Scope string

const (
	ScopeImplementation            Scope = "implementation"
	ScopeAPI                       Scope = "api"
	ScopeCompileOnly               Scope = "compile_only"
	ScopeRuntimeOnly               Scope = "runtime_only"
	ScopeTestImplementation        Scope = "test_implementation"
	ScopeAndroidTestImplementation Scope = "android_test_implementation"
)

// Scopes lists every valid scope in a stable order.
var Scopes = []Scope{
	ScopeAPI,
	ScopeImplementation,
	ScopeCompileOnly,
	ScopeRuntimeOnly,
	ScopeTestImplementation,
	ScopeAndroidTestImplementation,
}

// ParseScope validates a scope name.
func ParseScope(s string) (Scope, error) {
	for _, scope := range Scopes {
		if string(scope) == s {
			return scope, nil
		}
	}
	return "", fmt.Errorf("%w: unknown dependency scope %q", ErrMalformedConfig, s)
}

// Coordinate is a (group, artifact, version) dependency identifier.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// ParseCoordinate parses "group:artifact:version".
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q must have the form group:artifact:version", ErrMalformedConfig, s)
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, fmt.Errorf("%w: coordinate %q has an empty segment", ErrMalformedConfig, s)
		}
	}
	return Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
}

// ParseModule parses "group:artifact".
func ParseModule(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%w: module %q must have the form group:artifact", ErrMalformedConfig, s)
	}
	return parts[0] + ":" + parts[1], nil
}

// Module returns the version-less "group:artifact" key.
func (c Coordinate) Module() string {
	return c.Group + ":" + c.Artifact
}

func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// DependencyDeclaration is one declared coordinate in one scope.
type DependencyDeclaration struct {
	Scope      Scope
	Coordinate Coordinate
	Location   Location
}

// Constraint pins a module to a version regardless of what is requested.
type Constraint struct {
	Module   string
	Version  string
	Location Location
}

// Artifact carries known metadata about a published coordinate: the
// coordinates it pulls in and, optionally, the newest known version.
type Artifact struct {
	Coordinate Coordinate
	Requires   []Coordinate
	Latest     string
}

// Severity of a policy finding.
type Severity int

const (
	SeverityInformational Severity = iota + 1
	SeverityWarning
	SeverityError
)

// ParseSeverity maps a severity keyword to its value.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "informational":
		return SeverityInformational, nil
	}
	return 0, fmt.Errorf("%w: unknown lint severity %q", ErrMalformedConfig, s)
}

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformational:
		return "informational"
	}
	return "unknown"
}

// LintPolicy configures the policy checker and its report outputs.
type LintPolicy struct {
	Enable     []string
	Disable    []string
	Severities map[string]Severity

	AbortOnError       bool
	WarningsAsErrors   bool
	CheckReleaseBuilds bool
	CheckDependencies  bool
	ExplainIssues      bool
	AbsolutePaths      bool

	Outputs ReportOutputs
}

// ReportOutputs holds the report format switches and their destinations.
type ReportOutputs struct {
	HTML        bool
	XML         bool
	SARIF       bool
	Text        bool
	HTMLOutput  string
	XMLOutput   string
	SARIFOutput string
	TextOutput  string
}

// DefaultLintPolicy returns the policy used when no lint block is declared.
func DefaultLintPolicy(buildDir string) *LintPolicy {
	return &LintPolicy{
		Severities:         map[string]Severity{},
		AbortOnError:       true,
		CheckReleaseBuilds: true,
		Outputs: ReportOutputs{
			HTML:        true,
			XML:         true,
			HTMLOutput:  buildDir + "/reports/lint/lint-results.html",
			XMLOutput:   buildDir + "/reports/lint/lint-results.xml",
			SARIFOutput: buildDir + "/reports/lint/lint-results.sarif",
			TextOutput:  buildDir + "/reports/lint/lint-results.txt",
		},
	}
}
