package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is a struct used to decode all possible top-level blocks from any
// file. Unknown blocks and attributes are decode errors.
type fileRoot struct {
	Projects     []*projectBlock      `hcl:"project,block"`
	Plugins      []*pluginBlock       `hcl:"plugin,block"`
	Variants     []*variantBlock      `hcl:"variant,block"`
	Dependencies []*dependenciesBlock `hcl:"dependencies,block"`
	Constraints  []*constraintBlock   `hcl:"constraint,block"`
	Artifacts    []*artifactBlock     `hcl:"artifact,block"`
	Lints        []*lintBlock         `hcl:"lint,block"`
}

type projectBlock struct {
	Namespace                 string               `hcl:"namespace,optional"`
	ApplicationID             string               `hcl:"application_id,optional"`
	CompileSdk                int                  `hcl:"compile_sdk,optional"`
	MinSdk                    int                  `hcl:"min_sdk,optional"`
	TargetSdk                 int                  `hcl:"target_sdk,optional"`
	VersionCode               int                  `hcl:"version_code,optional"`
	VersionName               string               `hcl:"version_name,optional"`
	TestInstrumentationRunner string               `hcl:"test_instrumentation_runner,optional"`
	BuildFeatures             map[string]bool      `hcl:"build_features,optional"`
	CompileOptions            *compileOptionsBlock `hcl:"compile_options,block"`
	DefRange                  hcl.Range            `hcl:",def_range"`
}

type compileOptionsBlock struct {
	SourceCompatibility string `hcl:"source_compatibility,optional"`
	TargetCompatibility string `hcl:"target_compatibility,optional"`
	JvmTarget           string `hcl:"jvm_target,optional"`
}

type pluginBlock struct {
	ID       string    `hcl:"id,label"`
	Version  string    `hcl:"version,optional"`
	Apply    *bool     `hcl:"apply,optional"`
	DefRange hcl.Range `hcl:",def_range"`
}

type variantBlock struct {
	Name              string             `hcl:"name,label"`
	InitWith          string             `hcl:"init_with,optional"`
	MinifyEnabled     *bool              `hcl:"minify_enabled,optional"`
	ShrinkResources   *bool              `hcl:"shrink_resources,optional"`
	Debuggable        *bool              `hcl:"debuggable,optional"`
	ProguardFiles     []string           `hcl:"proguard_files,optional"`
	MatchingFallbacks []string           `hcl:"matching_fallbacks,optional"`
	Dependencies      *dependenciesBlock `hcl:"dependencies,block"`
	DefRange          hcl.Range          `hcl:",def_range"`
}

// dependenciesBlock holds one list attribute per scope. Scope names are
// validated during translation, so the body is kept raw.
type dependenciesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type constraintBlock struct {
	Module   string    `hcl:"module,label"`
	Version  string    `hcl:"version"`
	DefRange hcl.Range `hcl:",def_range"`
}

type artifactBlock struct {
	Coordinate string    `hcl:"coordinate,label"`
	Requires   []string  `hcl:"requires,optional"`
	Latest     string    `hcl:"latest,optional"`
	DefRange   hcl.Range `hcl:",def_range"`
}

type lintBlock struct {
	AbortOnError       *bool `hcl:"abort_on_error,optional"`
	WarningsAsErrors   *bool `hcl:"warnings_as_errors,optional"`
	CheckReleaseBuilds *bool `hcl:"check_release_builds,optional"`
	CheckDependencies  *bool `hcl:"check_dependencies,optional"`
	ExplainIssues      *bool `hcl:"explain_issues,optional"`
	AbsolutePaths      *bool `hcl:"absolute_paths,optional"`

	Enable        []string `hcl:"enable,optional"`
	Disable       []string `hcl:"disable,optional"`
	Error         []string `hcl:"error,optional"`
	Warning       []string `hcl:"warning,optional"`
	Informational []string `hcl:"informational,optional"`

	HTMLReport  *bool  `hcl:"html_report,optional"`
	XMLReport   *bool  `hcl:"xml_report,optional"`
	SARIFReport *bool  `hcl:"sarif_report,optional"`
	TextReport  *bool  `hcl:"text_report,optional"`
	HTMLOutput  string `hcl:"html_output,optional"`
	XMLOutput   string `hcl:"xml_output,optional"`
	SARIFOutput string `hcl:"sarif_output,optional"`
	TextOutput  string `hcl:"text_output,optional"`
}
