package hcl

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, files map[string]string, path string) (*config.Model, string, error) {
	t.Helper()
	ctx, _ := testutil.Context(t)
	root := testutil.WriteFiles(t, files)
	model, err := NewLoader("build").Load(ctx, filepath.Join(root, path))
	return model, root, err
}

func TestLoad_DemoProject(t *testing.T) {
	// --- Arrange & Act ---
	model, root, err := load(t, map[string]string{"app/build.hcl": testutil.DemoHCL}, "app")

	// --- Assert ---
	require.NoError(t, err)
	p := model.Project
	assert.Equal(t, "com.beco.demo", p.Namespace)
	assert.Equal(t, 26, p.MinSdk)
	assert.Equal(t, 34, p.TargetSdk)
	assert.Equal(t, 34, p.CompileSdk)
	assert.Equal(t, "1.0", p.VersionName)
	assert.Equal(t, map[string]bool{"view_binding": true}, p.BuildFeatures)
	assert.Equal(t, "1.8", p.CompileOptions.JvmTarget)

	assert.Equal(t, []string{"debug", "release", "debugMinified"}, model.VariantOrder)
	dm := model.Variants["debugMinified"]
	assert.Equal(t, "debug", dm.InitWith)
	require.NotNil(t, dm.MinifyEnabled)
	assert.True(t, *dm.MinifyEnabled)
	assert.Nil(t, model.Variants["debug"].ShrinkResources, "unset attributes stay nil")

	buildDir := filepath.ToSlash(filepath.Join(root, "app", "build"))
	assert.Equal(t, []string{
		buildDir + "/intermediates/default_proguard_files/global/proguard-android-optimize.txt",
		"proguard-rules.pro",
	}, dm.ProguardFiles)

	require.Len(t, model.Dependencies, 8)
	first := model.Dependencies[0]
	assert.Equal(t, config.ScopeImplementation, first.Scope)
	assert.Equal(t, "androidx.core:core-ktx:1.12.0", first.Coordinate.String())
	assert.Greater(t, first.Location.Line, 0)
	assert.Equal(t, config.ScopeAndroidTestImplementation, model.Dependencies[7].Scope)

	plugin := model.Plugins["com.android.application"]
	require.NotNil(t, plugin)
	assert.Equal(t, "8.2.2", plugin.Version)
	assert.True(t, plugin.Apply)

	lint := model.Lint
	assert.True(t, lint.AbortOnError)
	assert.True(t, lint.CheckDependencies)
	assert.True(t, lint.ExplainIssues)
	assert.Equal(t, config.SeverityError, lint.Severities["StopShip"])
	assert.Equal(t, config.SeverityInformational, lint.Severities["ContentDescription"])
	assert.Contains(t, lint.Disable, "HardcodedDebugMode")
	assert.True(t, lint.Outputs.SARIF)
	assert.False(t, lint.Outputs.Text)
	assert.Equal(t, buildDir+"/reports/lint/lint-results.sarif", lint.Outputs.SARIFOutput)
}

func TestLoad_MergesFilesAndPlugins(t *testing.T) {
	files := map[string]string{
		"settings.hcl": `
plugin "com.android.application" {
  version = "8.2.2"
  apply   = false
}
constraint "lib:core" {
  version = "1.5"
}
artifact "androidx.appcompat:appcompat:1.7.1" {
  requires = ["androidx.core:core:1.13.0"]
  latest   = "1.7.2"
}
`,
		"app/build.hcl": `
project {
  namespace   = "com.example"
  compile_sdk = 34
  min_sdk     = 24
  target_sdk  = 34
}
plugin "com.android.application" {}
variant "debug" {
  dependencies {
    implementation = ["com.squareup.leakcanary:leakcanary-android:2.14"]
  }
}
`,
	}
	model, _, err := load(t, files, ".")
	require.NoError(t, err)

	expectedPlugin := &config.Plugin{ID: "com.android.application", Version: "8.2.2", Apply: true}
	if diff := cmp.Diff(expectedPlugin, model.Plugins["com.android.application"], cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Location"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("plugin mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "1.5", model.Constraints["lib:core"].Version)
	art := model.Artifacts["androidx.appcompat:appcompat:1.7.1"]
	require.NotNil(t, art)
	assert.Equal(t, "1.7.2", art.Latest)
	assert.Equal(t, "androidx.core:core:1.13.0", art.Requires[0].String())

	debug := model.Variants["debug"]
	require.Len(t, debug.Dependencies, 1)
	assert.Equal(t, "leakcanary-android", debug.Dependencies[0].Coordinate.Artifact)
	assert.Empty(t, model.Dependencies)

	assert.False(t, model.Lint.CheckDependencies, "default policy applies without a lint block")
	assert.True(t, model.Lint.AbortOnError)
}

func TestLoad_MalformedConfig(t *testing.T) {
	const project = `
project {
  namespace   = "com.example"
  compile_sdk = 34
  min_sdk     = 24
  target_sdk  = 34
}
`
	testCases := []struct {
		name        string
		hcl         string
		errContains string
	}{
		{
			name:        "syntax error",
			hcl:         "project {\n  namespace = \n",
			errContains: "failed to parse",
		},
		{
			name:        "missing project block",
			hcl:         `variant "debug" {}`,
			errContains: "project",
		},
		{
			name:        "missing namespace",
			hcl:         "project {\n compile_sdk = 34\n min_sdk = 24\n target_sdk = 34\n}",
			errContains: "namespace",
		},
		{
			name:        "missing sdk bound",
			hcl:         "project {\n namespace = \"a\"\n min_sdk = 24\n target_sdk = 34\n}",
			errContains: "compile_sdk",
		},
		{
			name:        "min above target",
			hcl:         "project {\n namespace = \"a\"\n compile_sdk = 34\n min_sdk = 30\n target_sdk = 28\n}",
			errContains: "min <= target <= compile",
		},
		{
			name:        "unknown block",
			hcl:         project + `buildscript {}`,
			errContains: "failed to decode",
		},
		{
			name:        "unknown scope",
			hcl:         project + `dependencies { kapt = ["a:b:1.0"] }`,
			errContains: "unknown dependency scope",
		},
		{
			name:        "bad coordinate",
			hcl:         project + `dependencies { implementation = ["a:b"] }`,
			errContains: "group:artifact:version",
		},
		{
			name:        "duplicate variant",
			hcl:         project + "variant \"debug\" {}\nvariant \"debug\" {}",
			errContains: "declared twice",
		},
		{
			name:        "init_with undeclared",
			hcl:         project + `variant "debugMinified" { init_with = "debug" }`,
			errContains: "undeclared variant",
		},
		{
			name:        "conflicting plugin versions",
			hcl:         project + "plugin \"p\" { version = \"1\" }\nplugin \"p\" { version = \"2\" }",
			errContains: "plugin",
		},
		{
			name:        "issue with two severities",
			hcl:         project + "lint {\n  error   = [\"StopShip\"]\n  warning = [\"StopShip\"]\n}",
			errContains: "both",
		},
		{
			name:        "duplicate artifact",
			hcl:         project + "artifact \"lib:core:1.0\" {\n  requires = [\"lib:log:1.0\"]\n}\nartifact \"lib:core:1.0\" {}",
			errContains: "duplicate artifact lib:core:1.0",
		},
		{
			name:        "duplicate project block",
			hcl:         project + project,
			errContains: "duplicate \"project\" block",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := load(t, map[string]string{"build.hcl": tc.hcl}, "build.hcl")
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrMalformedConfig)
			assert.ErrorContains(t, err, tc.errContains)
		})
	}
}

func TestLoad_PathErrors(t *testing.T) {
	ctx, _ := testutil.Context(t)

	_, err := NewLoader("").Load(ctx, filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorIs(t, err, config.ErrMalformedConfig)

	_, err = NewLoader("").Load(ctx, t.TempDir())
	assert.ErrorContains(t, err, "no .hcl files")
}
