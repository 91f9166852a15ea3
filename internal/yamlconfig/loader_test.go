package yamlconfig

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/hcl"
	"github.com/specialistvlad/variantgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DemoProject(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	root := testutil.WriteFiles(t, map[string]string{"build.yaml": testutil.DemoYAML})

	// --- Act ---
	model, err := NewLoader("build").Load(ctx, filepath.Join(root, "build.yaml"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "com.beco.demo", model.Project.Namespace)
	assert.Equal(t, "1.0", model.Project.VersionName)
	assert.Equal(t, []string{"debug", "release", "debugMinified"}, model.VariantOrder)
	assert.Equal(t, "debug", model.Variants["debugMinified"].InitWith)
	assert.Nil(t, model.Variants["debug"].ShrinkResources)

	buildDir := filepath.ToSlash(filepath.Join(root, "build"))
	assert.Equal(t,
		buildDir+"/intermediates/default_proguard_files/global/proguard-android-optimize.txt",
		model.Variants["release"].ProguardFiles[0])

	require.Len(t, model.Dependencies, 8)
	assert.Equal(t, config.ScopeImplementation, model.Dependencies[0].Scope)
	assert.Greater(t, model.Dependencies[0].Location.Line, 0)
	assert.Equal(t, config.ScopeAndroidTestImplementation, model.Dependencies[7].Scope)

	assert.Equal(t, config.SeverityError, model.Lint.Severities["StopShip"])
	assert.True(t, model.Lint.Outputs.HTML, "html stays on by default")
	assert.Equal(t, buildDir+"/reports/lint/lint-results.sarif", model.Lint.Outputs.SARIFOutput)
}

func TestLoad_MatchesHCLModel(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	root := testutil.WriteFiles(t, map[string]string{
		"yaml/build.yaml": testutil.DemoYAML,
		"hcl/build.hcl":   testutil.DemoHCL,
	})

	// --- Act ---
	fromYAML, err := NewLoader("build").Load(ctx, filepath.Join(root, "yaml", "build.yaml"))
	require.NoError(t, err)
	fromHCL, err := hcl.NewLoader("build").Load(ctx, filepath.Join(root, "hcl"))
	require.NoError(t, err)

	// --- Assert ---
	assert.Equal(t, fromHCL.VariantOrder, fromYAML.VariantOrder)
	assert.Equal(t, fromHCL.Project.CompileOptions, fromYAML.Project.CompileOptions)
	require.Len(t, fromYAML.Dependencies, len(fromHCL.Dependencies))
	for i := range fromHCL.Dependencies {
		assert.Equal(t, fromHCL.Dependencies[i].Coordinate, fromYAML.Dependencies[i].Coordinate)
		assert.Equal(t, fromHCL.Dependencies[i].Scope, fromYAML.Dependencies[i].Scope)
	}
	assert.Equal(t, fromHCL.Lint.Severities, fromYAML.Lint.Severities)
}

func TestLoad_SourceLines(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	const doc = `project:
  namespace: a.b
  compile_sdk: 34
  min_sdk: 21
  target_sdk: 34
plugins:
  - id: com.android.application
  - id: org.jetbrains.kotlin.android
    version: "1.9.0"
constraints:
  lib:core: "1.5"
  lib:log: "2.0"
`
	root := testutil.WriteFiles(t, map[string]string{"build.yaml": doc})
	file := filepath.Join(root, "build.yaml")

	// --- Act ---
	model, err := NewLoader("").Load(ctx, file)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, config.Location{File: file, Line: 1}, model.Project.Location)
	assert.Equal(t, 7, model.Plugins["com.android.application"].Location.Line)
	assert.Equal(t, 8, model.Plugins["org.jetbrains.kotlin.android"].Location.Line)
	assert.Equal(t, 11, model.Constraints["lib:core"].Location.Line)
	assert.Equal(t, 12, model.Constraints["lib:log"].Location.Line)
}

func TestLoad_Malformed(t *testing.T) {
	const project = "project:\n  namespace: a.b\n  compile_sdk: 34\n  min_sdk: 21\n  target_sdk: 34\n"

	testCases := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{name: "unknown field", yaml: project + "flavors: []\n", errContains: "flavors"},
		{name: "bad scope", yaml: project + "dependencies:\n  kapt: [a:b:1]\n", errContains: "kapt"},
		{name: "bad coordinate", yaml: project + "dependencies:\n  implementation: [a:b]\n", errContains: "a:b"},
		{name: "scope not a list", yaml: project + "dependencies:\n  implementation: a:b:1\n", errContains: "must be a list"},
		{name: "variant without name", yaml: project + "variants:\n  - debuggable: true\n", errContains: "has no name"},
		{name: "duplicate variant", yaml: project + "variants:\n  - name: a\n  - name: a\n", errContains: "declared twice"},
		{name: "unknown init_with", yaml: project + "variants:\n  - name: a\n    init_with: ghost\n", errContains: "ghost"},
		{name: "missing project", yaml: "variants: []\n", errContains: "project"},
		{name: "unknown variant field", yaml: project + "variants:\n  - name: a\n    flavor: x\n", errContains: "flavor"},
		{name: "duplicate artifact", yaml: project + "artifacts:\n  - coordinate: lib:core:1.0\n    requires: [lib:log:1.0]\n  - coordinate: lib:core:1.0\n", errContains: "lib:core:1.0 listed twice"},
		{name: "severity conflict", yaml: project + "lint:\n  error: [StopShip]\n  warning: [StopShip]\n", errContains: "StopShip"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			ctx, _ := testutil.Context(t)
			root := testutil.WriteFiles(t, map[string]string{"build.yml": tc.yaml})

			// --- Act ---
			_, err := NewLoader("").Load(ctx, filepath.Join(root, "build.yml"))

			// --- Assert ---
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrMalformedConfig), "got %v", err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_RejectsNonYAMLPath(t *testing.T) {
	ctx, _ := testutil.Context(t)
	_, err := NewLoader("").Load(ctx, "build.hcl")
	require.ErrorIs(t, err, config.ErrMalformedConfig)
}
