package integration_tests

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/variantgrid/internal/cli"
	"github.com/specialistvlad/variantgrid/internal/depgraph"
	"github.com/specialistvlad/variantgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_DemoProject(t *testing.T) {
	t.Parallel()

	// --- Act ---
	run := runProject(t, map[string]string{"app/build.hcl": testutil.DemoHCL}, "app")

	// --- Assert ---
	require.NoError(t, run.Err)
	assert.Equal(t, cli.ExitOK, run.ExitCode)

	byName := map[string]bool{}
	for _, v := range run.Result.Variants {
		byName[v.Name] = true
		if v.Name == "debugMinified" {
			assert.Equal(t, []string{"debug", "debugMinified"}, v.Chain)
			assert.True(t, v.Debuggable, "inherited from debug")
			assert.True(t, v.MinifyEnabled, "overridden locally")
			assert.Equal(t, []string{"debug"}, v.MatchingFallbacks)
		}
	}
	assert.Equal(t, map[string]bool{"debug": true, "release": true, "debugMinified": true}, byName)

	for _, r := range run.Result.Resolutions {
		if r.Variant != "release" {
			continue
		}
		_, hasJunit := r.Lookup("junit:junit")
		assert.Equal(t, r.Classpath == depgraph.Test, hasJunit, "junit only on the test classpath (%s)", r.Classpath)
		_, hasCore := r.Lookup("androidx.core:core-ktx")
		assert.True(t, hasCore, "implementation is on every classpath")
	}

	sarif := testutil.ReadFile(t, filepath.Join(run.Root, "app", "build", "reports", "lint", "lint-results.sarif"))
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(sarif), &doc))
	assert.Equal(t, "2.1.0", doc["version"])
	assert.Contains(t, run.Out, "0 errors")
}

func TestPipeline_TransitiveResolutionIsIdempotent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"build.hcl": minimalProject + `
dependencies {
  implementation = ["app:ui:1.0", "lib:core:1.1"]
}

artifact "app:ui:1.0" {
  requires = ["lib:core:1.4", "lib:log:2.0.1"]
}

artifact "lib:core:1.4" {
  requires = ["lib:log:2.1.0"]
}
`}

	// --- Act ---
	first := runProject(t, files, "")
	second := runProject(t, files, "")

	// --- Assert ---
	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	r := first.Result.Resolutions[0]
	core, ok := r.Lookup("lib:core")
	require.True(t, ok)
	assert.Equal(t, "1.4", core.Version)
	logMod, ok := r.Lookup("lib:log")
	require.True(t, ok)
	assert.Equal(t, "2.1.0", logMod.Version)
	assert.False(t, logMod.Direct)

	// Locations differ between temp dirs, so compare versions only.
	versions := func(run *runOutcome) map[string]string {
		out := map[string]string{}
		for _, res := range run.Result.Resolutions {
			for _, m := range res.Modules {
				out[string(res.Classpath)+" "+m.Module] = m.Version
			}
		}
		return out
	}
	if diff := cmp.Diff(versions(first), versions(second)); diff != "" {
		t.Errorf("resolution is not idempotent (-first +second):\n%s", diff)
	}
}

func TestPipeline_ConstraintResolvesMajorConflict(t *testing.T) {
	t.Parallel()

	run := runProject(t, map[string]string{"build.hcl": minimalProject + `
dependencies {
  implementation = ["lib:core:1.0", "lib:core:2.0"]
}

constraint "lib:core" {
  version = "2.0"
}
`}, "")

	require.NoError(t, run.Err)
	core, ok := run.Result.Resolutions[0].Lookup("lib:core")
	require.True(t, ok)
	assert.Equal(t, "2.0", core.Version)
	assert.True(t, core.Pinned)
}

func TestPipeline_YAMLConfig(t *testing.T) {
	t.Parallel()

	run := runProject(t, map[string]string{"build.yaml": testutil.DemoYAML}, "build.yaml", "-variant", "release")

	require.NoError(t, run.Err)
	require.Len(t, run.Result.Variants, 1)
	assert.Equal(t, "release", run.Result.Variants[0].Name)
	assert.Len(t, run.Result.Resolutions, 4)
}

func TestPipeline_BuildDirFlag(t *testing.T) {
	t.Parallel()

	run := runProject(t, map[string]string{"build.hcl": minimalProject}, "", "-build-dir", "out")

	require.NoError(t, run.Err)
	assert.FileExists(t, filepath.Join(run.Root, "out", "reports", "lint", "lint-results.xml"))
	testutil.AssertNoFile(t, filepath.Join(run.Root, "build"))
}
