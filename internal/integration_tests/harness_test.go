package integration_tests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/variantgrid/internal/app"
	"github.com/specialistvlad/variantgrid/internal/cli"
	"github.com/specialistvlad/variantgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// runOutcome is what one end-to-end run produced.
type runOutcome struct {
	Root     string
	Result   *app.Result
	Err      error
	ExitCode int
	Out      string
	Logs     string
}

// runProject writes files into a temp project, then parses args the way the
// binary does with the project path (or target, if set) appended, and runs
// the pipeline.
func runProject(t *testing.T, files map[string]string, target string, args ...string) *runOutcome {
	t.Helper()
	root := testutil.WriteFiles(t, files)
	path := root
	if target != "" {
		path = filepath.Join(root, target)
	}

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	cfg, shouldExit, err := cli.Parse(append(append([]string{"-log-level", "debug"}, args...), path), out)
	require.False(t, shouldExit)
	if err != nil {
		return &runOutcome{Root: root, Err: err, ExitCode: cli.ExitCode(err), Out: out.String()}
	}

	res, err := app.NewApp(out, logs, cfg, nil).Run(context.Background())
	t.Cleanup(func() {
		if os.Getenv("VGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return &runOutcome{
		Root:     root,
		Result:   res,
		Err:      err,
		ExitCode: cli.ExitCode(err),
		Out:      out.String(),
		Logs:     logs.String(),
	}
}

const minimalProject = `
project {
  namespace   = "com.example"
  compile_sdk = 34
  min_sdk     = 24
  target_sdk  = 34
}
`
