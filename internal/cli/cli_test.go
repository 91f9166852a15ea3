package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/variantgrid/internal/app"
	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name           string
		args           []string
		wantConfig     *app.Config
		wantShouldExit bool
		wantErrCode    int
		wantOutput     string
	}{
		{
			name: "positional path with defaults",
			args: []string{"project/"},
			wantConfig: &app.Config{
				ConfigPath: "project/",
				BuildDir:   "build",
				LogFormat:  "text",
				LogLevel:   "info",
			},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-config", "a.hcl", "-c", "b.hcl", "c.hcl"},
			wantConfig: &app.Config{
				ConfigPath: "a.hcl",
				BuildDir:   "build",
				LogFormat:  "text",
				LogLevel:   "info",
			},
		},
		{
			name: "all options",
			args: []string{"-c", "build.yaml", "-variant", "release", "-build-dir", "out", "-log-format", "JSON", "-log-level", "DEBUG"},
			wantConfig: &app.Config{
				ConfigPath: "build.yaml",
				Variant:    "release",
				BuildDir:   "out",
				LogFormat:  "json",
				LogLevel:   "debug",
			},
		},
		{name: "help", args: []string{"-h"}, wantShouldExit: true, wantOutput: "Usage:"},
		{name: "no path is a usage error", args: nil, wantErrCode: ExitUsage, wantOutput: "CONFIG_PATH"},
		{name: "only flags is a usage error", args: []string{"-variant", "debug"}, wantErrCode: ExitUsage, wantOutput: "CONFIG_PATH"},
		{name: "unknown flag", args: []string{"-nope"}, wantErrCode: ExitUsage},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.hcl"}, wantErrCode: ExitUsage},
		{name: "bad log level", args: []string{"-log-level", "trace", "a.hcl"}, wantErrCode: ExitUsage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.wantErrCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
				assert.Equal(t, tc.wantErrCode, exitErr.Code)
				if tc.wantOutput != "" {
					assert.Contains(t, out.String(), tc.wantOutput)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantShouldExit, shouldExit)
			assert.Equal(t, tc.wantConfig, cfg)
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"generic", errors.New("boom"), ExitFailure},
		{"policy", fmt.Errorf("%w: 1 error(s)", config.ErrPolicyViolation), ExitFailure},
		{"malformed", fmt.Errorf("load: %w", config.ErrMalformedConfig), ExitMalformed},
		{"cyclic", fmt.Errorf("%w: a -> b -> a", config.ErrCyclicVariantInheritance), ExitCyclic},
		{"conflict", errors.Join(fmt.Errorf("%w: lib:core", config.ErrUnresolvedConflict)), ExitUnresolved},
		{"unknown variant", fmt.Errorf("%w: staging", variant.ErrUnknownVariant), ExitUsage},
		{"exit error", &ExitError{Code: 7, Message: "custom"}, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestToExitError(t *testing.T) {
	assert.Nil(t, ToExitError(nil))

	original := &ExitError{Code: ExitUsage, Message: "bad flag"}
	assert.Same(t, original, ToExitError(fmt.Errorf("wrapped: %w", original)))

	got := ToExitError(fmt.Errorf("%w: x", config.ErrCyclicVariantInheritance))
	assert.Equal(t, ExitCyclic, got.Code)
	assert.Contains(t, got.Message, "cyclic variant inheritance")
}
