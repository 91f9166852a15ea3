package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/specialistvlad/variantgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	buildDir string
}

// NewLoader creates a new HCL configuration loader. buildDir is exposed to
// expressions as `build_dir`; a relative value is resolved against the
// project directory.
func NewLoader(buildDir string) *Loader {
	if buildDir == "" {
		buildDir = "build"
	}
	return &Loader{buildDir: buildDir}
}

// Load parses every .hcl file found under the given paths and merges them
// into one validated model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrMalformedConfig, err)
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("%w: no .hcl files found in %v", config.ErrMalformedConfig, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	projectDir := projectDirOf(paths[0])
	buildDir := l.buildDir
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(projectDir, buildDir)
	}
	evalCtx := newEvalContext(filepath.ToSlash(buildDir), filepath.ToSlash(projectDir))

	t := newTranslator(ctx, buildDir, projectDir)
	parser := hclparse.NewParser()
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", config.ErrMalformedConfig, file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", config.ErrMalformedConfig, file, diags)
		}

		if err := t.merge(&root, evalCtx); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		logger.Debug("Merged HCL file.", "file", file)
	}

	model := t.model
	if err := config.Validate(model); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"variants", len(model.VariantOrder),
		"plugins", len(model.Plugins),
		"dependencies", len(model.Dependencies),
		"constraints", len(model.Constraints),
		"artifacts", len(model.Artifacts),
	)
	return model, nil
}

// projectDirOf returns the directory a configuration path belongs to.
func projectDirOf(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Clean(path)
	}
	return filepath.Dir(path)
}
