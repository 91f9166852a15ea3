package report

import (
	"context"
	"fmt"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/specialistvlad/variantgrid/internal/fsutil"
	"github.com/specialistvlad/variantgrid/internal/lint"
)

const toolName = "variantgrid"

// Options controls where reports go and how paths inside them are shown.
type Options struct {
	ProjectDir    string
	AbsolutePaths bool
	Outputs       config.ReportOutputs
}

// OptionsFor derives report options from a loaded model.
func OptionsFor(m *config.Model) Options {
	p := m.Lint
	if p == nil {
		p = config.DefaultLintPolicy("build")
	}
	return Options{ProjectDir: m.ProjectDir, AbsolutePaths: p.AbsolutePaths, Outputs: p.Outputs}
}

type renderer func(r *lint.Report, opts Options) ([]byte, error)

// Write renders every enabled format and returns the paths written, in the
// order html, xml, sarif, text.
func Write(ctx context.Context, r *lint.Report, opts Options) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	formats := []struct {
		name    string
		enabled bool
		path    string
		render  renderer
	}{
		{"html", opts.Outputs.HTML, opts.Outputs.HTMLOutput, renderHTML},
		{"xml", opts.Outputs.XML, opts.Outputs.XMLOutput, renderXML},
		{"sarif", opts.Outputs.SARIF, opts.Outputs.SARIFOutput, renderSARIF},
		{"text", opts.Outputs.Text, opts.Outputs.TextOutput, renderText},
	}

	var written []string
	for _, f := range formats {
		if !f.enabled {
			continue
		}
		if f.path == "" {
			return written, fmt.Errorf("%w: %s report is enabled but has no output path", config.ErrMalformedConfig, f.name)
		}
		data, err := f.render(r, opts)
		if err != nil {
			return written, fmt.Errorf("failed to render %s report: %w", f.name, err)
		}
		path := fsutil.Resolve(opts.ProjectDir, f.path)
		if err := fsutil.WriteFile(path, data); err != nil {
			return written, fmt.Errorf("failed to write %s report: %w", f.name, err)
		}
		logger.Debug("Report written.", "format", f.name, "path", path, "bytes", len(data))
		written = append(written, path)
	}
	return written, nil
}

// location renders a finding location for a report.
func location(l config.Location, opts Options) string {
	file := fsutil.Display(opts.ProjectDir, l.File, opts.AbsolutePaths)
	if file == "" || l.Line == 0 {
		return file
	}
	return fmt.Sprintf("%s:%d", file, l.Line)
}

// severityLabel uses the capitalised names lint reports use.
func severityLabel(s config.Severity) string {
	switch s {
	case config.SeverityError:
		return "Error"
	case config.SeverityWarning:
		return "Warning"
	}
	return "Information"
}
