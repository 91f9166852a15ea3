package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/specialistvlad/variantgrid/internal/depgraph"
	"github.com/specialistvlad/variantgrid/internal/variant"
)

// Finding is one policy result.
type Finding struct {
	ID       string
	Severity config.Severity
	Category Category
	Summary  string
	// Variant is empty for project-level findings.
	Variant     string
	Message     string
	Location    config.Location
	Explanation string
}

// Report is the outcome of one policy run.
type Report struct {
	Project  string
	Findings []Finding
	// Rules are the rules that ran, ordered by id.
	Rules []*Rule
}

// Count returns the number of findings at the given severity.
func (r *Report) Count(sev config.Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any finding is an error.
func (r *Report) HasErrors() bool {
	return r.Count(config.SeverityError) > 0
}

// Checker runs the rules of a registry.
type Checker struct {
	registry *Registry
}

// NewChecker creates a checker over the given registry.
func NewChecker(reg *Registry) *Checker {
	return &Checker{registry: reg}
}

// Check runs the built-in rules over a model, its resolved variants and
// their dependency resolutions.
func Check(ctx context.Context, model *config.Model, variants []*variant.Resolved, resolutions []*depgraph.Resolution) (*Report, error) {
	return NewChecker(DefaultRegistry()).Check(ctx, &Input{Model: model, Variants: variants, Resolutions: resolutions})
}

// Check evaluates the policy. The report is always returned; the error wraps
// config.ErrPolicyViolation when abort_on_error is set and an error finding
// exists.
func (c *Checker) Check(ctx context.Context, in *Input) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	in.registry = c.registry
	policy := in.Model.Lint
	if policy == nil {
		policy = config.DefaultLintPolicy("build")
	}

	report := &Report{}
	if in.Model.Project != nil {
		report.Project = in.Model.Project.Namespace
	}
	seen := make(map[Finding]bool)
	emit := func(r *Rule, sev config.Severity, variantName string, issues []Issue) {
		for _, is := range issues {
			f := Finding{
				ID:       r.ID,
				Severity: sev,
				Category: r.Category,
				Summary:  r.Summary,
				Variant:  variantName,
				Message:  is.Message,
				Location: is.Location,
			}
			if policy.ExplainIssues {
				f.Explanation = r.Explanation
			}
			if seen[f] {
				continue
			}
			seen[f] = true
			report.Findings = append(report.Findings, f)
		}
	}

	for _, r := range c.registry.Rules() {
		sev, on := Effective(r, policy)
		if !on {
			logger.Debug("Lint rule disabled.", "rule", r.ID)
			continue
		}
		if r.Dependency != nil && r.Project == nil && r.Variant == nil && !policy.CheckDependencies {
			logger.Debug("Skipping dependency rule.", "rule", r.ID)
			continue
		}
		report.Rules = append(report.Rules, r)

		if r.Project != nil {
			emit(r, sev, "", r.Project(in))
		}
		if r.Variant != nil {
			for _, v := range in.Variants {
				if !policy.CheckReleaseBuilds && !v.Debuggable {
					continue
				}
				emit(r, sev, v.Name, r.Variant(in, v))
			}
		}
		if r.Dependency != nil && policy.CheckDependencies {
			for _, res := range in.Resolutions {
				emit(r, sev, res.Variant, r.Dependency(in, res))
			}
		}
	}

	sortFindings(report.Findings)
	logger.Debug("Lint finished.",
		"rules", len(report.Rules),
		"errors", report.Count(config.SeverityError),
		"warnings", report.Count(config.SeverityWarning),
		"informational", report.Count(config.SeverityInformational),
	)

	if policy.AbortOnError && report.HasErrors() {
		first := report.Findings[0]
		return report, fmt.Errorf("%w: %d error(s), first: [%s] %s",
			config.ErrPolicyViolation, report.Count(config.SeverityError), first.ID, first.Message)
	}
	return report, nil
}

// sortFindings orders by severity (errors first), then id, variant and
// message.
func sortFindings(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		a, b := fs[i], fs[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if a.Variant != b.Variant {
			return a.Variant < b.Variant
		}
		return a.Message < b.Message
	})
}
