package lint

import (
	"slices"

	"github.com/specialistvlad/variantgrid/internal/config"
)

// Effective returns the severity a rule runs at under the policy, and false
// if the rule is off.
func Effective(r *Rule, p *config.LintPolicy) (config.Severity, bool) {
	if p == nil {
		return r.Severity, r.EnabledByDefault
	}
	if slices.Contains(p.Disable, r.ID) {
		return 0, false
	}

	sev, explicit := p.Severities[r.ID]
	switch {
	case explicit:
	case slices.Contains(p.Enable, r.ID) || r.EnabledByDefault:
		sev = r.Severity
	default:
		return 0, false
	}

	if p.WarningsAsErrors && sev == config.SeverityWarning {
		sev = config.SeverityError
	}
	return sev, true
}
