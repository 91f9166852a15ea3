package config

import "fmt"

// LintSettings is a lint block as written in a configuration file. Nil and
// empty fields keep the default policy value. The loaders' decode structs
// share this field layout, so they convert to it directly.
type LintSettings struct {
	AbortOnError       *bool
	WarningsAsErrors   *bool
	CheckReleaseBuilds *bool
	CheckDependencies  *bool
	ExplainIssues      *bool
	AbsolutePaths      *bool

	Enable        []string
	Disable       []string
	Error         []string
	Warning       []string
	Informational []string

	HTMLReport  *bool
	XMLReport   *bool
	SARIFReport *bool
	TextReport  *bool
	HTMLOutput  string
	XMLOutput   string
	SARIFOutput string
	TextOutput  string
}

// BuildLintPolicy applies the settings on top of DefaultLintPolicy. An issue
// id listed under two different severities is a malformed configuration.
func BuildLintPolicy(buildDir string, s LintSettings) (*LintPolicy, error) {
	p := DefaultLintPolicy(buildDir)

	setBool(&p.AbortOnError, s.AbortOnError)
	setBool(&p.WarningsAsErrors, s.WarningsAsErrors)
	setBool(&p.CheckReleaseBuilds, s.CheckReleaseBuilds)
	setBool(&p.CheckDependencies, s.CheckDependencies)
	setBool(&p.ExplainIssues, s.ExplainIssues)
	setBool(&p.AbsolutePaths, s.AbsolutePaths)

	p.Enable = s.Enable
	p.Disable = s.Disable
	for _, group := range []struct {
		severity Severity
		ids      []string
	}{
		{SeverityInformational, s.Informational},
		{SeverityWarning, s.Warning},
		{SeverityError, s.Error},
	} {
		for _, id := range group.ids {
			if prev, ok := p.Severities[id]; ok && prev != group.severity {
				return nil, fmt.Errorf("%w: lint issue %q is given both %s and %s severity",
					ErrMalformedConfig, id, prev, group.severity)
			}
			p.Severities[id] = group.severity
		}
	}

	setBool(&p.Outputs.HTML, s.HTMLReport)
	setBool(&p.Outputs.XML, s.XMLReport)
	setBool(&p.Outputs.SARIF, s.SARIFReport)
	setBool(&p.Outputs.Text, s.TextReport)
	setString(&p.Outputs.HTMLOutput, s.HTMLOutput)
	setString(&p.Outputs.XMLOutput, s.XMLOutput)
	setString(&p.Outputs.SARIFOutput, s.SARIFOutput)
	setString(&p.Outputs.TextOutput, s.TextOutput)
	return p, nil
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
