package report

import (
	"encoding/xml"

	"github.com/specialistvlad/variantgrid/internal/fsutil"
	"github.com/specialistvlad/variantgrid/internal/lint"
)

type xmlIssues struct {
	XMLName xml.Name   `xml:"issues"`
	Format  string     `xml:"format,attr"`
	By      string     `xml:"by,attr"`
	Issues  []xmlIssue `xml:"issue"`
}

type xmlIssue struct {
	ID          string       `xml:"id,attr"`
	Severity    string       `xml:"severity,attr"`
	Message     string       `xml:"message,attr"`
	Category    string       `xml:"category,attr"`
	Summary     string       `xml:"summary,attr"`
	Explanation string       `xml:"explanation,attr,omitempty"`
	Variant     string       `xml:"variant,attr,omitempty"`
	Location    *xmlLocation `xml:"location,omitempty"`
}

type xmlLocation struct {
	File string `xml:"file,attr"`
	Line int    `xml:"line,attr,omitempty"`
}

func renderXML(r *lint.Report, opts Options) ([]byte, error) {
	doc := xmlIssues{Format: "6", By: toolName}
	for _, f := range r.Findings {
		issue := xmlIssue{
			ID:          f.ID,
			Severity:    severityLabel(f.Severity),
			Message:     f.Message,
			Category:    string(f.Category),
			Summary:     f.Summary,
			Explanation: f.Explanation,
			Variant:     f.Variant,
		}
		if f.Location.File != "" {
			issue.Location = &xmlLocation{
				File: fsutil.Display(opts.ProjectDir, f.Location.File, opts.AbsolutePaths),
				Line: f.Location.Line,
			}
		}
		doc.Issues = append(doc.Issues, issue)
	}

	out, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
