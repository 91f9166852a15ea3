package report

import (
	"bytes"
	"fmt"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/lint"
)

func renderText(r *lint.Report, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if len(r.Findings) == 0 {
		buf.WriteString("No issues found.\n")
		return buf.Bytes(), nil
	}
	for _, f := range r.Findings {
		if loc := location(f.Location, opts); loc != "" {
			fmt.Fprintf(&buf, "%s: ", loc)
		}
		fmt.Fprintf(&buf, "%s: %s [%s]", severityLabel(f.Severity), f.Message, f.ID)
		if f.Variant != "" {
			fmt.Fprintf(&buf, " (variant %s)", f.Variant)
		}
		buf.WriteByte('\n')
		if f.Explanation != "" {
			fmt.Fprintf(&buf, "   Explanation: %s\n", f.Explanation)
		}
	}
	fmt.Fprintf(&buf, "%d errors, %d warnings, %d informational\n",
		r.Count(config.SeverityError), r.Count(config.SeverityWarning), r.Count(config.SeverityInformational))
	return buf.Bytes(), nil
}
