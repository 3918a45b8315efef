package lint

import "strings"

// Report holds the findings of one check over one document.
type Report struct {
	// CheckID is the identifier of the check that produced the report.
	CheckID string

	// CheckName is the short name of the check.
	CheckName string

	// Title is the printable heading of the check.
	Title string

	// Findings are ordered by ascending line number.
	Findings []Finding
}

// Add appends a finding to the report.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// HasFindings reports whether the check found anything.
func (r *Report) HasFindings() bool {
	return r != nil && len(r.Findings) > 0
}

// Count returns the number of findings.
func (r *Report) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Findings)
}

// String renders the report as plain text: the title, and when there are
// findings, " Errors:" followed by one finding per line. A nil report
// renders as "".
func (r *Report) String() string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.Title)
	if !r.HasFindings() {
		return sb.String()
	}

	sb.WriteString(" Errors:\n")
	for _, f := range r.Findings {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
