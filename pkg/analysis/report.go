package analysis

// Report contains aggregated views of a lint run.
type Report struct {
	// ByFile groups findings by document. Clean documents are omitted.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByCheck groups findings by check. Checks without findings are omitted.
	ByCheck []CheckAnalysis `json:"byCheck,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"totals"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files             int `json:"filesChecked"`
	FilesWithFindings int `json:"filesWithFindings"`
	FilesErrored      int `json:"filesErrored"`
	Findings          int `json:"findings"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
	Infos             int `json:"infos"`
}

// HasFindings returns true if there are any findings.
func (t Totals) HasFindings() bool {
	return t.Findings > 0
}

// HasErrors returns true if any finding has error severity.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single document.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Findings int      `json:"findings"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Checks   []string `json:"checks,omitempty"`
}

// CheckAnalysis contains aggregated data for a single check.
type CheckAnalysis struct {
	CheckID   string   `json:"checkId"`
	CheckName string   `json:"checkName"`
	Title     string   `json:"title"`
	Findings  int      `json:"findings"`
	Errors    int      `json:"errors"`
	Warnings  int      `json:"warnings"`
	Infos     int      `json:"infos"`
	Files     []string `json:"files,omitempty"`
}
