package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by finding count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by severity (errors first).
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures Analyze.
type Options struct {
	// IncludeByFile includes the per-document breakdown.
	IncludeByFile bool

	// IncludeByCheck includes the per-check breakdown.
	IncludeByCheck bool

	// SortBy specifies how to sort ByFile and ByCheck.
	SortBy SortField

	// SortDesc sorts counts in descending order (highest first).
	SortDesc bool

	// DisplayPath maps a document path to the form shown to users.
	// Nil keeps paths as they are.
	DisplayPath func(string) string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile:  true,
		IncludeByCheck: true,
		SortBy:         SortByCount,
		SortDesc:       true,
	}
}
