package logging

// Structured log keys used across mdprose.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldSource     = "source"
	FieldConfig     = "config"
	FieldName       = "name"

	// Effective settings logged once per run.
	FieldLineLength = "line_length"
	FieldExtended   = "extended"
	FieldDictDir    = "dict_dir"
	FieldJobs       = "jobs"

	FieldCheck       = "check"
	FieldSeverity    = "severity"
	FieldDescription = "description"
	FieldEntries     = "entries"
	FieldFindings    = "findings"

	// Run totals.
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_findings"
	FieldFindingsTotal   = "findings_total"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
