// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldProject    = "project"
	FieldLanguage   = "language"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig = "config"
	FieldMaxLen = "max_line_length"
	FieldWrite  = "write"
	FieldJobs   = "jobs"
	FieldTags   = "tags"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesScanned    = "files_scanned"
	FieldFilesSkipped    = "files_skipped"
	FieldItemsFound      = "items_found"
	FieldBlocksReflowed  = "blocks_reflowed"
	FieldFilesModified   = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
