// Package anchor finds anchor-tag occurrences (TODO, HACK, and friends)
// inside comments. Matching is regex-driven: a tag only counts when it
// directly follows a comment-opening marker, optionally behind a single
// configured prefix character. Compiled patterns are cached per
// configuration so repeated scans with the same settings are cheap.
package anchor

// BuiltinTags is the built-in anchor vocabulary. Matching is
// case-insensitive; these are the canonical forms.
//
//nolint:gochecknoglobals // Read-only vocabulary.
var BuiltinTags = []string{"TODO", "HACK", "NOTE", "BUG", "FIXME", "UNDONE", "REVIEW", "ANCHOR"}

// MaxScanSize is the largest input, in characters, the scanner will look
// at. Longer inputs are skipped entirely and yield an empty result.
const MaxScanSize = 150000

// Item is one discovered anchor occurrence.
type Item struct {
	// File is the path of the scanned file.
	File string `json:"file"`

	// Project optionally names the project the file belongs to.
	Project string `json:"project,omitempty"`

	// Line is 1-based.
	Line int `json:"line"`

	// Column is the 1-based column of the match start, including a custom
	// prefix character when one matched.
	Column int `json:"column"`

	// Tag is the canonical uppercase tag keyword.
	Tag string `json:"tag"`

	// Metadata is the parenthesized or bracketed annotation directly after
	// the tag, e.g. "(@alice)[#123]". Empty when absent.
	Metadata string `json:"metadata,omitempty"`

	// Message is the free text after the tag, trimmed.
	Message string `json:"message"`

	// PrefixStyle is the comment marker the tag followed ("//", "*", "'").
	PrefixStyle string `json:"prefix_style"`
}
