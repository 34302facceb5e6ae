// Package config defines the core settings types for doctags.
// These are pure data structures with no dependency on any config loader.
package config

// DefaultMaxLineLength is the column budget used when neither the global
// configuration nor a directory configuration sets one.
const DefaultMaxLineLength = 120

// Settings is the resolved configuration bundle consumed by the reflow
// engine and the anchor scanner.
type Settings struct {
	// MaxLineLength is the column budget for reflowed doc comments,
	// measured in characters including indentation and the doc prefix.
	MaxLineLength int `yaml:"max_line_length"`

	// CompactSummaries enables the single-line <summary>text</summary>
	// form for summaries that fit within MaxLineLength.
	CompactSummaries bool `yaml:"compact_summaries"`

	// PreserveBlankLines keeps blank doc-comment lines as paragraph
	// separators when reflowing; otherwise they are collapsed.
	PreserveBlankLines bool `yaml:"preserve_blank_lines"`

	// CustomAnchorTags extends the built-in anchor vocabulary
	// (TODO, HACK, ...). Tags are normalized to uppercase on ingestion.
	CustomAnchorTags []string `yaml:"custom_anchor_tags"`

	// TagPrefixChars are optional single characters accepted before an
	// anchor tag (e.g. "@" for "@TODO"). Multi-character entries are
	// silently ignored.
	TagPrefixChars []string `yaml:"custom_anchor_tag_prefixes"`
}

// NewSettings returns Settings with the built-in defaults.
func NewSettings() *Settings {
	return &Settings{
		MaxLineLength:      DefaultMaxLineLength,
		CompactSummaries:   true,
		PreserveBlankLines: true,
	}
}

// Overrides carries directory-scoped settings. Nil fields mean "not set
// here"; resolution falls back to the global value per setting, not
// all-or-nothing.
type Overrides struct {
	MaxLineLength    *int
	CustomAnchorTags []string
	TagPrefixChars   []string
}

// Resolve applies directory overrides on top of global settings.
// Each setting falls back independently when the override is unset.
func Resolve(global *Settings, o *Overrides) *Settings {
	if global == nil {
		global = NewSettings()
	}
	result := *global

	if o == nil {
		return &result
	}

	if o.MaxLineLength != nil {
		result.MaxLineLength = *o.MaxLineLength
	}
	if o.CustomAnchorTags != nil {
		result.CustomAnchorTags = o.CustomAnchorTags
	}
	if o.TagPrefixChars != nil {
		result.TagPrefixChars = o.TagPrefixChars
	}

	return &result
}
