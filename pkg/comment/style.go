// Package comment provides the lexical layer of doctags: per-language comment
// style records and stateless scanning functions that classify character
// ranges of a single line as comment or string-literal content. The scanner is
// deliberately token-level, not grammar-level; it runs on every keystroke and
// must stay fast across several source languages.
package comment

import (
	"strings"
	"sync"
)

// Style describes one source language family's comment syntax.
// Instances are immutable values; the registry hands out copies.
type Style struct {
	// ID identifies the style (e.g., "c-family", "vb-family").
	ID string

	// LinePrefix is the line-comment marker (e.g., "//", "'").
	LinePrefix string

	// BlockStart and BlockEnd delimit block comments ("/*", "*/").
	// Empty for languages without block comments.
	BlockStart string
	BlockEnd   string

	// DocPrefix is the structured doc-comment line marker ("///", "'''").
	DocPrefix string
}

// CFamily is the comment style shared by C, C++, C#, Go, Java, JavaScript,
// TypeScript, Rust and similar languages.
func CFamily() Style {
	return Style{
		ID:         "c-family",
		LinePrefix: "//",
		BlockStart: "/*",
		BlockEnd:   "*/",
		DocPrefix:  "///",
	}
}

// VBFamily is the comment style of Visual Basic dialects.
func VBFamily() Style {
	return Style{
		ID:         "vb-family",
		LinePrefix: "'",
		DocPrefix:  "'''",
	}
}

// HasBlockComments returns true if the style defines block comment delimiters.
func (s Style) HasBlockComments() bool {
	return s.BlockStart != "" && s.BlockEnd != ""
}

// IsDocCommentLine returns true if the line, after stripping leading
// whitespace, begins with the doc-comment prefix.
func (s Style) IsDocCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), s.DocPrefix)
}

// LineIsComment returns true if the entire line is a comment: after optional
// leading whitespace it begins with the line-comment prefix, the doc-comment
// prefix, a block-comment opener, or a block-comment continuation marker.
func (s Style) LineIsComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return false
	}
	if s.LinePrefix != "" && strings.HasPrefix(trimmed, s.LinePrefix) {
		return true
	}
	if s.DocPrefix != "" && strings.HasPrefix(trimmed, s.DocPrefix) {
		return true
	}
	if s.HasBlockComments() {
		if strings.HasPrefix(trimmed, s.BlockStart) {
			return true
		}
		// Continuation line inside a block comment (" * text").
		if strings.HasPrefix(trimmed, "*") {
			return true
		}
	}
	return false
}

// styleRegistry maps lowercase language identifiers to comment styles.
// Populated once at init; Register allows configuration-driven extension.
type styleRegistry struct {
	mu     sync.RWMutex
	byLang map[string]Style
}

//nolint:gochecknoglobals // Process-wide read-mostly registry is intentional.
var registry = newStyleRegistry()

func newStyleRegistry() *styleRegistry {
	r := &styleRegistry{byLang: make(map[string]Style)}

	cFamily := CFamily()
	for _, lang := range []string{
		"c", "c++", "c#", "csharp", "go", "java", "javascript", "typescript",
		"rust", "kotlin", "scala", "swift", "objective-c", "php", "dart",
	} {
		r.byLang[lang] = cFamily
	}

	vbFamily := VBFamily()
	for _, lang := range []string{"visual basic .net", "visual basic", "vba", "vb", "vbnet"} {
		r.byLang[lang] = vbFamily
	}

	return r
}

// Register associates a language identifier with a comment style.
// Later registrations replace earlier ones.
func Register(lang string, style Style) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.byLang[strings.ToLower(lang)] = style
}

// StyleFor returns the comment style for a language identifier.
// Lookup is case-insensitive. Returns (zero Style, false) for unknown languages.
func StyleFor(lang string) (Style, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	style, ok := registry.byLang[strings.ToLower(lang)]
	return style, ok
}
