package anchor

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/yaklabco/doctags/pkg/config"
)

// Patterns holds the compiled artifacts for one anchor configuration.
// Immutable once built.
type Patterns struct {
	// Tags is the full recognized vocabulary, canonical uppercase,
	// longest first.
	Tags []string

	// LineComment matches lines that begin (after whitespace) with a
	// comment marker.
	LineComment *regexp.Regexp

	// Classify locates a tag right after a comment marker and captures the
	// tag name and its optional trailing colon.
	Classify *regexp.Regexp

	// Record is the full anchor-record pattern: marker, optional prefix
	// character, tag, optional metadata, and the trailing message.
	Record *regexp.Regexp

	markerIdx int
	prefixIdx int
	tagIdx    int
	metaIdx   int
	msgIdx    int
}

// commentMarkers are the comment-opening alternatives, in regex form.
const commentMarkers = `//+|/\*+|\*|'|<!--`

// Compile builds the pattern set for the given settings.
func Compile(settings *config.Settings) *Patterns {
	if settings == nil {
		settings = config.NewSettings()
	}

	tags := normalizeTags(settings.CustomAnchorTags)
	prefixClass := prefixCharClass(settings.TagPrefixChars)

	alternation := make([]string, len(tags))
	for i, tag := range tags {
		alternation[i] = regexp.QuoteMeta(tag)
	}
	tagGroup := strings.Join(alternation, "|")

	prefixPart := ""
	if prefixClass != "" {
		prefixPart = "(?P<prefix>" + prefixClass + ")?"
	}

	record := regexp.MustCompile(
		`(?i)(?P<marker>` + commentMarkers + `)[ \t]*` +
			prefixPart +
			`(?P<tag>` + tagGroup + `)\b` +
			`(?P<meta>(?:\([^)]*\)|\[[^\]]*\])*)` +
			`:?[ \t]*(?P<msg>.*?)[ \t]*(?:\*/|-->)?[ \t]*$`,
	)

	classify := regexp.MustCompile(
		`(?i)(?:` + commentMarkers + `)[ \t]*` +
			strings.ReplaceAll(prefixPart, "?P<prefix>", "?:") +
			`(` + tagGroup + `)\b(:)?`,
	)

	return &Patterns{
		Tags:        tags,
		LineComment: regexp.MustCompile(`^[ \t]*(?:` + commentMarkers + `)`),
		Classify:    classify,
		Record:      record,
		markerIdx:   record.SubexpIndex("marker"),
		prefixIdx:   record.SubexpIndex("prefix"),
		tagIdx:      record.SubexpIndex("tag"),
		metaIdx:     record.SubexpIndex("meta"),
		msgIdx:      record.SubexpIndex("msg"),
	}
}

// normalizeTags merges the built-in vocabulary with custom tags: uppercase,
// trailing colons stripped, deduplicated, longest first so no tag shadows a
// longer one in the alternation.
func normalizeTags(custom []string) []string {
	seen := make(map[string]bool, len(BuiltinTags)+len(custom))
	tags := make([]string, 0, len(BuiltinTags)+len(custom))

	add := func(tag string) {
		tag = strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(tag), ":"))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, tag := range BuiltinTags {
		add(tag)
	}
	for _, tag := range custom {
		add(tag)
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return len(tags[i]) > len(tags[j])
	})
	return tags
}

// prefixCharClass builds a character class from the configured prefix
// characters. Multi-character entries are silently ignored.
func prefixCharClass(prefixes []string) string {
	var sb strings.Builder
	for _, p := range prefixes {
		if len(p) != 1 {
			continue
		}
		sb.WriteString(regexp.QuoteMeta(p))
	}
	if sb.Len() == 0 {
		return ""
	}
	return "[" + sb.String() + "]"
}

// cacheKey canonicalizes the anchor-relevant settings so identical
// configurations share one compiled pattern set.
func cacheKey(settings *config.Settings) string {
	if settings == nil {
		settings = config.NewSettings()
	}
	return "tags=" + strings.Join(normalizeTags(settings.CustomAnchorTags), ",") +
		"|prefixes=" + prefixCharClass(settings.TagPrefixChars)
}

// PatternCache memoizes compiled pattern sets by configuration.
// Safe for concurrent use.
type PatternCache struct {
	mu    sync.RWMutex
	byKey map[string]*Patterns
}

// NewPatternCache creates an empty pattern cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{byKey: make(map[string]*Patterns)}
}

// For returns the pattern set for the settings, compiling on first use.
func (c *PatternCache) For(settings *config.Settings) *Patterns {
	key := cacheKey(settings)

	c.mu.RLock()
	if p, ok := c.byKey[key]; ok {
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	p := Compile(settings)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.byKey[key]; ok {
		return existing
	}
	c.byKey[key] = p
	return p
}

// Clear drops all compiled patterns.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey = make(map[string]*Patterns)
}
