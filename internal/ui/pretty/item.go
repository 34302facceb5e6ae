package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/doctags/pkg/anchor"
	"github.com/yaklabco/doctags/pkg/runner"
)

// urgentTags and workTags partition the built-in vocabulary for coloring.
// Anything else (NOTE, REVIEW, ANCHOR, custom tags) renders as info.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	urgentTags = map[string]bool{"BUG": true, "FIXME": true}
	workTags   = map[string]bool{"TODO": true, "HACK": true, "UNDONE": true}
)

// FormatTag returns the styled tag keyword.
func (s *Styles) FormatTag(tag string) string {
	switch {
	case urgentTags[tag]:
		return s.TagUrgent.Render(tag)
	case workTags[tag]:
		return s.TagWork.Render(tag)
	default:
		return s.TagInfo.Render(tag)
	}
}

// FormatItem formats a single anchor item for terminal output:
// location, tag, metadata, message.
func (s *Styles) FormatItem(item anchor.Item) string {
	var builder strings.Builder

	builder.WriteString("  ")
	builder.WriteString(s.FilePath.Render(item.File))
	builder.WriteString(s.Location.Render(fmt.Sprintf(":%d:%d", item.Line, item.Column)))
	builder.WriteString("  ")
	builder.WriteString(s.FormatTag(item.Tag))
	if item.Metadata != "" {
		builder.WriteString(" " + s.Metadata.Render(item.Metadata))
	}
	if item.Message != "" {
		builder.WriteString("  " + s.Message.Render(item.Message))
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, itemCount int) string {
	header := s.FilePath.Render(path)
	if itemCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d items)", itemCount))
	}
	return header
}

// FormatScanSummary formats the aggregate line printed after a scan.
func (s *Styles) FormatScanSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString(s.SummaryTitle.Render("Scanned "))
	builder.WriteString(s.SummaryValue.Render(fmt.Sprintf("%d files", stats.FilesScanned)))
	if stats.FilesSkipped > 0 {
		builder.WriteString(s.Dim.Render(fmt.Sprintf(" (%d skipped)", stats.FilesSkipped)))
	}
	builder.WriteString(s.SummaryTitle.Render(", found "))

	if stats.ItemsFound == 0 {
		builder.WriteString(s.Success.Render("no anchors"))
		return builder.String()
	}

	builder.WriteString(s.Failure.Render(fmt.Sprintf("%d anchors", stats.ItemsFound)))

	// Stable tag order for the breakdown.
	var parts []string
	for _, tag := range anchor.BuiltinTags {
		if n := stats.ItemsByTag[tag]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", tag, n))
		}
	}
	var custom []string
	for tag, n := range stats.ItemsByTag {
		if !isBuiltin(tag) && n > 0 {
			custom = append(custom, fmt.Sprintf("%s %d", tag, n))
		}
	}
	sort.Strings(custom)
	parts = append(parts, custom...)
	if len(parts) > 0 {
		builder.WriteString(s.Dim.Render(" (" + strings.Join(parts, ", ") + ")"))
	}

	return builder.String()
}

func isBuiltin(tag string) bool {
	for _, builtin := range anchor.BuiltinTags {
		if tag == builtin {
			return true
		}
	}
	return false
}
