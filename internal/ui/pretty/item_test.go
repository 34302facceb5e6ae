package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doctags/internal/ui/pretty"
	"github.com/yaklabco/doctags/pkg/anchor"
	"github.com/yaklabco/doctags/pkg/runner"
)

func TestFormatItem_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	item := anchor.Item{
		File:    "src/main.cs",
		Line:    42,
		Column:  5,
		Tag:     "TODO",
		Message: "wire up retries",
	}

	result := styles.FormatItem(item)

	assert.Contains(t, result, "src/main.cs:42:5")
	assert.Contains(t, result, "TODO")
	assert.Contains(t, result, "wire up retries")
}

func TestFormatItem_WithMetadata(t *testing.T) {
	styles := pretty.NewStyles(false)

	item := anchor.Item{
		File:     "lib.go",
		Line:     1,
		Column:   4,
		Tag:      "HACK",
		Metadata: "(alice)",
		Message:  "temporary workaround",
	}

	result := styles.FormatItem(item)

	assert.Contains(t, result, "(alice)")
	assert.Contains(t, result, "HACK")
}

func TestFormatItem_NoMessage(t *testing.T) {
	styles := pretty.NewStyles(false)

	item := anchor.Item{File: "a.cs", Line: 3, Column: 1, Tag: "UNDONE"}

	result := styles.FormatItem(item)

	assert.Contains(t, result, "a.cs:3:1")
	assert.Contains(t, result, "UNDONE")
}

func TestFormatTag_AllKnownTags(t *testing.T) {
	// With colors disabled every tag renders as itself. This pins the
	// routing through the urgency buckets without asserting ANSI output.
	styles := pretty.NewStyles(false)

	for _, tag := range anchor.BuiltinTags {
		assert.Equal(t, tag, styles.FormatTag(tag))
	}
	assert.Equal(t, "MYTAG", styles.FormatTag("MYTAG"))
}

func TestFormatFileHeader_WithItems(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("src/worker.cs", 3)

	assert.Contains(t, result, "src/worker.cs")
	assert.Contains(t, result, "(3 items)")
}

func TestFormatFileHeader_NoItems(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("src/worker.cs", 0)

	assert.Contains(t, result, "src/worker.cs")
	assert.NotContains(t, result, "items")
}

func TestFormatScanSummary_NoAnchors(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatScanSummary(runner.Stats{FilesScanned: 7})

	assert.Contains(t, result, "7 files")
	assert.Contains(t, result, "no anchors")
}

func TestFormatScanSummary_WithAnchors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesScanned: 12,
		FilesSkipped: 2,
		ItemsFound:   5,
		ItemsByTag:   map[string]int{"TODO": 3, "BUG": 1, "MYTAG": 1},
	}

	result := styles.FormatScanSummary(stats)

	assert.Contains(t, result, "12 files")
	assert.Contains(t, result, "(2 skipped)")
	assert.Contains(t, result, "5 anchors")
	assert.Contains(t, result, "TODO 3")
	assert.Contains(t, result, "BUG 1")
	assert.Contains(t, result, "MYTAG 1")
}
