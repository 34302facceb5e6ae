package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctags/internal/ui/pretty"
	"github.com/yaklabco/doctags/pkg/docblock"
	"github.com/yaklabco/doctags/pkg/render"
)

func renderedComment(t *testing.T, text string) *render.Comment {
	t.Helper()
	doc := docblock.ParseMarkup(text)
	require.NotNil(t, doc)
	return render.Render(doc)
}

func TestFormatComment_SummaryOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	comment := renderedComment(t, "<summary>Adds two numbers.</summary>")
	result := styles.FormatComment(comment)

	assert.Equal(t, "Adds two numbers.", result)
}

func TestFormatComment_SectionsWithHeadings(t *testing.T) {
	styles := pretty.NewStyles(false)

	comment := renderedComment(t, `<summary>Adds two numbers.</summary>
<param name="a">Left operand.</param>
<param name="b">Right operand.</param>
<returns>The sum.</returns>`)
	result := styles.FormatComment(comment)

	assert.Contains(t, result, "Adds two numbers.")
	assert.Contains(t, result, "Parameters:")
	assert.Contains(t, result, "a -")
	assert.Contains(t, result, "Left operand.")
	assert.Contains(t, result, "b -")
	assert.Contains(t, result, "Returns:")
	assert.Contains(t, result, "The sum.")

	// Shared heading printed once for consecutive params.
	assert.Equal(t, 1, strings.Count(result, "Parameters:"))
}

func TestFormatComment_InlineMarkup(t *testing.T) {
	styles := pretty.NewStyles(false)

	comment := renderedComment(t, `<summary>Uses <paramref name="count"/> with <c>null</c>.</summary>`)
	result := styles.FormatComment(comment)

	// With colors disabled, inline segments render as their text.
	assert.Equal(t, "Uses count with null.", result)
}

func TestFormatComment_ListItems(t *testing.T) {
	styles := pretty.NewStyles(false)

	comment := renderedComment(t, `<remarks>
Options:
- alpha
- beta
</remarks>`)
	result := styles.FormatComment(comment)

	assert.Contains(t, result, "Notes:")
	assert.Contains(t, result, "- alpha")
	assert.Contains(t, result, "- beta")
}

func TestFormatComment_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatComment(&render.Comment{})

	assert.Empty(t, result)
}

func TestFormatSegment_Kinds(t *testing.T) {
	// Plain text pass-through for every kind when color is off.
	styles := pretty.NewStyles(false)

	kinds := []docblock.SegmentKind{
		docblock.SegmentText,
		docblock.SegmentHeading,
		docblock.SegmentLink,
		docblock.SegmentParamRef,
		docblock.SegmentTypeParamRef,
		docblock.SegmentBold,
		docblock.SegmentItalic,
		docblock.SegmentCode,
	}
	for _, kind := range kinds {
		seg := docblock.Segment{Kind: kind, Text: "abc"}
		assert.Equal(t, "abc", styles.FormatSegment(seg))
	}
}
