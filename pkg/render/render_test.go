package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctags/pkg/docblock"
	"github.com/yaklabco/doctags/pkg/render"
)

func TestRenderSummaryOnly(t *testing.T) {
	t.Parallel()

	doc := docblock.ParseMarkup("<summary>Adds two numbers.</summary>")
	comment := render.Render(doc)

	require.NotNil(t, comment.Summary)
	assert.False(t, comment.HasAdditionalSections())
	assert.Equal(t, "Adds two numbers.", comment.Summary.Lines[0].PlainText())
}

func TestRenderKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	doc := docblock.ParseMarkup("<summary>Sum.</summary>\n" +
		`<param name="a">Left.</param>` + "\n" +
		"<returns>Total.</returns>\n" +
		`<param name="b">Right.</param>`)
	comment := render.Render(doc)

	require.NotNil(t, comment.Summary)
	require.Len(t, comment.AdditionalSections, 3)

	kinds := []docblock.SectionKind{
		comment.AdditionalSections[0].Kind,
		comment.AdditionalSections[1].Kind,
		comment.AdditionalSections[2].Kind,
	}
	assert.Equal(t, []docblock.SectionKind{
		docblock.SectionParam, docblock.SectionReturns, docblock.SectionParam,
	}, kinds)
	assert.Equal(t, "a", comment.AdditionalSections[0].Name)
	assert.Equal(t, "b", comment.AdditionalSections[2].Name)
}

func TestRenderHeadings(t *testing.T) {
	t.Parallel()

	doc := docblock.ParseMarkup(`<param name="count">How many.</param>` + "\n<returns>The result.</returns>")
	comment := render.Render(doc)

	require.Len(t, comment.AdditionalSections, 2)

	params := comment.AdditionalSections[0].Heading()
	assert.Equal(t, docblock.SegmentHeading, params.Kind)
	assert.Equal(t, "Parameters: count", params.Text)

	returns := comment.AdditionalSections[1].Heading()
	assert.Equal(t, "Returns", returns.Text)
}

func TestRenderImplicitSummary(t *testing.T) {
	t.Parallel()

	doc := docblock.ParseMarkup("Bare text with no markup at all.")
	comment := render.Render(doc)

	require.NotNil(t, comment.Summary)
	assert.False(t, comment.HasAdditionalSections())
}

func TestRenderDropsEmptySections(t *testing.T) {
	t.Parallel()

	doc := docblock.ParseMarkup("<summary>Hi.</summary>\n<remarks></remarks>")
	comment := render.Render(doc)

	require.NotNil(t, comment.Summary)
	assert.False(t, comment.HasAdditionalSections())
	assert.Empty(t, comment.AdditionalSections)

	// A named self-closing section carries content and survives.
	doc = docblock.ParseMarkup("<summary>Hi.</summary>\n" + `<seealso cref="Other"/>`)
	comment = render.Render(doc)

	require.Len(t, comment.AdditionalSections, 1)
	assert.Equal(t, "Other", comment.AdditionalSections[0].Name)
	assert.True(t, comment.HasAdditionalSections())
}

func TestRenderEmptySummary(t *testing.T) {
	t.Parallel()

	doc := docblock.ParseMarkup("<summary></summary>")
	comment := render.Render(doc)

	assert.Nil(t, comment.Summary)
	assert.False(t, comment.HasAdditionalSections())

	// An empty summary does not shadow a later non-empty one.
	doc = docblock.ParseMarkup("<summary></summary>\n<summary>Real text.</summary>")
	comment = render.Render(doc)

	require.NotNil(t, comment.Summary)
	assert.Equal(t, "Real text.", comment.Summary.Lines[0].PlainText())
	assert.False(t, comment.HasAdditionalSections())
}

func TestRenderNilAndEmpty(t *testing.T) {
	t.Parallel()

	comment := render.Render(nil)
	require.NotNil(t, comment)
	assert.Nil(t, comment.Summary)

	comment = render.Render(docblock.ParseMarkup(""))
	assert.Nil(t, comment.Summary)
	assert.False(t, comment.HasAdditionalSections())
}

func TestStrippedSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markup removed",
			input: `<summary>Uses <c>Foo</c> and <paramref name="x"/>.</summary>`,
			want:  "Uses Foo and x.",
		},
		{
			name:  "multi-line collapsed",
			input: "<summary>\nFirst line\nsecond line.\n</summary>",
			want:  "First line second line.",
		},
		{
			name:  "whitespace runs collapsed",
			input: "<summary>Too   many    spaces.</summary>",
			want:  "Too many spaces.",
		},
		{
			name:  "no summary",
			input: "<returns>Just a return.</returns>",
			want:  "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := docblock.ParseMarkup(testCase.input)
			assert.Equal(t, testCase.want, render.StrippedSummary(doc))
		})
	}
}

// Stripping markup-free text is the identity transform modulo whitespace.
func TestStrippedSummaryPlainTextRoundTrip(t *testing.T) {
	t.Parallel()

	raw := "Computes the rolling checksum of the window."
	doc := docblock.ParseMarkup(raw)
	assert.Equal(t, raw, render.StrippedSummary(doc))

	doc = docblock.ParseMarkup("<summary>" + raw + "</summary>")
	assert.Equal(t, raw, render.StrippedSummary(doc))
}

func TestIsInlineable(t *testing.T) {
	t.Parallel()

	short := docblock.ParseMarkup("<summary>Short and sweet.</summary>")
	assert.True(t, render.IsInlineable(short))

	long := docblock.ParseMarkup("<summary>" + strings.Repeat("word ", 25) + "end.</summary>")
	assert.False(t, render.IsInlineable(long))

	withList := docblock.ParseMarkup("<summary>Choices:\n- one\n- two\n</summary>")
	assert.False(t, render.IsInlineable(withList))

	withCode := docblock.ParseMarkup("<summary>Run:\n<code>\nx();\n</code>\n</summary>")
	assert.False(t, render.IsInlineable(withCode))

	assert.False(t, render.IsInlineable(nil))
	assert.False(t, render.IsInlineable(docblock.ParseMarkup("<returns>No summary.</returns>")))
}
