// Package render converts a parsed doc block into a presentation model:
// a summary plus the remaining sections in source order, with synthesized
// headings. It is display-agnostic; terminal styling lives elsewhere.
package render

import (
	"strings"

	"github.com/yaklabco/doctags/pkg/docblock"
)

// InlineSummaryMaxLength is the longest stripped summary that still
// qualifies for inline display next to a symbol.
const InlineSummaryMaxLength = 100

// Section is one displayable section of a rendered comment.
type Section struct {
	Kind docblock.SectionKind

	// Title is the synthesized heading for the section ("Parameters",
	// "Returns"). Empty for summary sections.
	Title string

	// Name is the specific target: a parameter name or a cref.
	Name string

	Lines []docblock.Line
}

// Heading returns the section title as a heading segment, including the
// target name when present ("Parameters: a").
func (s *Section) Heading() docblock.Segment {
	text := s.Title
	if s.Name != "" {
		text += ": " + s.Name
	}
	return docblock.Segment{Kind: docblock.SegmentHeading, Text: text, Raw: text}
}

// Comment is the rendered form of one doc block.
type Comment struct {
	// Summary is the first summary section, explicit or implicit.
	// Nil when the block has no summary content.
	Summary *Section

	// AdditionalSections holds every non-summary section in source order.
	AdditionalSections []Section
}

// HasAdditionalSections reports whether anything beyond the summary exists.
func (c *Comment) HasAdditionalSections() bool {
	return len(c.AdditionalSections) > 0
}

// sectionTitles maps section kinds to display headings.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sectionTitles = map[docblock.SectionKind]string{
	docblock.SectionParam:     "Parameters",
	docblock.SectionTypeParam: "Type Parameters",
	docblock.SectionReturns:   "Returns",
	docblock.SectionException: "Exceptions",
	docblock.SectionRemarks:   "Remarks",
	docblock.SectionExample:   "Example",
	docblock.SectionValue:     "Value",
	docblock.SectionSeeAlso:   "See Also",
	docblock.SectionOther:     "Notes",
}

// Render builds the presentation model for a parsed document. The first
// non-empty summary section becomes Comment.Summary; every other non-empty
// section keeps its source order in AdditionalSections. Sections with no
// lines and no target name carry nothing to display and are dropped.
func Render(doc *docblock.Document) *Comment {
	comment := &Comment{}
	if doc == nil {
		return comment
	}

	summaryTaken := false
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.Kind == docblock.SectionSummary && !summaryTaken {
			if len(sec.Lines) == 0 {
				continue
			}
			summaryTaken = true
			comment.Summary = &Section{
				Kind:  sec.Kind,
				Lines: sec.Lines,
			}
			continue
		}
		if len(sec.Lines) == 0 && sec.Name == "" {
			continue
		}
		comment.AdditionalSections = append(comment.AdditionalSections, Section{
			Kind:  sec.Kind,
			Title: sectionTitles[sec.Kind],
			Name:  sec.Name,
			Lines: sec.Lines,
		})
	}
	return comment
}

// StrippedSummary returns the summary as plain text with all markup removed
// and runs of whitespace collapsed to single spaces. Returns "" when the
// document has no summary.
func StrippedSummary(doc *docblock.Document) string {
	if doc == nil {
		return ""
	}
	summary := doc.Summary()
	if summary == nil {
		return ""
	}

	var words []string
	for _, line := range summary.Lines {
		words = append(words, strings.Fields(line.PlainText())...)
	}
	return strings.Join(words, " ")
}

// IsInlineable reports whether the summary is short and simple enough for
// inline display: at most InlineSummaryMaxLength characters once stripped,
// and free of list or code content.
func IsInlineable(doc *docblock.Document) bool {
	if doc == nil {
		return false
	}
	summary := doc.Summary()
	if summary == nil {
		return false
	}
	if summary.HasListContent() {
		return false
	}
	for _, line := range summary.Lines {
		if line.Kind == docblock.LineCode {
			return false
		}
	}
	return len(StrippedSummary(doc)) <= InlineSummaryMaxLength
}
