package docblock

import "strings"

// SectionKind classifies a top-level documentation section.
type SectionKind int

const (
	SectionSummary SectionKind = iota
	SectionParam
	SectionTypeParam
	SectionReturns
	SectionException
	SectionRemarks
	SectionExample
	SectionValue
	SectionSeeAlso
	SectionOther
)

// String returns a stable lowercase name for the section kind.
func (k SectionKind) String() string {
	switch k {
	case SectionSummary:
		return "summary"
	case SectionParam:
		return "param"
	case SectionTypeParam:
		return "typeparam"
	case SectionReturns:
		return "returns"
	case SectionException:
		return "exception"
	case SectionRemarks:
		return "remarks"
	case SectionExample:
		return "example"
	case SectionValue:
		return "value"
	case SectionSeeAlso:
		return "seealso"
	default:
		return "other"
	}
}

// SegmentKind classifies a styled run of text within a line.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentHeading
	SegmentLink
	SegmentParamRef
	SegmentTypeParamRef
	SegmentBold
	SegmentItalic
	SegmentCode
)

// Segment is a styled run of text. Text is the display form; Raw is the
// exact source markup the segment came from, used for faithful re-emission.
type Segment struct {
	Kind SegmentKind
	Text string
	Raw  string
}

// LineKind classifies a logical line within a section body.
type LineKind int

const (
	// LineText is ordinary prose; a LineText line with no segments is blank.
	LineText LineKind = iota
	// LineListItem carries a bullet prefix that must start an output line.
	LineListItem
	// LineCode is preformatted text emitted verbatim, one line per line.
	LineCode
	// LineVerbatim is structural markup (list and code delimiters, paragraph
	// breaks) re-emitted exactly as written.
	LineVerbatim
)

// Line is one logical line of section content.
type Line struct {
	Kind LineKind

	// Bullet is the literal prefix for list items ("- ", "* ", "<item>").
	// Continuation text wraps aligned under the end of the bullet.
	Bullet string

	// BulletClose is appended after the final word of a list item ("</item>").
	BulletClose string

	Segments []Segment
}

// IsBlank reports whether the line carries no content at all.
func (l Line) IsBlank() bool {
	return l.Kind == LineText && len(l.Segments) == 0
}

// PlainText concatenates the display text of every segment.
func (l Line) PlainText() string {
	var sb strings.Builder
	for _, seg := range l.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Section is one top-level documentation section.
type Section struct {
	Kind SectionKind

	// Tag is the source element name ("summary", "param"). Empty for
	// implicit sections that had no surrounding element.
	Tag string

	// Name is the target the section refers to: a param or typeparam name,
	// an exception or seealso cref.
	Name string

	// AttrText is the raw attribute region of the opening element, kept for
	// exact re-emission.
	AttrText string

	// Implicit marks bare top-level text that was folded into a summary.
	Implicit bool

	// SelfClosing marks sections written as a single empty element.
	SelfClosing bool

	Lines []Line
}

// PlainText joins the display text of all lines with newlines.
func (s *Section) PlainText() string {
	parts := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		parts = append(parts, line.PlainText())
	}
	return strings.Join(parts, "\n")
}

// HasListContent reports whether any line is a list item or list markup.
func (s *Section) HasListContent() bool {
	for _, line := range s.Lines {
		switch line.Kind {
		case LineListItem:
			return true
		case LineVerbatim:
			if strings.Contains(line.PlainText(), "<list") {
				return true
			}
		}
	}
	return false
}

// Document is the parsed tag tree of one doc block, sections in source order.
type Document struct {
	Sections []Section
}

// Summary returns the first summary section, explicit or implicit, or nil.
func (d *Document) Summary() *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == SectionSummary {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionsOf returns the sections of the given kind, in source order.
func (d *Document) SectionsOf(kind SectionKind) []Section {
	var result []Section
	for _, sec := range d.Sections {
		if sec.Kind == kind {
			result = append(result, sec)
		}
	}
	return result
}
