package pretty

import (
	"strings"

	"github.com/yaklabco/doctags/pkg/docblock"
	"github.com/yaklabco/doctags/pkg/render"
)

// FormatSegment styles one segment according to its kind.
func (s *Styles) FormatSegment(seg docblock.Segment) string {
	switch seg.Kind {
	case docblock.SegmentHeading:
		return s.Heading.Render(seg.Text)
	case docblock.SegmentLink:
		return s.Link.Render(seg.Text)
	case docblock.SegmentParamRef, docblock.SegmentTypeParamRef:
		return s.ParamRef.Render(seg.Text)
	case docblock.SegmentCode:
		return s.Code.Render(seg.Text)
	case docblock.SegmentBold:
		return s.Strong.Render(seg.Text)
	case docblock.SegmentItalic:
		return s.Emphasis.Render(seg.Text)
	default:
		return s.Plain.Render(seg.Text)
	}
}

// FormatLine styles one content line. Structural markup lines render
// dimmed; code lines keep their exact text.
func (s *Styles) FormatLine(line docblock.Line) string {
	switch line.Kind {
	case docblock.LineVerbatim:
		return s.Dim.Render(line.PlainText())
	case docblock.LineCode:
		return "  " + s.Code.Render(line.PlainText())
	}

	var builder strings.Builder
	if line.Kind == docblock.LineListItem {
		builder.WriteString("  " + bulletGlyph(line.Bullet) + " ")
	}
	for _, seg := range line.Segments {
		builder.WriteString(s.FormatSegment(seg))
	}
	return builder.String()
}

// bulletGlyph maps a source bullet ("- ", "<item>") to a display glyph.
func bulletGlyph(bullet string) string {
	trimmed := strings.TrimSpace(bullet)
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		return "-"
	}
	return trimmed
}

// FormatComment formats a rendered comment: the summary first, then each
// additional section under its heading.
func (s *Styles) FormatComment(comment *render.Comment) string {
	var lines []string

	if comment.Summary != nil {
		for _, line := range comment.Summary.Lines {
			lines = append(lines, s.FormatLine(line))
		}
	}

	var lastHeading string
	for i := range comment.AdditionalSections {
		sec := &comment.AdditionalSections[i]

		heading := sec.Title
		if heading != "" && heading != lastHeading {
			lines = append(lines, "", s.Heading.Render(heading+":"))
			lastHeading = heading
		}

		indent := "  "
		if sec.Name != "" {
			lines = append(lines, indent+s.ParamRef.Render(sec.Name)+s.Dim.Render(" -"))
			indent = "    "
		}
		for _, line := range sec.Lines {
			formatted := s.FormatLine(line)
			if formatted != "" {
				formatted = indent + formatted
			}
			lines = append(lines, formatted)
		}
	}

	return strings.Join(lines, "\n")
}
