// Package reflow rewraps doc-comment blocks to a target line length.
// Prose is rewrapped with greedy word packing; list items, code content,
// and structural markup keep their line structure. The result of a reflow
// is stable: reflowing its own output changes nothing.
package reflow

import (
	"strings"

	"github.com/yaklabco/doctags/pkg/config"
	"github.com/yaklabco/doctags/pkg/docblock"
)

// Options controls a reflow pass.
type Options struct {
	// MaxLineLength is the full target width, counting the indent and the
	// doc-comment prefix. Non-positive values fall back to the default.
	MaxLineLength int

	// CompactSummaries collapses a summary-only block onto a single
	// "<summary>text</summary>" line when it fits.
	CompactSummaries bool

	// PreserveBlankLines keeps blank separator lines. When false, blanks
	// are dropped and adjacent paragraphs merge.
	PreserveBlankLines bool
}

// DefaultOptions returns the standard reflow options.
func DefaultOptions() Options {
	return Options{
		MaxLineLength:      config.DefaultMaxLineLength,
		CompactSummaries:   true,
		PreserveBlankLines: true,
	}
}

// FromSettings derives reflow options from resolved settings.
func FromSettings(s *config.Settings) Options {
	if s == nil {
		return DefaultOptions()
	}
	return Options{
		MaxLineLength:      s.MaxLineLength,
		CompactSummaries:   s.CompactSummaries,
		PreserveBlankLines: s.PreserveBlankLines,
	}
}

// Reflow rewraps the block and returns the replacement text, covering the
// block's lines without a trailing line terminator. Returns "" when the
// block is already in reflowed form.
func Reflow(block *docblock.Block, opts Options) string {
	if block == nil {
		return ""
	}
	width := opts.MaxLineLength
	if width <= 0 {
		width = config.DefaultMaxLineLength
	}

	doc := docblock.ParseMarkup(block.Text)
	lines := emitDocument(doc, block, opts, width)

	result := strings.Join(lines, "\n")
	if result == normalizeOriginal(block.Raw) {
		return ""
	}
	return result
}

// normalizeOriginal prepares the block's physical text for comparison with
// reflow output: uniform newlines, no trailing terminator.
func normalizeOriginal(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.TrimSuffix(raw, "\n")
}

// emitDocument renders every section back to prefixed comment lines.
// An explicit section collapses onto one line when its single-line form
// fits the width; summaries additionally require the compact option.
func emitDocument(doc *docblock.Document, block *docblock.Block, opts Options, width int) []string {
	prefix := block.Indent + block.Style.DocPrefix + " "
	blankLine := block.Indent + block.Style.DocPrefix
	avail := width - len(prefix)
	if avail < 1 {
		avail = 1
	}

	var out []string
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.SelfClosing {
			out = append(out, prefix+"<"+sec.Tag+sec.AttrText+"/>")
			continue
		}
		if sec.Implicit {
			out = append(out, emitLines(sec.Lines, prefix, blankLine, avail, opts)...)
			continue
		}

		open := "<" + sec.Tag + sec.AttrText + ">"
		if compactAllowed(sec, opts) {
			candidate := prefix + open + joinProse(sec.Lines) + "</" + sec.Tag + ">"
			if len(candidate) <= width {
				out = append(out, candidate)
				continue
			}
		}
		out = append(out, prefix+open)
		out = append(out, emitLines(sec.Lines, prefix, blankLine, avail, opts)...)
		out = append(out, prefix+"</"+sec.Tag+">")
	}
	if len(out) == 0 {
		out = []string{strings.TrimRight(prefix, " ")}
	}
	return out
}

// compactAllowed reports whether a section may collapse onto a single line:
// plain prose only, and summaries only when the compact option is on.
func compactAllowed(sec *docblock.Section, opts Options) bool {
	if sec.Kind == docblock.SectionSummary && !opts.CompactSummaries {
		return false
	}
	if len(sec.Lines) == 0 {
		return false
	}
	for _, line := range sec.Lines {
		if line.Kind != docblock.LineText || line.IsBlank() {
			return false
		}
	}
	return true
}

func joinProse(lines []docblock.Line) string {
	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, lineTokens(line)...)
	}
	return strings.Join(tokens, " ")
}

// emitLines renders a section body: paragraphs are rewrapped, list items
// wrap with continuation aligned under the bullet's text start, code and
// structural markup pass through verbatim.
func emitLines(lines []docblock.Line, prefix, blankLine string, avail int, opts Options) []string {
	var out []string
	var paragraph []string

	// Pending list item, kept open so indented follow-up lines fold in.
	var itemTokens []string
	var itemBullet, itemClose string

	flushParagraph := func() {
		if len(paragraph) > 0 {
			out = append(out, prefixAll(wrapTokens(paragraph, avail, "", ""), prefix)...)
			paragraph = nil
		}
	}
	flushItem := func() {
		if itemBullet != "" {
			cont := strings.Repeat(" ", len(itemBullet))
			wrapped := wrapTokens(itemTokens, avail, itemBullet, cont)
			if itemClose != "" && len(wrapped) > 0 {
				wrapped[len(wrapped)-1] += itemClose
			}
			out = append(out, prefixAll(wrapped, prefix)...)
			itemTokens, itemBullet, itemClose = nil, "", ""
		}
	}
	flushAll := func() {
		flushItem()
		flushParagraph()
	}

	for _, line := range lines {
		switch {
		case line.IsBlank():
			if opts.PreserveBlankLines {
				flushAll()
				out = append(out, blankLine)
			}
			// Dropped blanks merge the surrounding paragraphs.

		case line.Kind == docblock.LineVerbatim:
			flushAll()
			out = append(out, prefix+rawText(line))

		case line.Kind == docblock.LineCode:
			flushAll()
			out = append(out, strings.TrimRight(prefix+rawText(line), " \t"))

		case line.Kind == docblock.LineListItem:
			flushAll()
			itemBullet = line.Bullet
			itemClose = line.BulletClose
			itemTokens = lineTokens(line)

		default:
			// Indented prose right after a list item continues the item.
			if itemBullet != "" && hasLeadingWhitespace(line) {
				itemTokens = append(itemTokens, lineTokens(line)...)
				continue
			}
			flushItem()
			paragraph = append(paragraph, lineTokens(line)...)
		}
	}
	flushAll()
	return out
}

func prefixAll(lines []string, prefix string) []string {
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return lines
}

func rawText(line docblock.Line) string {
	var sb strings.Builder
	for _, seg := range line.Segments {
		sb.WriteString(seg.Raw)
	}
	return sb.String()
}

func hasLeadingWhitespace(line docblock.Line) bool {
	if len(line.Segments) == 0 {
		return false
	}
	text := line.Segments[0].Raw
	return len(text) > 0 && (text[0] == ' ' || text[0] == '\t')
}

// lineTokens converts a line into wrap tokens. Plain text splits on
// whitespace; markup segments stay atomic, glued to neighbors that touched
// them without intervening space in the source.
func lineTokens(line docblock.Line) []string {
	var tokens []string
	glue := false

	for _, seg := range line.Segments {
		if seg.Kind == docblock.SegmentText && seg.Raw == seg.Text {
			fields := strings.Fields(seg.Raw)
			if len(fields) > 0 && glue && !startsWithSpace(seg.Raw) && len(tokens) > 0 {
				tokens[len(tokens)-1] += fields[0]
				fields = fields[1:]
			}
			tokens = append(tokens, fields...)
			glue = len(seg.Raw) > 0 && !endsWithSpace(seg.Raw)
			continue
		}

		if glue && len(tokens) > 0 {
			tokens[len(tokens)-1] += seg.Raw
		} else {
			tokens = append(tokens, seg.Raw)
		}
		glue = true
	}
	return tokens
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

func endsWithSpace(s string) bool {
	return s != "" && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t')
}

// wrapTokens packs tokens greedily: a token moves to the next line when
// appending it would exceed the width. Tokens are never split, so a single
// overlong token produces an overlong line rather than a broken word.
func wrapTokens(tokens []string, width int, first, cont string) []string {
	if len(tokens) == 0 {
		if first != "" {
			return []string{strings.TrimRight(first, " ")}
		}
		return nil
	}

	var result []string
	line := first + tokens[0]
	for _, token := range tokens[1:] {
		if len(line)+1+len(token) > width {
			result = append(result, line)
			line = cont + token
			continue
		}
		line += " " + token
	}
	return append(result, line)
}
