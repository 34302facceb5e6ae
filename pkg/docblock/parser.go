package docblock

import (
	"regexp"
	"strings"
)

// sectionElements maps top-level element names to section kinds.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sectionElements = map[string]SectionKind{
	"summary":    SectionSummary,
	"param":      SectionParam,
	"typeparam":  SectionTypeParam,
	"returns":    SectionReturns,
	"exception":  SectionException,
	"remarks":    SectionRemarks,
	"example":    SectionExample,
	"value":      SectionValue,
	"seealso":    SectionSeeAlso,
	"inheritdoc": SectionOther,
}

// transparentElements are wrappers whose tags are dropped while their
// content is kept.
//
//nolint:gochecknoglobals // Read-only lookup table.
var transparentElements = map[string]bool{
	"description": true,
	"term":        true,
	"listheader":  true,
}

//nolint:gochecknoglobals // Compiled once.
var (
	attrPattern   = regexp.MustCompile(`([A-Za-z][A-Za-z0-9:_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	bulletPattern = regexp.MustCompile(`^([ \t]*(?:[-*+]|\d+[.)])[ \t])`)
)

// ParseMarkup parses a block's inner text into a Document. The parser never
// fails: malformed or unknown markup is kept as plain text, unterminated
// elements run to the end of the block, and bare top-level text becomes an
// implicit summary section.
func ParseMarkup(text string) *Document {
	p := &markupParser{src: text, lower: strings.ToLower(text)}
	doc := &Document{}

	for p.pos < len(p.src) {
		loose := p.parseLines("", true)
		if hasContent(loose) {
			doc.Sections = append(doc.Sections, Section{
				Kind:     SectionSummary,
				Implicit: true,
				Lines:    trimBlankEdges(loose),
			})
		}
		if p.pos >= len(p.src) {
			break
		}

		// parseLines stopped in front of a section element.
		el, ok := p.element(p.pos)
		if !ok {
			// Cannot happen, but never loop on bad input.
			p.pos++
			continue
		}
		p.pos = el.end

		sec := Section{
			Kind:     sectionElements[el.name],
			Tag:      el.name,
			Name:     sectionName(el),
			AttrText: el.attrText,
		}
		if el.selfClosing {
			sec.SelfClosing = true
		} else {
			sec.Lines = trimBlankEdges(p.parseLines(el.name, false))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc
}

// sectionName extracts the section's target from its attributes.
func sectionName(el element) string {
	for _, key := range []string{"name", "cref", "href"} {
		if v, ok := el.attr(key); ok {
			return v
		}
	}
	return ""
}

func hasContent(lines []Line) bool {
	for _, line := range lines {
		if !line.IsBlank() {
			return true
		}
	}
	return false
}

func trimBlankEdges(lines []Line) []Line {
	start := 0
	for start < len(lines) && lines[start].IsBlank() {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1].IsBlank() {
		end--
	}
	return lines[start:end]
}

// element is one parsed markup tag.
type element struct {
	raw         string
	name        string // lowercase
	attrText    string // raw attribute region, including leading whitespace
	closing     bool
	selfClosing bool
	end         int // index just past '>'
	attrs       [][2]string
}

func (e element) attr(key string) (string, bool) {
	for _, kv := range e.attrs {
		if strings.EqualFold(kv[0], key) {
			return kv[1], true
		}
	}
	return "", false
}

type markupParser struct {
	src   string
	lower string
	pos   int
}

// element tries to parse a tag starting at the given position. Returns false
// when the text is not a well-formed tag, in which case the '<' is literal.
func (p *markupParser) element(at int) (element, bool) {
	if at >= len(p.src) || p.src[at] != '<' {
		return element{}, false
	}

	i := at + 1
	closing := false
	if i < len(p.src) && p.src[i] == '/' {
		closing = true
		i++
	}

	nameStart := i
	for i < len(p.src) && isNameChar(p.src[i], i > nameStart) {
		i++
	}
	if i == nameStart {
		return element{}, false
	}
	name := p.lower[nameStart:i]

	// Scan to the closing '>' respecting quoted attribute values.
	attrStart := i
	var quote byte
	for ; i < len(p.src); i++ {
		c := p.src[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		if c == '"' || c == '\'' {
			quote = c
			continue
		}
		if c == '>' {
			break
		}
		if c == '\n' {
			// Tags do not span lines.
			return element{}, false
		}
	}
	if i >= len(p.src) {
		return element{}, false
	}

	attrEnd := i
	selfClosing := false
	if attrEnd > attrStart && p.src[attrEnd-1] == '/' {
		selfClosing = true
		attrEnd--
	}
	attrText := p.src[attrStart:attrEnd]
	if closing && (selfClosing || strings.TrimSpace(attrText) != "") {
		return element{}, false
	}

	el := element{
		raw:         p.src[at : i+1],
		name:        name,
		attrText:    attrText,
		closing:     closing,
		selfClosing: selfClosing,
		end:         i + 1,
	}
	for _, m := range attrPattern.FindAllStringSubmatch(attrText, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		el.attrs = append(el.attrs, [2]string{m[1], value})
	}
	return el, true
}

func isNameChar(c byte, notFirst bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	return notFirst && (c >= '0' && c <= '9')
}

// parseLines consumes content into logical lines until the matching close
// tag (consumed), a top-level section element (left in place), or the end of
// the input.
func (p *markupParser) parseLines(stopTag string, topLevel bool) []Line {
	var lines []Line
	var cur Line
	var pending strings.Builder

	// Structural elements consume their own logical line; the physical
	// newline that follows them must not produce an extra blank line.
	suppressNewline := false

	flushText := func() {
		if pending.Len() == 0 {
			return
		}
		text := pending.String()
		pending.Reset()
		if len(cur.Segments) == 0 && strings.TrimSpace(text) == "" {
			return
		}
		cur.Segments = append(cur.Segments, Segment{Kind: SegmentText, Text: text, Raw: text})
	}

	endLine := func(keepBlank bool) {
		flushText()
		if len(cur.Segments) == 0 && cur.Bullet == "" {
			if keepBlank {
				lines = append(lines, Line{})
			}
			cur = Line{}
			return
		}
		detectBullet(&cur)
		lines = append(lines, cur)
		cur = Line{}
	}

	appendVerbatim := func(raw string) {
		endLine(false)
		lines = append(lines, Line{
			Kind:     LineVerbatim,
			Segments: []Segment{{Kind: SegmentText, Text: raw, Raw: raw}},
		})
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			if suppressNewline {
				suppressNewline = false
			} else {
				endLine(true)
			}
			p.pos++
			continue
		case c == '\r':
			p.pos++
			continue
		case c != '<':
			suppressNewline = false
			pending.WriteByte(c)
			p.pos++
			continue
		}
		suppressNewline = false

		el, ok := p.element(p.pos)
		if !ok {
			pending.WriteByte('<')
			p.pos++
			continue
		}

		if el.closing && stopTag != "" && el.name == stopTag {
			p.pos = el.end
			endLine(false)
			return lines
		}
		if topLevel && !el.closing {
			if _, known := sectionElements[el.name]; known {
				endLine(false)
				return lines
			}
		}

		switch {
		case transparentElements[el.name]:
			p.pos = el.end

		case el.name == "para" || el.name == "list":
			p.pos = el.end
			appendVerbatim(el.raw)
			suppressNewline = true

		case el.name == "code" && !el.closing:
			p.pos = el.end
			appendVerbatim(el.raw)
			inner, closeRaw := p.innerUntilClose("code")
			for _, codeLine := range splitCodeLines(inner) {
				lines = append(lines, Line{
					Kind:     LineCode,
					Segments: []Segment{{Kind: SegmentCode, Text: codeLine, Raw: codeLine}},
				})
			}
			if closeRaw != "" {
				lines = append(lines, Line{
					Kind:     LineVerbatim,
					Segments: []Segment{{Kind: SegmentText, Text: closeRaw, Raw: closeRaw}},
				})
			}
			suppressNewline = true

		case el.name == "item" && !el.closing:
			endLine(false)
			p.pos = el.end
			itemLines := p.parseLines("item", false)
			item := Line{Kind: LineListItem, Bullet: "<item>", BulletClose: "</item>"}
			for i, itemLine := range trimBlankEdges(itemLines) {
				if i > 0 {
					item.Segments = append(item.Segments, Segment{Kind: SegmentText, Text: " ", Raw: " "})
				}
				item.Segments = append(item.Segments, itemLine.Segments...)
			}
			lines = append(lines, item)
			suppressNewline = true

		case el.closing:
			// Stray close tag: literal text.
			flushText()
			pending.WriteString(el.raw)
			p.pos = el.end

		default:
			if seg, handled := p.inlineSegment(el); handled {
				flushText()
				cur.Segments = append(cur.Segments, seg)
			} else {
				// Unknown element degrades to plain text.
				pending.WriteString(el.raw)
				p.pos = el.end
			}
		}
	}

	endLine(false)
	return lines
}

// inlineSegment converts a known inline element into a styled segment and
// advances past it. Returns handled=false for unrecognized elements.
func (p *markupParser) inlineSegment(el element) (Segment, bool) {
	switch el.name {
	case "c":
		inner, closeRaw := p.innerAfter(el, "c")
		return Segment{Kind: SegmentCode, Text: inner, Raw: el.raw + inner + closeRaw}, true
	case "b":
		inner, closeRaw := p.innerAfter(el, "b")
		return Segment{Kind: SegmentBold, Text: inner, Raw: el.raw + inner + closeRaw}, true
	case "i":
		inner, closeRaw := p.innerAfter(el, "i")
		return Segment{Kind: SegmentItalic, Text: inner, Raw: el.raw + inner + closeRaw}, true
	case "paramref":
		p.pos = el.end
		name, _ := el.attr("name")
		return Segment{Kind: SegmentParamRef, Text: name, Raw: el.raw}, true
	case "typeparamref":
		p.pos = el.end
		name, _ := el.attr("name")
		return Segment{Kind: SegmentTypeParamRef, Text: name, Raw: el.raw}, true
	case "see":
		target, _ := el.attr("cref")
		if target == "" {
			target, _ = el.attr("langword")
		}
		if el.selfClosing {
			p.pos = el.end
			return Segment{Kind: SegmentLink, Text: target, Raw: el.raw}, true
		}
		inner, closeRaw := p.innerAfter(el, "see")
		text := strings.TrimSpace(inner)
		if text == "" {
			text = target
		}
		return Segment{Kind: SegmentLink, Text: text, Raw: el.raw + inner + closeRaw}, true
	case "a":
		if el.selfClosing {
			p.pos = el.end
			href, _ := el.attr("href")
			return Segment{Kind: SegmentLink, Text: href, Raw: el.raw}, true
		}
		inner, closeRaw := p.innerAfter(el, "a")
		text := strings.TrimSpace(inner)
		if text == "" {
			text, _ = el.attr("href")
		}
		return Segment{Kind: SegmentLink, Text: text, Raw: el.raw + inner + closeRaw}, true
	case "br":
		p.pos = el.end
		return Segment{Kind: SegmentText, Text: el.raw, Raw: el.raw}, true
	}
	return Segment{}, false
}

// innerAfter consumes the element's body up to its close tag and returns the
// literal inner text plus the close tag's raw form ("" when unterminated).
func (p *markupParser) innerAfter(el element, name string) (inner, closeRaw string) {
	if el.selfClosing {
		p.pos = el.end
		return "", ""
	}
	p.pos = el.end
	return p.innerUntilClose(name)
}

// innerUntilClose scans forward to the matching close tag, case-insensitive.
// An unterminated element runs to the end of the input.
func (p *markupParser) innerUntilClose(name string) (inner, closeRaw string) {
	closeTag := "</" + name + ">"
	idx := strings.Index(p.lower[p.pos:], closeTag)
	if idx < 0 {
		inner = p.src[p.pos:]
		p.pos = len(p.src)
		return inner, ""
	}
	inner = p.src[p.pos : p.pos+idx]
	closeRaw = p.src[p.pos+idx : p.pos+idx+len(closeTag)]
	p.pos += idx + len(closeTag)
	return inner, closeRaw
}

// detectBullet promotes a text line starting with a markdown-style list
// marker to a list item, moving the marker into the bullet prefix.
func detectBullet(line *Line) {
	if line.Kind != LineText || len(line.Segments) == 0 {
		return
	}
	first := &line.Segments[0]
	if first.Kind != SegmentText {
		return
	}
	m := bulletPattern.FindString(first.Text)
	if m == "" {
		return
	}
	line.Kind = LineListItem
	line.Bullet = m
	first.Text = first.Text[len(m):]
	first.Raw = first.Text
	if first.Text == "" && len(line.Segments) > 1 {
		line.Segments = line.Segments[1:]
	}
}

// splitCodeLines splits a code element body into display lines, dropping the
// newlines that separate the body from its delimiters.
func splitCodeLines(inner string) []string {
	inner = strings.ReplaceAll(inner, "\r\n", "\n")
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	if inner == "" {
		return nil
	}
	return strings.Split(inner, "\n")
}
