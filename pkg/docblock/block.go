// Package docblock finds structured doc-comment blocks in a text snapshot
// and parses their inner markup into a tag tree of sections, lines, and
// styled segments. Parsing is tolerant: unknown elements degrade
// to plain text and unterminated elements parse to the end of the block;
// there is no failure result.
package docblock

import (
	"strings"

	"github.com/yaklabco/doctags/pkg/comment"
	"github.com/yaklabco/doctags/pkg/source"
)

// Block represents one contiguous run of doc-comment lines.
// Immutable once built.
type Block struct {
	// StartLine and EndLine are 1-based physical line numbers, inclusive.
	// StartLine <= EndLine always holds.
	StartLine int
	EndLine   int

	// Span covers every physical line from StartLine to EndLine, including
	// line terminators except possibly on the final line of the snapshot.
	Span source.Span

	// Indent is the whitespace prefix of the first line.
	Indent string

	// Text is the inner markup: each line's content after stripping the
	// doc prefix and exactly one following space, joined with "\n".
	Text string

	// Raw is the exact physical text the Span covers.
	Raw string

	// Style is the comment style the block was scanned with.
	Style comment.Style
}

// Contains returns true if the byte offset falls inside the block's span.
func (b *Block) Contains(offset int) bool {
	return b.Span.Contains(offset)
}

// FindAll scans the snapshot top to bottom and groups consecutive
// doc-comment lines into blocks. A blank line, a line lacking the doc
// prefix, or end of document terminates the current run.
func FindAll(snap *source.Snapshot, style comment.Style) []Block {
	if snap == nil || style.DocPrefix == "" {
		return nil
	}

	var blocks []Block
	var run []int // 1-based line numbers of the current run

	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, buildBlock(snap, style, run))
			run = nil
		}
	}

	for line := 1; line <= snap.LineCount(); line++ {
		content := string(snap.LineContent(line))
		if style.IsDocCommentLine(content) {
			run = append(run, line)
			continue
		}
		flush()
	}
	flush()

	return blocks
}

// buildBlock assembles a Block from a run of consecutive doc-comment lines.
func buildBlock(snap *source.Snapshot, style comment.Style, run []int) Block {
	first, last := run[0], run[len(run)-1]

	startInfo := snap.Lines[first-1]
	endInfo := snap.Lines[last-1]
	span := source.Span{
		Start:  startInfo.StartOffset,
		Length: endInfo.EndOffset - startInfo.StartOffset,
	}

	firstContent := string(snap.LineContent(first))
	indent := firstContent[:len(firstContent)-len(strings.TrimLeft(firstContent, " \t"))]

	inner := make([]string, 0, len(run))
	for _, line := range run {
		content := strings.TrimLeft(string(snap.LineContent(line)), " \t")
		content = strings.TrimPrefix(content, style.DocPrefix)
		// Exactly one space after the prefix is part of the prefix, not
		// the content.
		content = strings.TrimPrefix(content, " ")
		inner = append(inner, content)
	}

	return Block{
		StartLine: first,
		EndLine:   last,
		Span:      span,
		Indent:    indent,
		Text:      strings.Join(inner, "\n"),
		Raw:       string(span.Text(snap)),
		Style:     style,
	}
}

// AtPosition returns the block whose span contains the byte offset, or nil.
func AtPosition(blocks []Block, offset int) *Block {
	for i := range blocks {
		if blocks[i].Contains(offset) {
			return &blocks[i]
		}
	}
	return nil
}

// InSpan returns the blocks intersecting the given span, in source order.
func InSpan(blocks []Block, span source.Span) []Block {
	var result []Block
	for _, b := range blocks {
		if b.Span.Intersects(span) {
			result = append(result, b)
		}
	}
	return result
}
