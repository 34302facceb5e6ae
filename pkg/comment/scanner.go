package comment

import (
	"strings"

	"github.com/yaklabco/doctags/pkg/source"
)

// FindCommentSpans classifies the comment content of a single line of code.
//
// If the whole line is a comment (per Style.LineIsComment), one span covering
// the entire line is returned. Otherwise the first occurrence of the
// line-comment marker is located; if that position is not inside a string
// literal, one span from the marker to end of line is returned. At most one
// span is produced per line; inline block comments are out of scope here.
//
// The result is recomputed on every call; there is no hidden state.
func FindCommentSpans(text string, style Style) []source.Span {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if style.LineIsComment(text) {
		return []source.Span{{Start: 0, Length: len(text)}}
	}

	if style.LinePrefix == "" {
		return nil
	}

	idx := strings.Index(text, style.LinePrefix)
	if idx < 0 {
		return nil
	}

	// A marker inside a string literal is not a comment.
	if IsInsideStringLiteral(text, idx) {
		return nil
	}

	return []source.Span{{Start: idx, Length: len(text) - idx}}
}

// IsInsideStringLiteral reports whether position falls inside a string
// literal on the given line. It scans strictly [0, position) and tracks:
//
//   - quote parity: an odd number of unescaped double quotes before position
//     means an unterminated literal is open at position;
//   - verbatim literals, entered at an @" sequence, where a doubled quote
//     ("") is a literal quote and does not close the string;
//   - escape parity: in a non-verbatim literal, a quote preceded by an odd
//     number of consecutive backslashes is escaped and does not toggle.
//
// A quote exactly at position does not count. Multi-line raw string literals
// are outside this function's contract; the scan is line-local.
func IsInsideStringLiteral(text string, position int) bool {
	if position > len(text) {
		position = len(text)
	}

	inString := false
	verbatim := false

	for i := 0; i < position; i++ {
		if text[i] != '"' {
			continue
		}

		if !inString {
			inString = true
			verbatim = i > 0 && text[i-1] == '@'
			continue
		}

		if verbatim {
			// Doubled quote is a literal quote inside a verbatim string;
			// consume the pair without closing.
			if i+1 < position && text[i+1] == '"' {
				i++
				continue
			}
			inString = false
			verbatim = false
			continue
		}

		// Count consecutive backslashes immediately before the quote.
		backslashes := 0
		for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			// Escaped quote, does not toggle parity.
			continue
		}
		inString = false
	}

	return inString
}
