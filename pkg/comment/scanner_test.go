package comment_test

import (
	"testing"

	"github.com/yaklabco/doctags/pkg/comment"
	"github.com/yaklabco/doctags/pkg/source"
)

func TestFindCommentSpans(t *testing.T) {
	t.Parallel()

	style := comment.CFamily()

	tests := []struct {
		name     string
		text     string
		expected []source.Span
	}{
		{
			name:     "empty line",
			text:     "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			text:     "    ",
			expected: nil,
		},
		{
			name:     "full line comment",
			text:     "// TODO: fix this",
			expected: []source.Span{{Start: 0, Length: 17}},
		},
		{
			name:     "indented full line comment",
			text:     "    // comment",
			expected: []source.Span{{Start: 0, Length: 14}},
		},
		{
			name:     "doc comment line",
			text:     "/// <summary>Text</summary>",
			expected: []source.Span{{Start: 0, Length: 27}},
		},
		{
			name:     "block comment opener",
			text:     "/* start of block",
			expected: []source.Span{{Start: 0, Length: 17}},
		},
		{
			name:     "block comment continuation",
			text:     " * continuation line",
			expected: []source.Span{{Start: 0, Length: 20}},
		},
		{
			name:     "inline comment after code",
			text:     "var x = 5; // TODO: fix this",
			expected: []source.Span{{Start: 11, Length: 17}},
		},
		{
			name:     "no comment",
			text:     "var x = 5;",
			expected: nil,
		},
		{
			name:     "marker inside string literal",
			text:     `var url = "http://example.com";`,
			expected: nil,
		},
		{
			name:     "marker inside verbatim string",
			text:     `var path = @"C:\\temp\\//file.txt";`,
			expected: nil,
		},
		{
			name:     "marker after closed string",
			text:     `var s = "done"; // trailing`,
			expected: []source.Span{{Start: 16, Length: 11}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			spans := comment.FindCommentSpans(testCase.text, style)

			if len(spans) != len(testCase.expected) {
				t.Fatalf("expected %d spans, got %d: %+v", len(testCase.expected), len(spans), spans)
			}
			for i, exp := range testCase.expected {
				if spans[i] != exp {
					t.Errorf("span %d: expected %+v, got %+v", i, exp, spans[i])
				}
			}
		})
	}
}

func TestFindCommentSpansVBStyle(t *testing.T) {
	t.Parallel()

	style := comment.VBFamily()

	spans := comment.FindCommentSpans("' VB comment", style)
	if len(spans) != 1 || spans[0] != (source.Span{Start: 0, Length: 12}) {
		t.Fatalf("expected one full-line span, got %+v", spans)
	}

	spans = comment.FindCommentSpans("Dim x = 5 ' trailing", style)
	if len(spans) != 1 || spans[0].Start != 10 {
		t.Fatalf("expected inline span at 10, got %+v", spans)
	}
}

func TestIsInsideStringLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		position int
		expected bool
	}{
		{
			name:     "before any string",
			text:     `var s = "hello";`,
			position: 4,
			expected: false,
		},
		{
			name:     "inside simple string",
			text:     `var s = "hello";`,
			position: 11,
			expected: true,
		},
		{
			name:     "after closed string",
			text:     `var s = "hello";`,
			position: 15,
			expected: false,
		},
		{
			name:     "quote at position does not count",
			text:     `var s = "hello";`,
			position: 8,
			expected: false,
		},
		{
			name:     "inside escaped-quote string",
			text:     `var s = "Hello \"World\"";`,
			position: 18,
			expected: true,
		},
		{
			name:     "even backslash run does not escape",
			text:     `var s = "a\\";x`,
			position: 14,
			expected: false,
		},
		{
			name:     "odd backslash run escapes",
			text:     `var s = "a\"b";`,
			position: 12,
			expected: true,
		},
		{
			name:     "inside verbatim string",
			text:     `var p = @"C:\temp\file";`,
			position: 14,
			expected: true,
		},
		{
			name:     "doubled quote in verbatim string",
			text:     `var p = @"say ""hi"" now";x`,
			position: 24,
			expected: true,
		},
		{
			name:     "after closed verbatim string",
			text:     `var p = @"x";  `,
			position: 14,
			expected: false,
		},
		{
			name:     "between two string literals",
			text:     `f("a", "b")`,
			position: 6,
			expected: false,
		},
		{
			name:     "inside second string literal",
			text:     `f("a", "b")`,
			position: 8,
			expected: true,
		},
		{
			name:     "position past end of text",
			text:     `"unterminated`,
			position: 99,
			expected: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := comment.IsInsideStringLiteral(testCase.text, testCase.position)
			if got != testCase.expected {
				t.Errorf("IsInsideStringLiteral(%q, %d): expected %v, got %v",
					testCase.text, testCase.position, testCase.expected, got)
			}
		})
	}
}

func TestStyleRegistry(t *testing.T) {
	t.Parallel()

	if style, ok := comment.StyleFor("C#"); !ok || style.DocPrefix != "///" {
		t.Errorf("C#: expected c-family style, got %+v (ok=%v)", style, ok)
	}
	if style, ok := comment.StyleFor("vb"); !ok || style.DocPrefix != "'''" {
		t.Errorf("vb: expected vb-family style, got %+v (ok=%v)", style, ok)
	}
	if _, ok := comment.StyleFor("brainfuck"); ok {
		t.Error("expected unknown language to miss")
	}
}
