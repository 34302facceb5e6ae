package source

// Span represents a byte range in buffer content as an offset plus a length.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// Length is the number of bytes covered.
	Length int
}

// End returns the byte index just past the span (exclusive).
func (sp Span) End() int {
	return sp.Start + sp.Length
}

// IsEmpty returns true if the span has zero length.
func (sp Span) IsEmpty() bool {
	return sp.Length == 0
}

// Contains returns true if the given offset is within this span.
func (sp Span) Contains(offset int) bool {
	return offset >= sp.Start && offset < sp.End()
}

// Intersects returns true if the two spans share at least one byte.
func (sp Span) Intersects(other Span) bool {
	return sp.Start < other.End() && other.Start < sp.End()
}

// Text returns the bytes this span covers in the given snapshot.
// Returns nil if the span is out of range.
func (sp Span) Text(s *Snapshot) []byte {
	if sp.Start < 0 || sp.End() > len(s.Content) {
		return nil
	}
	return s.Content[sp.Start:sp.End()]
}

// Position represents a 1-based line and column in a buffer.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}
