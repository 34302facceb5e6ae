// Package source provides the immutable text snapshot that every doctags
// query operates on: the raw content, a CRLF-aware line index, and
// offset/position conversion helpers. A Snapshot never changes after
// construction; editors produce a new Snapshot (with a bumped Version)
// whenever the buffer content changes.
package source

// Snapshot is an immutable view of a text buffer at a specific version.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Version distinguishes successive snapshots of the same buffer.
	// Caches key on (Path, Version).
	Version int

	// Content is the full buffer bytes.
	Content []byte

	// Lines contains metadata for each line in the buffer.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a buffer.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of buffer).
	EndOffset int
}

// NewSnapshot creates a Snapshot at version 0 and builds its line index.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// NewVersionedSnapshot creates a Snapshot at an explicit version.
func NewVersionedSnapshot(path string, version int, content []byte) *Snapshot {
	s := NewSnapshot(path, content)
	s.Version = version
	return s
}
