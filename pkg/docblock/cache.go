package docblock

import (
	"sync"

	"github.com/yaklabco/doctags/pkg/comment"
	"github.com/yaklabco/doctags/pkg/source"
)

// Cache memoizes block scans and parsed documents per file. Entries are
// keyed by path and validated against the snapshot version, so a newer
// snapshot transparently replaces stale results. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	version int
	blocks  []Block
	// docs is index-aligned with blocks and filled lazily.
	docs []*Document
}

// NewCache creates an empty block cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Blocks returns the doc blocks of the snapshot, computing them on first use
// for this path and version. Callers must not mutate the returned slice.
func (c *Cache) Blocks(snap *source.Snapshot, style comment.Style) []Block {
	if snap == nil {
		return nil
	}
	return c.entry(snap, style).blocks
}

// BlockAt returns the block containing the byte offset, or nil.
func (c *Cache) BlockAt(snap *source.Snapshot, style comment.Style, offset int) *Block {
	return AtPosition(c.Blocks(snap, style), offset)
}

// DocumentAt returns the block containing the offset together with its
// parsed markup, or nils when the offset is not inside a doc block. Parsed
// documents are cached alongside the blocks; callers must not mutate them.
func (c *Cache) DocumentAt(snap *source.Snapshot, style comment.Style, offset int) (*Block, *Document) {
	if snap == nil {
		return nil, nil
	}
	entry := c.entry(snap, style)
	for i := range entry.blocks {
		if entry.blocks[i].Contains(offset) {
			return &entry.blocks[i], c.document(entry, i)
		}
	}
	return nil, nil
}

// Document returns the parsed markup for the i-th block of the snapshot.
func (c *Cache) Document(snap *source.Snapshot, style comment.Style, i int) *Document {
	if snap == nil {
		return nil
	}
	entry := c.entry(snap, style)
	if i < 0 || i >= len(entry.blocks) {
		return nil
	}
	return c.document(entry, i)
}

// Invalidate drops the cached entry for a path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

func (c *Cache) entry(snap *source.Snapshot, style comment.Style) *cacheEntry {
	c.mu.RLock()
	if e, ok := c.entries[snap.Path]; ok && e.version == snap.Version {
		c.mu.RUnlock()
		return e
	}
	c.mu.RUnlock()

	blocks := FindAll(snap, style)
	e := &cacheEntry{
		version: snap.Version,
		blocks:  blocks,
		docs:    make([]*Document, len(blocks)),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[snap.Path]; ok && existing.version == snap.Version {
		return existing
	}
	c.entries[snap.Path] = e
	return e
}

func (c *Cache) document(entry *cacheEntry, i int) *Document {
	c.mu.RLock()
	if doc := entry.docs[i]; doc != nil {
		c.mu.RUnlock()
		return doc
	}
	c.mu.RUnlock()

	doc := ParseMarkup(entry.blocks[i].Text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing := entry.docs[i]; existing != nil {
		return existing
	}
	entry.docs[i] = doc
	return doc
}
