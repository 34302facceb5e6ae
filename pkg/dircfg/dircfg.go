// Package dircfg resolves directory-scoped doctags settings from
// EditorConfig-style files. A ".doctags.conf" file holds "key = value"
// lines; recognized keys are max_line_length, custom_anchor_tags
// (comma-separated) and custom_anchor_tag_prefixes (comma-separated single
// characters). Lookups walk upward from a file's directory and stop at VCS
// roots; results are cached per directory and invalidated only by an
// explicit Clear, since configuration changes are rare and a stale cache is
// acceptable until a refresh.
package dircfg

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/yaklabco/doctags/pkg/config"
)

// ConfigFileName is the directory configuration file doctags looks for.
const ConfigFileName = ".doctags.conf"

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Cache resolves and memoizes directory overrides.
// Safe for concurrent use; entries are computed at most once per directory
// between Clear calls.
type Cache struct {
	mu    sync.RWMutex
	byDir map[string]*config.Overrides
}

// NewCache creates an empty directory-config cache.
func NewCache() *Cache {
	return &Cache{byDir: make(map[string]*config.Overrides)}
}

// ForFile returns the overrides that apply to the given file, or nil when no
// directory configuration exists. Missing or unreadable configuration files
// are never errors; they resolve to nil.
func (c *Cache) ForFile(path string) *config.Overrides {
	return c.ForDir(filepath.Dir(path))
}

// ForDir returns the overrides for a directory, computing and caching them
// on first use.
func (c *Cache) ForDir(dir string) *config.Overrides {
	c.mu.RLock()
	if o, ok := c.byDir[dir]; ok {
		c.mu.RUnlock()
		return o
	}
	c.mu.RUnlock()

	o := load(dir)

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another caller may have raced us here; first write wins, values are
	// equivalent either way.
	if existing, ok := c.byDir[dir]; ok {
		return existing
	}
	c.byDir[dir] = o
	return o
}

// Clear drops all cached entries. Call after on-disk configuration changes.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byDir = make(map[string]*config.Overrides)
}

// load discovers and parses the nearest config file at or above dir.
// Any failure resolves to nil (fall back to global settings).
func load(dir string) *config.Overrides {
	path := findConfigFile(dir)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return Parse(data)
}

// findConfigFile searches upward from startDir for a ConfigFileName file.
// Stops after checking a VCS root directory or on reaching the filesystem root.
func findConfigFile(startDir string) string {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	currentDir := absDir
	for {
		path := filepath.Join(currentDir, ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		if isVCSRoot(currentDir) {
			return ""
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// Parse reads "key = value" lines into Overrides. Unrecognized keys,
// comments (# or ;), section headers, and malformed values are skipped;
// parsing never fails.
func Parse(data []byte) *config.Overrides {
	o := &config.Overrides{}

	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Section headers are not used; keys apply to the whole directory.
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "max_line_length":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				o.MaxLineLength = &n
			}
		case "custom_anchor_tags":
			o.CustomAnchorTags = splitList(value)
		case "custom_anchor_tag_prefixes":
			o.TagPrefixChars = splitList(value)
		}
	}

	return o
}

// splitList splits a comma-separated value, trimming entries and dropping
// empties. Returns an empty (non-nil) slice for an explicit empty value so
// that "set to nothing" overrides a global list.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
