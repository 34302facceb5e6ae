package anchor

import (
	"strings"

	"github.com/yaklabco/doctags/pkg/comment"
	"github.com/yaklabco/doctags/pkg/config"
	"github.com/yaklabco/doctags/pkg/dircfg"
)

// Scanner finds anchor items in text. It owns the pattern cache and
// resolves per-file settings through the directory-config cache, falling
// back to its global settings. Safe for concurrent use.
type Scanner struct {
	patterns *PatternCache
	dirCfg   *dircfg.Cache
	global   *config.Settings
}

// NewScanner creates a scanner with the given global settings. Nil
// arguments fall back to defaults and an empty directory-config cache.
func NewScanner(global *config.Settings, dirCfg *dircfg.Cache) *Scanner {
	if global == nil {
		global = config.NewSettings()
	}
	if dirCfg == nil {
		dirCfg = dircfg.NewCache()
	}
	return &Scanner{
		patterns: NewPatternCache(),
		dirCfg:   dirCfg,
		global:   global,
	}
}

// SettingsFor resolves the effective settings for a file: directory
// overrides applied per setting on top of the globals.
func (s *Scanner) SettingsFor(filePath string) *config.Settings {
	if filePath == "" {
		return config.Resolve(s.global, nil)
	}
	return config.Resolve(s.global, s.dirCfg.ForFile(filePath))
}

// ClearCaches drops compiled patterns and directory-config entries. Call
// after on-disk configuration changes.
func (s *Scanner) ClearCaches() {
	s.patterns.Clear()
	s.dirCfg.Clear()
}

// ScanText scans every line of text for anchor records under filePath's
// configuration. Inputs longer than MaxScanSize are skipped and yield an
// empty result. The returned items carry 1-based line and column numbers.
func (s *Scanner) ScanText(text, filePath, projectName string) []Item {
	if len(text) > MaxScanSize {
		return nil
	}

	patterns := s.patterns.For(s.SettingsFor(filePath))

	var items []Item
	lineNo := 0
	for _, line := range strings.Split(text, "\n") {
		lineNo++
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		for _, match := range patterns.Record.FindAllStringSubmatchIndex(line, -1) {
			// A comment marker inside a string literal is code, not a
			// comment.
			markerStart := match[2*patterns.markerIdx]
			if markerStart >= 0 && comment.IsInsideStringLiteral(line, markerStart) {
				continue
			}
			items = append(items, buildItem(patterns, line, lineNo, match, filePath, projectName))
		}
	}
	return items
}

func buildItem(p *Patterns, line string, lineNo int, match []int, filePath, projectName string) Item {
	group := func(idx int) (string, int) {
		if idx < 0 {
			return "", -1
		}
		start, end := match[2*idx], match[2*idx+1]
		if start < 0 {
			return "", -1
		}
		return line[start:end], start
	}

	marker, _ := group(p.markerIdx)
	prefix, prefixStart := group(p.prefixIdx)
	tag, tagStart := group(p.tagIdx)
	meta, _ := group(p.metaIdx)
	msg, _ := group(p.msgIdx)

	column := tagStart
	if prefix != "" {
		column = prefixStart
	}

	return Item{
		File:        filePath,
		Project:     projectName,
		Line:        lineNo,
		Column:      column + 1,
		Tag:         strings.ToUpper(tag),
		Metadata:    meta,
		Message:     strings.TrimSpace(msg),
		PrefixStyle: marker,
	}
}
