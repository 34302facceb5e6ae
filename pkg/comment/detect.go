package comment

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// StyleForFile returns the comment style for a file, detecting its language
// from the file name and (optionally) its content via go-enry.
// Unrecognized languages fall back to the C-family style, which covers the
// most common delimiters.
func StyleForFile(path string, content []byte) Style {
	lang := enry.GetLanguage(filepath.Base(path), content)
	if style, ok := StyleFor(lang); ok {
		return style
	}
	return CFamily()
}

// LanguageForFile returns the go-enry language name for a file, or "" if
// detection fails.
func LanguageForFile(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}
