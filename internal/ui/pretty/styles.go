// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Anchor tag styles by urgency
	TagUrgent lipgloss.Style // BUG, FIXME
	TagWork   lipgloss.Style // TODO, HACK, UNDONE
	TagInfo   lipgloss.Style // NOTE, REVIEW, ANCHOR and custom tags

	// Anchor item components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Metadata lipgloss.Style
	Message  lipgloss.Style

	// Doc-comment segment styles
	Heading  lipgloss.Style
	Link     lipgloss.Style
	ParamRef lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Strong   lipgloss.Style
	Plain    lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		TagUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		TagWork:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		TagInfo:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Metadata: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Message:  lipgloss.NewStyle(),

		Heading:  lipgloss.NewStyle().Bold(true),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		ParamRef: lipgloss.NewStyle().Italic(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("236")),
		Emphasis: lipgloss.NewStyle().Italic(true),
		Strong:   lipgloss.NewStyle().Bold(true),
		Plain:    lipgloss.NewStyle(),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TagUrgent:    plain,
		TagWork:      plain,
		TagInfo:      plain,
		FilePath:     plain,
		Location:     plain,
		Metadata:     plain,
		Message:      plain,
		Heading:      plain,
		Link:         plain,
		ParamRef:     plain,
		Code:         plain,
		Emphasis:     plain,
		Strong:       plain,
		Plain:        plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
