package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/doctags/internal/ui/pretty"
	"github.com/yaklabco/doctags/pkg/comment"
	"github.com/yaklabco/doctags/pkg/docblock"
	"github.com/yaklabco/doctags/pkg/render"
	"github.com/yaklabco/doctags/pkg/source"
)

type renderFlags struct {
	line    int
	summary bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render structured doc comments for the terminal",
		Long: `Parse a file's doc-comment blocks and render them as readable text:
the summary first, then parameters, returns, exceptions, and remarks
under their headings. Inline markup maps to terminal styling.

Examples:
  doctags render src/calc.cs            # Render every doc block
  doctags render src/calc.cs --line 42  # Only the block covering line 42
  doctags render src/calc.cs --summary  # One stripped summary per block`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.line, "line", 0, "render only the block covering this 1-based line")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print stripped one-line summaries")

	return cmd
}

func runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	style := comment.StyleForFile(path, data)
	snap := source.NewSnapshot(path, data)
	blocks := docblock.FindAll(snap, style)

	if flags.line > 0 {
		blocks = blocksAtLine(blocks, flags.line)
		if len(blocks) == 0 {
			return errors.New("no doc comment covers that line")
		}
	}
	if len(blocks) == 0 {
		return errors.New("no doc comments found")
	}

	out := cmd.OutOrStdout()
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	rule := strings.Repeat("-", ruleWidth())

	for i := range blocks {
		block := &blocks[i]
		doc := docblock.ParseMarkup(block.Text)

		if flags.summary {
			summary := render.StrippedSummary(doc)
			if summary == "" {
				continue
			}
			fmt.Fprintf(out, "%s  %s\n",
				styles.Location.Render(fmt.Sprintf("%s:%d", path, block.StartLine)),
				summary)
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, styles.FilePath.Render(fmt.Sprintf("%s:%d", path, block.StartLine)))
		fmt.Fprintln(out, styles.Dim.Render(rule))
		fmt.Fprintln(out, styles.FormatComment(render.Render(doc)))
	}

	return nil
}

// blocksAtLine filters to the single block covering a physical line.
func blocksAtLine(blocks []docblock.Block, line int) []docblock.Block {
	for _, block := range blocks {
		if line >= block.StartLine && line <= block.EndLine {
			return []docblock.Block{block}
		}
	}
	return nil
}

// ruleWidth sizes the separator rule to the terminal, defaulting to 72
// columns when stdout is not a terminal.
func ruleWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 72
	}
	if width > 120 {
		width = 120
	}
	return width
}
