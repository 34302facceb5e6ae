package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/spf13/cobra"

	"github.com/yaklabco/doctags/internal/logging"
	"github.com/yaklabco/doctags/pkg/anchor"
	"github.com/yaklabco/doctags/pkg/comment"
	"github.com/yaklabco/doctags/pkg/config"
	"github.com/yaklabco/doctags/pkg/dircfg"
	"github.com/yaklabco/doctags/pkg/docblock"
	"github.com/yaklabco/doctags/pkg/reflow"
	"github.com/yaklabco/doctags/pkg/runner"
	"github.com/yaklabco/doctags/pkg/source"
)

type fmtFlags struct {
	write   bool
	maxLen  int
	exclude []string
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Reflow doc-comment blocks to the configured line length",
		Long: `Reflow structured doc-comment blocks so prose fits the configured
column budget. Short summaries collapse onto a single line; list items,
code samples, and structural markup keep their line structure.

Without --write, files whose doc comments would change are listed and
the command exits non-zero. With --write, files are rewritten in place.

Examples:
  doctags fmt                  # Check current directory
  doctags fmt --write src/     # Rewrite doc comments under src/
  doctags fmt --max-len 80     # Override the column budget`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().IntVar(&flags.maxLen, "max-len", 0, "column budget override (0 = from config)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	settings, err := loadGlobalSettings(cmd)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	files, err := runner.Discover(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.exclude,
	})
	if err != nil {
		return errors.Join(errors.New("file discovery failed"), err)
	}

	logger.Debug("starting reflow pass",
		logging.FieldFiles, len(files),
		logging.FieldWrite, flags.write,
		logging.FieldMaxLen, flags.maxLen,
	)

	dirCfg := dircfg.NewCache()
	out := cmd.OutOrStdout()
	changed := 0
	blocksReflowed := 0

	for _, path := range files {
		formatted, blocks, err := reflowFile(path, settings, dirCfg, flags.maxLen)
		if err != nil {
			logger.Warn("skipping file", logging.FieldPath, path, logging.FieldError, err)
			continue
		}
		if formatted == nil {
			continue
		}
		changed++
		blocksReflowed += blocks

		if flags.write {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		fmt.Fprintln(out, path)
	}

	logger.Debug("reflow pass complete",
		logging.FieldFilesModified, changed,
		logging.FieldBlocksReflowed, blocksReflowed,
	)

	if !flags.write && changed > 0 {
		return ErrUnformatted
	}
	return nil
}

// reflowFile reflows every doc-comment block of one file. Returns the new
// content and the number of blocks that changed, or (nil, 0) when the file
// is already formatted or not eligible.
func reflowFile(path string, global *config.Settings, dirCfg *dircfg.Cache, maxLenOverride int) ([]byte, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	if len(data) > anchor.MaxScanSize || enry.IsBinary(data) {
		return nil, 0, nil
	}

	style := comment.StyleForFile(path, data)
	snap := source.NewSnapshot(path, data)
	blocks := docblock.FindAll(snap, style)
	if len(blocks) == 0 {
		return nil, 0, nil
	}

	opts := reflow.FromSettings(config.Resolve(global, dirCfg.ForFile(path)))
	if maxLenOverride > 0 {
		opts.MaxLineLength = maxLenOverride
	}

	var builder strings.Builder
	builder.Grow(len(data))
	prev := 0
	changed := 0

	for i := range blocks {
		block := &blocks[i]
		replacement := reflow.Reflow(block, opts)
		if replacement == "" {
			continue
		}
		changed++

		builder.Write(data[prev:block.Span.Start])
		builder.WriteString(spliceBlock(block.Raw, replacement))
		prev = block.Span.Start + block.Span.Length
	}
	if changed == 0 {
		return nil, 0, nil
	}
	builder.Write(data[prev:])

	return []byte(builder.String()), changed, nil
}

// spliceBlock adapts reflow output to the physical form of the block it
// replaces: the original newline flavor and trailing terminator.
func spliceBlock(raw, replacement string) string {
	terminator := ""
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		terminator = "\r\n"
	case strings.HasSuffix(raw, "\n"):
		terminator = "\n"
	}
	if strings.Contains(raw, "\r\n") {
		replacement = strings.ReplaceAll(replacement, "\n", "\r\n")
	}
	return replacement + terminator
}
