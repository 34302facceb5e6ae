package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/doctags/internal/logging"
	"github.com/yaklabco/doctags/internal/ui/pretty"
	"github.com/yaklabco/doctags/pkg/anchor"
	"github.com/yaklabco/doctags/pkg/dircfg"
	"github.com/yaklabco/doctags/pkg/runner"
)

type anchorsFlags struct {
	jsonOutput     bool
	jobs           int
	project        string
	exclude        []string
	followSymlinks bool
	failOnFound    bool
}

func newAnchorsCommand() *cobra.Command {
	flags := &anchorsFlags{}

	cmd := &cobra.Command{
		Use:   "anchors [paths...]",
		Short: "Scan source files for TODO-style anchor comments",
		Long: `Scan source trees for anchor comments: TODO, HACK, NOTE, BUG, FIXME,
UNDONE, REVIEW, and ANCHOR, plus any custom tags from configuration.

Anchors are recognized only inside comments, never in string literals or
ordinary code. Each match reports its file, line, column, tag, optional
metadata, and message.

Examples:
  doctags anchors                  # Scan current directory
  doctags anchors src/ lib/        # Scan specific directories
  doctags anchors --json           # Machine-readable output
  doctags anchors --fail-on-found  # Non-zero exit when anchors exist`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnchors(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "output items as JSON")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.project, "project", "", "project name attached to each item")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links during discovery")
	cmd.Flags().BoolVar(&flags.failOnFound, "fail-on-found", false, "exit non-zero when any anchors are found")

	return cmd
}

func runAnchors(cmd *cobra.Command, args []string, flags *anchorsFlags) error {
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

	scanner := anchor.NewScanner(settings, dircfg.NewCache())
	scanRunner := runner.New(scanner)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Project:        flags.project,
		ExcludeGlobs:   flags.exclude,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           flags.jobs,
	}

	logger.Debug("starting anchor scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldTags, scanner.SettingsFor("").CustomAnchorTags,
	)

	result, err := scanRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("anchor scan failed"), err)
	}

	for _, file := range result.Files {
		if file.Err != nil {
			logger.Warn("skipping unreadable file", logging.FieldError, file.Err)
		}
	}

	if flags.jsonOutput {
		if err := writeItemsJSON(cmd, result); err != nil {
			return err
		}
	} else {
		writeItemsPretty(cmd, result)
	}

	if flags.failOnFound && result.HasItems() {
		return ErrAnchorsFound
	}
	return nil
}

func writeItemsJSON(cmd *cobra.Command, result *runner.Result) error {
	items := result.Items()
	if items == nil {
		items = []anchor.Item{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	return nil
}

func writeItemsPretty(cmd *cobra.Command, result *runner.Result) {
	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	for _, file := range result.Files {
		if len(file.Items) == 0 {
			continue
		}
		fmt.Fprintln(out, styles.FormatFileHeader(file.Path, len(file.Items)))
		for _, item := range file.Items {
			fmt.Fprintln(out, styles.FormatItem(item))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, styles.FormatScanSummary(result.Stats))
}
