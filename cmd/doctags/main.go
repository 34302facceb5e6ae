// Package main is the entry point for the doctags CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/yaklabco/doctags/internal/cli"
	"github.com/yaklabco/doctags/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)
	ctx := logging.WithLogger(context.Background(), logging.Default())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Findings sentinels only carry the exit code; nothing to log.
		if errors.Is(err, cli.ErrAnchorsFound) || errors.Is(err, cli.ErrUnformatted) {
			return cli.ExitFindings
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}

	return cli.ExitSuccess
}
