package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/doctags/pkg/anchor"
	"github.com/yaklabco/doctags/pkg/comment"
)

// Runner orchestrates multi-file anchor scanning.
type Runner struct {
	// Scanner performs the per-file anchor scans; it owns the pattern and
	// directory-config caches shared across workers.
	Scanner *anchor.Scanner
}

// New creates a Runner around the given scanner.
func New(scanner *anchor.Scanner) *Runner {
	return &Runner{Scanner: scanner}
}

// Run discovers files under opts.Paths and scans them concurrently.
// Results are aggregated in deterministic path order regardless of worker
// completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Project)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key by path and rebuild in the
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, project string) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.scanFile(path, project)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// scanFile reads and scans one file. Binary and oversize files are skipped,
// not errors.
func (r *Runner) scanFile(path, project string) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	if len(data) > anchor.MaxScanSize {
		outcome.Skipped = true
		outcome.SkipReason = "oversize"
		return outcome
	}
	if enry.IsBinary(data) {
		outcome.Skipped = true
		outcome.SkipReason = "binary"
		return outcome
	}

	outcome.Language = comment.LanguageForFile(path, data)
	outcome.Items = r.Scanner.ScanText(string(data), path, project)
	return outcome
}
