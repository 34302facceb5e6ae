package runner

import "github.com/yaklabco/doctags/pkg/anchor"

// FileOutcome is the scan result for one file.
type FileOutcome struct {
	// Path is the absolute file path that was scanned.
	Path string

	// Language is the detected source language. Empty when unknown.
	Language string

	// Items are the anchor occurrences found, in line order.
	Items []anchor.Item

	// Skipped is set when the file was deliberately not scanned
	// (binary content or oversize); SkipReason says why.
	Skipped    bool
	SkipReason string

	// Err is set if the file could not be read.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesScanned is the number of files actually scanned.
	FilesScanned int

	// FilesSkipped counts binary and oversize files.
	FilesSkipped int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// ItemsFound is the total number of anchor items across all files.
	ItemsFound int

	// ItemsByTag maps canonical tags to occurrence counts.
	ItemsByTag map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// Items flattens every file's anchor items, preserving file order.
func (r *Result) Items() []anchor.Item {
	var items []anchor.Item
	for _, outcome := range r.Files {
		items = append(items, outcome.Items...)
	}
	return items
}

// HasItems reports whether any anchor items were found.
func (r *Result) HasItems() bool {
	return r != nil && r.Stats.ItemsFound > 0
}

func newStats() Stats {
	return Stats{ItemsByTag: make(map[string]int)}
}

// accumulate folds one file outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Err != nil:
		r.Stats.FilesErrored++
	case outcome.Skipped:
		r.Stats.FilesSkipped++
	default:
		r.Stats.FilesScanned++
		r.Stats.ItemsFound += len(outcome.Items)
		for _, item := range outcome.Items {
			r.Stats.ItemsByTag[item.Tag]++
		}
	}
}
