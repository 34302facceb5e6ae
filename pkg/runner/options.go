// Package runner orchestrates multi-file anchor scanning: file discovery,
// a worker pool, and deterministic result aggregation.
package runner

// Options controls a scan run.
type Options struct {
	// Paths are the user-specified files or directories to scan.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Project optionally names the project attached to every item.
	Project string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// defaultExcludedDirs are directory names skipped during discovery in
// addition to hidden directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var defaultExcludedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"bin":          true,
	"obj":          true,
	"target":       true,
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
