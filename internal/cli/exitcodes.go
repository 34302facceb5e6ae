package cli

import "errors"

// Exit codes for doctags.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitFindings indicates the command completed but found anchors
	// (anchors --fail-on-found) or files needing reformat (fmt --check).
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrAnchorsFound signals a non-zero exit from "anchors --fail-on-found".
// It carries no message worth logging.
var ErrAnchorsFound = errors.New("anchors found")

// ErrUnformatted signals a non-zero exit from "fmt --check" when files
// need reformatting.
var ErrUnformatted = errors.New("files need reformatting")
