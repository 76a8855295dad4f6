package scaffold

import "errors"

// Sentinel errors reported by the ensurer and orchestrator. Call sites wrap
// them with artifact context; callers match with errors.Is.
var (
	// ErrMalformedConfig marks a structured config that exists on disk but
	// cannot be handled as a JSON object.
	ErrMalformedConfig = errors.New("malformed config")

	// ErrDependencyUnavailable marks an artifact that was not attempted
	// because the directory it lives in could not be ensured.
	ErrDependencyUnavailable = errors.New("parent directory unavailable")

	// ErrDeclined marks a run aborted at the confirmation prompt.
	ErrDeclined = errors.New("declined by operator")
)
