package scaffold

import (
	"fmt"
	"strings"

	"github.com/asforge-labs/asforge/internal/layout"
)

// Result pairs a planned artifact with what happened to it. Err is set for
// artifacts that failed or were not attempted; Outcome is set otherwise.
type Result struct {
	Artifact layout.Artifact
	Outcome  Outcome
	Err      error
}

// Run applies the plan under root, in plan order. proceed carries the
// operator's confirmation: a declined run returns ErrDeclined before
// touching the file system.
//
// One artifact failing does not stop the run. Artifacts nested under a
// directory that could not be ensured are not attempted; their results carry
// ErrDependencyUnavailable naming that directory. Artifacts ensured before a
// failure are not rolled back.
func Run(plan []layout.Artifact, root string, proceed bool) ([]Result, error) {
	if !proceed {
		return nil, ErrDeclined
	}

	results := make([]Result, 0, len(plan))
	var failedDirs []string

	for _, a := range plan {
		if dir, blocked := blockedBy(a.Rel, failedDirs); blocked {
			results = append(results, Result{
				Artifact: a,
				Err:      fmt.Errorf("%w: %s", ErrDependencyUnavailable, dir),
			})
			continue
		}

		outcome, err := Ensure(a, root)
		if err != nil {
			if a.Kind == layout.KindDir {
				failedDirs = append(failedDirs, a.Rel)
			}
			results = append(results, Result{Artifact: a, Err: err})
			continue
		}
		results = append(results, Result{Artifact: a, Outcome: outcome})
	}
	return results, nil
}

// blockedBy returns the first failed directory that contains rel.
func blockedBy(rel string, failedDirs []string) (string, bool) {
	for _, dir := range failedDirs {
		if dir == layout.RootDir && rel != layout.RootDir {
			return dir, true
		}
		if strings.HasPrefix(rel, dir+"/") {
			return dir, true
		}
	}
	return "", false
}
