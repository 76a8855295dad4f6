package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/asforge-labs/asforge/internal/jsondoc"
	"github.com/asforge-labs/asforge/internal/layout"
	"github.com/asforge-labs/asforge/internal/platform"
)

// Outcome tells what Ensure did to an artifact.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// Ensure brings one artifact into its planned state under root. Existing
// user content survives: text files are left alone once present, and JSON
// documents keep every member the plan does not own, in their original
// order. Unchanged artifacts see no write at all.
func Ensure(a layout.Artifact, root string) (Outcome, error) {
	path := a.Path(root)
	switch a.Kind {
	case layout.KindDir:
		return ensureDir(path)
	case layout.KindFile:
		return ensureFile(path, a.Template)
	case layout.KindJSON:
		return ensureDoc(path, a.Fragments)
	default:
		return "", fmt.Errorf("unknown artifact kind %q", a.Kind)
	}
}

func ensureDir(path string) (Outcome, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return OutcomeUnchanged, nil
	case err == nil:
		return "", fmt.Errorf("%s exists but is not a directory", path)
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	// MkdirAll mode passes through the umask; force the planned bits.
	if err := platform.Chmod(path, 0755); err != nil {
		return "", fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return OutcomeCreated, nil
}

func ensureFile(path string, content []byte) (Outcome, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "", fmt.Errorf("%s exists but is not a file", path)
	case err == nil:
		// Present in any form means the user owns it now.
		return OutcomeUnchanged, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return OutcomeCreated, nil
}

func ensureDoc(path string, fragments []layout.Fragment) (Outcome, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := jsondoc.New()
		if _, err := applyFragments(doc, fragments, true); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		if err := os.WriteFile(path, doc.Encode(), 0644); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		return OutcomeCreated, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := jsondoc.Parse(data)
	if err != nil {
		return "", fmt.Errorf("%w in %s: %v", ErrMalformedConfig, path, err)
	}
	changed, err := applyFragments(doc, fragments, false)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if !changed {
		return OutcomeUnchanged, nil
	}
	out := doc.Encode()
	if bytes.Equal(out, data) {
		return OutcomeUnchanged, nil
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return OutcomeUpdated, nil
}

// applyFragments runs a document's merge programme. On a fresh document
// every fragment applies. On an existing one, create-only fragments are
// skipped and a group fragment applies only when none of its keys is already
// present, so the group lands whole or not at all. Reports whether the
// document was written to.
func applyFragments(doc *jsondoc.Document, fragments []layout.Fragment, fresh bool) (bool, error) {
	changed := false
	for _, frag := range fragments {
		switch frag.Policy {
		case layout.PolicyCreateOnly:
			if !fresh {
				continue
			}
		case layout.PolicyGroupAbsent:
			if !fresh {
				keys := make([]string, len(frag.Members))
				for i, m := range frag.Members {
					keys[i] = m.Key
				}
				present, err := doc.HasAny(frag.Path, keys...)
				if err != nil {
					return false, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
				}
				if present {
					continue
				}
			}
		}
		for _, m := range frag.Members {
			if err := doc.Set(frag.Path, m.Key, m.Value); err != nil {
				return false, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
			}
		}
		changed = true
	}
	return changed, nil
}
