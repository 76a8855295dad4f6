package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asforge-labs/asforge/internal/branding"
	"github.com/asforge-labs/asforge/internal/layout"
	"github.com/asforge-labs/asforge/internal/scaffold"
	"github.com/asforge-labs/asforge/internal/templates"
)

// runSetup performs the root command's work: plan, confirm, ensure, report.
func runSetup(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()

	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	plan := layout.Plan(root, templates.BaseConfig(exe))

	printPlan(out, root, plan)

	proceed := setupYes
	if !proceed {
		proceed = confirm(cmd.InOrStdin(), out, "? Proceed with setup? (Y/n) ")
	}

	results, err := scaffold.Run(plan, root, proceed)
	if err != nil {
		if errors.Is(err, scaffold.ErrDeclined) {
			fmt.Fprintln(out, "Setup cancelled.")
		}
		return err
	}

	failures := renderResults(out, results)
	if len(failures) > 0 {
		fmt.Fprintln(out)
		_, _ = errorColor.Fprintf(out, "✗ %s could not be ensured:\n", countNoun(len(failures), "artifact", "artifacts"))
		for _, r := range failures {
			fmt.Fprintf(out, "  %s: %v\n", displayRel(r.Artifact.Rel), r.Err)
		}
		return fmt.Errorf("%s could not be ensured", countNoun(len(failures), "artifact", "artifacts"))
	}

	printEpilogue(out, results)
	return nil
}

// printPlan lists every planned artifact with its description before the
// operator decides.
func printPlan(w io.Writer, root string, plan []layout.Artifact) {
	fmt.Fprintln(w)
	_, _ = headerColor.Fprintf(w, "%s %s\n", branding.DisplayName(), buildVersion)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "This will make sure the following files exist in %s:\n\n", root)
	for _, a := range plan {
		fmt.Fprintf(w, "  %s\n", displayRel(a.Rel))
		_, _ = dimColor.Fprintf(w, "    %s\n", a.Description)
	}
	fmt.Fprintln(w)
}

// renderResults prints one line per artifact and returns the results that
// carry errors, in plan order.
func renderResults(w io.Writer, results []scaffold.Result) []scaffold.Result {
	fmt.Fprintln(w)
	var failures []scaffold.Result
	for _, r := range results {
		rel := displayRel(r.Artifact.Rel)
		switch {
		case errors.Is(r.Err, scaffold.ErrDependencyUnavailable):
			failures = append(failures, r)
			_, _ = warnColor.Fprintf(w, "  ⚠ %-9s %s\n", "skipped", rel)
		case r.Err != nil:
			failures = append(failures, r)
			_, _ = errorColor.Fprintf(w, "  ✗ %-9s %s\n", "failed", rel)
		case r.Outcome == scaffold.OutcomeCreated:
			_, _ = successColor.Fprintf(w, "  ✓ %-9s %s\n", scaffold.OutcomeCreated, rel)
		case r.Outcome == scaffold.OutcomeUpdated:
			_, _ = infoColor.Fprintf(w, "  ✓ %-9s %s\n", scaffold.OutcomeUpdated, rel)
		default:
			_, _ = dimColor.Fprintf(w, "  · %-9s %s\n", scaffold.OutcomeUnchanged, rel)
		}
	}
	return failures
}

func printEpilogue(w io.Writer, results []scaffold.Result) {
	var created, updated, unchanged int
	for _, r := range results {
		switch r.Outcome {
		case scaffold.OutcomeCreated:
			created++
		case scaffold.OutcomeUpdated:
			updated++
		case scaffold.OutcomeUnchanged:
			unchanged++
		}
	}

	fmt.Fprintln(w)
	_, _ = successColor.Fprintf(w, "✓ Project is ready (%d created, %d updated, %d unchanged).\n", created, updated, unchanged)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Install the AssemblyScript compiler: npm install --save-dev assemblyscript")
	fmt.Fprintln(w, "  2. Compile your module:                 npm run asbuild")
	fmt.Fprintln(w)
}

// displayRel renders an artifact path the way the operator sees it in the
// target directory.
func displayRel(rel string) string {
	if rel == layout.RootDir {
		return "./"
	}
	return "./" + rel
}
