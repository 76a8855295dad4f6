package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asforge-labs/asforge/internal/jsondoc"
	"github.com/asforge-labs/asforge/internal/layout"
	"github.com/asforge-labs/asforge/internal/manifest"
	"github.com/asforge-labs/asforge/internal/templates"
)

var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Verify a project layout without changing it",
	Long: `Check that the expected project files exist and that the configuration
fields the tool owns are well formed. Fields the tool does not own are not
inspected. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	plan := layout.Plan(root, templates.BaseConfig(exe))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Checking %s\n\n", root)
	problems := 0
	for _, a := range plan {
		problems += checkArtifact(out, a, root)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Toolchain:")
	checkBinary(out, "node")
	checkBinary(out, "npm")

	fmt.Fprintln(out)
	if problems > 0 {
		return fmt.Errorf("%s found", countNoun(problems, "problem", "problems"))
	}
	fmt.Fprintln(out, "All good.")
	return nil
}

// checkArtifact reports one artifact's state and returns 1 when it counts as
// a problem. Warnings do not count.
func checkArtifact(w io.Writer, a layout.Artifact, root string) int {
	rel := displayRel(a.Rel)
	path := a.Path(root)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "  [MISS] %s\n", rel)
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", rel, err)
		return 1
	}

	switch a.Kind {
	case layout.KindDir:
		if !info.IsDir() {
			fmt.Fprintf(w, "  [FAIL] %s: exists but is not a directory\n", rel)
			return 1
		}
	case layout.KindFile, layout.KindJSON:
		if info.IsDir() {
			fmt.Fprintf(w, "  [FAIL] %s: exists but is not a file\n", rel)
			return 1
		}
		if a.Kind == layout.KindJSON {
			return checkDocument(w, a, rel, path)
		}
	}

	fmt.Fprintf(w, "  [ OK ] %s\n", rel)
	return 0
}

// checkDocument validates the tool-owned fields of a JSON artifact and adds
// advisory warnings for states a setup run would repair.
func checkDocument(w io.Writer, a layout.Artifact, rel, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", rel, err)
		return 1
	}

	kind := manifest.DocPackageManifest
	if a.Rel == layout.FileTSConfig {
		kind = manifest.DocCompilerConfig
	}
	result, err := manifest.Validate(kind, data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", rel, err)
		return 1
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %s: %s\n", rel, countNoun(len(result.Issues), "schema issue", "schema issues"))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(w, "         %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(w, "         %s\n", issue.Message)
			}
		}
		return 1
	}

	fmt.Fprintf(w, "  [ OK ] %s\n", rel)
	printDocumentWarnings(w, a, path, data)
	return 0
}

func printDocumentWarnings(w io.Writer, a layout.Artifact, path string, data []byte) {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return
	}

	switch a.Rel {
	case layout.FileTSConfig:
		// A dangling extends target means the compiler will not find its
		// base settings.
		node := doc.Get(nil, "extends")
		if node == nil {
			return
		}
		target := filepath.FromSlash(node.Value)
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		if _, err := os.Stat(target); err != nil {
			fmt.Fprintf(w, "  [WARN] %s: extends target %s not found\n", displayRel(a.Rel), node.Value)
		}
	case layout.FileManifest:
		present, err := doc.HasAny([]string{"scripts"}, "asbuild:untouched", "asbuild:optimized", "asbuild")
		if err == nil && !present {
			fmt.Fprintf(w, "  [WARN] %s: no asbuild commands, a setup run would add them\n", displayRel(a.Rel))
		}
	}
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s not found on PATH\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}
