package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asforge-labs/asforge/internal/layout"
	"github.com/asforge-labs/asforge/internal/scaffold"
)

func TestCheckArtifact(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "proj")
	base := filepath.Join(tmp, "asforge", "std", "assembly.json")
	plan := layout.Plan(root, base)

	t.Run("missing artifact", func(t *testing.T) {
		var out bytes.Buffer
		if got := checkArtifact(&out, plan[1], root); got != 1 {
			t.Errorf("checkArtifact() = %d, want 1", got)
		}
		if !strings.Contains(out.String(), "[MISS] ./assembly") {
			t.Errorf("output = %q, want MISS line", out.String())
		}
	})

	if _, err := scaffold.Run(plan, root, true); err != nil {
		t.Fatalf("arranging project: %v", err)
	}

	t.Run("present artifacts", func(t *testing.T) {
		var out bytes.Buffer
		problems := 0
		for _, a := range plan {
			problems += checkArtifact(&out, a, root)
		}
		if problems != 0 {
			t.Errorf("problems = %d, want 0\n%s", problems, out.String())
		}
		if !strings.Contains(out.String(), "[ OK ] ./package.json") {
			t.Errorf("output = %q, want OK line for package.json", out.String())
		}
	})

	t.Run("broken owned field", func(t *testing.T) {
		var out bytes.Buffer
		tsconfig := filepath.Join(root, "assembly", "tsconfig.json")
		if err := os.WriteFile(tsconfig, []byte(`{"extends": 5}`), 0644); err != nil {
			t.Fatal(err)
		}
		a := planArtifact(t, plan, layout.FileTSConfig)
		if got := checkArtifact(&out, a, root); got != 1 {
			t.Errorf("checkArtifact() = %d, want 1\n%s", got, out.String())
		}
		if !strings.Contains(out.String(), "[FAIL] ./assembly/tsconfig.json") {
			t.Errorf("output = %q, want FAIL line", out.String())
		}
	})

	t.Run("unparseable document", func(t *testing.T) {
		var out bytes.Buffer
		manifestPath := filepath.Join(root, "package.json")
		if err := os.WriteFile(manifestPath, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		a := planArtifact(t, plan, layout.FileManifest)
		if got := checkArtifact(&out, a, root); got != 1 {
			t.Errorf("checkArtifact() = %d, want 1\n%s", got, out.String())
		}
	})
}

func TestCheckDocumentWarnings(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "proj")
	base := filepath.Join(tmp, "asforge", "std", "assembly.json")
	plan := layout.Plan(root, base)
	if _, err := scaffold.Run(plan, root, true); err != nil {
		t.Fatalf("arranging project: %v", err)
	}

	t.Run("dangling extends target warns", func(t *testing.T) {
		var out bytes.Buffer
		a := planArtifact(t, plan, layout.FileTSConfig)
		if got := checkArtifact(&out, a, root); got != 0 {
			t.Errorf("checkArtifact() = %d, want 0 (warnings are not problems)", got)
		}
		if !strings.Contains(out.String(), "[WARN]") || !strings.Contains(out.String(), "extends target") {
			t.Errorf("output = %q, want extends warning", out.String())
		}
	})

	t.Run("present extends target is quiet", func(t *testing.T) {
		writeBase(t, base)
		var out bytes.Buffer
		a := planArtifact(t, plan, layout.FileTSConfig)
		checkArtifact(&out, a, root)
		if strings.Contains(out.String(), "[WARN]") {
			t.Errorf("output = %q, want no warning", out.String())
		}
	})

	t.Run("missing build commands warn", func(t *testing.T) {
		manifestPath := filepath.Join(root, "package.json")
		if err := os.WriteFile(manifestPath, []byte(`{"scripts": {"test": "jest"}}`), 0644); err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		a := planArtifact(t, plan, layout.FileManifest)
		if got := checkArtifact(&out, a, root); got != 0 {
			t.Errorf("checkArtifact() = %d, want 0", got)
		}
		if !strings.Contains(out.String(), "no asbuild commands") {
			t.Errorf("output = %q, want asbuild warning", out.String())
		}
	})
}

func TestCheckCommandCleanProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")

	if out, err := execute(t, "", dir, "--yes"); err != nil {
		t.Fatalf("arranging project: %v\n%s", err, out)
	}

	// Warnings (extends target, toolchain) may appear; they must not turn
	// the check into a failure.
	out, err := execute(t, "", "check", dir)
	if err != nil {
		t.Fatalf("check error: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "All good.") {
		t.Errorf("missing success line in output:\n%s", out)
	}
}

func TestCheckCommandMissingArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")

	out, err := execute(t, "", "check", dir)
	if err == nil {
		t.Fatalf("check expected error for empty target, output:\n%s", out)
	}
	if !strings.Contains(out, "[MISS]") {
		t.Errorf("missing MISS lines in output:\n%s", out)
	}
}

func planArtifact(t *testing.T, plan []layout.Artifact, rel string) layout.Artifact {
	t.Helper()
	for _, a := range plan {
		if a.Rel == rel {
			return a
		}
	}
	t.Fatalf("plan has no artifact %q", rel)
	return layout.Artifact{}
}

func writeBase(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"compilerOptions": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
}
