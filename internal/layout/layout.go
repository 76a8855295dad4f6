// Package layout plans the artifact set of an AssemblyScript project.
//
// A plan is a pure value: it does no I/O and the same inputs always produce
// the same artifacts in the same order. Applying the plan is the scaffold
// package's job.
package layout

import (
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/asforge-labs/asforge/internal/jsondoc"
	"github.com/asforge-labs/asforge/internal/templates"
)

// Kind tells the ensurer how to treat an artifact.
type Kind string

const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
	KindJSON Kind = "json"
)

// Policy governs when a fragment applies to an existing document.
type Policy string

const (
	// PolicyAlways rewrites the fragment's members on every accepted run.
	PolicyAlways Policy = "always"
	// PolicyCreateOnly applies only when the document is created fresh.
	PolicyCreateOnly Policy = "create-only"
	// PolicyGroupAbsent applies only when none of the fragment's keys is
	// already present at the path. The members are added all together or
	// not at all.
	PolicyGroupAbsent Policy = "group-absent"
)

// Artifact paths relative to the project root, in slash form.
const (
	RootDir      = "."
	DirAssembly  = "assembly"
	FileTSConfig = "assembly/tsconfig.json"
	FileEntry    = "assembly/index.ts"
	DirBuild     = "build"
	FileIgnore   = "build/.gitignore"
	FileManifest = "package.json"
	FileLoader   = "index.js"
)

// Member is a single key/value contribution to a JSON document.
type Member struct {
	Key   string
	Value *yaml.Node
}

// Fragment groups members applied to one object path under one policy.
type Fragment struct {
	Path    []string
	Policy  Policy
	Members []Member
}

// Artifact is one planned file-system entry.
type Artifact struct {
	Kind        Kind
	Rel         string // relative to the project root, slash form; "." is the root itself
	Description string
	Template    []byte     // KindFile: exact content written on creation
	Fragments   []Fragment // KindJSON: the document's merge programme
}

// Path resolves the artifact's absolute location under root.
func (a Artifact) Path(root string) string {
	if a.Rel == RootDir {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(a.Rel))
}

// Plan returns the artifacts of a project at root, ordered so that every
// directory precedes everything nested under it, with the root first.
//
// baseConfig is the absolute path of the compiler's base tsconfig bundled
// with the tool; the planned tsconfig extends it by relative path from the
// sources directory.
func Plan(root, baseConfig string) []Artifact {
	extends := relSlash(filepath.Join(root, DirAssembly), baseConfig)

	return []Artifact{
		{
			Kind:        KindDir,
			Rel:         RootDir,
			Description: "Project root directory.",
		},
		{
			Kind:        KindDir,
			Rel:         DirAssembly,
			Description: "Directory holding the AssemblyScript sources compiled to WebAssembly.",
		},
		{
			Kind:        KindJSON,
			Rel:         FileTSConfig,
			Description: "TypeScript configuration inheriting the recommended AssemblyScript settings.",
			Fragments: []Fragment{
				{
					Policy:  PolicyAlways,
					Members: []Member{{Key: "extends", Value: jsondoc.Str(extends)}},
				},
				{
					Policy:  PolicyCreateOnly,
					Members: []Member{{Key: "include", Value: jsondoc.Strings("./**/*.ts")}},
				},
			},
		},
		{
			Kind:        KindFile,
			Rel:         FileEntry,
			Description: "Example entry file compiled to WebAssembly to get you started.",
			Template:    []byte(templates.EntrySource),
		},
		{
			Kind:        KindDir,
			Rel:         DirBuild,
			Description: "Build artifact directory where compiled WebAssembly files are stored.",
		},
		{
			Kind:        KindFile,
			Rel:         FileIgnore,
			Description: "Git configuration that excludes compiled binaries from source control.",
			Template:    []byte(templates.BuildIgnore),
		},
		{
			Kind:        KindJSON,
			Rel:         FileManifest,
			Description: "Package info containing the necessary commands to compile to WebAssembly.",
			Fragments: []Fragment{
				{
					Path:   []string{"scripts"},
					Policy: PolicyGroupAbsent,
					Members: []Member{
						{Key: "asbuild:untouched", Value: jsondoc.Str(templates.ScriptBuildUntouched)},
						{Key: "asbuild:optimized", Value: jsondoc.Str(templates.ScriptBuildOptimized)},
						{Key: "asbuild", Value: jsondoc.Str(templates.ScriptBuildAll)},
					},
				},
			},
		},
		{
			Kind:        KindFile,
			Rel:         FileLoader,
			Description: "Main file loading the WebAssembly module and exporting its exports.",
			Template:    []byte(templates.Loader),
		},
	}
}

// relSlash returns the slash-form relative path from dir to target, falling
// back to the absolute target when no relative form exists (different
// volumes on Windows).
func relSlash(dir, target string) string {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
