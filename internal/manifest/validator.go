package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

// Doc selects which owned-field schema a document is validated against.
type Doc string

const (
	// DocCompilerConfig is assembly/tsconfig.json.
	DocCompilerConfig Doc = "compiler config"
	// DocPackageManifest is package.json.
	DocPackageManifest Doc = "package manifest"
)

var docRefs = map[Doc]string{
	DocCompilerConfig:  "project.schema.json#/$defs/compilerConfig",
	DocPackageManifest: "project.schema.json#/$defs/packageManifest",
}

var (
	compiled    map[Doc]*jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// schemas compiles the embedded schema once, one entry point per document
// kind.
func schemas() (map[Doc]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("project.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiled = make(map[Doc]*jsonschema.Schema, len(docRefs))
		for d, ref := range docRefs {
			compiled[d], compileErr = c.Compile(ref)
			if compileErr != nil {
				compileErr = fmt.Errorf("compiling %s schema: %w", d, compileErr)
				return
			}
		}
	})
	return compiled, compileErr
}

// ValidationResult contains the outcome of validating one document.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/scripts/asbuild"
	Message string // human-readable error message
	Keyword string // schema keyword that failed
}

// Validate checks data, a JSON document, against the owned-field schema for
// doc. The error return is for JSON parse and schema compilation failures;
// schema violations come back in the result.
func Validate(doc Doc, data []byte) (*ValidationResult, error) {
	all, err := schemas()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	schema, ok := all[doc]
	if !ok {
		return nil, fmt.Errorf("no schema for document kind %q", doc)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := collectIssues(ve, nil)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Valid: false, Issues: issues}, nil
}

// collectIssues walks the error tree and keeps the leaf violations, which
// carry the property-level detail worth showing.
func collectIssues(ve *jsonschema.ValidationError, issues []ValidationIssue) []ValidationIssue {
	if len(ve.Causes) == 0 {
		keyword := ""
		if ve.ErrorKind != nil {
			if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
				keyword = kw[len(kw)-1]
			}
		}
		// Container keywords repeat what their causes already say.
		if keyword == "" || keyword == "$ref" {
			return issues
		}

		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		return append(issues, ValidationIssue{
			Path:    path,
			Message: ve.ErrorKind.LocalizedString(printer),
			Keyword: keyword,
		})
	}
	for _, cause := range ve.Causes {
		issues = collectIssues(cause, issues)
	}
	return issues
}
