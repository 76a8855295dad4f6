// Package manifest validates the tool-owned fields of the project's JSON
// artifacts against an embedded JSON schema. Only the owned members are
// described by the schema; everything else in the documents belongs to the
// user and passes through unchecked.
package manifest
