// Package jsondoc edits JSON documents without disturbing the order of their
// members.
//
// Documents are held as a YAML node tree (JSON is a YAML subset), which keeps
// members in the order they appear on disk. Serialization walks the tree back
// out as JSON, so a parse/serialize round trip reproduces the same member
// order and the same bytes.
package jsondoc

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Document is a JSON object under edit.
type Document struct {
	root *yaml.Node
}

// Parse reads data as a JSON object. Syntax is checked with the JSON grammar
// first (the YAML reader would accept more than JSON), then the node tree is
// built for order-preserving edits.
func Parse(data []byte) (*Document, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("parsing document: empty input")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing document: top level is not an object")
	}
	return &Document{root: root}, nil
}

// New returns an empty object document.
func New() *Document {
	return &Document{root: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// Str returns a JSON string value.
func Str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Strings returns a JSON array of string values.
func Strings(elems ...string) *yaml.Node {
	arr := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range elems {
		arr.Content = append(arr.Content, Str(e))
	}
	return arr
}

// child returns the value node for key within the object node, or nil.
func child(obj *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(obj.Content); i += 2 {
		if obj.Content[i].Value == key {
			return obj.Content[i+1]
		}
	}
	return nil
}

// walk descends path from the root without creating anything. It returns nil
// when a segment is missing and an error when a segment exists but is not an
// object.
func (d *Document) walk(path []string) (*yaml.Node, error) {
	node := d.root
	for _, seg := range path {
		next := child(node, seg)
		if next == nil {
			return nil, nil
		}
		if next.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("member %q is not an object", seg)
		}
		node = next
	}
	return node, nil
}

// Set writes key within the object at path. An existing key keeps its
// position and has its value replaced; a new key is appended after the
// existing members. Objects missing along path are created.
func (d *Document) Set(path []string, key string, value *yaml.Node) error {
	node := d.root
	for _, seg := range path {
		next := child(node, seg)
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, Str(seg), next)
		}
		if next.Kind != yaml.MappingNode {
			return fmt.Errorf("member %q is not an object", seg)
		}
		node = next
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = value
			return nil
		}
	}
	node.Content = append(node.Content, Str(key), value)
	return nil
}

// HasAny reports whether any of keys is present in the object at path. A
// path that does not exist counts as absent; a path through a non-object is
// an error so callers can report the document rather than guess.
func (d *Document) HasAny(path []string, keys ...string) (bool, error) {
	node, err := d.walk(path)
	if err != nil {
		return false, err
	}
	if node == nil {
		return false, nil
	}
	for _, k := range keys {
		if child(node, k) != nil {
			return true, nil
		}
	}
	return false, nil
}

// Get returns the value node for key within the object at path, or nil when
// the key or any path segment is absent or not an object.
func (d *Document) Get(path []string, key string) *yaml.Node {
	node, err := d.walk(path)
	if err != nil || node == nil {
		return nil
	}
	return child(node, key)
}
