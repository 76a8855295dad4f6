package jsondoc

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Encode serializes the document as JSON: two-space indent, members in
// document order, a trailing newline. The same tree always yields the same
// bytes.
//
// Strings are escaped by hand rather than through encoding/json, which would
// escape &, < and > for HTML embedding and mangle shell commands stored in
// script values.
func (d *Document) Encode() []byte {
	var buf bytes.Buffer
	writeNode(&buf, d.root, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *yaml.Node, depth int) {
	switch n.Kind {
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			writeIndent(buf, depth+1)
			writeString(buf, n.Content[i].Value)
			buf.WriteString(": ")
			writeNode(buf, n.Content[i+1], depth+1)
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth)
		buf.WriteByte('}')
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			writeIndent(buf, depth+1)
			writeNode(buf, c, depth+1)
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth)
		buf.WriteByte(']')
	case yaml.ScalarNode:
		writeScalar(buf, n)
	}
}

func writeScalar(buf *bytes.Buffer, n *yaml.Node) {
	switch n.Tag {
	case "!!str":
		writeString(buf, n.Value)
	case "!!null":
		buf.WriteString("null")
	default:
		// Numbers and booleans keep their original lexeme.
		buf.WriteString(n.Value)
	}
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
