// Package richtext models the editor's JSON document tree and derives
// plain-text excerpts, HTML and documents from markdown or plain text.
package richtext

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Node types produced by the admin editor.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeText           = "text"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeHardBreak      = "hardBreak"
	TypeHorizontalRule = "horizontalRule"
	TypeImage          = "image"
)

// Mark types.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkLink      = "link"
)

// Node is one element of a document tree. Leaves carry Text; internal
// nodes carry Content.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is inline formatting applied to a text leaf.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// ErrInvalidDocument is returned by Parse for JSON that is neither a
// document object, a string nor null.
var ErrInvalidDocument = errors.New("invalid rich-text document")

// Parse decodes a request field holding either a document object or a plain
// string. A string is wrapped with FromPlainText; empty input and JSON null
// yield a nil document.
func Parse(raw []byte) (*Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		return FromPlainText(s), nil
	case '{':
		var n Node
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		if n.Type == "" {
			n.Type = TypeDoc
		}
		return &n, nil
	default:
		return nil, ErrInvalidDocument
	}
}

// Scan implements sql.Scanner for jsonb columns.
func (n *Node) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*n = Node{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan rich-text document: unsupported type %T", src)
	}

	var decoded Node
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("scan rich-text document: %w", err)
	}
	*n = decoded
	return nil
}

// Value implements driver.Valuer. A nil document is stored as SQL NULL.
func (n *Node) Value() (driver.Value, error) {
	if n == nil {
		return nil, nil
	}
	b, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("encode rich-text document: %w", err)
	}
	return b, nil
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for i := range n.Content {
		Walk(&n.Content[i], fn)
	}
}
