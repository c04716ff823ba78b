package richtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultExcerptLength is used when Excerpt is called with a negative length.
const DefaultExcerptLength = 120

// Ellipsis is appended to truncated excerpts.
const Ellipsis = "..."

// PlainText concatenates every text leaf of doc in document order. Marks,
// attributes and node types are ignored, and no separators are inserted
// between blocks.
func PlainText(doc *Node) string {
	var b strings.Builder
	Walk(doc, func(n *Node) bool {
		b.WriteString(n.Text)
		return true
	})
	return b.String()
}

// Excerpt returns the document's plain text bounded to maxLength runes.
// Text that fits is returned unchanged. Longer text is cut at maxLength
// runes, stripped of trailing whitespace and suffixed with Ellipsis, so the
// result never exceeds maxLength+3 runes. A nil document or one without
// children yields "".
func Excerpt(doc *Node, maxLength int) string {
	if doc == nil || len(doc.Content) == 0 {
		return ""
	}
	if maxLength < 0 {
		maxLength = DefaultExcerptLength
	}

	text := PlainText(doc)
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	return strings.TrimRightFunc(truncateRunes(text, maxLength), unicode.IsSpace) + Ellipsis
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
