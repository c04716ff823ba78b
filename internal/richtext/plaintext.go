package richtext

import (
	"regexp"
	"strings"
)

var blankLines = regexp.MustCompile(`\n\s*\n`)

// FromPlainText wraps s into a document, one paragraph per blank-line
// separated block. Single newlines inside a block become hard breaks.
// Whitespace-only input yields nil.
func FromPlainText(s string) *Node {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if strings.TrimSpace(s) == "" {
		return nil
	}

	doc := &Node{Type: TypeDoc}
	for _, block := range blankLines.Split(s, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		para := Node{Type: TypeParagraph}
		for i, line := range strings.Split(block, "\n") {
			if i > 0 {
				para.Content = append(para.Content, Node{Type: TypeHardBreak})
			}
			if line = strings.TrimSpace(line); line != "" {
				para.Content = append(para.Content, Node{Type: TypeText, Text: line})
			}
		}
		doc.Content = append(doc.Content, para)
	}
	return doc
}
