package richtext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// FromMarkdown converts CommonMark (plus ~~strikethrough~~) into a document.
// Raw HTML is dropped. Blank input yields nil.
func FromMarkdown(src []byte) *Node {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil
	}

	root := markdown.Parser().Parse(text.NewReader(src))
	c := mdConverter{src: src}

	doc := &Node{Type: TypeDoc}
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		doc.Content = append(doc.Content, c.block(child)...)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	return doc
}

type mdConverter struct {
	src []byte
}

func (c mdConverter) block(n ast.Node) []Node {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		inline := c.inlineChildren(n, nil)
		if len(inline) == 0 {
			return nil
		}
		return []Node{{Type: TypeParagraph, Content: inline}}
	case *ast.Heading:
		return []Node{{
			Type:    TypeHeading,
			Attrs:   map[string]any{"level": n.Level},
			Content: c.inlineChildren(n, nil),
		}}
	case *ast.List:
		list := Node{Type: TypeBulletList}
		if n.IsOrdered() {
			list.Type = TypeOrderedList
			if n.Start > 1 {
				list.Attrs = map[string]any{"start": n.Start}
			}
		}
		list.Content = c.blockChildren(n)
		return []Node{list}
	case *ast.ListItem:
		return []Node{{Type: TypeListItem, Content: c.blockChildren(n)}}
	case *ast.Blockquote:
		return []Node{{Type: TypeBlockquote, Content: c.blockChildren(n)}}
	case *ast.FencedCodeBlock:
		code := Node{Type: TypeCodeBlock, Content: c.codeLines(n)}
		if lang := n.Language(c.src); len(lang) > 0 {
			code.Attrs = map[string]any{"language": string(lang)}
		}
		return []Node{code}
	case *ast.CodeBlock:
		return []Node{{Type: TypeCodeBlock, Content: c.codeLines(n)}}
	case *ast.ThematicBreak:
		return []Node{{Type: TypeHorizontalRule}}
	default:
		return nil
	}
}

func (c mdConverter) blockChildren(n ast.Node) []Node {
	var out []Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.block(child)...)
	}
	return out
}

func (c mdConverter) codeLines(n ast.Node) []Node {
	var b strings.Builder
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	code := strings.TrimRight(b.String(), "\n")
	if code == "" {
		return nil
	}
	return []Node{{Type: TypeText, Text: code}}
}

func (c mdConverter) inlineChildren(n ast.Node, marks []Mark) []Node {
	var out []Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.inline(child, marks)...)
	}
	return out
}

func (c mdConverter) inline(n ast.Node, marks []Mark) []Node {
	switch n := n.(type) {
	case *ast.Text:
		value := string(n.Segment.Value(c.src))
		if n.SoftLineBreak() {
			value += " "
		}
		var out []Node
		if value != "" {
			out = append(out, textNode(value, marks))
		}
		if n.HardLineBreak() {
			out = append(out, Node{Type: TypeHardBreak})
		}
		return out
	case *ast.String:
		return []Node{textNode(string(n.Value), marks)}
	case *ast.Emphasis:
		mark := MarkItalic
		if n.Level >= 2 {
			mark = MarkBold
		}
		return c.inlineChildren(n, withMark(marks, Mark{Type: mark}))
	case *extast.Strikethrough:
		return c.inlineChildren(n, withMark(marks, Mark{Type: MarkStrike}))
	case *ast.CodeSpan:
		return []Node{textNode(c.plain(n), withMark(marks, Mark{Type: MarkCode}))}
	case *ast.Link:
		attrs := map[string]any{"href": string(n.Destination)}
		if len(n.Title) > 0 {
			attrs["title"] = string(n.Title)
		}
		return c.inlineChildren(n, withMark(marks, Mark{Type: MarkLink, Attrs: attrs}))
	case *ast.AutoLink:
		href := string(n.URL(c.src))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(href, "mailto:") {
			href = "mailto:" + href
		}
		label := string(n.Label(c.src))
		return []Node{textNode(label, withMark(marks, Mark{Type: MarkLink, Attrs: map[string]any{"href": href}}))}
	case *ast.Image:
		attrs := map[string]any{"src": string(n.Destination)}
		if alt := c.plain(n); alt != "" {
			attrs["alt"] = alt
		}
		if len(n.Title) > 0 {
			attrs["title"] = string(n.Title)
		}
		return []Node{{Type: TypeImage, Attrs: attrs}}
	default:
		return c.inlineChildren(n, marks)
	}
}

// plain collects the literal text below n.
func (c mdConverter) plain(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.src))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func textNode(s string, marks []Mark) Node {
	n := Node{Type: TypeText, Text: s}
	if len(marks) > 0 {
		n.Marks = append([]Mark(nil), marks...)
	}
	return n
}

func withMark(marks []Mark, m Mark) []Mark {
	out := make([]Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, m)
}
