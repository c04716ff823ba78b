package richtext

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML renders doc as an HTML fragment. Text is escaped by the
// renderer; link and image URLs are kept only for http, https, mailto and
// relative references. A nil document renders as "".
func RenderHTML(doc *Node) string {
	var b strings.Builder
	_ = WriteHTML(&b, doc)
	return b.String()
}

// WriteHTML streams the rendering of doc to w.
func WriteHTML(w io.Writer, doc *Node) error {
	if doc == nil {
		return nil
	}
	for _, n := range convert(doc) {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

// convert maps a document node to zero or more HTML nodes.
func convert(n *Node) []*html.Node {
	switch n.Type {
	case TypeText:
		if n.Text == "" {
			return nil
		}
		return []*html.Node{applyMarks(&html.Node{Type: html.TextNode, Data: n.Text}, n.Marks)}
	case TypeHardBreak:
		return []*html.Node{element("br")}
	case TypeHorizontalRule:
		return []*html.Node{element("hr")}
	case TypeImage:
		src, ok := safeURL(attrString(n.Attrs, "src"))
		if !ok {
			return nil
		}
		img := element("img", html.Attribute{Key: "src", Val: src})
		for _, key := range []string{"alt", "title"} {
			if v := attrString(n.Attrs, key); v != "" {
				img.Attr = append(img.Attr, html.Attribute{Key: key, Val: v})
			}
		}
		return []*html.Node{img}
	case TypeCodeBlock:
		code := element("code")
		if lang := attrString(n.Attrs, "language"); lang != "" {
			code.Attr = append(code.Attr, html.Attribute{Key: "class", Val: "language-" + lang})
		}
		code.AppendChild(&html.Node{Type: html.TextNode, Data: PlainText(n)})
		pre := element("pre")
		pre.AppendChild(code)
		return []*html.Node{pre}
	}

	tag := blockTag(n)
	children := make([]*html.Node, 0, len(n.Content))
	for i := range n.Content {
		children = append(children, convert(&n.Content[i])...)
	}
	if tag == "" {
		return children
	}

	el := element(tag)
	if n.Type == TypeOrderedList {
		if start := attrInt(n.Attrs, "start"); start > 1 {
			el.Attr = append(el.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(start)})
		}
	}
	for _, c := range children {
		el.AppendChild(c)
	}
	return []*html.Node{el}
}

// blockTag returns the element for container nodes, or "" to render the
// children inline (the doc root and unknown types).
func blockTag(n *Node) string {
	switch n.Type {
	case TypeParagraph:
		return "p"
	case TypeHeading:
		level := attrInt(n.Attrs, "level")
		if level < 1 || level > 6 {
			level = 2
		}
		return "h" + strconv.Itoa(level)
	case TypeBulletList:
		return "ul"
	case TypeOrderedList:
		return "ol"
	case TypeListItem:
		return "li"
	case TypeBlockquote:
		return "blockquote"
	default:
		return ""
	}
}

func applyMarks(n *html.Node, marks []Mark) *html.Node {
	for _, m := range marks {
		var wrapper *html.Node
		switch m.Type {
		case MarkBold:
			wrapper = element("strong")
		case MarkItalic:
			wrapper = element("em")
		case MarkUnderline:
			wrapper = element("u")
		case MarkStrike:
			wrapper = element("s")
		case MarkCode:
			wrapper = element("code")
		case MarkLink:
			href, ok := safeURL(attrString(m.Attrs, "href"))
			if !ok {
				continue
			}
			wrapper = element("a",
				html.Attribute{Key: "href", Val: href},
				html.Attribute{Key: "rel", Val: "noopener noreferrer"},
			)
			if attrString(m.Attrs, "target") == "_blank" {
				wrapper.Attr = append(wrapper.Attr, html.Attribute{Key: "target", Val: "_blank"})
			}
		default:
			continue
		}
		wrapper.AppendChild(n)
		n = wrapper
	}
	return n
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func safeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return u.String(), true
	default:
		return "", false
	}
}

func attrString(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

// attrInt reads numeric attributes, which arrive as float64 from JSON.
func attrInt(attrs map[string]any, key string) int {
	switch v := attrs[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}
