package richtext_test

import (
	"testing"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	link := func(href string) []richtext.Mark {
		return []richtext.Mark{{Type: richtext.MarkLink, Attrs: map[string]any{"href": href}}}
	}

	tests := []struct {
		name string
		doc  *richtext.Node
		want string
	}{
		{name: "nil", doc: nil, want: ""},
		{name: "paragraph", doc: doc(para("Hello")), want: "<p>Hello</p>"},
		{name: "text is escaped", doc: doc(para(`<script>alert("x")</script>`)), want: "<p>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>"},
		{
			name: "heading level from json number",
			doc: doc(richtext.Node{Type: richtext.TypeHeading, Attrs: map[string]any{"level": float64(3)},
				Content: []richtext.Node{{Type: richtext.TypeText, Text: "Title"}}}),
			want: "<h3>Title</h3>",
		},
		{
			name: "marks nest in order",
			doc: doc(richtext.Node{Type: richtext.TypeParagraph, Content: []richtext.Node{{
				Type: richtext.TypeText, Text: "bold italic",
				Marks: []richtext.Mark{{Type: richtext.MarkBold}, {Type: richtext.MarkItalic}},
			}}}),
			want: "<p><em><strong>bold italic</strong></em></p>",
		},
		{
			name: "safe link",
			doc:  doc(richtext.Node{Type: richtext.TypeParagraph, Content: []richtext.Node{{Type: richtext.TypeText, Text: "site", Marks: link("https://maxx.example/")}}}),
			want: `<p><a href="https://maxx.example/" rel="noopener noreferrer">site</a></p>`,
		},
		{
			name: "javascript link dropped",
			doc:  doc(richtext.Node{Type: richtext.TypeParagraph, Content: []richtext.Node{{Type: richtext.TypeText, Text: "click", Marks: link("javascript:alert(1)")}}}),
			want: "<p>click</p>",
		},
		{
			name: "lists and breaks",
			doc: doc(
				richtext.Node{Type: richtext.TypeOrderedList, Attrs: map[string]any{"start": float64(3)}, Content: []richtext.Node{
					{Type: richtext.TypeListItem, Content: []richtext.Node{para("one")}},
				}},
				richtext.Node{Type: richtext.TypeHorizontalRule},
				richtext.Node{Type: richtext.TypeParagraph, Content: []richtext.Node{
					{Type: richtext.TypeText, Text: "a"}, {Type: richtext.TypeHardBreak}, {Type: richtext.TypeText, Text: "b"},
				}},
			),
			want: `<ol start="3"><li><p>one</p></li></ol><hr/><p>a<br/>b</p>`,
		},
		{
			name: "code block",
			doc: doc(richtext.Node{Type: richtext.TypeCodeBlock, Attrs: map[string]any{"language": "go"},
				Content: []richtext.Node{{Type: richtext.TypeText, Text: "x := 1 < 2"}}}),
			want: `<pre><code class="language-go">x := 1 &lt; 2</code></pre>`,
		},
		{
			name: "image with alt",
			doc:  doc(richtext.Node{Type: richtext.TypeImage, Attrs: map[string]any{"src": "/img/rig.jpg", "alt": "Rig"}}),
			want: `<img src="/img/rig.jpg" alt="Rig"/>`,
		},
		{
			name: "unknown node renders children",
			doc:  doc(richtext.Node{Type: "callout", Content: []richtext.Node{para("inside")}}),
			want: "<p>inside</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := richtext.RenderHTML(tt.doc); got != tt.want {
				t.Errorf("RenderHTML() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
