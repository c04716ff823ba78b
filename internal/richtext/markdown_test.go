package richtext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	text := func(s string, marks ...richtext.Mark) richtext.Node {
		n := richtext.Node{Type: richtext.TypeText, Text: s}
		if len(marks) > 0 {
			n.Marks = marks
		}
		return n
	}

	tests := []struct {
		name string
		src  string
		want *richtext.Node
	}{
		{name: "blank", src: "  \n", want: nil},
		{
			name: "heading and paragraph",
			src:  "# Services\n\nWe move **sand**.",
			want: doc(
				richtext.Node{Type: richtext.TypeHeading, Attrs: map[string]any{"level": 1}, Content: []richtext.Node{text("Services")}},
				richtext.Node{Type: richtext.TypeParagraph, Content: []richtext.Node{
					text("We move "), text("sand", richtext.Mark{Type: richtext.MarkBold}), text("."),
				}},
			),
		},
		{
			name: "tight bullet list",
			src:  "- one\n- two\n",
			want: doc(richtext.Node{Type: richtext.TypeBulletList, Content: []richtext.Node{
				{Type: richtext.TypeListItem, Content: []richtext.Node{para("one")}},
				{Type: richtext.TypeListItem, Content: []richtext.Node{para("two")}},
			}}),
		},
		{
			name: "link and strike",
			src:  "[MAXX](https://maxx.example) ~~old~~",
			want: doc(richtext.Node{Type: richtext.TypeParagraph, Content: []richtext.Node{
				text("MAXX", richtext.Mark{Type: richtext.MarkLink, Attrs: map[string]any{"href": "https://maxx.example"}}),
				text(" "),
				text("old", richtext.Mark{Type: richtext.MarkStrike}),
			}}),
		},
		{
			name: "fenced code",
			src:  "```sql\nSELECT 1;\n```\n",
			want: doc(richtext.Node{Type: richtext.TypeCodeBlock, Attrs: map[string]any{"language": "sql"},
				Content: []richtext.Node{text("SELECT 1;")}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := richtext.FromMarkdown([]byte(tt.src))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromMarkdown() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMarkdown_ExcerptMatchesPlainText(t *testing.T) {
	t.Parallel()

	d := richtext.FromMarkdown([]byte("Line one\nline two"))
	if got := richtext.Excerpt(d, 120); got != "Line one line two" {
		t.Errorf("Excerpt() = %q, want %q", got, "Line one line two")
	}
}
