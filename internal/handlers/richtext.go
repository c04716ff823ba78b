package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

type MarkdownRequest struct {
	Markdown string `binding:"required,max=100000" json:"markdown"`
}

type MarkdownResponse struct {
	Document *richtext.Node `json:"document"`
	HTML     string         `json:"html"`
	Excerpt  string         `json:"excerpt"`
}

// ConvertMarkdown handles POST /richtext/markdown, turning pasted markdown
// into an editor document.
func ConvertMarkdown(c *gin.Context) {
	var req MarkdownRequest
	if !bindJSON(c, &req) {
		return
	}

	doc := richtext.FromMarkdown([]byte(req.Markdown))
	c.JSON(http.StatusOK, MarkdownResponse{
		Document: doc,
		HTML:     richtext.RenderHTML(doc),
		Excerpt:  richtext.Excerpt(doc, richtext.DefaultExcerptLength),
	})
}
