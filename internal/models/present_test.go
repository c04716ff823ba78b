package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/richtext"
)

func TestPresent_DerivesExcerpt(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 60)
	m := &models.Market{Description: richtext.FromPlainText(long)}
	m.Present(false)

	assert.True(t, strings.HasSuffix(m.Excerpt, richtext.Ellipsis))
	assert.LessOrEqual(t, len([]rune(m.Excerpt)), richtext.DefaultExcerptLength+len(richtext.Ellipsis))
	assert.Empty(t, m.HTML)
}

func TestPresent_DetailRendersHTML(t *testing.T) {
	t.Parallel()

	p := &models.Product{Description: richtext.FromPlainText("Short")}
	p.Present(true)

	assert.Equal(t, "Short", p.Excerpt)
	assert.Equal(t, "<p>Short</p>", p.HTML)
}

func TestPresent_ExplicitExcerptWins(t *testing.T) {
	t.Parallel()

	n := &models.NewsArticle{
		Excerpt: "Editor summary",
		Content: richtext.FromPlainText("Body text that is different"),
	}
	n.Present(false)
	assert.Equal(t, "Editor summary", n.Excerpt)

	pr := &models.Project{Description: richtext.FromPlainText("Derived")}
	pr.Present(false)
	assert.Equal(t, "Derived", pr.Excerpt)
}

func TestPresent_NilDocument(t *testing.T) {
	t.Parallel()

	s := &models.ShalePlay{}
	s.Present(true)
	assert.Empty(t, s.Excerpt)
	assert.Empty(t, s.HTML)
}

func TestJobPosting_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	j := &models.JobPosting{}
	assert.False(t, j.Expired(now))

	past := now.Add(-time.Minute)
	j.ExpiresAt = &past
	assert.True(t, j.Expired(now))

	j.Present(false)
	assert.Empty(t, j.Excerpt)
}
