package site_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
	"github.com/growlocal360/maxx-energy/internal/richtext"
	"github.com/growlocal360/maxx-energy/internal/site"
)

// fakeStore serves fixed rows. Only the read methods are used by the site.
type fakeStore[T any] struct {
	items  []T
	bySlug map[string]*T
	err    error
	opts   []repository.ListOptions
}

func (f *fakeStore[T]) List(_ context.Context, opts repository.ListOptions) ([]T, error) {
	f.opts = append(f.opts, opts)
	return f.items, f.err
}

func (f *fakeStore[T]) Get(context.Context, uuid.UUID, repository.Scope) (*T, error) {
	return nil, models.ErrNotFound
}

func (f *fakeStore[T]) GetBySlug(_ context.Context, slug string, _ repository.ListOptions) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	if item, ok := f.bySlug[slug]; ok {
		return item, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore[T]) Create(context.Context, repository.Scope, map[string]any) (*T, error) {
	panic("not used")
}

func (f *fakeStore[T]) Update(context.Context, uuid.UUID, repository.Scope, map[string]any) (*T, error) {
	panic("not used")
}

func (f *fakeStore[T]) Delete(context.Context, uuid.UUID, repository.Scope) error {
	panic("not used")
}

func paragraph(text string) *richtext.Node {
	return &richtext.Node{Type: richtext.TypeDoc, Content: []richtext.Node{{
		Type:    richtext.TypeParagraph,
		Content: []richtext.Node{{Type: richtext.TypeText, Text: text}},
	}}}
}

type fixture struct {
	projects *fakeStore[models.Project]
	news     *fakeStore[models.NewsArticle]
	markets  *fakeStore[models.Market]
	careers  *fakeStore[models.JobPosting]
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	published := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		projects: &fakeStore[models.Project]{items: []models.Project{
			{Title: "Permian Frac Program", Excerpt: "Twelve-well pad completed ahead of schedule."},
		}},
		news: &fakeStore[models.NewsArticle]{
			items: []models.NewsArticle{
				{Title: "New Midland Yard", Slug: "new-midland-yard", Type: models.NewsTypeNews,
					Content: paragraph("Our new yard opens in Midland."), PublishedAt: &published},
			},
			bySlug: map[string]*models.NewsArticle{
				"new-midland-yard": {Title: "New Midland Yard", Slug: "new-midland-yard",
					Content: paragraph(`Opening <soon> & staffed`), PublishedAt: &published},
			},
		},
		markets: &fakeStore[models.Market]{items: []models.Market{
			{Name: "Oil & Gas", Description: paragraph("Upstream operators.")},
		}},
		careers: &fakeStore[models.JobPosting]{},
	}

	pages, err := site.NewPages(handlers.Stores{
		Projects: f.projects,
		News:     f.news,
		Markets:  f.markets,
		Careers:  f.careers,
		Products: &fakeStore[models.Product]{},
	}, "MAXX Energy Services")
	require.NoError(t, err)

	f.router = gin.New()
	pages.Register(f.router)
	return f
}

func get(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := site.Templates()
	require.NoError(t, err)

	for _, name := range []string{"home.html", "products.html", "projects.html", "markets.html",
		"shale_plays.html", "news.html", "article.html", "careers.html", "career.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestHome(t *testing.T) {
	f := newFixture(t)

	w, doc := get(t, f.router, "/")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "MAXX Energy Services", doc.Find("title").Text())
	assert.Equal(t, "Permian Frac Program", doc.Find(".featured-projects h3").Text())
	assert.Equal(t, "Upstream operators.", doc.Find(".market-card .excerpt").Text())
	assert.Equal(t, "/news/new-midland-yard", doc.Find(".news-card a").AttrOr("href", ""))

	require.Len(t, f.projects.opts, 1)
	assert.Equal(t, repository.ListOptions{
		PublishedOnly: true,
		Filters:       map[string]any{"featured": true},
		Limit:         3,
	}, f.projects.opts[0])
}

func TestNewsArticle_RendersEscapedDocument(t *testing.T) {
	f := newFixture(t)

	w, doc := get(t, f.router, "/news/new-midland-yard")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "New Midland Yard | MAXX Energy Services", doc.Find("title").Text())
	assert.Equal(t, "March 14, 2025", doc.Find(".news-article .meta").Text())
	assert.Equal(t, "Opening <soon> & staffed", doc.Find(".content p").Text())
	assert.Contains(t, w.Body.String(), "Opening &lt;soon&gt; &amp; staffed")
}

func TestNewsArticle_NotFound(t *testing.T) {
	f := newFixture(t)

	w, doc := get(t, f.router, "/news/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Page not found", doc.Find(".error h1").Text())
}

func TestCareers_Empty(t *testing.T) {
	f := newFixture(t)

	w, doc := get(t, f.router, "/careers")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "There are no open positions right now.", doc.Find(".empty").Text())
}

func TestStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.markets.err = assert.AnError

	w, doc := get(t, f.router, "/markets")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong", doc.Find(".error h1").Text())
}
