// Package site renders the public marketing pages from the same stores the
// JSON API reads.
package site

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
	"github.com/growlocal360/maxx-energy/internal/richtext"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	homeFeaturedProjects = 3
	homeLatestNews       = 3
	dateLayout           = "January 2, 2006"
)

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"render": func(doc *richtext.Node) template.HTML {
			return template.HTML(richtext.RenderHTML(doc)) //nolint:gosec // G203: RenderHTML escapes every text node
		},
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(dateLayout)
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Pages serves the HTML site.
type Pages struct {
	stores   handlers.Stores
	siteName string
	tmpl     *template.Template
}

// NewPages parses the templates up front so a broken template fails start-up.
func NewPages(stores handlers.Stores, siteName string) (*Pages, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	return &Pages{stores: stores, siteName: siteName, tmpl: tmpl}, nil
}

// Register installs the templates on router and mounts every page.
func (p *Pages) Register(router *gin.Engine) {
	router.SetHTMLTemplate(p.tmpl)

	router.GET("/", p.Home)
	router.GET("/products", p.Products)
	router.GET("/projects", p.Projects)
	router.GET("/markets", p.Markets)
	router.GET("/shale-plays", p.ShalePlays)
	router.GET("/news", p.News)
	router.GET("/news/:slug", p.NewsArticle)
	router.GET("/careers", p.Careers)
	router.GET("/careers/:slug", p.Career)
}

func (p *Pages) render(c *gin.Context, page, title string, data gin.H) {
	data["Site"] = p.siteName
	data["Title"] = title
	c.HTML(http.StatusOK, page, data)
}

func (p *Pages) fail(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Site":    p.siteName,
			"Title":   "Page not found",
			"Message": "The page you are looking for does not exist.",
		})
		return
	}

	infralogger.FromContext(c.Request.Context()).Error("Failed to render page",
		infralogger.String("path", c.Request.URL.Path),
		infralogger.Error(err),
	)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Site":    p.siteName,
		"Title":   "Something went wrong",
		"Message": "Please try again later.",
	})
}

func published[T any](ctx context.Context, store handlers.ContentStore[T], opts repository.ListOptions) ([]T, error) {
	opts.PublishedOnly = true
	items, err := store.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if pr, ok := any(&items[i]).(models.Presenter); ok {
			pr.Present(false)
		}
	}
	return items, nil
}

// Home handles GET /
func (p *Pages) Home(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := published(ctx, p.stores.Projects, repository.ListOptions{
		Filters: map[string]any{"featured": true},
		Limit:   homeFeaturedProjects,
	})
	if err != nil {
		p.fail(c, err)
		return
	}
	news, err := published(ctx, p.stores.News, repository.ListOptions{Limit: homeLatestNews})
	if err != nil {
		p.fail(c, err)
		return
	}
	markets, err := published(ctx, p.stores.Markets, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}

	p.render(c, "home.html", p.siteName, gin.H{
		"Projects": projects,
		"News":     news,
		"Markets":  markets,
	})
}

// Products handles GET /products
func (p *Pages) Products(c *gin.Context) {
	products, err := published(c.Request.Context(), p.stores.Products, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "products.html", "Products", gin.H{"Products": products})
}

// Projects handles GET /projects
func (p *Pages) Projects(c *gin.Context) {
	projects, err := published(c.Request.Context(), p.stores.Projects, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "projects.html", "Projects", gin.H{"Projects": projects})
}

// Markets handles GET /markets
func (p *Pages) Markets(c *gin.Context) {
	markets, err := published(c.Request.Context(), p.stores.Markets, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "markets.html", "Markets", gin.H{"Markets": markets})
}

// ShalePlays handles GET /shale-plays
func (p *Pages) ShalePlays(c *gin.Context) {
	plays, err := published(c.Request.Context(), p.stores.ShalePlays, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "shale_plays.html", "Shale Plays", gin.H{"ShalePlays": plays})
}

// News handles GET /news
func (p *Pages) News(c *gin.Context) {
	articles, err := published(c.Request.Context(), p.stores.News, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "news.html", "News & Events", gin.H{"Articles": articles})
}

// NewsArticle handles GET /news/:slug
func (p *Pages) NewsArticle(c *gin.Context) {
	article, err := p.stores.News.GetBySlug(c.Request.Context(), c.Param("slug"),
		repository.ListOptions{PublishedOnly: true})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "article.html", article.Title, gin.H{"Article": article})
}

// Careers handles GET /careers
func (p *Pages) Careers(c *gin.Context) {
	jobs, err := published(c.Request.Context(), p.stores.Careers, repository.ListOptions{})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "careers.html", "Careers", gin.H{"Jobs": jobs})
}

// Career handles GET /careers/:slug
func (p *Pages) Career(c *gin.Context) {
	job, err := p.stores.Careers.GetBySlug(c.Request.Context(), c.Param("slug"),
		repository.ListOptions{PublishedOnly: true})
	if err != nil {
		p.fail(c, err)
		return
	}
	p.render(c, "career.html", job.Title, gin.H{"Job": job})
}
