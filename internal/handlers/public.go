package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/cache"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

const (
	cacheHeader = "X-Cache"
	jsonContent = "application/json; charset=utf-8"
)

// PublicHandler serves the read-only JSON API behind the marketing site.
// Responses are cached per request URI when a page cache is configured.
type PublicHandler struct {
	stores Stores
	cache  *cache.PageCache
	log    infralogger.Logger
}

func NewPublicHandler(stores Stores, pageCache *cache.PageCache, log infralogger.Logger) *PublicHandler {
	if log == nil {
		log = infralogger.NewNop()
	}
	return &PublicHandler{stores: stores, cache: pageCache, log: log}
}

// serve answers from the cache or runs load and caches its JSON encoding.
func (h *PublicHandler) serve(c *gin.Context, group, label string, load func(ctx context.Context) (any, error)) {
	ctx := c.Request.Context()
	key := c.Request.URL.RequestURI()

	if body, ok := h.cache.Get(ctx, group, key); ok {
		c.Header(cacheHeader, "HIT")
		c.Data(http.StatusOK, jsonContent, body)
		return
	}

	result, err := load(ctx)
	if err != nil {
		handleRepositoryError(c, err, label, "fetch")
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		h.log.Error("Failed to encode public response",
			infralogger.String("group", group),
			infralogger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + label})
		return
	}

	h.cache.Set(ctx, group, key, body)
	c.Header(cacheHeader, "MISS")
	c.Data(http.StatusOK, jsonContent, body)
}

// publishedList lists published rows with list-level presentation.
func publishedList[T any](ctx context.Context, store ContentStore[T], opts repository.ListOptions) ([]T, error) {
	opts.PublishedOnly = true
	items, err := store.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	present(items, false)
	return items, nil
}

// publishedBySlug fetches one published row with detail presentation.
func publishedBySlug[T any](ctx context.Context, store ContentStore[T], slug string, opts repository.ListOptions) (*T, error) {
	opts.PublishedOnly = true
	item, err := store.GetBySlug(ctx, slug, opts)
	if err != nil {
		return nil, err
	}
	if p, ok := any(item).(models.Presenter); ok {
		p.Present(true)
	}
	return item, nil
}

func listResponse[T any](key string, items []T) gin.H {
	return gin.H{key: items, "count": len(items)}
}

// ListProducts handles GET /products
func (h *PublicHandler) ListProducts(c *gin.Context) {
	h.serve(c, CacheProducts, "Products", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.Products, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		return listResponse("products", items), nil
	})
}

// GetProduct handles GET /products/:slug
func (h *PublicHandler) GetProduct(c *gin.Context) {
	h.serve(c, CacheProducts, "Product", func(ctx context.Context) (any, error) {
		product, err := publishedBySlug(ctx, h.stores.Products, c.Param("slug"), repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		subs, err := publishedList(ctx, h.stores.SubProducts, repository.ListOptions{ParentID: product.ID})
		if err != nil {
			return nil, err
		}
		return gin.H{"product": product, "sub_products": subs}, nil
	})
}

// GetSubProduct handles GET /products/:slug/:subSlug
func (h *PublicHandler) GetSubProduct(c *gin.Context) {
	h.serve(c, CacheProducts, "Product", func(ctx context.Context) (any, error) {
		product, err := publishedBySlug(ctx, h.stores.Products, c.Param("slug"), repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		sub, err := publishedBySlug(ctx, h.stores.SubProducts, c.Param("subSlug"),
			repository.ListOptions{ParentID: product.ID})
		if err != nil {
			return nil, err
		}
		items, err := h.stores.ProductItems.List(ctx, repository.ListOptions{ParentID: sub.ID})
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.ProductItem{}
		}
		return gin.H{"product": product, "sub_product": sub, "items": items}, nil
	})
}

// ListMarkets handles GET /markets
func (h *PublicHandler) ListMarkets(c *gin.Context) {
	h.serve(c, CacheMarkets, "Markets", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.Markets, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		return listResponse("markets", items), nil
	})
}

// GetMarket handles GET /markets/:slug
func (h *PublicHandler) GetMarket(c *gin.Context) {
	h.serve(c, CacheMarkets, "Market", func(ctx context.Context) (any, error) {
		return publishedBySlug(ctx, h.stores.Markets, c.Param("slug"), repository.ListOptions{})
	})
}

// ListShalePlays handles GET /shale-plays
func (h *PublicHandler) ListShalePlays(c *gin.Context) {
	h.serve(c, CacheShalePlays, "Shale plays", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.ShalePlays, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		return listResponse("shale_plays", items), nil
	})
}

// ListProjects handles GET /projects. Supports ?featured=true, ?market=
// and ?limit=.
func (h *PublicHandler) ListProjects(c *gin.Context) {
	opts := repository.ListOptions{Limit: queryLimit(c)}
	if c.Query("featured") == "true" {
		opts.Filters = map[string]any{"featured": true}
	}
	if market := c.Query("market"); market != "" {
		if opts.Filters == nil {
			opts.Filters = map[string]any{}
		}
		opts.Filters["market"] = market
	}

	h.serve(c, CacheProjects, "Projects", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.Projects, opts)
		if err != nil {
			return nil, err
		}
		return listResponse("projects", items), nil
	})
}

// GetProject handles GET /projects/:slug
func (h *PublicHandler) GetProject(c *gin.Context) {
	h.serve(c, CacheProjects, "Project", func(ctx context.Context) (any, error) {
		project, err := publishedBySlug(ctx, h.stores.Projects, c.Param("slug"), repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		images, err := h.stores.ProjectImages.List(ctx, repository.ListOptions{ParentID: project.ID})
		if err != nil {
			return nil, err
		}
		if images == nil {
			images = []models.ProjectImage{}
		}
		return gin.H{"project": project, "images": images}, nil
	})
}

// ListNews handles GET /news. Supports ?type=news|event and ?limit=.
func (h *PublicHandler) ListNews(c *gin.Context) {
	opts := repository.ListOptions{Limit: queryLimit(c)}
	switch t := c.Query("type"); t {
	case "":
	case models.NewsTypeNews, models.NewsTypeEvent:
		opts.Filters = map[string]any{"type": t}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be news or event"})
		return
	}

	h.serve(c, CacheNews, "News", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.News, opts)
		if err != nil {
			return nil, err
		}
		return listResponse("articles", items), nil
	})
}

// GetNews handles GET /news/:slug
func (h *PublicHandler) GetNews(c *gin.Context) {
	h.serve(c, CacheNews, "News article", func(ctx context.Context) (any, error) {
		return publishedBySlug(ctx, h.stores.News, c.Param("slug"), repository.ListOptions{})
	})
}

// ListCareers handles GET /careers. Expired postings are excluded.
func (h *PublicHandler) ListCareers(c *gin.Context) {
	h.serve(c, CacheCareers, "Job postings", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.Careers, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		return listResponse("jobs", items), nil
	})
}

// GetCareer handles GET /careers/:slug
func (h *PublicHandler) GetCareer(c *gin.Context) {
	h.serve(c, CacheCareers, "Job posting", func(ctx context.Context) (any, error) {
		return publishedBySlug(ctx, h.stores.Careers, c.Param("slug"), repository.ListOptions{})
	})
}

// ListLocations handles GET /locations
func (h *PublicHandler) ListLocations(c *gin.Context) {
	h.serve(c, CacheLocations, "Locations", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.Locations, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		return listResponse("locations", items), nil
	})
}

// ListTeam handles GET /team
func (h *PublicHandler) ListTeam(c *gin.Context) {
	h.serve(c, CacheTeam, "Team", func(ctx context.Context) (any, error) {
		items, err := publishedList(ctx, h.stores.Team, repository.ListOptions{})
		if err != nil {
			return nil, err
		}
		return listResponse("team_members", items), nil
	})
}
