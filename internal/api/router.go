// Package api wires the public API, the admin API and the HTML site onto
// one gin server.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	infragin "github.com/growlocal360/maxx-energy/infrastructure/gin"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/infrastructure/metrics"
	"github.com/growlocal360/maxx-energy/internal/auth"
	"github.com/growlocal360/maxx-energy/internal/cache"
	"github.com/growlocal360/maxx-energy/internal/config"
	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/site"
)

const serviceName = "maxx"

// Dependencies are the collaborators the router mounts.
type Dependencies struct {
	Stores    handlers.Stores
	ItemBulk  handlers.BulkStore[models.ProductItem]
	Stats     handlers.StatsProvider
	PageCache *cache.PageCache
	Notifier  *handlers.Notifier
	JWT       *auth.JWTManager
	Metrics   *metrics.Metrics
	Pages     *site.Pages
	DBPing    func(context.Context) error
	Redis     *redis.Client
}

// Router holds the API dependencies.
type Router struct {
	deps Dependencies
	cfg  *config.Config
	log  infralogger.Logger
}

func NewRouter(deps Dependencies, cfg *config.Config, log infralogger.Logger) *Router {
	return &Router{deps: deps, cfg: cfg, log: log}
}

// NewServer builds the HTTP server with health checks for the database
// and, when enabled, Redis.
func (r *Router) NewServer(version string) *infragin.Server {
	builder := infragin.NewServerBuilder(serviceName, r.cfg.Server.Port).
		WithLogger(r.log).
		WithHost(r.cfg.Server.Host).
		WithDebug(r.cfg.Debug).
		WithVersion(version).
		WithTimeouts(r.cfg.Server.ReadTimeout, r.cfg.Server.WriteTimeout, r.cfg.Server.IdleTimeout).
		WithCORSOrigins(r.cfg.Server.CORSOrigins)

	if r.deps.Metrics != nil {
		builder = builder.WithMiddleware(r.deps.Metrics.Middleware())
	}
	if r.deps.DBPing != nil {
		builder = builder.WithHealthCheck("database",
			infragin.PingChecker("database", infragin.HealthStatusUnhealthy, r.deps.DBPing))
	}
	if r.deps.Redis != nil {
		client := r.deps.Redis
		builder = builder.WithHealthCheck("redis",
			infragin.PingChecker("redis", infragin.HealthStatusDegraded, func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}))
	}

	return builder.WithRoutes(r.SetupRoutes).Build()
}

// SetupRoutes mounts every route on router. Health routes are added by the
// server builder.
func (r *Router) SetupRoutes(router *gin.Engine) {
	if r.deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(r.deps.Metrics.Handler()))
	}
	if r.deps.Pages != nil {
		r.deps.Pages.Register(router)
	}

	v1 := router.Group("/api/v1")
	r.setupPublicRoutes(v1)
	r.setupAdminRoutes(v1.Group("/admin"))
}

func (r *Router) setupPublicRoutes(v1 *gin.RouterGroup) {
	public := handlers.NewPublicHandler(r.deps.Stores, r.deps.PageCache, r.log)
	contact := handlers.NewContactHandler(r.deps.Stores.Contacts, r.deps.Notifier)

	v1.GET("/products", public.ListProducts)
	v1.GET("/products/:slug", public.GetProduct)
	v1.GET("/products/:slug/:subSlug", public.GetSubProduct)
	v1.GET("/markets", public.ListMarkets)
	v1.GET("/markets/:slug", public.GetMarket)
	v1.GET("/shale-plays", public.ListShalePlays)
	v1.GET("/projects", public.ListProjects)
	v1.GET("/projects/:slug", public.GetProject)
	v1.GET("/news", public.ListNews)
	v1.GET("/news/:slug", public.GetNews)
	v1.GET("/careers", public.ListCareers)
	v1.GET("/careers/:slug", public.GetCareer)
	v1.GET("/locations", public.ListLocations)
	v1.GET("/team", public.ListTeam)

	contactLimiter := infragin.NewClientRateLimiter(r.cfg.Contact.RatePerMinute, r.cfg.Contact.Burst)
	v1.POST("/contact", infragin.RateLimitMiddleware(contactLimiter), contact.Submit)
}

// resource is the handler set mounted by mountCRUD.
type resource interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mountCRUD(g gin.IRouter, path, idParam string, res resource) {
	g.GET(path, res.List)
	g.POST(path, res.Create)
	g.GET(path+"/:"+idParam, res.Get)
	g.PUT(path+"/:"+idParam, res.Update)
	g.DELETE(path+"/:"+idParam, res.Delete)
}

func (r *Router) setupAdminRoutes(admin *gin.RouterGroup) {
	authHandler := auth.NewHandler(
		auth.Credentials{Username: r.cfg.Auth.Username, Password: r.cfg.Auth.Password},
		auth.CookieOptions{Name: r.cfg.Auth.CookieName, Secure: r.cfg.Auth.CookieSecure},
		r.deps.JWT,
		r.log,
	)

	// Login and logout are reachable without a session.
	admin.POST("/auth/login", authHandler.Login)
	admin.POST("/auth/logout", authHandler.Logout)

	protected := infragin.ProtectedGroup(admin, "", auth.Middleware(r.deps.JWT, r.cfg.Auth.CookieName))
	protected.GET("/auth/session", authHandler.Session)

	resources := handlers.NewAdmin(r.deps.Stores, r.deps.Notifier)
	mountCRUD(protected, "/products", handlers.ParamID, resources.Products)
	mountCRUD(protected, "/products/:id/sub-products", handlers.ParamSubID, resources.SubProducts)
	mountCRUD(protected, "/products/:id/sub-products/:subId/items", handlers.ParamItemID, resources.ProductItems)
	mountCRUD(protected, "/projects", handlers.ParamID, resources.Projects)
	mountCRUD(protected, "/projects/:id/images", handlers.ParamImageID, resources.ProjectImages)
	mountCRUD(protected, "/markets", handlers.ParamID, resources.Markets)
	mountCRUD(protected, "/shale-plays", handlers.ParamID, resources.ShalePlays)
	mountCRUD(protected, "/news", handlers.ParamID, resources.News)
	mountCRUD(protected, "/careers", handlers.ParamID, resources.Careers)
	mountCRUD(protected, "/locations", handlers.ParamID, resources.Locations)
	mountCRUD(protected, "/team", handlers.ParamID, resources.Team)

	if r.deps.ItemBulk != nil {
		importer := handlers.NewItemImportHandler(r.deps.Stores, r.deps.ItemBulk, r.deps.Notifier)
		protected.POST("/products/:id/sub-products/:subId/items/import", importer.Import)
	}

	protected.GET("/contact", resources.Contacts.List)
	protected.PUT("/contact/:id/read", resources.Contacts.Update)
	protected.DELETE("/contact/:id", resources.Contacts.Delete)

	if r.deps.Stats != nil {
		protected.GET("/stats", handlers.NewStatsHandler(r.deps.Stats).Dashboard)
	}
	protected.POST("/richtext/markdown", handlers.ConvertMarkdown)
}
