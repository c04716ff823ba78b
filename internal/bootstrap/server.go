package bootstrap

import (
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	infragin "github.com/growlocal360/maxx-energy/infrastructure/gin"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/infrastructure/metrics"
	"github.com/growlocal360/maxx-energy/internal/api"
	"github.com/growlocal360/maxx-energy/internal/auth"
	"github.com/growlocal360/maxx-energy/internal/cache"
	"github.com/growlocal360/maxx-energy/internal/config"
	"github.com/growlocal360/maxx-energy/internal/database"
	"github.com/growlocal360/maxx-energy/internal/events"
	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
	"github.com/growlocal360/maxx-energy/internal/site"
)

// NewStores builds one repository per content table.
func NewStores(db *sqlx.DB) (handlers.Stores, *repository.Store[models.ProductItem]) {
	items := repository.NewStore[models.ProductItem](db, repository.ProductItems)
	return handlers.Stores{
		Products:      repository.NewStore[models.Product](db, repository.Products),
		SubProducts:   repository.NewStore[models.SubProduct](db, repository.SubProducts),
		ProductItems:  items,
		Projects:      repository.NewStore[models.Project](db, repository.Projects),
		ProjectImages: repository.NewStore[models.ProjectImage](db, repository.ProjectImages),
		Markets:       repository.NewStore[models.Market](db, repository.Markets),
		ShalePlays:    repository.NewStore[models.ShalePlay](db, repository.ShalePlays),
		News:          repository.NewStore[models.NewsArticle](db, repository.NewsArticles),
		Careers:       repository.NewStore[models.JobPosting](db, repository.JobPostings),
		Locations:     repository.NewStore[models.Location](db, repository.Locations),
		Team:          repository.NewStore[models.TeamMember](db, repository.TeamMembers),
		Contacts:      repository.NewStore[models.ContactSubmission](db, repository.ContactSubmissions),
	}, items
}

// SetupHTTPServer creates and configures the HTTP server.
func SetupHTTPServer(
	cfg *config.Config,
	db *sqlx.DB,
	redisClient *redis.Client,
	publisher *events.Publisher,
	version string,
	log infralogger.Logger,
) (*infragin.Server, error) {
	stores, items := NewStores(db)

	pages, err := site.NewPages(stores, cfg.Site.Name)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	pageCache := cache.New(redisClient, cfg.Redis.CacheTTL, log)

	deps := api.Dependencies{
		Stores:    stores,
		ItemBulk:  items,
		Stats:     repository.NewStatsRepository(db),
		PageCache: pageCache,
		Notifier:  handlers.NewNotifier(publisher, pageCache, m, log),
		JWT:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration),
		Metrics:   m,
		Pages:     pages,
		DBPing:    database.Ping(db),
		Redis:     redisClient,
	}
	return api.NewRouter(deps, cfg, log).NewServer(version), nil
}
