package handlers

import (
	"context"

	"github.com/google/uuid"

	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/infrastructure/metrics"
	"github.com/growlocal360/maxx-energy/internal/cache"
	"github.com/growlocal360/maxx-energy/internal/events"
)

// Public cache groups. Each public endpoint caches under exactly one group.
const (
	CacheProducts   = "products"
	CacheProjects   = "projects"
	CacheMarkets    = "markets"
	CacheShalePlays = "shale_plays"
	CacheNews       = "news"
	CacheCareers    = "careers"
	CacheLocations  = "locations"
	CacheTeam       = "team"
)

// cacheGroups maps a table entity to the public groups whose pages embed it.
var cacheGroups = map[string][]string{
	"product":       {CacheProducts},
	"sub_product":   {CacheProducts},
	"product_item":  {CacheProducts},
	"project":       {CacheProjects},
	"project_image": {CacheProjects},
	"market":        {CacheMarkets},
	"shale_play":    {CacheShalePlays},
	"news_article":  {CacheNews},
	"job_posting":   {CacheCareers},
	"location":      {CacheLocations},
	"team_member":   {CacheTeam},
}

// Change describes one completed content write.
type Change struct {
	Type     infraevents.EventType
	Entity   string
	ID       uuid.UUID
	ParentID uuid.UUID
	Slug     string
	Payload  any
}

// Notifier fans a completed write out to metrics, the page cache and the
// content-events stream. Every dependency may be nil.
type Notifier struct {
	publisher *events.Publisher
	cache     *cache.PageCache
	metrics   *metrics.Metrics
	log       infralogger.Logger
}

func NewNotifier(publisher *events.Publisher, pageCache *cache.PageCache, m *metrics.Metrics, log infralogger.Logger) *Notifier {
	if log == nil {
		log = infralogger.NewNop()
	}
	return &Notifier{
		publisher: publisher,
		cache:     pageCache,
		metrics:   m,
		log:       log,
	}
}

// Changed records ch. Cache invalidation runs inline so the next public read
// sees the write; the event is published asynchronously.
func (n *Notifier) Changed(ctx context.Context, ch Change) {
	if n == nil {
		return
	}

	n.metrics.RecordMutation(ch.Entity, operationName(ch.Type))

	if groups := cacheGroups[ch.Entity]; len(groups) > 0 {
		if err := n.cache.Invalidate(ctx, groups...); err != nil {
			n.log.Warn("Failed to invalidate page cache",
				infralogger.String("entity", ch.Entity),
				infralogger.Strings("groups", groups),
				infralogger.Error(err),
			)
		}
	}

	n.publisher.PublishAsync(infraevents.ContentEvent{
		EventType: ch.Type,
		Entity:    ch.Entity,
		EntityID:  ch.ID,
		ParentID:  ch.ParentID,
		Slug:      ch.Slug,
		Payload:   ch.Payload,
	})
}

func operationName(t infraevents.EventType) string {
	switch t {
	case infraevents.ContentCreated:
		return "create"
	case infraevents.ContentUpdated:
		return "update"
	case infraevents.ContentDeleted:
		return "delete"
	case infraevents.ContentImported:
		return "import"
	default:
		return string(t)
	}
}
