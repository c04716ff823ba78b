package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

// News article types.
const (
	NewsTypeNews  = "news"
	NewsTypeEvent = "event"
)

// NewsArticle is a news post or an event announcement.
type NewsArticle struct {
	ID            uuid.UUID      `db:"id"             json:"id"`
	Title         string         `db:"title"          json:"title"`
	Slug          string         `db:"slug"           json:"slug"`
	Type          string         `db:"type"           json:"type"`
	Excerpt       string         `db:"excerpt"        json:"excerpt"`
	Content       *richtext.Node `db:"content"        json:"content"`
	FeaturedImage string         `db:"featured_image" json:"featured_image"`
	EventDate     *time.Time     `db:"event_date"     json:"event_date"`
	EventLocation string         `db:"event_location" json:"event_location"`
	Published     bool           `db:"published"      json:"published"`
	PublishedAt   *time.Time     `db:"published_at"   json:"published_at"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"     json:"updated_at"`

	HTML string `db:"-" json:"html,omitempty"`
}

func (n NewsArticle) EntityID() uuid.UUID { return n.ID }

func (n NewsArticle) EntitySlug() string { return n.Slug }

func (n *NewsArticle) Present(detail bool) {
	n.Excerpt = summary(n.Excerpt, n.Content, richtext.DefaultExcerptLength)
	if detail {
		n.HTML = richtext.RenderHTML(n.Content)
	}
}

type NewsArticleCreateRequest struct {
	Title         string          `binding:"required,max=255"           db:"title"          json:"title"`
	Slug          string          `binding:"omitempty,max=255"          db:"slug"           json:"slug"`
	Type          string          `binding:"omitempty,oneof=news event" db:"type"           json:"type"`
	Excerpt       string          `binding:"max=500"                    db:"excerpt"        json:"excerpt"`
	Content       json.RawMessage `db:"content"                         json:"content"`
	FeaturedImage string          `binding:"max=2048"                   db:"featured_image" json:"featured_image"`
	EventDate     *time.Time      `db:"event_date"                      json:"event_date"`
	EventLocation string          `binding:"max=255"                    db:"event_location" json:"event_location"`
	Published     bool            `db:"published"                       json:"published"`
	PublishedAt   *time.Time      `db:"published_at"                    json:"published_at"`
}

func (r *NewsArticleCreateRequest) Validate() error {
	if r.Type == "" {
		r.Type = NewsTypeNews
	}
	if r.Type == NewsTypeEvent && r.EventDate == nil {
		return &ValidationError{Field: "event_date", Message: "required for events"}
	}
	return nil
}

func (r *NewsArticleCreateRequest) Values() (map[string]any, error) {
	return createValues(r, r.Title)
}

type NewsArticleUpdateRequest struct {
	Title         *string         `binding:"omitempty,min=1,max=255"    db:"title"          json:"title"`
	Slug          *string         `binding:"omitempty,max=255"          db:"slug"           json:"slug"`
	Type          *string         `binding:"omitempty,oneof=news event" db:"type"           json:"type"`
	Excerpt       *string         `binding:"omitempty,max=500"          db:"excerpt"        json:"excerpt"`
	Content       json.RawMessage `db:"content"                         json:"content"`
	FeaturedImage *string         `binding:"omitempty,max=2048"         db:"featured_image" json:"featured_image"`
	EventDate     *time.Time      `db:"event_date"                      json:"event_date"`
	EventLocation *string         `binding:"omitempty,max=255"          db:"event_location" json:"event_location"`
	Published     *bool           `db:"published"                       json:"published"`
	PublishedAt   *time.Time      `db:"published_at"                    json:"published_at"`
}

func (r *NewsArticleUpdateRequest) Validate() error { return nil }

func (r *NewsArticleUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
