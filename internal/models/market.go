package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

// ShalePlayExcerptLength is the excerpt length used on shale play and
// career cards.
const ShalePlayExcerptLength = 160

type Market struct {
	ID           uuid.UUID      `db:"id"             json:"id"`
	Name         string         `db:"name"           json:"name"`
	Slug         string         `db:"slug"           json:"slug"`
	Description  *richtext.Node `db:"description"    json:"description"`
	IconURL      string         `db:"icon_url"       json:"icon_url"`
	HeroImageURL string         `db:"hero_image_url" json:"hero_image_url"`
	DisplayOrder int            `db:"display_order"  json:"display_order"`
	Published    bool           `db:"published"      json:"published"`
	CreatedAt    time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"     json:"updated_at"`

	Excerpt string `db:"-" json:"excerpt,omitempty"`
	HTML    string `db:"-" json:"html,omitempty"`
}

func (m Market) EntityID() uuid.UUID { return m.ID }

func (m Market) EntitySlug() string { return m.Slug }

func (m *Market) Present(detail bool) {
	m.Excerpt = richtext.Excerpt(m.Description, richtext.DefaultExcerptLength)
	if detail {
		m.HTML = richtext.RenderHTML(m.Description)
	}
}

type MarketCreateRequest struct {
	Name         string          `binding:"required,max=255"  db:"name"           json:"name"`
	Slug         string          `binding:"omitempty,max=255" db:"slug"           json:"slug"`
	Description  json.RawMessage `db:"description"            json:"description"`
	IconURL      string          `binding:"max=2048"          db:"icon_url"       json:"icon_url"`
	HeroImageURL string          `binding:"max=2048"          db:"hero_image_url" json:"hero_image_url"`
	DisplayOrder int             `binding:"min=0"             db:"display_order"  json:"display_order"`
	Published    bool            `db:"published"              json:"published"`
}

func (r *MarketCreateRequest) Validate() error { return nil }

func (r *MarketCreateRequest) Values() (map[string]any, error) {
	return createValues(r, r.Name)
}

type MarketUpdateRequest struct {
	Name         *string         `binding:"omitempty,min=1,max=255" db:"name"           json:"name"`
	Slug         *string         `binding:"omitempty,max=255"       db:"slug"           json:"slug"`
	Description  json.RawMessage `db:"description"                  json:"description"`
	IconURL      *string         `binding:"omitempty,max=2048"      db:"icon_url"       json:"icon_url"`
	HeroImageURL *string         `binding:"omitempty,max=2048"      db:"hero_image_url" json:"hero_image_url"`
	DisplayOrder *int            `binding:"omitempty,min=0"         db:"display_order"  json:"display_order"`
	Published    *bool           `db:"published"                    json:"published"`
}

func (r *MarketUpdateRequest) Validate() error { return nil }

func (r *MarketUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}

// ShalePlay is an operating basin shown on the map page.
type ShalePlay struct {
	ID           uuid.UUID      `db:"id"             json:"id"`
	Name         string         `db:"name"           json:"name"`
	Slug         string         `db:"slug"           json:"slug"`
	Description  *richtext.Node `db:"description"    json:"description"`
	Region       string         `db:"region"         json:"region"`
	HeroImageURL string         `db:"hero_image_url" json:"hero_image_url"`
	Lat          *float64       `db:"lat"            json:"lat"`
	Lng          *float64       `db:"lng"            json:"lng"`
	DisplayOrder int            `db:"display_order"  json:"display_order"`
	Published    bool           `db:"published"      json:"published"`
	CreatedAt    time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"     json:"updated_at"`

	Excerpt string `db:"-" json:"excerpt,omitempty"`
	HTML    string `db:"-" json:"html,omitempty"`
}

func (s ShalePlay) EntityID() uuid.UUID { return s.ID }

func (s ShalePlay) EntitySlug() string { return s.Slug }

func (s *ShalePlay) Present(detail bool) {
	s.Excerpt = richtext.Excerpt(s.Description, ShalePlayExcerptLength)
	if detail {
		s.HTML = richtext.RenderHTML(s.Description)
	}
}

type ShalePlayCreateRequest struct {
	Name         string          `binding:"required,max=255"        db:"name"           json:"name"`
	Slug         string          `binding:"omitempty,max=255"       db:"slug"           json:"slug"`
	Description  json.RawMessage `db:"description"                  json:"description"`
	Region       string          `binding:"max=255"                 db:"region"         json:"region"`
	HeroImageURL string          `binding:"max=2048"                db:"hero_image_url" json:"hero_image_url"`
	Lat          *float64        `binding:"omitempty,min=-90,max=90"   db:"lat"         json:"lat"`
	Lng          *float64        `binding:"omitempty,min=-180,max=180" db:"lng"         json:"lng"`
	DisplayOrder int             `binding:"min=0"                   db:"display_order"  json:"display_order"`
	Published    bool            `db:"published"                    json:"published"`
}

func (r *ShalePlayCreateRequest) Validate() error { return validateCoordinates(r.Lat, r.Lng) }

func (r *ShalePlayCreateRequest) Values() (map[string]any, error) {
	return createValues(r, r.Name)
}

type ShalePlayUpdateRequest struct {
	Name         *string         `binding:"omitempty,min=1,max=255"    db:"name"           json:"name"`
	Slug         *string         `binding:"omitempty,max=255"          db:"slug"           json:"slug"`
	Description  json.RawMessage `db:"description"                     json:"description"`
	Region       *string         `binding:"omitempty,max=255"          db:"region"         json:"region"`
	HeroImageURL *string         `binding:"omitempty,max=2048"         db:"hero_image_url" json:"hero_image_url"`
	Lat          *float64        `binding:"omitempty,min=-90,max=90"   db:"lat"            json:"lat"`
	Lng          *float64        `binding:"omitempty,min=-180,max=180" db:"lng"            json:"lng"`
	DisplayOrder *int            `binding:"omitempty,min=0"            db:"display_order"  json:"display_order"`
	Published    *bool           `db:"published"                       json:"published"`
}

func (r *ShalePlayUpdateRequest) Validate() error { return validateCoordinates(r.Lat, r.Lng) }

func (r *ShalePlayUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
