package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

// Project is a portfolio case study. Excerpt is stored when the editor
// wrote one and derived from Description otherwise.
type Project struct {
	ID            uuid.UUID      `db:"id"             json:"id"`
	Title         string         `db:"title"          json:"title"`
	Slug          string         `db:"slug"           json:"slug"`
	Client        string         `db:"client"         json:"client"`
	Location      string         `db:"location"       json:"location"`
	Description   *richtext.Node `db:"description"    json:"description"`
	Excerpt       string         `db:"excerpt"        json:"excerpt"`
	FeaturedImage string         `db:"featured_image" json:"featured_image"`
	ProductsUsed  pq.StringArray `db:"products_used"  json:"products_used"`
	Market        string         `db:"market"         json:"market"`
	Featured      bool           `db:"featured"       json:"featured"`
	Published     bool           `db:"published"      json:"published"`
	PublishedAt   *time.Time     `db:"published_at"   json:"published_at"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"     json:"updated_at"`

	HTML string `db:"-" json:"html,omitempty"`
}

func (p Project) EntityID() uuid.UUID { return p.ID }

func (p Project) EntitySlug() string { return p.Slug }

func (p *Project) Present(detail bool) {
	p.Excerpt = summary(p.Excerpt, p.Description, richtext.DefaultExcerptLength)
	if detail {
		p.HTML = richtext.RenderHTML(p.Description)
	}
}

type ProjectCreateRequest struct {
	Title         string          `binding:"required,max=255"  db:"title"          json:"title"`
	Slug          string          `binding:"omitempty,max=255" db:"slug"           json:"slug"`
	Client        string          `binding:"max=255"           db:"client"         json:"client"`
	Location      string          `binding:"max=255"           db:"location"       json:"location"`
	Description   json.RawMessage `db:"description"            json:"description"`
	Excerpt       string          `binding:"max=500"           db:"excerpt"        json:"excerpt"`
	FeaturedImage string          `binding:"max=2048"          db:"featured_image" json:"featured_image"`
	ProductsUsed  []string        `binding:"dive,max=255"      db:"products_used"  json:"products_used"`
	Market        string          `binding:"max=255"           db:"market"         json:"market"`
	Featured      bool            `db:"featured"               json:"featured"`
	Published     bool            `db:"published"              json:"published"`
	PublishedAt   *time.Time      `db:"published_at"           json:"published_at"`
}

func (r *ProjectCreateRequest) Validate() error { return nil }

func (r *ProjectCreateRequest) Values() (map[string]any, error) {
	if r.ProductsUsed == nil {
		r.ProductsUsed = []string{}
	}
	return createValues(r, r.Title)
}

type ProjectUpdateRequest struct {
	Title         *string         `binding:"omitempty,min=1,max=255" db:"title"          json:"title"`
	Slug          *string         `binding:"omitempty,max=255"       db:"slug"           json:"slug"`
	Client        *string         `binding:"omitempty,max=255"       db:"client"         json:"client"`
	Location      *string         `binding:"omitempty,max=255"       db:"location"       json:"location"`
	Description   json.RawMessage `db:"description"                  json:"description"`
	Excerpt       *string         `binding:"omitempty,max=500"       db:"excerpt"        json:"excerpt"`
	FeaturedImage *string         `binding:"omitempty,max=2048"      db:"featured_image" json:"featured_image"`
	ProductsUsed  *[]string       `binding:"omitempty,dive,max=255"  db:"products_used"  json:"products_used"`
	Market        *string         `binding:"omitempty,max=255"       db:"market"         json:"market"`
	Featured      *bool           `db:"featured"                     json:"featured"`
	Published     *bool           `db:"published"                    json:"published"`
	PublishedAt   *time.Time      `db:"published_at"                 json:"published_at"`
}

func (r *ProjectUpdateRequest) Validate() error { return nil }

func (r *ProjectUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}

// ProjectImage is a gallery image attached to a project.
type ProjectImage struct {
	ID           uuid.UUID `db:"id"            json:"id"`
	ProjectID    uuid.UUID `db:"project_id"    json:"project_id"`
	ImageURL     string    `db:"image_url"     json:"image_url"`
	Caption      string    `db:"caption"       json:"caption"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

func (i ProjectImage) EntityID() uuid.UUID { return i.ID }

type ProjectImageCreateRequest struct {
	ImageURL     string `binding:"required,max=2048" db:"image_url"     json:"image_url"`
	Caption      string `binding:"max=500"           db:"caption"       json:"caption"`
	DisplayOrder int    `binding:"min=0"             db:"display_order" json:"display_order"`
}

func (r *ProjectImageCreateRequest) Validate() error { return nil }

func (r *ProjectImageCreateRequest) Values() (map[string]any, error) {
	return columnValues(r)
}

type ProjectImageUpdateRequest struct {
	ImageURL     *string `binding:"omitempty,min=1,max=2048" db:"image_url"     json:"image_url"`
	Caption      *string `binding:"omitempty,max=500"        db:"caption"       json:"caption"`
	DisplayOrder *int    `binding:"omitempty,min=0"          db:"display_order" json:"display_order"`
}

func (r *ProjectImageUpdateRequest) Validate() error { return nil }

func (r *ProjectImageUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
