package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/growlocal360/maxx-energy/internal/richtext"
)

// Product is a top-level service line, e.g. "Frac Sand".
type Product struct {
	ID           uuid.UUID      `db:"id"             json:"id"`
	Name         string         `db:"name"           json:"name"`
	Slug         string         `db:"slug"           json:"slug"`
	Tagline      string         `db:"tagline"        json:"tagline"`
	Description  *richtext.Node `db:"description"    json:"description"`
	Icon         string         `db:"icon"           json:"icon"`
	HeroImageURL string         `db:"hero_image_url" json:"hero_image_url"`
	DisplayOrder int            `db:"display_order"  json:"display_order"`
	Published    bool           `db:"published"      json:"published"`
	CreatedAt    time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"     json:"updated_at"`

	Excerpt string `db:"-" json:"excerpt,omitempty"`
	HTML    string `db:"-" json:"html,omitempty"`
}

func (p Product) EntityID() uuid.UUID { return p.ID }

func (p Product) EntitySlug() string { return p.Slug }

func (p *Product) Present(detail bool) {
	p.Excerpt = richtext.Excerpt(p.Description, richtext.DefaultExcerptLength)
	if detail {
		p.HTML = richtext.RenderHTML(p.Description)
	}
}

type ProductCreateRequest struct {
	Name         string          `binding:"required,max=255"  db:"name"           json:"name"`
	Slug         string          `binding:"omitempty,max=255" db:"slug"           json:"slug"`
	Tagline      string          `binding:"max=500"           db:"tagline"        json:"tagline"`
	Description  json.RawMessage `db:"description"            json:"description"`
	Icon         string          `binding:"max=255"           db:"icon"           json:"icon"`
	HeroImageURL string          `binding:"max=2048"          db:"hero_image_url" json:"hero_image_url"`
	DisplayOrder int             `binding:"min=0"             db:"display_order"  json:"display_order"`
	Published    bool            `db:"published"              json:"published"`
}

func (r *ProductCreateRequest) Validate() error { return nil }

func (r *ProductCreateRequest) Values() (map[string]any, error) {
	return createValues(r, r.Name)
}

type ProductUpdateRequest struct {
	Name         *string         `binding:"omitempty,min=1,max=255" db:"name"           json:"name"`
	Slug         *string         `binding:"omitempty,max=255"       db:"slug"           json:"slug"`
	Tagline      *string         `binding:"omitempty,max=500"       db:"tagline"        json:"tagline"`
	Description  json.RawMessage `db:"description"                  json:"description"`
	Icon         *string         `binding:"omitempty,max=255"       db:"icon"           json:"icon"`
	HeroImageURL *string         `binding:"omitempty,max=2048"      db:"hero_image_url" json:"hero_image_url"`
	DisplayOrder *int            `binding:"omitempty,min=0"         db:"display_order"  json:"display_order"`
	Published    *bool           `db:"published"                    json:"published"`
}

func (r *ProductUpdateRequest) Validate() error { return nil }

func (r *ProductUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}

// SubProduct belongs to a Product; its slug is unique within the product.
type SubProduct struct {
	ID           uuid.UUID      `db:"id"            json:"id"`
	ProductID    uuid.UUID      `db:"product_id"    json:"product_id"`
	Name         string         `db:"name"          json:"name"`
	Slug         string         `db:"slug"          json:"slug"`
	Description  *richtext.Node `db:"description"   json:"description"`
	Icon         string         `db:"icon"          json:"icon"`
	ImageURL     string         `db:"image_url"     json:"image_url"`
	DisplayOrder int            `db:"display_order" json:"display_order"`
	Published    bool           `db:"published"     json:"published"`
	CreatedAt    time.Time      `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"    json:"updated_at"`

	Excerpt string `db:"-" json:"excerpt,omitempty"`
	HTML    string `db:"-" json:"html,omitempty"`
}

func (s SubProduct) EntityID() uuid.UUID { return s.ID }

func (s SubProduct) EntitySlug() string { return s.Slug }

func (s *SubProduct) Present(detail bool) {
	s.Excerpt = richtext.Excerpt(s.Description, richtext.DefaultExcerptLength)
	if detail {
		s.HTML = richtext.RenderHTML(s.Description)
	}
}

// SubProductCreateRequest omits product_id; it comes from the route.
type SubProductCreateRequest struct {
	Name         string          `binding:"required,max=255"  db:"name"          json:"name"`
	Slug         string          `binding:"omitempty,max=255" db:"slug"          json:"slug"`
	Description  json.RawMessage `db:"description"            json:"description"`
	Icon         string          `binding:"max=255"           db:"icon"          json:"icon"`
	ImageURL     string          `binding:"max=2048"          db:"image_url"     json:"image_url"`
	DisplayOrder int             `binding:"min=0"             db:"display_order" json:"display_order"`
	Published    bool            `db:"published"              json:"published"`
}

func (r *SubProductCreateRequest) Validate() error { return nil }

func (r *SubProductCreateRequest) Values() (map[string]any, error) {
	return createValues(r, r.Name)
}

type SubProductUpdateRequest struct {
	Name         *string         `binding:"omitempty,min=1,max=255" db:"name"          json:"name"`
	Slug         *string         `binding:"omitempty,max=255"       db:"slug"          json:"slug"`
	Description  json.RawMessage `db:"description"                  json:"description"`
	Icon         *string         `binding:"omitempty,max=255"       db:"icon"          json:"icon"`
	ImageURL     *string         `binding:"omitempty,max=2048"      db:"image_url"     json:"image_url"`
	DisplayOrder *int            `binding:"omitempty,min=0"         db:"display_order" json:"display_order"`
	Published    *bool           `db:"published"                    json:"published"`
}

func (r *SubProductUpdateRequest) Validate() error { return nil }

func (r *SubProductUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}

// ProductItem is one catalogue row under a sub-product.
type ProductItem struct {
	ID           uuid.UUID `db:"id"             json:"id"`
	SubProductID uuid.UUID `db:"sub_product_id" json:"sub_product_id"`
	Family       string    `db:"family"         json:"family"`
	TradeName    string    `db:"trade_name"     json:"trade_name"`
	UOM          string    `db:"uom"            json:"uom"`
	Packing      string    `db:"packing"        json:"packing"`
	DisplayOrder int       `db:"display_order"  json:"display_order"`
	CreatedAt    time.Time `db:"created_at"     json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"     json:"updated_at"`
}

func (i ProductItem) EntityID() uuid.UUID { return i.ID }

type ProductItemCreateRequest struct {
	Family       string `binding:"required,max=255" db:"family"        json:"family"`
	TradeName    string `binding:"required,max=255" db:"trade_name"    json:"trade_name"`
	UOM          string `binding:"max=50"           db:"uom"           json:"uom"`
	Packing      string `binding:"max=255"          db:"packing"       json:"packing"`
	DisplayOrder int    `binding:"min=0"            db:"display_order" json:"display_order"`
}

func (r *ProductItemCreateRequest) Validate() error { return nil }

func (r *ProductItemCreateRequest) Values() (map[string]any, error) {
	return columnValues(r)
}

type ProductItemUpdateRequest struct {
	Family       *string `binding:"omitempty,min=1,max=255" db:"family"        json:"family"`
	TradeName    *string `binding:"omitempty,min=1,max=255" db:"trade_name"    json:"trade_name"`
	UOM          *string `binding:"omitempty,max=50"        db:"uom"           json:"uom"`
	Packing      *string `binding:"omitempty,max=255"       db:"packing"       json:"packing"`
	DisplayOrder *int    `binding:"omitempty,min=0"         db:"display_order" json:"display_order"`
}

func (r *ProductItemUpdateRequest) Validate() error { return nil }

func (r *ProductItemUpdateRequest) Updates() (map[string]any, error) {
	return updateValues(r)
}
