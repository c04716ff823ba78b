// Package repository implements PostgreSQL persistence for the site content.
package repository

// Table describes how a content table is queried.
type Table struct {
	Name string
	// Entity is the singular name used in errors, events and metrics.
	Entity string
	// Order is the admin listing order; PublicOrder overrides it for
	// published reads when set.
	Order       string
	PublicOrder string
	// ParentColumn scopes child rows (sub-products, items, gallery images).
	ParentColumn string
	Publishable  bool
	// HasPublishedAt stamps published_at the first time a row is published.
	HasPublishedAt bool
	// PublicWhere is an extra condition applied to published reads.
	PublicWhere string
}

func (t Table) publicOrder() string {
	if t.PublicOrder != "" {
		return t.PublicOrder
	}
	return t.Order
}

// Content tables.
var (
	Products = Table{
		Name: "products", Entity: "product",
		Order: "display_order ASC, name ASC", Publishable: true,
	}
	SubProducts = Table{
		Name: "sub_products", Entity: "sub_product",
		Order: "display_order ASC, name ASC", ParentColumn: "product_id", Publishable: true,
	}
	ProductItems = Table{
		Name: "product_items", Entity: "product_item",
		Order: "display_order ASC, trade_name ASC", ParentColumn: "sub_product_id",
	}
	Projects = Table{
		Name: "projects", Entity: "project",
		Order:          "created_at DESC",
		PublicOrder:    "featured DESC, published_at DESC NULLS LAST",
		Publishable:    true,
		HasPublishedAt: true,
	}
	ProjectImages = Table{
		Name: "project_images", Entity: "project_image",
		Order: "display_order ASC, created_at ASC", ParentColumn: "project_id",
	}
	Markets = Table{
		Name: "markets", Entity: "market",
		Order: "display_order ASC, name ASC", Publishable: true,
	}
	ShalePlays = Table{
		Name: "shale_plays", Entity: "shale_play",
		Order: "display_order ASC, name ASC", Publishable: true,
	}
	NewsArticles = Table{
		Name: "news_articles", Entity: "news_article",
		Order:          "created_at DESC",
		PublicOrder:    "published_at DESC NULLS LAST",
		Publishable:    true,
		HasPublishedAt: true,
	}
	JobPostings = Table{
		Name: "job_postings", Entity: "job_posting",
		Order:          "created_at DESC",
		PublicOrder:    "published_at DESC NULLS LAST",
		Publishable:    true,
		HasPublishedAt: true,
		PublicWhere:    "(expires_at IS NULL OR expires_at > NOW())",
	}
	Locations = Table{
		Name: "locations", Entity: "location",
		Order: "is_headquarters DESC, display_order ASC, name ASC", Publishable: true,
	}
	TeamMembers = Table{
		Name: "team_members", Entity: "team_member",
		Order: "display_order ASC, name ASC", Publishable: true,
	}
	ContactSubmissions = Table{
		Name: "contact_submissions", Entity: "contact_submission",
		Order: "created_at DESC",
	}
)
