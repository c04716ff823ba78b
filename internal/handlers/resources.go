package handlers

import (
	"github.com/growlocal360/maxx-energy/internal/models"
)

// Admin holds one CRUD resource per content table.
type Admin struct {
	Products      *AdminResource[models.Product]
	SubProducts   *AdminResource[models.SubProduct]
	ProductItems  *AdminResource[models.ProductItem]
	Projects      *AdminResource[models.Project]
	ProjectImages *AdminResource[models.ProjectImage]
	Markets       *AdminResource[models.Market]
	ShalePlays    *AdminResource[models.ShalePlay]
	News          *AdminResource[models.NewsArticle]
	Careers       *AdminResource[models.JobPosting]
	Locations     *AdminResource[models.Location]
	Team          *AdminResource[models.TeamMember]
	Contacts      *AdminResource[models.ContactSubmission]
}

// Route parameters of the nested admin routes.
const (
	ParamID      = "id"
	ParamSubID   = "subId"
	ParamItemID  = "itemId"
	ParamImageID = "imageId"
)

func NewAdmin(stores Stores, notifier *Notifier) *Admin {
	return &Admin{
		Products: NewAdminResource(stores.Products, ResourceConfig{
			Entity:    "product",
			Label:     "Product",
			Plural:    "products",
			Filters:   []string{"published"},
			NewCreate: func() models.CreateRequest { return &models.ProductCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.ProductUpdateRequest{} },
		}, notifier),
		SubProducts: NewAdminResource(stores.SubProducts, ResourceConfig{
			Entity:      "sub_product",
			Label:       "Sub-product",
			Plural:      "sub_products",
			IDParam:     ParamSubID,
			ParentParam: ParamID,
			Filters:     []string{"published"},
			NewCreate:   func() models.CreateRequest { return &models.SubProductCreateRequest{} },
			NewUpdate:   func() models.UpdateRequest { return &models.SubProductUpdateRequest{} },
		}, notifier),
		ProductItems: NewAdminResource(stores.ProductItems, ResourceConfig{
			Entity:      "product_item",
			Label:       "Product item",
			Plural:      "items",
			IDParam:     ParamItemID,
			ParentParam: ParamSubID,
			Filters:     []string{"family"},
			NewCreate:   func() models.CreateRequest { return &models.ProductItemCreateRequest{} },
			NewUpdate:   func() models.UpdateRequest { return &models.ProductItemUpdateRequest{} },
		}, notifier).WithParentCheck(subProductInProduct(stores.SubProducts, ParamID, ParamSubID)),
		Projects: NewAdminResource(stores.Projects, ResourceConfig{
			Entity:    "project",
			Label:     "Project",
			Plural:    "projects",
			Filters:   []string{"published", "featured", "market"},
			NewCreate: func() models.CreateRequest { return &models.ProjectCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.ProjectUpdateRequest{} },
		}, notifier),
		ProjectImages: NewAdminResource(stores.ProjectImages, ResourceConfig{
			Entity:      "project_image",
			Label:       "Project image",
			Plural:      "images",
			IDParam:     ParamImageID,
			ParentParam: ParamID,
			NewCreate:   func() models.CreateRequest { return &models.ProjectImageCreateRequest{} },
			NewUpdate:   func() models.UpdateRequest { return &models.ProjectImageUpdateRequest{} },
		}, notifier),
		Markets: NewAdminResource(stores.Markets, ResourceConfig{
			Entity:    "market",
			Label:     "Market",
			Plural:    "markets",
			Filters:   []string{"published"},
			NewCreate: func() models.CreateRequest { return &models.MarketCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.MarketUpdateRequest{} },
		}, notifier),
		ShalePlays: NewAdminResource(stores.ShalePlays, ResourceConfig{
			Entity:    "shale_play",
			Label:     "Shale play",
			Plural:    "shale_plays",
			Filters:   []string{"published", "region"},
			NewCreate: func() models.CreateRequest { return &models.ShalePlayCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.ShalePlayUpdateRequest{} },
		}, notifier),
		News: NewAdminResource(stores.News, ResourceConfig{
			Entity:    "news_article",
			Label:     "News article",
			Plural:    "articles",
			Filters:   []string{"published", "type"},
			NewCreate: func() models.CreateRequest { return &models.NewsArticleCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.NewsArticleUpdateRequest{} },
		}, notifier),
		Careers: NewAdminResource(stores.Careers, ResourceConfig{
			Entity:    "job_posting",
			Label:     "Job posting",
			Plural:    "jobs",
			Filters:   []string{"published", "employment_type", "department"},
			NewCreate: func() models.CreateRequest { return &models.JobPostingCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.JobPostingUpdateRequest{} },
		}, notifier),
		Locations: NewAdminResource(stores.Locations, ResourceConfig{
			Entity:    "location",
			Label:     "Location",
			Plural:    "locations",
			Filters:   []string{"published", "state"},
			NewCreate: func() models.CreateRequest { return &models.LocationCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.LocationUpdateRequest{} },
		}, notifier),
		Team: NewAdminResource(stores.Team, ResourceConfig{
			Entity:    "team_member",
			Label:     "Team member",
			Plural:    "team_members",
			Filters:   []string{"published"},
			NewCreate: func() models.CreateRequest { return &models.TeamMemberCreateRequest{} },
			NewUpdate: func() models.UpdateRequest { return &models.TeamMemberUpdateRequest{} },
		}, notifier),
		Contacts: NewAdminResource(stores.Contacts, ResourceConfig{
			Entity:      "contact_submission",
			Label:       "Contact submission",
			Plural:      "submissions",
			Filters:     []string{"read"},
			NewUpdate:   func() models.UpdateRequest { return &models.ContactReadRequest{} },
			EmptyUpdate: true,
		}, notifier),
	}
}
