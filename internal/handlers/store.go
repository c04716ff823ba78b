// Package handlers implements the public and admin HTTP handlers for the
// site's content.
package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

// ContentStore is the repository surface the handlers depend on.
// *repository.Store[T] satisfies it.
type ContentStore[T any] interface {
	List(ctx context.Context, opts repository.ListOptions) ([]T, error)
	Get(ctx context.Context, id uuid.UUID, scope repository.Scope) (*T, error)
	GetBySlug(ctx context.Context, slug string, opts repository.ListOptions) (*T, error)
	Create(ctx context.Context, scope repository.Scope, values map[string]any) (*T, error)
	Update(ctx context.Context, id uuid.UUID, scope repository.Scope, updates map[string]any) (*T, error)
	Delete(ctx context.Context, id uuid.UUID, scope repository.Scope) error
}

// BulkStore inserts many rows under one parent in a single transaction.
type BulkStore[T any] interface {
	CreateMany(ctx context.Context, scope repository.Scope, rows []map[string]any) ([]T, error)
}

// StatsProvider returns the admin dashboard counts.
type StatsProvider interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

// Stores groups the repositories of every content table.
type Stores struct {
	Products      ContentStore[models.Product]
	SubProducts   ContentStore[models.SubProduct]
	ProductItems  ContentStore[models.ProductItem]
	Projects      ContentStore[models.Project]
	ProjectImages ContentStore[models.ProjectImage]
	Markets       ContentStore[models.Market]
	ShalePlays    ContentStore[models.ShalePlay]
	News          ContentStore[models.NewsArticle]
	Careers       ContentStore[models.JobPosting]
	Locations     ContentStore[models.Location]
	Team          ContentStore[models.TeamMember]
	Contacts      ContentStore[models.ContactSubmission]
}
