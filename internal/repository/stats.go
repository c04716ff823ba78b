package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/growlocal360/maxx-energy/internal/models"
)

// StatsRepository computes the admin dashboard counts.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type countQuery struct {
	dest  *int
	query string
}

// Dashboard runs every count concurrently. The first failure cancels the rest.
func (r *StatsRepository) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	queries := []countQuery{
		{&stats.TeamMembers, "SELECT COUNT(*) FROM team_members"},
		{&stats.Products, "SELECT COUNT(*) FROM products"},
		{&stats.Projects, "SELECT COUNT(*) FROM projects"},
		{&stats.PublishedProjects, "SELECT COUNT(*) FROM projects WHERE published = true"},
		{&stats.Markets, "SELECT COUNT(*) FROM markets"},
		{&stats.ShalePlays, "SELECT COUNT(*) FROM shale_plays"},
		{&stats.News, "SELECT COUNT(*) FROM news_articles"},
		{&stats.PublishedNews, "SELECT COUNT(*) FROM news_articles WHERE published = true"},
		{&stats.Jobs, "SELECT COUNT(*) FROM job_postings"},
		{&stats.ActiveJobs, "SELECT COUNT(*) FROM job_postings WHERE published = true AND " + JobPostings.PublicWhere},
		{&stats.Locations, "SELECT COUNT(*) FROM locations"},
		{&stats.UnreadContacts, "SELECT COUNT(*) FROM contact_submissions WHERE read = false"},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, q := range queries {
		g.Go(func() error {
			if err := r.db.GetContext(gctx, q.dest, q.query); err != nil {
				return fmt.Errorf("count (%s): %w", q.query, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
