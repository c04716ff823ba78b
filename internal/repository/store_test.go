package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/richtext"
)

var (
	marketColumns = []string{
		"id", "name", "slug", "description", "icon_url", "hero_image_url",
		"display_order", "published", "created_at", "updated_at",
	}
	newsColumns = []string{
		"id", "title", "slug", "type", "excerpt", "content", "featured_image", "event_date",
		"event_location", "published", "published_at", "created_at", "updated_at",
	}
	itemColumns = []string{
		"id", "sub_product_id", "family", "trade_name", "uom", "packing",
		"display_order", "created_at", "updated_at",
	}
	fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

func newTestStore[T any](t *testing.T, table Table) (*Store[T], sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	s := NewStore[T](db, table)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func marketRow(rows *sqlmock.Rows, id uuid.UUID, name, doc string) *sqlmock.Rows {
	var description any
	if doc != "" {
		description = []byte(doc)
	}
	return rows.AddRow(id.String(), name, name, description, "", "", 0, true, fixedNow, fixedNow)
}

func TestDBColumns(t *testing.T) {
	t.Parallel()

	s := NewStore[models.Market](nil, Markets)
	assert.Equal(t, marketColumns, s.columns)
}

func TestStore_ListPublished(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.Market](t, Markets)
	id := uuid.New()

	rows := marketRow(sqlmock.NewRows(marketColumns), id, "Upstream",
		`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Drilling support"}]}]}`)
	rows = marketRow(rows, uuid.New(), "Midstream", "")

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM markets WHERE published = true ORDER BY display_order ASC, name ASC",
	)).WillReturnRows(rows)

	items, err := s.List(context.Background(), ListOptions{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "Drilling support", richtext.PlainText(items[0].Description))
	assert.Nil(t, items[1].Description)
}

func TestStore_ListPublicWhereAndOrder(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.JobPosting](t, JobPostings)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM job_postings WHERE published = true AND (expires_at IS NULL OR expires_at > NOW()) " +
			"ORDER BY published_at DESC NULLS LAST LIMIT $1",
	)).WithArgs(5).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, err := s.List(context.Background(), ListOptions{PublishedOnly: true, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestStore_ListParentAndFilters(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.NewsArticle](t, NewsArticles)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM news_articles WHERE published = true AND type = $1 ORDER BY published_at DESC NULLS LAST",
	)).WithArgs("event").WillReturnRows(sqlmock.NewRows(newsColumns))

	_, err := s.List(context.Background(), ListOptions{
		PublishedOnly: true,
		Filters:       map[string]any{"type": "event"},
	})
	require.NoError(t, err)

	items, itemMock := newTestStore[models.ProductItem](t, ProductItems)
	parent := uuid.New()
	itemMock.ExpectQuery(regexp.QuoteMeta(
		"FROM product_items WHERE sub_product_id = $1 ORDER BY display_order ASC, trade_name ASC",
	)).WithArgs(parent).WillReturnRows(sqlmock.NewRows(itemColumns))

	_, err = items.List(context.Background(), ListOptions{ParentID: parent})
	require.NoError(t, err)
}

func TestStore_ListUnknownFilter(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore[models.Market](t, Markets)
	_, err := s.List(context.Background(), ListOptions{Filters: map[string]any{"1=1; --": true}})
	require.Error(t, err)
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.Market](t, Markets)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM markets WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(marketRow(sqlmock.NewRows(marketColumns), id, "Upstream", ""))

	m, err := s.Get(context.Background(), id, Scope{})
	require.NoError(t, err)
	assert.Equal(t, "Upstream", m.Name)

	mock.ExpectQuery(regexp.QuoteMeta("FROM markets WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = s.Get(context.Background(), id, Scope{})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_GetBySlugScoped(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.SubProduct](t, SubProducts)
	product := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM sub_products WHERE published = true AND product_id = $1 AND slug = $2 LIMIT 1",
	)).WithArgs(product, "ceramic").WillReturnError(sql.ErrNoRows)

	_, err := s.GetBySlug(context.Background(), "ceramic", ListOptions{PublishedOnly: true, ParentID: product})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_CreateStampsPublishedAt(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.NewsArticle](t, NewsArticles)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO news_articles (id, published, published_at, slug, title) VALUES ($1, $2, $3, $4, $5) RETURNING id, title",
	)).
		WithArgs(sqlmock.AnyArg(), true, fixedNow, "hello", "Hello").
		WillReturnRows(sqlmock.NewRows(newsColumns).AddRow(
			id.String(), "Hello", "hello", "news", "", nil, "", nil, "", true, fixedNow, fixedNow, fixedNow,
		))

	n, err := s.Create(context.Background(), Scope{}, map[string]any{
		"title": "Hello", "slug": "hello", "published": true,
	})
	require.NoError(t, err)
	assert.Equal(t, id, n.ID)
	require.NotNil(t, n.PublishedAt)
	assert.True(t, n.PublishedAt.Equal(fixedNow))
}

func TestStore_CreateDraftLeavesPublishedAt(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.NewsArticle](t, NewsArticles)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO news_articles (id, published, title) VALUES ($1, $2, $3)",
	)).
		WithArgs(sqlmock.AnyArg(), false, "Draft").
		WillReturnRows(sqlmock.NewRows(newsColumns).AddRow(
			uuid.New().String(), "Draft", "draft", "news", "", nil, "", nil, "", false, nil, fixedNow, fixedNow,
		))

	n, err := s.Create(context.Background(), Scope{}, map[string]any{"title": "Draft", "published": false})
	require.NoError(t, err)
	assert.Nil(t, n.PublishedAt)
}

func TestStore_CreateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "duplicate slug", dbErr: &pq.Error{Code: "23505"}, wantErr: models.ErrAlreadyExists},
		{name: "missing parent", dbErr: &pq.Error{Code: "23503"}, wantErr: models.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newTestStore[models.SubProduct](t, SubProducts)
			parent := uuid.New()

			mock.ExpectQuery(regexp.QuoteMeta(
				"INSERT INTO sub_products (id, name, product_id, slug) VALUES ($1, $2, $3, $4)",
			)).
				WithArgs(sqlmock.AnyArg(), "Ceramic", parent, "ceramic").
				WillReturnError(tt.dbErr)

			_, err := s.Create(context.Background(), Scope{ParentID: parent},
				map[string]any{"name": "Ceramic", "slug": "ceramic"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStore_UpdatePublishes(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.NewsArticle](t, NewsArticles)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE news_articles SET published = $1, title = $2, updated_at = NOW(), "+
			"published_at = COALESCE(published_at, NOW()) WHERE id = $3 RETURNING",
	)).
		WithArgs(true, "Renamed", id).
		WillReturnRows(sqlmock.NewRows(newsColumns).AddRow(
			id.String(), "Renamed", "hello", "news", "", nil, "", nil, "", true, fixedNow, fixedNow, fixedNow,
		))

	n, err := s.Update(context.Background(), id, Scope{}, map[string]any{"title": "Renamed", "published": true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", n.Title)
}

func TestStore_UpdateScopedNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.ProductItem](t, ProductItems)
	id, parent := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE product_items SET uom = $1, updated_at = NOW() WHERE id = $2 AND sub_product_id = $3 RETURNING",
	)).
		WithArgs("bbl", id, parent).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Update(context.Background(), id, Scope{ParentID: parent}, map[string]any{"uom": "bbl"})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_UpdateNoFields(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore[models.Market](t, Markets)
	_, err := s.Update(context.Background(), uuid.New(), Scope{}, nil)
	require.ErrorIs(t, err, models.ErrNoFieldsToUpdate)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.Market](t, Markets)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM markets WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Delete(context.Background(), id, Scope{}))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM markets WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, s.Delete(context.Background(), id, Scope{}), models.ErrNotFound)
}

func TestStore_CreateMany(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.ProductItem](t, ProductItems)
	parent := uuid.New()
	insert := regexp.QuoteMeta(
		"INSERT INTO product_items (display_order, id, sub_product_id, trade_name) VALUES ($1, $2, $3, $4)",
	)

	mock.ExpectBegin()
	for i, name := range []string{"Guar", "Xanthan"} {
		mock.ExpectQuery(insert).
			WithArgs(i, sqlmock.AnyArg(), parent, name).
			WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(
				uuid.New().String(), parent.String(), "", name, "", "", i, fixedNow, fixedNow,
			))
	}
	mock.ExpectCommit()

	items, err := s.CreateMany(context.Background(), Scope{ParentID: parent}, []map[string]any{
		{"trade_name": "Guar", "display_order": 0},
		{"trade_name": "Xanthan", "display_order": 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Xanthan", items[1].TradeName)
}

func TestStore_CreateManyRollsBack(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore[models.ProductItem](t, ProductItems)
	parent := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO product_items").
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	_, err := s.CreateMany(context.Background(), Scope{ParentID: parent}, []map[string]any{
		{"trade_name": "Guar"},
	})
	require.ErrorIs(t, err, models.ErrInvalidReference)
}
