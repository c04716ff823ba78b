package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"github.com/growlocal360/maxx-energy/internal/cache"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

// mockStore is a testify mock of handlers.ContentStore and handlers.BulkStore.
type mockStore[T any] struct {
	mock.Mock
}

func (m *mockStore[T]) List(ctx context.Context, opts repository.ListOptions) ([]T, error) {
	args := m.Called(ctx, opts)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockStore[T]) Get(ctx context.Context, id uuid.UUID, scope repository.Scope) (*T, error) {
	args := m.Called(ctx, id, scope)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockStore[T]) GetBySlug(ctx context.Context, slug string, opts repository.ListOptions) (*T, error) {
	args := m.Called(ctx, slug, opts)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockStore[T]) Create(ctx context.Context, scope repository.Scope, values map[string]any) (*T, error) {
	args := m.Called(ctx, scope, values)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockStore[T]) CreateMany(ctx context.Context, scope repository.Scope, rows []map[string]any) ([]T, error) {
	args := m.Called(ctx, scope, rows)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockStore[T]) Update(ctx context.Context, id uuid.UUID, scope repository.Scope, updates map[string]any) (*T, error) {
	args := m.Called(ctx, id, scope, updates)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockStore[T]) Delete(ctx context.Context, id uuid.UUID, scope repository.Scope) error {
	args := m.Called(ctx, id, scope)
	return args.Error(0)
}

type mockStats struct {
	mock.Mock
}

func (m *mockStats) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.DashboardStats)
	return stats, args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newPageCache returns a cache backed by a fresh miniredis.
func newPageCache(t *testing.T) (*cache.PageCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client, time.Minute, nil), mr
}
