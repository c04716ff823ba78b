package gin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientRateLimiter_PerClientBudget(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewClientRateLimiter(2, 2)
	l.now = func() time.Time { return now }

	ok, _ := l.Reserve("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.Reserve("10.0.0.1")
	assert.True(t, ok)

	ok, wait := l.Reserve("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 30*time.Second, wait)

	ok, _ = l.Reserve("10.0.0.2")
	assert.True(t, ok, "other clients keep their own bucket")

	now = now.Add(30 * time.Second)
	ok, _ = l.Reserve("10.0.0.1")
	assert.True(t, ok, "a token refills after 30s at 2/min")
}

func TestClientRateLimiter_SweepsIdleClients(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewClientRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.Reserve("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Minute)
	l.Reserve("10.0.0.2")

	assert.Len(t, l.clients, 1)
	assert.Contains(t, l.clients, "10.0.0.2")
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/contact", RateLimitMiddleware(NewClientRateLimiter(1, 1)), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/contact", http.NoBody))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/contact", http.NoBody))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "Too many requests")
}
