package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/events"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newPublisher(t *testing.T) (*events.Publisher, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return events.NewPublisher(client, infralogger.NewNop()), mr
}

func TestNewPublisher_NilClient(t *testing.T) {
	pub := events.NewPublisher(nil, nil)
	assert.Nil(t, pub)

	// a nil publisher is a no-op
	require.NoError(t, pub.Publish(context.Background(), infraevents.ContentEvent{}))
	pub.PublishAsync(infraevents.ContentEvent{})
	pub.Wait()
}

func TestPublisher_Publish(t *testing.T) {
	pub, mr := newPublisher(t)
	entityID := uuid.New()

	err := pub.Publish(context.Background(), infraevents.ContentEvent{
		EventType: infraevents.ContentCreated,
		Entity:    "market",
		EntityID:  entityID,
		Slug:      "upstream",
	})
	require.NoError(t, err)

	entries, err := mr.Stream(infraevents.StreamName)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := entries[0].Values
	require.Len(t, values, 4)
	assert.Equal(t, []string{"event_type", "CONTENT_CREATED"}, values[:2])
	assert.Equal(t, "event", values[2])

	var decoded infraevents.ContentEvent
	require.NoError(t, json.Unmarshal([]byte(values[3]), &decoded))
	assert.Equal(t, entityID, decoded.EntityID)
	assert.NotEqual(t, uuid.Nil, decoded.EventID)
	assert.False(t, decoded.Timestamp.IsZero())
}

func TestPublisher_PublishAsync(t *testing.T) {
	pub, mr := newPublisher(t)

	for range 3 {
		pub.PublishAsync(infraevents.ContentEvent{
			EventType: infraevents.ContentDeleted,
			Entity:    "team_member",
			EntityID:  uuid.New(),
		})
	}
	pub.Wait()

	entries, err := mr.Stream(infraevents.StreamName)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestPublisher_PublishError(t *testing.T) {
	pub, mr := newPublisher(t)
	mr.Close()

	err := pub.Publish(context.Background(), infraevents.ContentEvent{EventType: infraevents.ContentUpdated})
	require.Error(t, err)

	// async failures are logged, not returned
	pub.PublishAsync(infraevents.ContentEvent{EventType: infraevents.ContentUpdated})
	pub.Wait()
}
