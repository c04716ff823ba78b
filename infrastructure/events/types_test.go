package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlocal360/maxx-energy/infrastructure/events"
)

func TestContentEvent_JSON(t *testing.T) {
	t.Parallel()

	event := events.ContentEvent{
		EventID:   uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		EventType: events.ContentUpdated,
		Entity:    "news_article",
		EntityID:  uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Slug:      "permian-expansion",
		Timestamp: time.Date(2026, 1, 29, 10, 30, 0, 0, time.UTC),
		Payload:   events.UpdatedPayload{ChangedFields: []string{"title"}},
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "CONTENT_UPDATED", raw["event_type"])
	assert.Equal(t, "news_article", raw["entity"])
	assert.NotContains(t, raw, "parent_id")
	assert.Equal(t, []any{"title"}, raw["payload"].(map[string]any)["changed_fields"])
}
