// Package events publishes content lifecycle events to a Redis stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
)

// asyncPublishTimeout is the context timeout for async publish operations.
const asyncPublishTimeout = 5 * time.Second

// Publisher publishes content events to Redis Streams. A nil *Publisher is
// valid and drops every event.
type Publisher struct {
	client *redis.Client
	log    infralogger.Logger
	wg     sync.WaitGroup
}

// NewPublisher returns nil when client is nil.
func NewPublisher(client *redis.Client, log infralogger.Logger) *Publisher {
	if client == nil {
		return nil
	}
	if log == nil {
		log = infralogger.NewNop()
	}
	return &Publisher{
		client: client,
		log:    log,
	}
}

// Publish appends event to the stream, filling EventID and Timestamp.
func (p *Publisher) Publish(ctx context.Context, event infraevents.ContentEvent) error {
	if p == nil || p.client == nil {
		return nil
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: infraevents.StreamName,
		MaxLen: infraevents.MaxStreamLength,
		Approx: true,
		Values: map[string]any{
			"event_type": string(event.EventType),
			"event":      string(payload),
		},
	})

	if publishErr := result.Err(); publishErr != nil {
		return fmt.Errorf("publish to stream: %w", publishErr)
	}

	p.log.Debug("Published content event",
		infralogger.String("event_type", string(event.EventType)),
		infralogger.String("entity", event.Entity),
		infralogger.String("entity_id", event.EntityID.String()),
		infralogger.String("stream_id", result.Val()),
	)

	return nil
}

// PublishAsync publishes without blocking the caller. Errors are logged.
func (p *Publisher) PublishAsync(event infraevents.ContentEvent) {
	if p == nil {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncPublishTimeout)
		defer cancel()

		if err := p.Publish(ctx, event); err != nil {
			p.log.Error("Async publish failed",
				infralogger.String("event_type", string(event.EventType)),
				infralogger.String("entity", event.Entity),
				infralogger.String("entity_id", event.EntityID.String()),
				infralogger.Error(err),
			)
		}
	}()
}

// Wait blocks until in-flight async publishes finish. Call before closing
// the Redis client.
func (p *Publisher) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}
