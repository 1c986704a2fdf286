package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeGenerationQueued     EventType = "generation.queued"
	EventTypeGenerationProcessing EventType = "generation.processing"
	EventTypeGenerationCompleted  EventType = "generation.completed"
	EventTypeGenerationFailed     EventType = "generation.failed"

	// EventTypePreviewAppearance carries an NPC's appearance snapshot so the
	// editor can refresh its live avatar preview without polling.
	EventTypePreviewAppearance EventType = "preview.appearance"
)

// Event represents a generic event structure
type Event struct {
	Type        EventType      `json:"type"`
	RequestID   string         `json:"request_id,omitempty"`
	Kind        queue.Kind     `json:"kind,omitempty"`
	BlueprintID string         `json:"blueprint_id,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// Broadcaster publishes events to Redis Pub/Sub for SSE distribution
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// PublishQueued publishes a generation.queued event
func (b *Broadcaster) PublishQueued(ctx context.Context, req *queue.GenerationRequest) error {
	return b.publish(ctx, Event{
		Type:        EventTypeGenerationQueued,
		RequestID:   req.RequestID,
		Kind:        req.Kind,
		BlueprintID: req.BlueprintID,
		Data: map[string]any{
			"status": "queued",
		},
	})
}

// PublishProcessing publishes a generation.processing event
func (b *Broadcaster) PublishProcessing(ctx context.Context, req *queue.GenerationRequest, workerID string) error {
	return b.publish(ctx, Event{
		Type:        EventTypeGenerationProcessing,
		RequestID:   req.RequestID,
		Kind:        req.Kind,
		BlueprintID: req.BlueprintID,
		Data: map[string]any{
			"status":    "processing",
			"worker_id": workerID,
		},
	})
}

// PublishCompleted publishes a generation.completed event
func (b *Broadcaster) PublishCompleted(ctx context.Context, req *queue.GenerationRequest, sourceBytes int, durationMS int64) error {
	return b.publish(ctx, Event{
		Type:        EventTypeGenerationCompleted,
		RequestID:   req.RequestID,
		Kind:        req.Kind,
		BlueprintID: req.BlueprintID,
		Data: map[string]any{
			"status":       "completed",
			"source_bytes": sourceBytes,
			"duration_ms":  durationMS,
		},
	})
}

// PublishFailed publishes a generation.failed event
func (b *Broadcaster) PublishFailed(ctx context.Context, req *queue.GenerationRequest, errorMsg string) error {
	return b.publish(ctx, Event{
		Type:        EventTypeGenerationFailed,
		RequestID:   req.RequestID,
		Kind:        req.Kind,
		BlueprintID: req.BlueprintID,
		Data: map[string]any{
			"status": "failed",
			"error":  errorMsg,
		},
	})
}

// PublishAppearancePreview publishes a preview.appearance event with the
// NPC's current appearance values.
func (b *Broadcaster) PublishAppearancePreview(ctx context.Context, blueprintID string, appearance any) error {
	return b.publish(ctx, Event{
		Type:        EventTypePreviewAppearance,
		Kind:        queue.KindNPC,
		BlueprintID: blueprintID,
		Data: map[string]any{
			"appearance": appearance,
		},
	})
}

// Channel returns the pub/sub channel for one blueprint's events.
func Channel(kind queue.Kind, blueprintID string) string {
	return fmt.Sprintf("blueprint-events:%s:%s", kind, blueprintID)
}

func (b *Broadcaster) publish(ctx context.Context, event Event) error {
	channel := Channel(event.Kind, event.BlueprintID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event_type", event.Type)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
		"request_id", event.RequestID,
	)

	return nil
}
