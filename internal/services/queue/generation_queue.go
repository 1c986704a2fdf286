package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	queuePkg "github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// DefaultQueueName is the Redis list generation requests travel through.
const DefaultQueueName = "generation-requests"

// GenerationQueue manages the list of pending generation requests.
type GenerationQueue struct {
	client *Client
	name   string
}

func NewGenerationQueue(client *Client, name string) *GenerationQueue {
	if name == "" {
		name = DefaultQueueName
	}
	return &GenerationQueue{
		client: client,
		name:   name,
	}
}

// Enqueue adds a generation request to the end of the queue.
func (q *GenerationQueue) Enqueue(ctx context.Context, req *queuePkg.GenerationRequest) error {
	data, err := req.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize request: %w", err)
	}

	if err := q.client.rdb.RPush(ctx, q.name, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue request: %w", err)
	}
	return nil
}

// Dequeue removes and returns the next request.
// Returns nil if the queue is empty.
func (q *GenerationQueue) Dequeue(ctx context.Context) (*queuePkg.GenerationRequest, error) {
	result, err := q.client.rdb.LPop(ctx, q.name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue request: %w", err)
	}

	req, err := queuePkg.FromJSON([]byte(result))
	if err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return req, nil
}

// BlockingDequeue blocks until a request is available or the timeout
// elapses. Returns nil on timeout.
func (q *GenerationQueue) BlockingDequeue(ctx context.Context, timeout time.Duration) (*queuePkg.GenerationRequest, error) {
	result, err := q.client.rdb.BLPop(ctx, timeout, q.name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue request: %w", err)
	}

	// BLPop returns [key, value]
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected BLPop result: %v", result)
	}

	req, err := queuePkg.FromJSON([]byte(result[1]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return req, nil
}

// Depth returns the number of pending requests.
func (q *GenerationQueue) Depth(ctx context.Context) (int, error) {
	count, err := q.client.rdb.LLen(ctx, q.name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue depth: %w", err)
	}
	return int(count), nil
}
