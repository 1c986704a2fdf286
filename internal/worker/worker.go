package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/events"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/queue"
	queuePkg "github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

const (
	dequeueTimeout = 5 * time.Second
	lockTTL        = 30 * time.Second
)

// Worker processes generation requests from the queue. A per-blueprint
// Redis lock keeps two workers from generating the same blueprint at once.
type Worker struct {
	id          string
	queue       *queue.GenerationQueue
	processor   *Processor
	broadcaster *events.Broadcaster
	redisClient *redis.Client
	log         *slog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new worker instance
func New(generationQueue *queue.GenerationQueue, processor *Processor, redisClient *redis.Client, log *slog.Logger, workerID string) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	if workerID == "" {
		workerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}

	return &Worker{
		id:          workerID,
		queue:       generationQueue,
		processor:   processor,
		broadcaster: events.NewBroadcaster(redisClient, log),
		redisClient: redisClient,
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins processing requests from the queue
func (w *Worker) Start() error {
	w.log.Info("Worker starting", "worker_id", w.id)

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info("Worker shutting down", "worker_id", w.id)
			return nil
		default:
			if err := w.processNextRequest(); err != nil {
				w.log.Error("Error processing request", "error", err, "worker_id", w.id)
				// Continue processing even on error
				time.Sleep(1 * time.Second)
			}
		}
	}
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.log.Info("Worker stop requested", "worker_id", w.id)
	w.cancel()
}

// processNextRequest pulls the next request from the queue and processes it
func (w *Worker) processNextRequest() error {
	req, err := w.queue.BlockingDequeue(w.ctx, dequeueTimeout)
	if err != nil {
		if w.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to dequeue request: %w", err)
	}

	if req == nil {
		// Queue is empty - this is normal
		return nil
	}

	w.log.Info("Received request from queue",
		"worker_id", w.id,
		"request_id", req.RequestID,
		"kind", req.Kind,
		"blueprint_id", req.BlueprintID,
	)

	locked, err := w.acquireLock(req)
	if err != nil {
		return fmt.Errorf("failed to acquire blueprint lock: %w", err)
	}
	if !locked {
		// Another worker is generating this blueprint.
		// Re-queue at the end and try the next request.
		w.log.Info("Blueprint already locked, re-queueing request",
			"worker_id", w.id,
			"request_id", req.RequestID,
			"blueprint_id", req.BlueprintID,
		)
		if err := w.queue.Enqueue(w.ctx, req); err != nil {
			return fmt.Errorf("failed to re-queue request: %w", err)
		}
		return nil
	}

	defer w.releaseLock(req)
	return w.processRequest(req)
}

func lockKey(req *queuePkg.GenerationRequest) string {
	return fmt.Sprintf("blueprint-lock:%s:%s", req.Kind, req.BlueprintID)
}

// acquireLock attempts to acquire the lock for a blueprint.
// Returns true if the lock was acquired, false if already locked.
func (w *Worker) acquireLock(req *queuePkg.GenerationRequest) (bool, error) {
	return w.redisClient.SetNX(w.ctx, lockKey(req), w.id, lockTTL).Result()
}

// releaseLock releases the blueprint lock.
func (w *Worker) releaseLock(req *queuePkg.GenerationRequest) {
	// Only delete if we own the lock
	script := redis.NewScript(`
		if redis.call("get", KEYS[1]) == ARGV[1] then
			return redis.call("del", KEYS[1])
		else
			return 0
		end
	`)

	if err := script.Run(w.ctx, w.redisClient, []string{lockKey(req)}, w.id).Err(); err != nil {
		w.log.Error("Failed to release blueprint lock", "error", err, "blueprint_id", req.BlueprintID)
	}
}

// processRequest runs one request through the processor, publishing
// lifecycle events around it.
func (w *Worker) processRequest(req *queuePkg.GenerationRequest) error {
	start := time.Now()

	if err := w.broadcaster.PublishProcessing(w.ctx, req, w.id); err != nil {
		w.log.Error("Failed to publish processing event", "error", err)
		// Don't fail the request just because event publishing failed
	}

	if err := w.processor.Process(w.ctx, req); err != nil {
		w.log.Error("Generation failed",
			"error", err,
			"worker_id", w.id,
			"request_id", req.RequestID,
			"blueprint_id", req.BlueprintID,
		)
		if pubErr := w.broadcaster.PublishFailed(w.ctx, req, err.Error()); pubErr != nil {
			w.log.Error("Failed to publish failure event", "error", pubErr)
		}
		return err
	}

	durationMS := time.Since(start).Milliseconds()
	w.log.Info("Generation request processed",
		"worker_id", w.id,
		"request_id", req.RequestID,
		"blueprint_id", req.BlueprintID,
		"duration_ms", durationMS,
	)

	if err := w.broadcaster.PublishCompleted(w.ctx, req, w.processor.SourceSize(w.ctx, req), durationMS); err != nil {
		w.log.Error("Failed to publish completion event", "error", err)
	}

	return nil
}
