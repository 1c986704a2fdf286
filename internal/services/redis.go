package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

const (
	questKeyPrefix     = "quest:"
	npcKeyPrefix       = "npc:"
	generatedKeyPrefix = "generated:"

	questIndexKey = "quests"
	npcIndexKey   = "npcs"
)

// RedisStorage implements the Storage interface using Redis. Blueprints are
// stored as JSON values; an index set per kind backs the list operations.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// GetClient returns the underlying Redis client for direct operations
func (r *RedisStorage) GetClient() *redis.Client {
	return r.client
}

// WaitForConnection retries pings until Redis answers or the context ends.
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveQuest(ctx context.Context, q *blueprint.Quest) error {
	if q.ID == "" {
		return fmt.Errorf("quest ID is required")
	}
	return r.saveJSON(ctx, questKeyPrefix+q.ID, questIndexKey, q.ID, q)
}

func (r *RedisStorage) LoadQuest(ctx context.Context, id string) (*blueprint.Quest, error) {
	var q blueprint.Quest
	if err := r.loadJSON(ctx, questKeyPrefix+id, &q); err != nil {
		return nil, err
	}
	q.Normalize()
	return &q, nil
}

func (r *RedisStorage) DeleteQuest(ctx context.Context, id string) error {
	return r.deleteKey(ctx, questKeyPrefix+id, questIndexKey, id)
}

func (r *RedisStorage) ListQuests(ctx context.Context) ([]string, error) {
	return r.listIndex(ctx, questIndexKey)
}

func (r *RedisStorage) SaveNPC(ctx context.Context, n *blueprint.NPC) error {
	if n.ID == "" {
		return fmt.Errorf("NPC ID is required")
	}
	return r.saveJSON(ctx, npcKeyPrefix+n.ID, npcIndexKey, n.ID, n)
}

func (r *RedisStorage) LoadNPC(ctx context.Context, id string) (*blueprint.NPC, error) {
	var n blueprint.NPC
	if err := r.loadJSON(ctx, npcKeyPrefix+id, &n); err != nil {
		return nil, err
	}
	n.Normalize()
	return &n, nil
}

func (r *RedisStorage) DeleteNPC(ctx context.Context, id string) error {
	return r.deleteKey(ctx, npcKeyPrefix+id, npcIndexKey, id)
}

func (r *RedisStorage) ListNPCs(ctx context.Context) ([]string, error) {
	return r.listIndex(ctx, npcIndexKey)
}

func generatedKey(kind queue.Kind, id string) string {
	return fmt.Sprintf("%s%s:%s", generatedKeyPrefix, kind, id)
}

func (r *RedisStorage) SaveGeneratedSource(ctx context.Context, kind queue.Kind, id string, source string) error {
	if err := r.client.Set(ctx, generatedKey(kind, id), source, 0).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", generatedKey(kind, id), "error", err)
		return fmt.Errorf("failed to save generated source: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadGeneratedSource(ctx context.Context, kind queue.Kind, id string) (string, error) {
	source, err := r.client.Get(ctx, generatedKey(kind, id)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load generated source: %w", err)
	}
	return source, nil
}

func (r *RedisStorage) saveJSON(ctx context.Context, key, indexKey, id string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Redis save failed", "key", key, "error", err)
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	r.logger.Debug("Blueprint saved", "key", key)
	return nil
}

func (r *RedisStorage) loadJSON(ctx context.Context, key string, out any) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

func (r *RedisStorage) deleteKey(ctx context.Context, key, indexKey, id string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Redis delete failed", "key", key, "error", err)
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (r *RedisStorage) listIndex(ctx context.Context, indexKey string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", indexKey, err)
	}
	return ids, nil
}
