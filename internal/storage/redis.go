package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/emberfell/campaign-engine/pkg/campaign"
)

const campaignKeyPrefix = "campaign:"

// RedisStorage implements the Storage interface using Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
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

func campaignKey(id uuid.UUID) string {
	return campaignKeyPrefix + id.String()
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

// WaitForConnection waits for Redis to become available (used during startup)
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

func (r *RedisStorage) CreateCampaign(ctx context.Context, rec *campaign.Record) error {
	rec.Version = 1
	rec.UpdatedAt = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		r.logger.Error("Failed to marshal campaign", "uuid", rec.ID, "error", err)
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	ok, err := r.client.SetNX(ctx, campaignKey(rec.ID), string(data), 0).Result()
	if err != nil {
		r.logger.Error("Failed to create campaign", "uuid", rec.ID, "error", err)
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	if !ok {
		return fmt.Errorf("campaign already exists: %s", rec.ID)
	}
	return nil
}

func (r *RedisStorage) GetCampaign(ctx context.Context, id uuid.UUID) (*campaign.Record, error) {
	data, err := r.client.Get(ctx, campaignKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Warn("Campaign not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load campaign", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}

	var rec campaign.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		r.logger.Error("Failed to unmarshal campaign", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}
	return &rec, nil
}

// ReplaceCampaign swaps the stored record under optimistic concurrency: the
// key is watched, the stored version compared against rec.Version, and the
// write committed in a transaction that aborts if the key changed underneath.
func (r *RedisStorage) ReplaceCampaign(ctx context.Context, rec *campaign.Record) error {
	key := campaignKey(rec.ID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return fmt.Errorf("campaign not found: %s", rec.ID)
			}
			return fmt.Errorf("failed to load campaign: %w", err)
		}

		var current campaign.Record
		if err := json.Unmarshal([]byte(stored), &current); err != nil {
			return fmt.Errorf("failed to unmarshal campaign: %w", err)
		}
		if current.Version != rec.Version {
			return ErrVersionConflict
		}

		next := rec.Clone()
		next.Version = rec.Version + 1
		next.UpdatedAt = time.Now()

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal campaign: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, string(data), 0)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		// Another writer touched the key between watch and exec.
		return ErrVersionConflict
	}
	if err != nil {
		if !errors.Is(err, ErrVersionConflict) {
			r.logger.Error("Failed to replace campaign", "uuid", rec.ID, "error", err)
		}
		return err
	}
	return nil
}

func (r *RedisStorage) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, campaignKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete campaign", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

func (r *RedisStorage) ListCampaigns(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	iter := r.client.Scan(ctx, 0, campaignKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		raw := strings.TrimPrefix(iter.Val(), campaignKeyPrefix)
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Warn("Skipping malformed campaign key", "key", iter.Val())
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan campaigns: %w", err)
	}
	return ids, nil
}
