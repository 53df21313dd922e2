package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

// redisKV - подмножество команд Redis, нужных репозиторию
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisSnapshotRepository хранит снапшот стора одной JSON строкой под ключом key
type RedisSnapshotRepository struct {
	redisClient redisKV
	key         string
}

func NewRedisSnapshotRepository(redisClient *redis.Client, key string) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{
		redisClient: redisClient,
		key:         key,
	}
}

// Load читает снапшот из Redis. Если ключа нет, возвращает nil, nil.
func (r *RedisSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	val, err := r.redisClient.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from redis: %w", err)
	}
	return decodeSnapshot(val)
}

// Save перезаписывает снапшот целиком, без срока жизни
func (r *RedisSnapshotRepository) Save(ctx context.Context, snapshot *models.Snapshot) error {
	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	if err := r.redisClient.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in redis: %w", err)
	}
	return nil
}
