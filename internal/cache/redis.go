package cache

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Cache - минимальный интерфейс кэша, используемый сервисами.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrCacheMiss возвращается Get, когда ключа нет.
var ErrCacheMiss = redis.Nil

// RedisCache - адаптер над *redis.Client, реализующий Cache.
type RedisCache struct {
	client *redis.Client
}

var _ Cache = (*RedisCache)(nil)

// NewRedis подключается к redis по адресу host:port. Возвращает nil при
// недоступности сервера - приложение продолжает работать без кэша.
func NewRedis(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, continuing without cache", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}

	logger.Info("Redis connected", "addr", addr)
	return &RedisCache{client: client}
}

// NewFromClient оборачивает уже созданный клиент (используется в тестах).
func NewFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *RedisCache) Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, key, val, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
