// cache — необязательный read-through кэш валидации access-токенов поверх Redis.
// Хранилище остаётся источником истины: кэш хранит только положительные
// результаты и не переживает ротацию пары.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=../../mocks/mock_cache.go -package=mocks

// AccessEntry описывает данные, которые хранятся в Redis по хэшу access-токена.
type AccessEntry struct {
	Username  string
	ExpiresAt time.Time
}

// AccessCache — минимальный контракт кэша access-токенов.
type AccessCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, hash string) (*AccessEntry, bool, error)
	// Set сохраняет запись на min(ttl, максимального TTL кэша).
	Set(ctx context.Context, hash string, e *AccessEntry, ttl time.Duration) error
	// Delete удаляет запись (после ротации пары).
	Delete(ctx context.Context, hash string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	maxTTL time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "oauth:at:". maxTTL <= 0 снимает верхнюю границу.
func NewRedisCache(ctx context.Context, redisURL, prefix string, maxTTL time.Duration) (AccessCache, error) {
	if prefix == "" {
		prefix = "oauth:at:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, maxTTL: maxTTL}, nil
}

func (c *redisCache) key(hash string) string { return c.prefix + hash }

// Храним как Redis Hash с полями: usr, exp (unix nano).
func (c *redisCache) Get(ctx context.Context, hash string) (*AccessEntry, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(hash)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	username, ok := m["usr"]
	if !ok || username == "" {
		return nil, false, errors.New("cache: entry without username")
	}

	expNano, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &AccessEntry{
		Username:  username,
		ExpiresAt: time.Unix(0, expNano).UTC(),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, hash string, e *AccessEntry, ttl time.Duration) error {
	if c.maxTTL > 0 && ttl > c.maxTTL {
		ttl = c.maxTTL
	}
	if ttl <= 0 {
		return nil
	}

	kv := map[string]string{
		"usr": e.Username,
		"exp": strconv.FormatInt(e.ExpiresAt.UnixNano(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(hash), kv)
	pipe.PExpire(ctx, c.key(hash), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Delete(ctx context.Context, hash string) error {
	return c.rdb.Del(ctx, c.key(hash)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
