package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache кэш сериализованных записей поверх Redis строк
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

// Get возвращает значение и признак его наличия
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}

	return value, true, nil
}

// Set сохраняет значение без TTL, вытеснением управляет рейтинг
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// RedisRanker рейтинг популярности на отсортированном множестве Redis
type RedisRanker struct {
	client redis.Cmdable
}

func NewRedisRanker(client redis.Cmdable) *RedisRanker {
	return &RedisRanker{client: client}
}

func (r *RedisRanker) IncrementScore(ctx context.Context, setKey, member string) error {
	if err := r.client.ZIncrBy(ctx, setKey, 1, member).Err(); err != nil {
		return fmt.Errorf("redis zincrby %s: %w", setKey, err)
	}
	return nil
}

// Top возвращает участников с рангами 0..n по убыванию счёта, то есть до n+1 элементов.
// Лишний элемент позволяет вызывающему заметить переполнение множества.
func (r *RedisRanker) Top(ctx context.Context, setKey string, n int) ([]string, error) {
	members, err := r.client.ZRevRange(ctx, setKey, 0, int64(n)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrevrange %s: %w", setKey, err)
	}
	return members, nil
}

// RemoveLowest удаляет count участников с наименьшим счётом и возвращает их
func (r *RedisRanker) RemoveLowest(ctx context.Context, setKey string, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	popped, err := r.client.ZPopMin(ctx, setKey, int64(count)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zpopmin %s: %w", setKey, err)
	}

	members := make([]string, 0, len(popped))
	for _, z := range popped {
		if member, ok := z.Member.(string); ok {
			members = append(members, member)
		}
	}

	return members, nil
}

func (r *RedisRanker) RemoveMember(ctx context.Context, setKey, member string) error {
	if err := r.client.ZRem(ctx, setKey, member).Err(); err != nil {
		return fmt.Errorf("redis zrem %s: %w", setKey, err)
	}
	return nil
}
