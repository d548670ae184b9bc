package redis

import (
	"context"
	"time"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Cache struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	val, err := c.cli.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(val, dest)
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	if err := c.cli.Set(ctx, key, val, t).Err(); err != nil {
		zap.L().Debug("failed to set cache key", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Debug("failed to delete cache key", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	var cursor uint64
	for {
		keys, next, err := c.cli.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			zap.L().Debug(
				"failed to scan cache keys",
				zap.String("pattern", pattern),
				zap.Error(err),
			)
			return
		}

		if len(keys) > 0 {
			if err = c.cli.Del(ctx, keys...).Err(); err != nil {
				zap.L().Debug(
					"failed to delete cache keys",
					zap.String("pattern", pattern),
					zap.Error(err),
				)
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
