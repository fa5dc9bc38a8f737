package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const (
	sectionKeyPrefix   = "portfolio:section:"
	rateLimitKeyPrefix = "portfolio:ratelimit:"
	denylistKeyPrefix  = "portfolio:revoked:"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.Addr,
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		PoolSize:        10,
		MinIdleConns:    2,
		PoolTimeout:     4 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.", zap.String("addr", cfg.Redis.Addr))
	return rdb, nil
}

// Section cache

type redisSectionCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisSectionCache keeps one hash per section; each field is a variant.
func NewRedisSectionCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) service.SectionCache {
	return &redisSectionCache{rdb: rdb, ttl: ttl, logger: log}
}

func sectionKey(section string) string {
	return sectionKeyPrefix + section
}

func (c *redisSectionCache) Get(ctx context.Context, section, variant string, dest any) (bool, error) {
	raw, err := c.rdb.HGet(ctx, sectionKey(section), variant).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read section cache %s/%s: %w", section, variant, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("Dropping undecodable cache entry", zap.String("section", section), zap.String("variant", variant), zap.Error(err))
		c.rdb.HDel(ctx, sectionKey(section), variant)
		return false, nil
	}
	return true, nil
}

func (c *redisSectionCache) Set(ctx context.Context, section, variant string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode section cache %s/%s: %w", section, variant, err)
	}
	key := sectionKey(section)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, variant, raw)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write section cache %s/%s: %w", section, variant, err)
	}
	return nil
}

func (c *redisSectionCache) Invalidate(ctx context.Context, sections ...string) error {
	if len(sections) == 0 {
		return nil
	}
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, sectionKey(s))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate sections %v: %w", sections, err)
	}
	return nil
}

// Rate limiter

// fixedWindowScript counts hits in the current window and starts the window
// on the first hit. Returns {count, remaining ttl in ms}.
var fixedWindowScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('PTTL', KEYS[1])
	return {count, ttl}
`)

type redisRateLimiter struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisRateLimiter(rdb *redis.Client, log logger.Logger) service.RateLimiter {
	return &redisRateLimiter{rdb: rdb, logger: log}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*service.RateLimitResult, error) {
	if limit <= 0 {
		return &service.RateLimitResult{Allowed: true, Remaining: 0}, nil
	}

	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{rateLimitKeyPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		// Fail open on Redis errors.
		l.logger.Warn("Rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
		return &service.RateLimitResult{Allowed: true, Remaining: limit}, nil
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	result := &service.RateLimitResult{
		Allowed:   count <= limit,
		Remaining: max(limit-count, 0),
	}
	if !result.Allowed {
		result.RetryAfter = max(ttl, 0)
	}
	return result, nil
}

// Token denylist

type redisTokenDenylist struct {
	rdb *redis.Client
}

func NewRedisTokenDenylist(rdb *redis.Client) service.TokenDenylist {
	return &redisTokenDenylist{rdb: rdb}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.rdb.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
