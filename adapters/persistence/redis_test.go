package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

func TestRateLimiter_FailsOpenWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	res, err := NewRedisRateLimiter(rdb, logger.NewNopLogger()).Allow(context.Background(), "login:203.0.113.9", 5, time.Minute)

	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Remaining)
}

func TestRateLimiter_NonPositiveLimitAllows(t *testing.T) {
	res, err := NewRedisRateLimiter(nil, logger.NewNopLogger()).Allow(context.Background(), "login:x", 0, time.Minute)

	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
