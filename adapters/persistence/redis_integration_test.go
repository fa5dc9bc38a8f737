package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type RedisIntegrationTestSuite struct {
	suite.Suite
	rdb            *redis.Client
	redisContainer *tcredis.RedisContainer

	cache    service.SectionCache
	limiter  service.RateLimiter
	denylist service.TokenDenylist
}

func (s *RedisIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.redisContainer = redisContainer

	uri, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}
	opts, err := redis.ParseURL(uri)
	if err != nil {
		s.T().Fatalf("Failed to parse redis url: %s", err)
	}
	s.rdb = redis.NewClient(opts)

	log := logger.NewNopLogger()
	s.cache = NewRedisSectionCache(s.rdb, time.Minute, log)
	s.limiter = NewRedisRateLimiter(s.rdb, log)
	s.denylist = NewRedisTokenDenylist(s.rdb)
}

func (s *RedisIntegrationTestSuite) TearDownSuite() {
	if s.rdb != nil {
		s.rdb.Close()
	}
	if s.redisContainer != nil {
		if err := s.redisContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate redis container: %s", err)
		}
	}
}

func (s *RedisIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushDB(context.Background()).Err())
}

func TestRedisIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RedisIntegrationTestSuite))
}

type cachedTitles struct {
	Titles []string `json:"titles"`
}

func (s *RedisIntegrationTestSuite) TestSectionCache_VariantsShareOneKey() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "projects", "all", cachedTitles{Titles: []string{"a", "b"}}))
	s.Require().NoError(s.cache.Set(ctx, "projects", "featured", cachedTitles{Titles: []string{"b"}}))

	var got cachedTitles
	hit, err := s.cache.Get(ctx, "projects", "featured", &got)
	s.Require().NoError(err)
	s.True(hit)
	s.Equal([]string{"b"}, got.Titles)

	ttl, err := s.rdb.TTL(ctx, sectionKey("projects")).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)

	hit, err = s.cache.Get(ctx, "skills", "all", &got)
	s.Require().NoError(err)
	s.False(hit)
}

func (s *RedisIntegrationTestSuite) TestSectionCache_InvalidateDropsEveryVariant() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "projects", "all", cachedTitles{Titles: []string{"a"}}))
	s.Require().NoError(s.cache.Set(ctx, "projects", "featured", cachedTitles{}))
	s.Require().NoError(s.cache.Set(ctx, "skills", "all", cachedTitles{Titles: []string{"go"}}))

	s.Require().NoError(s.cache.Invalidate(ctx, "projects"))

	var got cachedTitles
	for _, variant := range []string{"all", "featured"} {
		hit, err := s.cache.Get(ctx, "projects", variant, &got)
		s.Require().NoError(err)
		s.False(hit, variant)
	}
	hit, err := s.cache.Get(ctx, "skills", "all", &got)
	s.Require().NoError(err)
	s.True(hit)
}

func (s *RedisIntegrationTestSuite) TestSectionCache_DropsUndecodableEntry() {
	ctx := context.Background()
	s.Require().NoError(s.rdb.HSet(ctx, sectionKey("quotes"), "random", "{broken").Err())

	var got cachedTitles
	hit, err := s.cache.Get(ctx, "quotes", "random", &got)
	s.Require().NoError(err)
	s.False(hit)

	exists, err := s.rdb.HExists(ctx, sectionKey("quotes"), "random").Result()
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RedisIntegrationTestSuite) TestRateLimiter_FixedWindow() {
	ctx := context.Background()

	res, err := s.limiter.Allow(ctx, "login:203.0.113.9", 2, time.Minute)
	s.Require().NoError(err)
	s.True(res.Allowed)
	s.Equal(1, res.Remaining)

	pttl, err := s.rdb.PTTL(ctx, rateLimitKeyPrefix+"login:203.0.113.9").Result()
	s.Require().NoError(err)
	s.Greater(pttl, time.Duration(0))
	s.LessOrEqual(pttl, time.Minute)

	res, err = s.limiter.Allow(ctx, "login:203.0.113.9", 2, time.Minute)
	s.Require().NoError(err)
	s.True(res.Allowed)
	s.Equal(0, res.Remaining)

	res, err = s.limiter.Allow(ctx, "login:203.0.113.9", 2, time.Minute)
	s.Require().NoError(err)
	s.False(res.Allowed)
	s.Equal(0, res.Remaining)
	s.Greater(res.RetryAfter, time.Duration(0))
	s.LessOrEqual(res.RetryAfter, time.Minute)

	res, err = s.limiter.Allow(ctx, "login:198.51.100.7", 2, time.Minute)
	s.Require().NoError(err)
	s.True(res.Allowed)
}

func (s *RedisIntegrationTestSuite) TestRateLimiter_WindowResets() {
	ctx := context.Background()
	window := 200 * time.Millisecond

	for range 2 {
		_, err := s.limiter.Allow(ctx, "contact:203.0.113.9", 1, window)
		s.Require().NoError(err)
	}
	time.Sleep(2 * window)

	res, err := s.limiter.Allow(ctx, "contact:203.0.113.9", 1, window)
	s.Require().NoError(err)
	s.True(res.Allowed)
}

func (s *RedisIntegrationTestSuite) TestTokenDenylist() {
	ctx := context.Background()

	s.Require().NoError(s.denylist.Revoke(ctx, "jti-1", time.Minute))
	revoked, err := s.denylist.IsRevoked(ctx, "jti-1")
	s.Require().NoError(err)
	s.True(revoked)

	ttl, err := s.rdb.TTL(ctx, denylistKeyPrefix+"jti-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)

	s.Require().NoError(s.denylist.Revoke(ctx, "jti-expired", 0))
	revoked, err = s.denylist.IsRevoked(ctx, "jti-expired")
	s.Require().NoError(err)
	s.False(revoked)
}
