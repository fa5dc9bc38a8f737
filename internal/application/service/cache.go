package service

import (
	"context"
	"time"
)

// SectionCache stores rendered public sections. A section may hold several
// variants (e.g. "all" and "featured" for projects); Invalidate drops all of
// them at once.
type SectionCache interface {
	Get(ctx context.Context, section, variant string, dest any) (bool, error)
	Set(ctx context.Context, section, variant string, value any) error
	Invalidate(ctx context.Context, sections ...string) error
}

type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error)
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
