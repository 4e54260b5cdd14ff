package ports

import (
	"context"
	"time"
)

// RateProvider supplies the current USD→RUB conversion rate.
//
// Implementations never fail: on any fetch or parse problem they return a
// configured fallback rate instead, trading cost accuracy for availability.
type RateProvider interface {
	Rate(ctx context.Context) float64
}

// CacheStore is a keyed string cache with per-entry time-to-live.
// A miss is reported through the boolean, not an error; infrastructure
// problems degrade to misses.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
