package currency

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"parcels/internal/core/ports"
)

// CacheKey is the cache entry holding the USD to RUB rate.
// The key name is shared infrastructure vocabulary; changing it orphans
// entries written by earlier deployments.
const CacheKey = "currency:usd_to_rub"

// FallbackRate is used when both the cache and the feed are unavailable.
// Costing must never block on the rate, so a stale-ish constant beats an
// error.
const FallbackRate = 75.0

// rateFetcher is the feed-facing half of the provider.
type rateFetcher interface {
	Fetch(ctx context.Context) (float64, error)
}

// CachedRateProvider implements ports.RateProvider with a cache-aside lookup:
// cache hit wins, a miss goes to the feed and refills the cache, and any
// failure on the way falls back to FallbackRate.
//
// Concurrent misses may each hit the feed once; the feed is cheap and the
// window is one cache TTL, so no singleflight is layered on top.
type CachedRateProvider struct {
	cache   ports.CacheStore
	fetcher rateFetcher
	ttl     time.Duration
	logger  *slog.Logger
}

// NewCachedRateProvider creates a rate provider over the given cache and
// feed client. ttl bounds how long a fetched rate is reused.
func NewCachedRateProvider(
	cache ports.CacheStore,
	fetcher rateFetcher,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedRateProvider {
	return &CachedRateProvider{
		cache:   cache,
		fetcher: fetcher,
		ttl:     ttl,
		logger:  logger,
	}
}

// Rate returns the current USD to RUB rate. It never fails: a cache hit is
// served as-is, a miss is fetched and cached, and on fetch failure the
// fallback rate is returned without caching it.
func (p *CachedRateProvider) Rate(ctx context.Context) float64 {
	if cached, ok := p.cache.Get(ctx, CacheKey); ok {
		rate, err := strconv.ParseFloat(cached, 64)
		if err == nil && rate > 0 {
			return rate
		}
		// Unparseable entries are evicted so they cannot pin the cache.
		p.logger.WarnContext(ctx, "dropping malformed cached rate",
			slog.String("value", cached))
		p.cache.Delete(ctx, CacheKey)
	}

	rate, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "rate feed unavailable, using fallback rate",
			slog.Float64("fallback", FallbackRate),
			slog.Any("error", err))
		return FallbackRate
	}

	p.cache.Set(ctx, CacheKey, strconv.FormatFloat(rate, 'f', -1, 64), p.ttl)
	return rate
}
