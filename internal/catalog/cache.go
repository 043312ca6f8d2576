package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/legday/internal/telemetry/metrics"
	"github.com/2beens/legday/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	catalogCacheKey    = "catalog"
	splitsCacheKeyTmpl = "splits::%d"
)

type source interface {
	GetCatalog(ctx context.Context) (Catalog, error)
	GetSplits(ctx context.Context, programID int) ([]Split, error)
}

// CachedSource keeps the catalog and the split lists in a freecache.
// The catalog changes only when seeded, so a short TTL is enough.
type CachedSource struct {
	src     source
	cache   *freecache.Cache
	ttlSecs int
	metrics *metrics.Manager
}

func NewCachedSource(src source, sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *CachedSource {
	megabyte := 1024 * 1024
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &CachedSource{
		src:     src,
		cache:   freecache.NewCache(sizeMB * megabyte),
		ttlSecs: int(ttl.Seconds()),
		metrics: metricsManager,
	}
}

func (c *CachedSource) GetCatalog(ctx context.Context) (_ Catalog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var catalog Catalog
	if c.lookup(catalogCacheKey, &catalog) {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return catalog, nil
	}

	catalog, err = c.src.GetCatalog(ctx)
	if err != nil {
		return Catalog{}, err
	}
	c.store(catalogCacheKey, catalog)
	return catalog, nil
}

func (c *CachedSource) GetSplits(ctx context.Context, programID int) (_ []Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.catalog.splits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := fmt.Sprintf(splitsCacheKeyTmpl, programID)
	var splits []Split
	if c.lookup(key, &splits) {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return splits, nil
	}

	splits, err = c.src.GetSplits(ctx, programID)
	if err != nil {
		return nil, err
	}
	c.store(key, splits)
	return splits, nil
}

func (c *CachedSource) lookup(key string, dst any) bool {
	cachedBytes, err := c.cache.Get([]byte(key))
	if err != nil {
		c.count("miss")
		return false
	}
	if err := json.Unmarshal(cachedBytes, dst); err != nil {
		log.Errorf("failed to unmarshal cached [%s]: %s", key, err)
		c.count("miss")
		return false
	}
	log.Tracef("found [%s] in cache", key)
	c.count("hit")
	return true
}

func (c *CachedSource) store(key string, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal [%s] for cache: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), valueBytes, c.ttlSecs); err != nil {
		log.Errorf("failed to write [%s] to cache: %s", key, err)
	}
}

func (c *CachedSource) count(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterCatalogCache.WithLabelValues(result).Inc()
}
