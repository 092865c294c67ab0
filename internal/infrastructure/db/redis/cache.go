package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

const (
	cachePrefix    = "catalog:films:"
	cacheKeyList   = cachePrefix + "list:"
	cacheKeyDetail = cachePrefix + "detail:"

	defaultCacheTTL = 5 * time.Minute
)

// CatalogCache is a read-through cache for film reads. Entries are JSON
// encoded and expire after the configured TTL; writes to the catalog drop
// the whole keyspace via Invalidate.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// GetList returns the cached film listing for keyword, or (nil, nil) on a
// cache miss.
func (c *CatalogCache) GetList(ctx context.Context, keyword string) ([]domain.Film, error) {
	raw, err := c.client.Get(ctx, cacheKeyList+keyword).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get list: %w", err)
	}

	var films []domain.Film
	if err := json.Unmarshal(raw, &films); err != nil {
		return nil, fmt.Errorf("cache decode list: %w", err)
	}
	return films, nil
}

func (c *CatalogCache) SetList(ctx context.Context, keyword string, films []domain.Film) error {
	raw, err := json.Marshal(films)
	if err != nil {
		return fmt.Errorf("cache encode list: %w", err)
	}
	return c.client.Set(ctx, cacheKeyList+keyword, raw, c.ttl).Err()
}

// GetDetail returns the cached film detail, or (nil, nil) on a cache miss.
func (c *CatalogCache) GetDetail(ctx context.Context, id string) (*ports.FilmDetail, error) {
	raw, err := c.client.Get(ctx, cacheKeyDetail+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get detail: %w", err)
	}

	var detail ports.FilmDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("cache decode detail: %w", err)
	}
	return &detail, nil
}

func (c *CatalogCache) SetDetail(ctx context.Context, id string, detail *ports.FilmDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("cache encode detail: %w", err)
	}
	return c.client.Set(ctx, cacheKeyDetail+id, raw, c.ttl).Err()
}

// Invalidate removes every cached film entry. Uses SCAN rather than KEYS so
// a large keyspace does not block the server.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, cachePrefix+"*", 100).Iterator()

	keys := make([]string, 0, 32)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
