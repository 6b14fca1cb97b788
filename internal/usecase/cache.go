package usecase

import (
	"context"
	"time"
)

// Cache is the read-through cache in front of the catalog listings. A nil or
// unavailable cache degrades to plain store reads; it never fails a request.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	skillCatalogCacheKey       = "catalog:skills"
	recommendedCoursesCacheKey = "catalog:courses:recommended"

	skillCatalogCacheTTL       = 10 * time.Minute
	recommendedCoursesCacheTTL = 5 * time.Minute
)
