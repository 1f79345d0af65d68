package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/ports"
)

// nopCache is used when no cache backend is configured.
type nopCache struct{}

func (nopCache) Load(context.Context, string, string, any) (bool, int64, error) { return false, 0, nil }
func (nopCache) Store(context.Context, string, int64, string, any) error        { return nil }
func (nopCache) Invalidate(context.Context, string) error                       { return nil }

// NopCache returns a ListCache that never hits.
func NopCache() ports.ListCache { return nopCache{} }

// cachedList serves namespace/key from cache, falling back to fetch. Cache
// errors are logged and never fail the request. The fetched result is stored
// under the generation observed before fetching; when that read failed the
// result is not stored at all.
func cachedList[T any](ctx context.Context, cache ports.ListCache, log zerolog.Logger, namespace, key string, fetch func() (T, error)) (T, error) {
	var out T
	hit, gen, err := cache.Load(ctx, namespace, key, &out)
	loaded := err == nil
	if err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache load failed")
	} else if hit {
		return out, nil
	}

	out, err = fetch()
	if err != nil {
		return out, err
	}

	if !loaded {
		return out, nil
	}
	if err := cache.Store(ctx, namespace, gen, key, out); err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache store failed")
	}
	return out, nil
}

func invalidate(ctx context.Context, cache ports.ListCache, log zerolog.Logger, namespace string) {
	if err := cache.Invalidate(ctx, namespace); err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache invalidation failed")
	}
}
