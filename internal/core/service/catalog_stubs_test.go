package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubSpeciesRepo struct {
	items     []*domain.Species
	listCalls int
	listErr   error
	lastPage  ports.SpeciesPage
	// onList runs while List is in flight.
	onList func()
}

func (r *stubSpeciesRepo) List(_ context.Context, page ports.SpeciesPage) ([]*domain.Species, int64, error) {
	r.listCalls++
	r.lastPage = page
	if r.onList != nil {
		r.onList()
	}
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	total := int64(len(r.items))
	if page.Limit == 0 {
		return r.items, total, nil
	}
	skip := (page.Page - 1) * page.Limit
	if skip >= len(r.items) {
		return []*domain.Species{}, total, nil
	}
	end := skip + page.Limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return r.items[skip:end], total, nil
}

func (r *stubSpeciesRepo) FindByID(_ context.Context, id string) (*domain.Species, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSpeciesNotFound
}

func (r *stubSpeciesRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Species, error) {
	var out []*domain.Species
	for _, id := range ids {
		if s, err := r.FindByID(context.Background(), id); err == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSpeciesRepo) Create(_ context.Context, s *domain.Species) (*domain.Species, error) {
	clone := *s
	clone.ID = fmt.Sprintf("sp-%d", len(r.items)+1)
	r.items = append(r.items, &clone)
	return &clone, nil
}

func (r *stubSpeciesRepo) Update(_ context.Context, id string, patch domain.SpeciesPatch) (*domain.Species, error) {
	s, err := r.FindByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if patch.CommonName != nil {
		s.CommonName = *patch.CommonName
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	return s, nil
}

func (r *stubSpeciesRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.items {
		if s.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrSpeciesNotFound
}

type stubGardenRepo struct {
	byID map[string]*domain.Garden
}

func (r *stubGardenRepo) List(_ context.Context) ([]*domain.Garden, error) {
	out := make([]*domain.Garden, 0, len(r.byID))
	for _, g := range r.byID {
		out = append(out, g)
	}
	return out, nil
}

func (r *stubGardenRepo) FindByID(_ context.Context, id string) (*domain.Garden, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGardenNotFound
	}
	return g, nil
}

func (r *stubGardenRepo) Create(_ context.Context, g *domain.Garden) (*domain.Garden, error) {
	clone := *g
	clone.ID = fmt.Sprintf("g-%d", len(r.byID)+1)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubGardenRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrGardenNotFound
	}
	delete(r.byID, id)
	return nil
}

// memCache mimics the Redis cache: values go through JSON and each
// namespace carries a generation counter.
type memCache struct {
	entries     map[string][]byte
	generations map[string]int64
	loadErr     error
	storeErr    error
	hits        int
	stores      int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}, generations: map[string]int64{}}
}

func memKey(ns string, gen int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", ns, gen, key)
}

func (c *memCache) Load(_ context.Context, ns, key string, dst any) (bool, int64, error) {
	if c.loadErr != nil {
		return false, 0, c.loadErr
	}
	gen := c.generations[ns]
	b, ok := c.entries[memKey(ns, gen, key)]
	if !ok {
		return false, gen, nil
	}
	c.hits++
	return true, gen, json.Unmarshal(b, dst)
}

func (c *memCache) Store(_ context.Context, ns string, gen int64, key string, v any) error {
	c.stores++
	if c.storeErr != nil {
		return c.storeErr
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[memKey(ns, gen, key)] = b
	return nil
}

func (c *memCache) Invalidate(_ context.Context, ns string) error {
	c.generations[ns]++
	return nil
}
