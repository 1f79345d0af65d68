package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

const (
	speciesNamespace = "species"
	maxSpeciesLimit  = 100
)

type SpeciesService struct {
	repo   ports.SpeciesRepository
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewSpeciesService(repo ports.SpeciesRepository, cache ports.ListCache, logger zerolog.Logger) *SpeciesService {
	if cache == nil {
		cache = NopCache()
	}
	return &SpeciesService{repo: repo, cache: cache, logger: logger}
}

// ListSpecies returns one page of species. A zero limit returns everything
// as a single page.
func (s *SpeciesService) ListSpecies(ctx context.Context, page ports.SpeciesPage) (*ports.SpeciesListResult, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 0 {
		page.Limit = 0
	}
	if page.Limit > maxSpeciesLimit {
		page.Limit = maxSpeciesLimit
	}

	key := fmt.Sprintf("page=%d:limit=%d", page.Page, page.Limit)
	return cachedList(ctx, s.cache, s.logger, speciesNamespace, key, func() (*ports.SpeciesListResult, error) {
		items, total, err := s.repo.List(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("list species: %w", err)
		}
		return &ports.SpeciesListResult{
			Species: items,
			Current: page.Page,
			Pages:   pageCount(total, page.Limit),
		}, nil
	})
}

func pageCount(total int64, limit int) int {
	if limit <= 0 || total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func (s *SpeciesService) GetSpecies(ctx context.Context, id string) (*domain.Species, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SpeciesService) CreateSpecies(ctx context.Context, sp *domain.Species) (*domain.Species, error) {
	created, err := s.repo.Create(ctx, sp)
	if err != nil {
		return nil, fmt.Errorf("create species: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, speciesNamespace)
	s.logger.Info().Str("species_id", created.ID).Msg("species created")
	return created, nil
}

func (s *SpeciesService) UpdateSpecies(ctx context.Context, id string, patch domain.SpeciesPatch) (*domain.Species, error) {
	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, speciesNamespace)
	return updated, nil
}

func (s *SpeciesService) DeleteSpecies(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, speciesNamespace)
	s.logger.Info().Str("species_id", id).Msg("species deleted")
	return nil
}
