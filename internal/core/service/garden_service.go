package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

const gardensNamespace = "gardens"

type GardenService struct {
	gardens ports.GardenRepository
	species ports.SpeciesRepository
	cache   ports.ListCache
	logger  zerolog.Logger
}

func NewGardenService(gardens ports.GardenRepository, species ports.SpeciesRepository, cache ports.ListCache, logger zerolog.Logger) *GardenService {
	if cache == nil {
		cache = NopCache()
	}
	return &GardenService{gardens: gardens, species: species, cache: cache, logger: logger}
}

func (s *GardenService) ListGardens(ctx context.Context) ([]*domain.Garden, error) {
	return cachedList(ctx, s.cache, s.logger, gardensNamespace, "all", func() ([]*domain.Garden, error) {
		return s.gardens.List(ctx)
	})
}

// GetGarden returns the garden with its trees resolved to species.
func (s *GardenService) GetGarden(ctx context.Context, id string) (*domain.GardenDetail, error) {
	g, err := s.gardens.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trees := []*domain.Species{}
	if len(g.TreeIDs) > 0 {
		trees, err = s.species.FindByIDs(ctx, g.TreeIDs)
		if err != nil {
			return nil, fmt.Errorf("get garden: load trees: %w", err)
		}
	}

	return &domain.GardenDetail{
		ID:             g.ID,
		Name:           g.Name,
		Location:       g.Location,
		Trees:          trees,
		PanoramicImage: g.PanoramicImage,
	}, nil
}

func (s *GardenService) PanoramicImage(ctx context.Context, id string) (string, error) {
	g, err := s.gardens.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return g.PanoramicImage, nil
}

func (s *GardenService) CreateGarden(ctx context.Context, name string, lng, lat float64) (*domain.Garden, error) {
	created, err := s.gardens.Create(ctx, &domain.Garden{
		Name:     name,
		Location: domain.NewGeoPoint(lng, lat),
		TreeIDs:  []string{},
	})
	if err != nil {
		return nil, fmt.Errorf("create garden: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, gardensNamespace)
	s.logger.Info().Str("garden_id", created.ID).Msg("garden created")
	return created, nil
}

func (s *GardenService) DeleteGarden(ctx context.Context, id string) error {
	if err := s.gardens.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, gardensNamespace)
	s.logger.Info().Str("garden_id", id).Msg("garden deleted")
	return nil
}
