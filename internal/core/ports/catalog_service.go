package ports

import (
	"context"

	"github.com/esas/tree-species-api/internal/core/domain"
)

// SpeciesListResult is one page of the species catalog.
type SpeciesListResult struct {
	Species []*domain.Species
	Current int
	Pages   int
}

type GardenService interface {
	ListGardens(ctx context.Context) ([]*domain.Garden, error)
	GetGarden(ctx context.Context, id string) (*domain.GardenDetail, error)
	PanoramicImage(ctx context.Context, id string) (string, error)
	CreateGarden(ctx context.Context, name string, lng, lat float64) (*domain.Garden, error)
	DeleteGarden(ctx context.Context, id string) error
}

type SpeciesService interface {
	ListSpecies(ctx context.Context, page SpeciesPage) (*SpeciesListResult, error)
	GetSpecies(ctx context.Context, id string) (*domain.Species, error)
	CreateSpecies(ctx context.Context, s *domain.Species) (*domain.Species, error)
	UpdateSpecies(ctx context.Context, id string, patch domain.SpeciesPatch) (*domain.Species, error)
	DeleteSpecies(ctx context.Context, id string) error
}

type VideoService interface {
	ListVideos(ctx context.Context) ([]*domain.Video, error)
	CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id string, v *domain.Video) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}

type PointService interface {
	ListPoints(ctx context.Context) ([]*domain.PointOfInterest, error)
	GetPoint(ctx context.Context, id string) (*domain.PointOfInterest, error)
	CreatePoint(ctx context.Context, p *domain.PointOfInterest) (*domain.PointOfInterest, error)
	UpdatePoint(ctx context.Context, id string, p *domain.PointOfInterest) (*domain.PointOfInterest, error)
	DeletePoint(ctx context.Context, id string) error
}
