package ports

import (
	"context"

	"github.com/esas/tree-species-api/internal/core/domain"
)

// Catalog repositories report a malformed id as domain.ErrInvalidID and a
// missing document as the entity's not-found sentinel.

type GardenRepository interface {
	List(ctx context.Context) ([]*domain.Garden, error)
	FindByID(ctx context.Context, id string) (*domain.Garden, error)
	Create(ctx context.Context, g *domain.Garden) (*domain.Garden, error)
	Delete(ctx context.Context, id string) error
}

// SpeciesPage selects a window of the species list. Limit 0 means no limit.
type SpeciesPage struct {
	Page  int
	Limit int
}

type SpeciesRepository interface {
	List(ctx context.Context, page SpeciesPage) ([]*domain.Species, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Species, error)
	// FindByIDs returns the species among ids that exist, skipping unknown
	// or malformed ids.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Species, error)
	Create(ctx context.Context, s *domain.Species) (*domain.Species, error)
	Update(ctx context.Context, id string, patch domain.SpeciesPatch) (*domain.Species, error)
	Delete(ctx context.Context, id string) error
}

type VideoRepository interface {
	List(ctx context.Context) ([]*domain.Video, error)
	Create(ctx context.Context, v *domain.Video) (*domain.Video, error)
	Replace(ctx context.Context, id string, v *domain.Video) (*domain.Video, error)
	Delete(ctx context.Context, id string) error
}

type PointRepository interface {
	List(ctx context.Context) ([]*domain.PointOfInterest, error)
	FindByID(ctx context.Context, id string) (*domain.PointOfInterest, error)
	Create(ctx context.Context, p *domain.PointOfInterest) (*domain.PointOfInterest, error)
	Replace(ctx context.Context, id string, p *domain.PointOfInterest) (*domain.PointOfInterest, error)
	Delete(ctx context.Context, id string) error
}

// ListCache stores serialized list results under a namespace. Invalidate
// drops every entry of the namespace at once.
//
// Load reports the namespace generation it read; Store writes under that
// generation, so a result fetched before an Invalidate is never served after it.
type ListCache interface {
	Load(ctx context.Context, namespace, key string, dst any) (hit bool, gen int64, err error)
	Store(ctx context.Context, namespace string, gen int64, key string, value any) error
	Invalidate(ctx context.Context, namespace string) error
}
