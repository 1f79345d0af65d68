package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

type PointService struct {
	repo   ports.PointRepository
	logger zerolog.Logger
}

func NewPointService(repo ports.PointRepository, logger zerolog.Logger) *PointService {
	return &PointService{repo: repo, logger: logger}
}

func (s *PointService) ListPoints(ctx context.Context) ([]*domain.PointOfInterest, error) {
	return s.repo.List(ctx)
}

func (s *PointService) GetPoint(ctx context.Context, id string) (*domain.PointOfInterest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PointService) CreatePoint(ctx context.Context, p *domain.PointOfInterest) (*domain.PointOfInterest, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create point of interest: %w", err)
	}
	s.logger.Info().Str("point_id", created.ID).Msg("point of interest created")
	return created, nil
}

func (s *PointService) UpdatePoint(ctx context.Context, id string, p *domain.PointOfInterest) (*domain.PointOfInterest, error) {
	return s.repo.Replace(ctx, id, p)
}

func (s *PointService) DeletePoint(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("point_id", id).Msg("point of interest deleted")
	return nil
}
