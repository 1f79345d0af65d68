package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/domain"
	"github.com/esas/tree-species-api/internal/core/ports"
)

type VideoService struct {
	repo   ports.VideoRepository
	logger zerolog.Logger
}

func NewVideoService(repo ports.VideoRepository, logger zerolog.Logger) *VideoService {
	return &VideoService{repo: repo, logger: logger}
}

func (s *VideoService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	return s.repo.List(ctx)
}

func (s *VideoService) CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	created, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	s.logger.Info().Str("video_id", created.ID).Msg("video created")
	return created, nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, id string, v *domain.Video) (*domain.Video, error) {
	return s.repo.Replace(ctx, id, v)
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("video_id", id).Msg("video deleted")
	return nil
}
