package service

import (
	"context"

	"github.com/red326/media-client-management/internal/model"
	"github.com/red326/media-client-management/internal/repository"
)

type VideoService struct {
	repo     *repository.VideoRepo
	creators *repository.CreatorRepo
}

func NewVideoService(repo *repository.VideoRepo, creators *repository.CreatorRepo) *VideoService {
	return &VideoService{repo: repo, creators: creators}
}

// List returns videos matching the filter with creator names resolved,
// newest upload first.
func (s *VideoService) List(ctx context.Context, filter model.VideoFilter) ([]model.VideoView, error) {
	videos, err := s.repo.ListVideos(ctx, filter)
	if err != nil {
		return nil, err
	}

	creators, err := s.creators.ListCreators(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(creators))
	for _, c := range creators {
		names[c.ID] = c.Name
	}

	views := make([]model.VideoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, model.VideoView{Video: v, CreatorName: names[v.CreatorID]})
	}
	return views, nil
}

// Lookup returns a single video with its creator name resolved.
func (s *VideoService) Lookup(ctx context.Context, id int64) (*model.VideoView, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &model.VideoView{Video: *v}
	if c, err := s.creators.FindByID(ctx, v.CreatorID); err == nil {
		view.CreatorName = c.Name
	}
	return view, nil
}
