package service

import (
	"context"

	"github.com/red326/media-client-management/internal/model"
	"github.com/red326/media-client-management/internal/repository"
)

type CreatorService struct {
	repo *repository.CreatorRepo
}

func NewCreatorService(repo *repository.CreatorRepo) *CreatorService {
	return &CreatorService{repo: repo}
}

// List returns the creator snapshot, name ascending.
func (s *CreatorService) List(ctx context.Context) ([]model.Creator, error) {
	return s.repo.ListCreators(ctx)
}

// Lookup returns a single creator by ID.
func (s *CreatorService) Lookup(ctx context.Context, id int64) (*model.Creator, error) {
	return s.repo.FindByID(ctx, id)
}

// Categories returns the distinct category labels in use.
func (s *CreatorService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}
