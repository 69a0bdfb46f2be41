package brands

import (
	"context"
	"fmt"
	"strings"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Brand, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Brand, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateBrandRequest) (Brand, error) {
	if err := shared.Validate(req); err != nil {
		return Brand{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return Brand{}, fmt.Errorf("%w: brand name is required", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, Brand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Count:       0,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBrandRequest) (Brand, error) {
	if err := s.repo.Update(ctx, id, Brand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Count:       req.Count,
	}); err != nil {
		return Brand{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
