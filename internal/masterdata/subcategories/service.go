package subcategories

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Subcategory, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Subcategory, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateSubcategoryRequest) (Subcategory, error) {
	if err := shared.Validate(req); err != nil {
		return Subcategory{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return Subcategory{}, fmt.Errorf("%w: subcategory name is required", httpx.ErrValidation)
	}
	if req.Parent == "" {
		req.Parent = "None"
	}
	return s.repo.Create(ctx, Subcategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Parent:      req.Parent,
		Count:       0,
		Description: req.Description,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateSubcategoryRequest) (Subcategory, error) {
	if err := s.repo.Update(ctx, id, Subcategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Parent:      req.Parent,
		Count:       req.Count,
		Description: req.Description,
	}); err != nil {
		return Subcategory{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ParentOptions(ctx context.Context) ([]string, error) {
	parents, err := s.repo.ParentNames(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{"None"}, parents...), nil
}
