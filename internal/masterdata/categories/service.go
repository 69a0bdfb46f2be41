package categories

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Category, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	if err := shared.Validate(req); err != nil {
		return Category{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	parent := req.Parent
	if parent == "" {
		parent = "None"
	}
	return s.repo.Create(ctx, Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Parent:      parent,
		Count:       0,
		Description: req.Description,
	})
}

// Update replaces the record in place. The edit dialog hands back the full
// record and the source applies it without validation.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (Category, error) {
	if err := s.repo.Update(ctx, id, Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Parent:      req.Parent,
		Count:       req.Count,
		Description: req.Description,
	}); err != nil {
		return Category{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the record unconditionally; records referencing the deleted
// name as their parent keep the dangling string.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ParentOptions(ctx context.Context) ([]string, error) {
	roots, err := s.repo.RootNames(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{"None"}, roots...), nil
}
