package products

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Create appends a product with zeroed stock; the stock panel owns per-store
// balances.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := shared.Validate(req); err != nil {
		return Product{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return Product{}, fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Brand:       req.Brand,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		Stock:       0,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	if err := s.repo.Update(ctx, id, Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Brand:       req.Brand,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		Stock:       req.Stock,
	}); err != nil {
		return Product{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
