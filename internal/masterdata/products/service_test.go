package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

func TestSearchMatchesNameOrSKU(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	items, total, err := svc.List(ctx, shared.ListFilters{Search: "iphone"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "iPhone 14", items[0].Name)

	items, total, err = svc.List(ctx, shared.ListFilters{Search: "dxps13"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Dell XPS 13", items[0].Name)

	_, total, err = svc.List(ctx, shared.ListFilters{Search: "nonexistent"})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCreateStartsWithZeroStock(t *testing.T) {
	svc := NewService(NewRepository())

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name: "Sony WH-1000XM5", SKU: "SNYWH-XM5", Category: "Electronics",
		Subcategory: "Headphones", Brand: "Sony", Unit: "pcs", Price: 399,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), created.ID)
	require.Zero(t, created.Stock)
	require.InDelta(t, 399, created.Price, 0.001)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := NewService(NewRepository())

	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "  ", SKU: "X"})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestEditAndDelete(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	updated, err := svc.Update(ctx, 4, UpdateProductRequest{
		Name: "IKEA Chair", SKU: "IKCHR-001", Category: "Furniture",
		Subcategory: "Chairs", Brand: "IKEA", Unit: "pcs", Price: 129,
		Description: "Comfortable office chair", Stock: 15,
	})
	require.NoError(t, err)
	require.InDelta(t, 129, updated.Price, 0.001)

	require.NoError(t, svc.Delete(ctx, 4))
	_, err = svc.Get(ctx, 4)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
