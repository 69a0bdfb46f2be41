package subcategories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

func TestListPaginatesAtFive(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	items, total, err := svc.List(ctx, shared.ListFilters{Page: 1, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Equal(t, 7, total)
	require.Len(t, items, shared.DefaultPerPage)

	items, _, err = svc.List(ctx, shared.ListFilters{Page: 2, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestListSearchMatchesNameAndSlug(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	_, total, err := svc.List(ctx, shared.ListFilters{Search: "table", Page: 1, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	_, total, err = svc.List(ctx, shared.ListFilters{Search: "PHONES", Page: 1, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Equal(t, 2, total)
}

func TestCreateDefaultsParent(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSubcategoryRequest{Name: "Desks", Slug: "desks"})
	require.NoError(t, err)
	require.Equal(t, int64(8), created.ID)
	require.Equal(t, "None", created.Parent)
	require.Equal(t, 0, created.Count)

	_, err = svc.Create(ctx, CreateSubcategoryRequest{Name: " "})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestParentOptionsKeepFirstSeenOrder(t *testing.T) {
	svc := NewService(NewRepository())

	parents, err := svc.ParentOptions(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"None", "Electronics", "Furniture", "Audio", "Kitchen"}, parents)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	updated, err := svc.Update(ctx, 5, UpdateSubcategoryRequest{Name: "Earbuds", Slug: "earbuds", Parent: "Audio", Count: 4})
	require.NoError(t, err)
	require.Equal(t, "Earbuds", updated.Name)

	require.NoError(t, svc.Delete(ctx, 5))
	_, err = svc.Get(ctx, 5)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
