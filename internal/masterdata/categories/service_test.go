package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

func TestListSearchAndPagination(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	items, total, err := svc.List(ctx, shared.ListFilters{Page: 1, PerPage: 5})
	require.NoError(t, err)
	require.Equal(t, 10, total)
	require.Len(t, items, 5)

	items, total, err = svc.List(ctx, shared.ListFilters{Page: 2, PerPage: 5})
	require.NoError(t, err)
	require.Equal(t, 10, total)
	require.Len(t, items, 5)
	require.Equal(t, "Accessories", items[0].Name)

	// Search is case-insensitive over name and slug.
	items, total, err = svc.List(ctx, shared.ListFilters{Search: "ELECTRON"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Electronics", items[0].Name)

	items, total, err = svc.List(ctx, shared.ListFilters{Search: "home-decor"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Home Decor", items[0].Name)
}

func TestPageNeverExceedsPerPage(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	for _, q := range []string{"", "e", "a", "zzz"} {
		for page := 1; page <= 4; page++ {
			items, total, err := svc.List(ctx, shared.ListFilters{Search: q, Page: page, PerPage: 5})
			require.NoError(t, err)
			require.LessOrEqual(t, len(items), 5)
			require.LessOrEqual(t, len(items), total)
		}
	}
}

func TestCreateAssignsFreshIDAndZeroCount(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCategoryRequest{Name: "Gaming", Slug: "gaming", Parent: "Electronics"})
	require.NoError(t, err)
	require.Equal(t, int64(11), created.ID)
	require.Zero(t, created.Count)

	_, total, err := svc.List(ctx, shared.ListFilters{PerPage: 100})
	require.NoError(t, err)
	require.Equal(t, 11, total)

	// IDs stay unique under repeated creation.
	again, err := svc.Create(ctx, CreateCategoryRequest{Name: "Wearables"})
	require.NoError(t, err)
	require.NotEqual(t, created.ID, again.ID)
	require.Equal(t, "None", again.Parent)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCategoryRequest{Name: "   "})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, CreateCategoryRequest{})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, total, err := svc.List(ctx, shared.ListFilters{PerPage: 100})
	require.NoError(t, err)
	require.Equal(t, 10, total)
}

func TestUpdateReplacesExactlyOneRecord(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	before, _, err := svc.List(ctx, shared.ListFilters{PerPage: 100})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 3, UpdateCategoryRequest{Name: "Office Furniture", Slug: "office-furniture", Parent: "None", Count: 8})
	require.NoError(t, err)
	require.Equal(t, int64(3), updated.ID)
	require.Equal(t, "Office Furniture", updated.Name)

	after, total, err := svc.List(ctx, shared.ListFilters{PerPage: 100})
	require.NoError(t, err)
	require.Equal(t, len(before), total)
	for i := range after {
		if after[i].ID == 3 {
			require.Equal(t, "Office Furniture", after[i].Name)
			continue
		}
		require.Equal(t, before[i], after[i])
	}
}

func TestDeleteIsUnconditional(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	// Electronics is referenced as parent by other rows; delete proceeds anyway.
	require.NoError(t, svc.Delete(ctx, 1))

	items, total, err := svc.List(ctx, shared.ListFilters{PerPage: 100})
	require.NoError(t, err)
	require.Equal(t, 9, total)
	for _, c := range items {
		require.NotEqual(t, int64(1), c.ID)
	}

	err = svc.Delete(ctx, 1)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestParentOptionsListsRootsAfterNone(t *testing.T) {
	svc := NewService(NewRepository())

	opts, err := svc.ParentOptions(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"None", "Electronics", "Furniture", "Kitchen", "Home Decor"}, opts)
}
