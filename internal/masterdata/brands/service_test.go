package brands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

func TestListSearchesByName(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	items, total, err := svc.List(ctx, shared.ListFilters{Search: "s", Page: 1, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, items, 2)

	items, total, err = svc.List(ctx, shared.ListFilters{Page: 1, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Equal(t, 6, total)
	require.Len(t, items, shared.DefaultPerPage)

	items, _, err = svc.List(ctx, shared.ListFilters{Page: 2, PerPage: shared.DefaultPerPage})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "LG", items[0].Name)
}

func TestCreateStartsWithZeroCount(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBrandRequest{Name: "Bose", Slug: "bose", Description: "Audio"})
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)
	require.Equal(t, 0, created.Count)

	_, err = svc.Create(ctx, CreateBrandRequest{Name: "   "})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestUpdateReplacesRecord(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	updated, err := svc.Update(ctx, 3, UpdateBrandRequest{Name: "Sony Group", Slug: "sony-group", Description: "Electronics", Count: 12})
	require.NoError(t, err)
	require.Equal(t, "Sony Group", updated.Name)
	require.Equal(t, 12, updated.Count)

	_, total, err := svc.List(ctx, shared.ListFilters{Page: 1, PerPage: 100})
	require.NoError(t, err)
	require.Equal(t, 6, total)
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	_, err := svc.Get(ctx, 1)
	require.ErrorIs(t, err, httpx.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, 99), httpx.ErrNotFound)
}
