package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

func TestAdjustAddAndReduce(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	entry, err := svc.Adjust(ctx, AdjustStockRequest{ProductID: 1, Store: "Store A", Op: OpAdd, Quantity: 10, Reason: "purchase"})
	require.NoError(t, err)
	require.Equal(t, 60, entry.Stock)

	entry, err = svc.Adjust(ctx, AdjustStockRequest{ProductID: 1, Store: "Store A", Op: OpReduce, Quantity: 15, Reason: "damaged"})
	require.NoError(t, err)
	require.Equal(t, 45, entry.Stock)
}

func TestReduceClampsAtZero(t *testing.T) {
	svc := NewService(NewRepository())

	// Store C holds 5 Dell XPS 13; reducing by more yields zero, not negative.
	entry, err := svc.Adjust(context.Background(), AdjustStockRequest{ProductID: 3, Store: "Store C", Op: OpReduce, Quantity: 50})
	require.NoError(t, err)
	require.Zero(t, entry.Stock)
}

func TestAdjustRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	for _, qty := range []int{0, -3} {
		_, err := svc.Adjust(ctx, AdjustStockRequest{ProductID: 1, Store: "Store A", Op: OpAdd, Quantity: qty})
		require.ErrorIs(t, err, httpx.ErrValidation)
	}

	// Balance untouched after the rejections.
	entry, err := svc.repo.Get(ctx, 1, "Store A")
	require.NoError(t, err)
	require.Equal(t, 50, entry.Stock)
}

func TestAdjustUnknownTargets(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	_, err := svc.Adjust(ctx, AdjustStockRequest{ProductID: 99, Store: "Store A", Op: OpAdd, Quantity: 1})
	require.ErrorIs(t, err, httpx.ErrNotFound)

	_, err = svc.Adjust(ctx, AdjustStockRequest{ProductID: 1, Store: "Store Z", Op: OpAdd, Quantity: 1})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestListFiltersBySearchAndStore(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	entries, err := svc.List(ctx, ListStockRequest{})
	require.NoError(t, err)
	require.Len(t, entries, 12)

	entries, err = svc.List(ctx, ListStockRequest{Search: "ikea"})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	entries, err = svc.List(ctx, ListStockRequest{Search: "ikea", Store: "Store B"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 10, entries[0].Stock)

	_, err = svc.List(ctx, ListStockRequest{Store: "Warehouse"})
	require.ErrorIs(t, err, httpx.ErrValidation)
}
