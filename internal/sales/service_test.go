package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

func newTestService() *Service {
	svc := NewService(NewRepository(), NewCartStore())
	svc.now = func() time.Time { return time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx, CreateCartRequest{})
	require.NoError(t, err)
	require.Equal(t, "Store A", cart.Store)

	cart, err = svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	cart, err = svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 1})
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	require.Equal(t, 2, cart.Lines[0].Qty)
	require.Equal(t, "iPhone 14", cart.Lines[0].Name)
}

func TestDiscountedTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx, CreateCartRequest{Store: "Store B"})
	require.NoError(t, err)
	cart, err = svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	cart, err = svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	cart, err = svc.SetDiscount(ctx, cart.Token, SetDiscountRequest{Percent: 10})
	require.NoError(t, err)

	view := NewCartView(cart)
	require.Equal(t, "1998.00", view.Subtotal)
	require.Equal(t, "1798.20", view.Total)
}

func TestSetQtyZeroRemovesLine(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx, CreateCartRequest{})
	cart, err := svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 4})
	require.NoError(t, err)

	cart, err = svc.SetQty(ctx, cart.Token, 4, SetQtyRequest{Qty: 3})
	require.NoError(t, err)
	require.Equal(t, 3, cart.Lines[0].Qty)

	cart, err = svc.SetQty(ctx, cart.Token, 4, SetQtyRequest{Qty: 0})
	require.NoError(t, err)
	require.Empty(t, cart.Lines)
}

func TestCheckoutPrependsSaleAndDiscardsCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx, CreateCartRequest{})
	cart, err := svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = svc.SetDiscount(ctx, cart.Token, SetDiscountRequest{Percent: 10})
	require.NoError(t, err)

	sale, err := svc.Checkout(ctx, cart.Token, CheckoutRequest{PaymentMethod: "cash"})
	require.NoError(t, err)
	require.Equal(t, int64(3), sale.ID)
	require.Equal(t, "2023-10-05", sale.Date)
	require.Equal(t, 1, sale.Items)
	require.InDelta(t, 1798.20, sale.Total, 0.001)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, sale.ID, history[0].ID)

	_, err = svc.GetCart(ctx, cart.Token)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx, CreateCartRequest{})
	_, err := svc.Checkout(ctx, cart.Token, CheckoutRequest{})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx, CreateCartRequest{})
	_, err := svc.AddItem(ctx, cart.Token, AddItemRequest{ProductID: 99})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
