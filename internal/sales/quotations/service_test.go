package quotations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

func newTestService() *Service {
	svc := NewService(NewRepository())
	svc.now = func() time.Time { return time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateParsesCommaSeparatedItems(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateQuotationRequest{
		Customer: "Acme Corp",
		Amount:   2198,
		Items:    " iPhone 14 , Dell XPS 13 ,",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)
	require.Equal(t, StatusPending, created.Status)
	require.Equal(t, "2023-10-05", created.Date)
	require.Equal(t, []string{"iPhone 14", "Dell XPS 13"}, created.Items)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, created.ID, items[0].ID)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateQuotationRequest{Amount: 100})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, CreateQuotationRequest{Customer: "Acme Corp"})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestConvertIsFinal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	converted, err := svc.Convert(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, StatusConverted, converted.Status)

	_, err = svc.Convert(ctx, 1)
	require.ErrorIs(t, err, httpx.ErrInvalidStatus)

	// Seed 2 is already converted.
	_, err = svc.Convert(ctx, 2)
	require.ErrorIs(t, err, httpx.ErrInvalidStatus)

	_, err = svc.Convert(ctx, 99)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestRenderTextLayout(t *testing.T) {
	svc := newTestService()
	q, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)

	text := RenderText(q)
	lines := strings.Split(text, "\n")
	require.Equal(t, []string{
		"Quotation #2",
		"Customer: Jane Smith",
		"Date: 2023-10-02",
		"Items: IKEA Chair",
		"Total Amount: $149.00",
		"Status: Converted",
	}, lines)
}
