package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabsServeSeedRows(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	sales := svc.Sales(ctx)
	require.Len(t, sales, 3)
	require.Equal(t, "Store A", sales[0].Store)
	require.InDelta(t, 1898, sales[0].Total, 0.001)

	movements := svc.Movements(ctx)
	require.Len(t, movements, 3)
	require.Equal(t, "+10", movements[0].Movement)
	require.Equal(t, "Transfer In", movements[2].Reason)

	invoices := svc.Invoices(ctx)
	require.Len(t, invoices, 2)
	require.Equal(t, "Paid", invoices[0].Status)
}

func TestProfitAndLossBalances(t *testing.T) {
	pnl := NewService().ProfitAndLoss(context.Background())
	require.InDelta(t, pnl.Profit, pnl.Revenue-pnl.CostOfGoods-pnl.Expenses, 0.001)
}

func TestTabRowsAreCopies(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	rows := svc.Sales(ctx)
	rows[0].Store = "Store Z"
	require.Equal(t, "Store A", svc.Sales(ctx)[0].Store)
}
