package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPaginationClampsPage(t *testing.T) {
	p := NewPagination(0, 0, 12)
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultPerPage, p.PerPage)
	require.Equal(t, 3, p.TotalPages)

	p = NewPagination(9, 5, 12)
	require.Equal(t, 3, p.Page)

	p = NewPagination(2, 5, 0)
	require.Equal(t, 0, p.TotalPages)
}

func TestPageBoundsNeverExceedTotal(t *testing.T) {
	for total := 0; total <= 12; total++ {
		for page := 1; page <= 4; page++ {
			p := NewPagination(page, 5, total)
			start, end := p.PageBounds()
			require.LessOrEqual(t, start, end)
			require.LessOrEqual(t, end, total)
			require.LessOrEqual(t, end-start, p.PerPage)
		}
	}
}

func TestPageBoundsLastPartialPage(t *testing.T) {
	p := NewPagination(3, 5, 12)
	start, end := p.PageBounds()
	require.Equal(t, 10, start)
	require.Equal(t, 12, end)
}
