package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesAnyIsCaseInsensitive(t *testing.T) {
	require.True(t, MatchesAny("phone", "iPhone 14", "IPH14-128"))
	require.True(t, MatchesAny("IPH14", "iPhone 14", "IPH14-128"))
	require.True(t, MatchesAny("", "anything"))
	require.False(t, MatchesAny("pixel", "iPhone 14", "IPH14-128"))
	require.False(t, MatchesAny("phone"))
}

func TestNormalizeDefaults(t *testing.T) {
	f := ListFilters{Search: "x", Page: -2, PerPage: 0}.Normalize()
	require.Equal(t, 1, f.Page)
	require.Equal(t, DefaultPerPage, f.PerPage)
	require.Equal(t, "x", f.Search)
}
