package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// ListFilters carries the search and pagination state of a panel listing.
type ListFilters struct {
	Search  string
	Page    int
	PerPage int
}

// Normalize clamps the filter values to usable defaults.
func (f ListFilters) Normalize() ListFilters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	return f
}

// MatchesAny reports whether the query is a case-insensitive substring of any
// of the given fields. An empty query matches everything.
func MatchesAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	m := search.New(language.English, search.IgnoreCase)
	for _, field := range fields {
		if start, _ := m.IndexString(field, query); start >= 0 {
			return true
		}
	}
	return false
}
