package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithValuesSeedsMatchingFields(t *testing.T) {
	schema := Schema{
		Text("name", "Name"),
		Select("parent", "Parent", []string{"None", "Electronics"}),
		Textarea("description", "Description"),
	}

	seeded := schema.WithValues(map[string]string{
		"name":   "Laptops",
		"parent": "Electronics",
	})

	require.Equal(t, "Laptops", seeded[0].Value)
	require.Equal(t, "Electronics", seeded[1].Value)
	require.Empty(t, seeded[2].Value)

	// The original schema is untouched.
	require.Empty(t, schema[0].Value)
}

func TestConstructorsTagKinds(t *testing.T) {
	require.Equal(t, KindText, Text("a", "A").Kind)
	require.Equal(t, KindTextarea, Textarea("b", "B").Kind)

	sel := Select("c", "C", []string{"x"})
	require.Equal(t, KindSelect, sel.Kind)
	require.Equal(t, []string{"x"}, sel.Options)
}
