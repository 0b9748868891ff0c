package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcart/internal/list"
)

func TestSearcherMatch(t *testing.T) {
	t.Parallel()

	exact := Searcher{}
	fuzzy := Searcher{Fuzzy: true}

	cases := []struct {
		name, query     string
		exact, fuzzyHit bool
	}{
		{"Leite Integral", "", true, true},
		{"Leite Integral", "leite", true, true},
		{"Leite Integral", "INTEG", true, true},
		{"Banana Prata", "bananna", false, true},
		{"Banana Prata", "pratta", false, true},
		{"Milk", "mk", false, false},
		{"Milk", "bread", false, false},
		{"Pão de Queijo", "queijo", true, true},
		{"Pão de Queijo", "quejo", false, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.exact, exact.Match(tc.name, tc.query), "exact %q/%q", tc.name, tc.query)
		require.Equal(t, tc.fuzzyHit, fuzzy.Match(tc.name, tc.query), "fuzzy %q/%q", tc.name, tc.query)
	}
}

func TestSearcherFilterKeepsOrder(t *testing.T) {
	t.Parallel()

	items := []list.Item{
		{ID: "1", Name: "Apple juice"},
		{ID: "2", Name: "Bread"},
		{ID: "3", Name: "Pineapple"},
	}
	got := Searcher{}.Filter(items, "apple")
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].ID)
	require.Equal(t, "3", got[1].ID)

	require.Len(t, Searcher{}.Filter(items, "  "), 3)
	require.Empty(t, Searcher{}.Filter(nil, "x"))
}
