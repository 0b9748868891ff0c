package service

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskcart/internal/list"
)

// fuzzyRatio is the largest edit distance, relative to the longer word, still
// treated as a typo.
const fuzzyRatio = 0.34

// minFuzzyQuery keeps one- and two-letter queries to plain substring matching.
const minFuzzyQuery = 3

// Searcher filters items by name.
type Searcher struct {
	Fuzzy bool
}

// Filter keeps the items whose name matches query, preserving order. An empty
// query keeps everything.
func (s Searcher) Filter(items []list.Item, query string) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		if s.Match(it.Name, query) {
			out = append(out, it)
		}
	}
	return out
}

// Match reports whether name contains query, ignoring case. With Fuzzy set, a
// word of name within a small edit distance of query matches too.
func (s Searcher) Match(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	n := strings.ToLower(name)
	if strings.Contains(n, q) {
		return true
	}
	if !s.Fuzzy || utf8.RuneCountInString(q) < minFuzzyQuery {
		return false
	}
	candidates := append(strings.Fields(n), n)
	for _, word := range candidates {
		if closeEnough(word, q) {
			return true
		}
	}
	return false
}

func closeEnough(a, b string) bool {
	maxlen := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > maxlen {
		maxlen = l
	}
	if maxlen == 0 {
		return false
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(dist)/float64(maxlen) < fuzzyRatio
}
