// Package suggest proposes close matches for a mistyped member name so
// lookup errors can point at the key the caller probably meant.
package suggest

import (
	"sort"

	"golang.org/x/text/cases"
)

const (
	// maxSuggestions caps how many candidates a single error mentions.
	maxSuggestions = 3
	// maxDistance is the edit distance beyond which a candidate is noise.
	maxDistance = 2
)

// Near returns up to three candidates whose names are close to input.
// Case-folded equality ranks first, then ascending edit distance. Short
// inputs only tolerate a distance of one, otherwise everything is "near"
// a two-letter key. Returns nil when nothing qualifies.
func Near(input string, candidates []string) []string {
	// Casers are stateful, so build one per call rather than sharing.
	fold := cases.Fold()
	folded := fold.String(input)

	limit := maxDistance
	if len([]rune(folded)) <= 4 {
		limit = 1
	}

	type scored struct {
		name string
		dist int
	}
	var matches []scored
	for _, cand := range candidates {
		fc := fold.String(cand)
		if fc == folded {
			matches = append(matches, scored{name: cand, dist: 0})
			continue
		}
		if d := distance(folded, fc, limit); d <= limit {
			matches = append(matches, scored{name: cand, dist: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	var names []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		names = append(names, m.name)
	}
	return names
}

// distance computes the Levenshtein distance between a and b, giving up
// with limit+1 as soon as the distance cannot come in under limit.
func distance(a, b string, limit int) int {
	ar, br := []rune(a), []rune(b)
	la, lb := len(ar), len(br)
	if la-lb > limit || lb-la > limit {
		return limit + 1
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		best := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if curr[j] < best {
				best = curr[j]
			}
		}
		if best > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
