// Package fuzzymatch scores approximate string matches. It is used to
// look up free-text food phrases in reference tables whose keys rarely
// match the phrase verbatim ("packed brown sugar" vs "brown sugar").
package fuzzymatch

import "strings"

// Ratio returns a similarity score in [0, 1] for two strings, computed
// from the length of their longest common subsequence. Identical strings
// score 1, disjoint strings score 0. Comparison is case-insensitive.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 2 * float64(lcs(ra, rb)) / float64(len(ra)+len(rb))
}

// lcs computes the longest common subsequence length with a rolling row.
func lcs(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Match is one scored candidate.
type Match struct {
	Candidate string
	Score     float64
}

// BestMatch returns the highest scoring candidate for query, provided its
// score reaches minScore. A candidate contained whole in the query (or the
// reverse) gets a containment bonus so "packed brown sugar" prefers
// "brown sugar" over "sugar".
func BestMatch(query string, candidates []string, minScore float64) (Match, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	best := Match{Score: -1}
	for _, cand := range candidates {
		score := Ratio(q, cand)
		c := strings.ToLower(cand)
		if c != "" && (containsPhrase(q, c) || containsPhrase(c, q)) {
			score = score/2 + 0.5
		}
		if score > best.Score {
			best = Match{Candidate: cand, Score: score}
		}
	}
	if best.Score < minScore {
		return Match{}, false
	}
	return best, true
}

// containsPhrase reports whether phrase appears in text on word
// boundaries.
func containsPhrase(text, phrase string) bool {
	fields := strings.Fields(text)
	want := strings.Fields(phrase)
	if len(want) == 0 || len(want) > len(fields) {
		return false
	}
	for i := 0; i+len(want) <= len(fields); i++ {
		matched := true
		for j := range want {
			if fields[i+j] != want[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
