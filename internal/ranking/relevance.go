// Package ranking implements the heuristic string-relevance score used to
// order free-text search results in the slang and cultural domains.
//
// The score is tiered rather than continuous: an exact match always beats a
// prefix match, which always beats a substring match, which always beats a
// length-similarity match. A bounded popularity bonus breaks ties between
// candidates in the same tier. Scores are used purely for ordering; no
// threshold filters results, so a search can return low-relevance items when
// nothing better exists.
package ranking

import "strings"

// Score tiers. The gaps between tiers exceed the maximum popularity bonus so
// a popular substring match can never outrank an unpopular prefix match.
const (
	ScoreExact     = 100
	ScorePrefix    = 80
	ScoreSubstring = 60
	ScoreLength    = 30

	// MaxPopularityBonus caps the popularity contribution.
	MaxPopularityBonus = 20

	// TokenBonus rewards a word-boundary exact-token match, independent of
	// the base tier. Used by cultural-content search.
	TokenBonus = 40

	// lengthSlack is the maximum length difference for the weakest tier.
	lengthSlack = 2
)

// Relevance computes the base relevance of candidate against query. Both are
// compared case-insensitively. Returns 0 when no tier applies.
func Relevance(candidate, query string) int {
	c := strings.ToLower(candidate)
	q := strings.ToLower(query)

	switch {
	case c == q:
		return ScoreExact
	case strings.HasPrefix(c, q):
		return ScorePrefix
	case strings.Contains(c, q):
		return ScoreSubstring
	}

	diff := len(c) - len(q)
	if diff < 0 {
		diff = -diff
	}
	if diff <= lengthSlack {
		return ScoreLength
	}
	return 0
}

// WithPopularity adds a bounded popularity bonus to the base relevance score.
// The bonus is min(20, popularity/5), so popularity 100 contributes 20.
func WithPopularity(candidate, query string, popularity int) int {
	bonus := popularity / 5
	if bonus > MaxPopularityBonus {
		bonus = MaxPopularityBonus
	}
	return Relevance(candidate, query) + bonus
}

// HasExactToken reports whether query matches one of candidate's
// whitespace-delimited tokens exactly, case-insensitively. Callers add
// TokenBonus when it does.
func HasExactToken(candidate, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for _, tok := range strings.Fields(strings.ToLower(candidate)) {
		if tok == q {
			return true
		}
	}
	return false
}
