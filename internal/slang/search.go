package slang

import (
	"context"
	"fmt"
	"sort"

	"github.com/Mukesh-219/indian-local-guide-api/internal/ranking"
)

// SearchSimilar returns up to ten terms resembling the query: the store's
// free-text hits merged with fuzzy-candidate hits, deduplicated, and ordered
// by descending relevance (with popularity bonus).
func (t *Translator) SearchSimilar(ctx context.Context, query string) ([]Term, error) {
	normalized := Normalize(query)
	if normalized == "" {
		return []Term{}, nil
	}

	textHits, err := t.store.SearchText(ctx, query, broadSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("free-text search for %q: %w", query, err)
	}

	fuzzyHits, err := t.lookupFuzzy(ctx, normalized)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []Term
	for _, hit := range append(textHits, fuzzyHits...) {
		if key := hit.Key(); !seen[key] {
			seen[key] = true
			merged = append(merged, hit)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		si := ranking.WithPopularity(merged[i].Text, query, merged[i].Popularity)
		sj := ranking.WithPopularity(merged[j].Text, query, merged[j].Popularity)
		return si > sj
	})

	if len(merged) > maxSimilarTerms {
		merged = merged[:maxSimilarTerms]
	}
	if merged == nil {
		merged = []Term{}
	}
	return merged, nil
}
