package slang

import (
	"context"
	"fmt"
	"sort"
)

// RegionalVariations returns how a concept varies across regions: exact and
// fuzzy hits are merged, grouped by region, and each region is represented by
// its most popular term, carrying that term's top translation and the other
// regional terms' texts as alternatives. Entries are ordered by descending
// popularity of the representative.
func (t *Translator) RegionalVariations(ctx context.Context, term string) ([]RegionalVariation, error) {
	normalized := Normalize(term)
	if normalized == "" {
		return []RegionalVariation{}, nil
	}

	exact, err := t.store.FindExact(ctx, normalized, "")
	if err != nil {
		return nil, fmt.Errorf("exact lookup for %q: %w", normalized, err)
	}

	fuzzy, err := t.lookupFuzzy(ctx, normalized)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []Term
	for _, hit := range append(exact, fuzzy...) {
		if key := hit.Key(); !seen[key] {
			seen[key] = true
			merged = append(merged, hit)
		}
	}

	byRegion := make(map[string][]Term)
	var regionOrder []string
	for _, hit := range merged {
		key := hit.Region
		if _, ok := byRegion[key]; !ok {
			regionOrder = append(regionOrder, key)
		}
		byRegion[key] = append(byRegion[key], hit)
	}

	variations := make([]RegionalVariation, 0, len(byRegion))
	for _, region := range regionOrder {
		group := byRegion[region]

		representative := group[0]
		for _, g := range group[1:] {
			if g.Popularity > representative.Popularity {
				representative = g
			}
		}

		var alternatives []string
		for _, g := range group {
			if g.ID != representative.ID {
				alternatives = append(alternatives, g.Text)
			}
		}

		variations = append(variations, RegionalVariation{
			Region:         region,
			Term:           representative.Text,
			TopTranslation: topTranslation(representative),
			Popularity:     representative.Popularity,
			Alternatives:   alternatives,
		})
	}

	sort.SliceStable(variations, func(i, j int) bool {
		return variations[i].Popularity > variations[j].Popularity
	})
	return variations, nil
}

// topTranslation returns the highest-confidence translation text for a term.
// Terms always carry at least one translation; the empty-string fallback only
// guards unvalidated data.
func topTranslation(t Term) string {
	if len(t.Translations) == 0 {
		return ""
	}
	best := t.Translations[0]
	for _, tr := range t.Translations[1:] {
		if tr.Confidence > best.Confidence {
			best = tr
		}
	}
	return best.Text
}
