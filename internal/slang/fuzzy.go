package slang

import "strings"

// minVariantLen filters out variants too short to be meaningful lookups.
const minVariantLen = 3

// FuzzyCandidates produces the fixed set of heuristic variants for a
// normalized query string: drop the last character, append "a", append "i",
// double every "a", and replace every "i" with "ee". Variants identical to
// the original or shorter than three characters are dropped, and duplicates
// are removed while preserving generation order.
//
// This is a deliberate stand-in for true edit-distance matching: cheap and
// predictable, tuned to common Hindi romanization slips rather than general
// typos.
func FuzzyCandidates(normalized string) []string {
	if normalized == "" {
		return nil
	}

	runes := []rune(normalized)
	raw := []string{
		string(runes[:len(runes)-1]),
		normalized + "a",
		normalized + "i",
		strings.ReplaceAll(normalized, "a", "aa"),
		strings.ReplaceAll(normalized, "i", "ee"),
	}

	seen := make(map[string]bool, len(raw))
	variants := make([]string, 0, len(raw))
	for _, v := range raw {
		if v == normalized || len(v) < minVariantLen || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}
