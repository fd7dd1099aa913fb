package slang

import (
	"context"
	"testing"
)

func variationFixture(t *testing.T) *Translator {
	t.Helper()
	store := NewMemoryStore()
	tr := NewTranslator(store)

	terms := []Term{
		{
			Text: "yaar", Language: LanguageHindi, Region: "delhi",
			Context: ContextCasual, Popularity: 85,
			Translations: []Translation{
				{Text: "buddy", Language: LanguageEnglish, Context: ContextCasual, Confidence: 0.9},
				{Text: "dude", Language: LanguageEnglish, Context: ContextSlang, Confidence: 0.7},
			},
		},
		{
			Text: "yaar", Language: LanguageHindi, Region: "mumbai",
			Context: ContextCasual, Popularity: 70,
			Translations: []Translation{
				{Text: "mate", Language: LanguageEnglish, Context: ContextCasual, Confidence: 0.8},
			},
		},
		{
			// Sibling in delhi with lower popularity; surfaces as an
			// alternative, not a representative.
			Text: "yaara", Language: LanguageHindi, Region: "delhi",
			Context: ContextCasual, Popularity: 30,
			Translations: []Translation{
				{Text: "pal", Language: LanguageEnglish, Context: ContextCasual, Confidence: 0.6},
			},
		},
	}
	for _, term := range terms {
		tcopy := term
		if _, err := tr.Add(context.Background(), &tcopy); err != nil {
			t.Fatalf("seed %q/%q: %v", term.Text, term.Region, err)
		}
	}
	return tr
}

func TestRegionalVariations(t *testing.T) {
	tr := variationFixture(t)

	// "yaara" is reachable from "yaar" via the append-a fuzzy variant.
	variations, err := tr.RegionalVariations(context.Background(), "yaar")
	if err != nil {
		t.Fatalf("RegionalVariations returned error: %v", err)
	}

	if len(variations) != 2 {
		t.Fatalf("got %d variations, want 2 (delhi, mumbai): %+v", len(variations), variations)
	}

	// Ordered by descending representative popularity: delhi (85) first.
	if variations[0].Region != "delhi" {
		t.Errorf("first region = %q, want delhi", variations[0].Region)
	}
	if variations[0].Term != "yaar" {
		t.Errorf("delhi representative = %q, want the most popular term", variations[0].Term)
	}
	if variations[0].TopTranslation != "buddy" {
		t.Errorf("top translation = %q, want highest-confidence %q", variations[0].TopTranslation, "buddy")
	}
	if len(variations[0].Alternatives) != 1 || variations[0].Alternatives[0] != "yaara" {
		t.Errorf("delhi alternatives = %v, want [yaara]", variations[0].Alternatives)
	}

	if variations[1].Region != "mumbai" {
		t.Errorf("second region = %q, want mumbai", variations[1].Region)
	}
}

func TestRegionalVariations_EmptyQuery(t *testing.T) {
	tr := variationFixture(t)

	variations, err := tr.RegionalVariations(context.Background(), "   ")
	if err != nil {
		t.Fatalf("RegionalVariations returned error: %v", err)
	}
	if len(variations) != 0 {
		t.Errorf("got %v, want empty for blank query", variations)
	}
}

func TestRegionalVariations_NoMatches(t *testing.T) {
	tr := variationFixture(t)

	variations, err := tr.RegionalVariations(context.Background(), "zzzznothing")
	if err != nil {
		t.Fatalf("RegionalVariations returned error: %v", err)
	}
	if len(variations) != 0 {
		t.Errorf("got %v, want empty", variations)
	}
}
