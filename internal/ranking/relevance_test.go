package ranking

import "testing"

func TestRelevance_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		want      int
	}{
		{"exact match", "jugaad", "jugaad", ScoreExact},
		{"exact match case-insensitive", "Jugaad", "jugaad", ScoreExact},
		{"prefix match", "jugaadu", "jugaad", ScorePrefix},
		{"substring match", "full jugaad mode", "jugaad", ScoreSubstring},
		{"length similarity", "fundoo", "bindaa", ScoreLength},
		{"length similarity within slack", "chai", "chaach", ScoreLength},
		{"no match", "vada pav", "completely different", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relevance(tt.candidate, tt.query); got != tt.want {
				t.Errorf("Relevance(%q, %q) = %d, want %d", tt.candidate, tt.query, got, tt.want)
			}
		})
	}
}

func TestWithPopularity(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		query      string
		popularity int
		want       int
	}{
		{"exact plus full bonus", "jugaad", "jugaad", 100, 120},
		{"bonus capped at 20", "jugaad", "jugaad", 500, 120},
		{"partial bonus", "jugaad", "jugaad", 50, 110},
		{"zero popularity", "jugaad", "jugaad", 0, 100},
		{"bonus uses integer division", "jugaad", "jugaad", 9, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithPopularity(tt.candidate, tt.query, tt.popularity)
			if got != tt.want {
				t.Errorf("WithPopularity(%q, %q, %d) = %d, want %d",
					tt.candidate, tt.query, tt.popularity, got, tt.want)
			}
		})
	}
}

// TestTierOrdering verifies popularity can never promote a candidate past the
// next tier. A substring match with max popularity must still lose to a bare
// prefix match.
func TestTierOrdering(t *testing.T) {
	substringMax := WithPopularity("spicy jugaad snack", "jugaad", 100)
	prefixBare := WithPopularity("jugaadu", "jugaad", 0)
	if substringMax >= prefixBare {
		t.Errorf("substring+max popularity (%d) should not reach bare prefix (%d)", substringMax, prefixBare)
	}
}

func TestHasExactToken(t *testing.T) {
	tests := []struct {
		candidate string
		query     string
		want      bool
	}{
		{"Diwali festival of lights", "diwali", true},
		{"Diwali festival of lights", "Festival", true},
		{"Diwali festival of lights", "light", false},
		{"Diwali festival of lights", "", false},
		{"haggling at Sarojini", "sarojini", true},
	}

	for _, tt := range tests {
		if got := HasExactToken(tt.candidate, tt.query); got != tt.want {
			t.Errorf("HasExactToken(%q, %q) = %v, want %v", tt.candidate, tt.query, got, tt.want)
		}
	}
}
