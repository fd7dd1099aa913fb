package slang

import (
	"reflect"
	"testing"
)

func TestFuzzyCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "typical term",
			input: "jugad",
			// drop last, +a, +i, a->aa; i->ee is a no-op here and is
			// filtered as a duplicate of the original
			want: []string{"juga", "jugada", "jugadi", "juugaad"},
		},
		{
			name:  "no a or i letters",
			input: "chod",
			want:  []string{"cho", "choda", "chodi"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "short input keeps only long-enough variants",
			input: "ab",
			want:  []string{"aba", "abi", "aab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyCandidates(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FuzzyCandidates(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFuzzyCandidates_Transformations checks each transformation in
// isolation.
func TestFuzzyCandidates_Transformations(t *testing.T) {
	got := FuzzyCandidates("bindas")

	want := []string{
		"binda",   // drop last character
		"bindasa", // append a
		"bindasi", // append i
		"bindaas", // double every a
		"beendas", // i -> ee
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FuzzyCandidates(\"bindas\") = %v, want %v", got, want)
	}
}

// TestFuzzyCandidates_NeverContainsOriginal verifies the original string is
// always filtered out.
func TestFuzzyCandidates_NeverContainsOriginal(t *testing.T) {
	for _, input := range []string{"jugaad", "fundoo", "chai", "oye"} {
		for _, v := range FuzzyCandidates(input) {
			if v == input {
				t.Errorf("FuzzyCandidates(%q) contains the original string", input)
			}
		}
	}
}

// TestFuzzyCandidates_MinLength verifies no variant is shorter than three
// characters.
func TestFuzzyCandidates_MinLength(t *testing.T) {
	for _, input := range []string{"ab", "abc", "a", "xy"} {
		for _, v := range FuzzyCandidates(input) {
			if len(v) < minVariantLen {
				t.Errorf("FuzzyCandidates(%q) produced too-short variant %q", input, v)
			}
		}
	}
}
