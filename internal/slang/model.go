// Package slang implements the slang-translation domain: stored terms with
// regional and register metadata, multi-strategy matching (exact, fuzzy,
// reverse), regional variation grouping, and similar-term search.
package slang

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Languages recognized by the translation domain. The matcher treats these as
// opaque tags; the pair is fixed here because the seeded corpus is Hindi
// slang with English renderings.
const (
	LanguageHindi   = "hindi"
	LanguageEnglish = "english"
)

// Register/context classifications for a term.
const (
	ContextFormal = "formal"
	ContextCasual = "casual"
	ContextSlang  = "slang"
)

// DefaultContext is the translation context preferred when the caller
// supplies none.
const DefaultContext = ContextCasual

// Popularity bounds.
const (
	MinPopularity = 0
	MaxPopularity = 100
)

// Sentinel errors surfaced by the store and translator.
var (
	// ErrNotFound indicates the referenced term does not exist.
	ErrNotFound = errors.New("term not found")

	// ErrDuplicateTerm indicates a create/update would violate the
	// (text, language, region) uniqueness constraint.
	ErrDuplicateTerm = errors.New("term already exists for this text, language and region")
)

// ValidationError carries field-level messages for a semantic invariant
// violation at the domain boundary.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// Translation is one candidate rendering of a term in another language.
type Translation struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Context    string  `json:"context"`
	Confidence float64 `json:"confidence"`
}

// Term is a stored slang/colloquial phrase with region and register metadata.
// A term owns its translations and usage examples; updates replace those
// collections wholesale, never merge them.
type Term struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	Language      string        `json:"language"`
	Region        string        `json:"region"`
	Context       string        `json:"context"`
	Popularity    int           `json:"popularity"`
	Translations  []Translation `json:"translations"`
	UsageExamples []string      `json:"usage_examples,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at,omitempty"`
}

// Clone returns a deep copy so stored terms are never aliased by callers.
func (t *Term) Clone() *Term {
	cp := *t
	cp.Translations = make([]Translation, len(t.Translations))
	copy(cp.Translations, t.Translations)
	cp.UsageExamples = make([]string, len(t.UsageExamples))
	copy(cp.UsageExamples, t.UsageExamples)
	return &cp
}

// Key returns the uniqueness key (normalized text, language, region).
// Region comparison is case-insensitive throughout the domain.
func (t *Term) Key() string {
	return Normalize(t.Text) + "|" + t.Language + "|" + strings.ToLower(t.Region)
}

// Validate checks the semantic invariants for a term being created. Returns
// nil when valid, otherwise a *ValidationError listing every violated field.
func (t *Term) Validate() error {
	var fields []string

	if strings.TrimSpace(t.Text) == "" {
		fields = append(fields, "text must not be empty")
	}
	if t.Language != LanguageHindi && t.Language != LanguageEnglish {
		fields = append(fields, fmt.Sprintf("language must be %q or %q", LanguageHindi, LanguageEnglish))
	}
	if strings.TrimSpace(t.Region) == "" {
		fields = append(fields, "region must not be empty")
	}
	switch t.Context {
	case ContextFormal, ContextCasual, ContextSlang:
	default:
		fields = append(fields, "context must be one of formal, casual, slang")
	}
	if t.Popularity < MinPopularity || t.Popularity > MaxPopularity {
		fields = append(fields, "popularity must be between 0 and 100")
	}

	if len(t.Translations) == 0 {
		fields = append(fields, "at least one translation is required")
	}
	for i, tr := range t.Translations {
		if strings.TrimSpace(tr.Text) == "" {
			fields = append(fields, fmt.Sprintf("translations[%d].text must not be empty", i))
		}
		if tr.Language != LanguageHindi && tr.Language != LanguageEnglish {
			fields = append(fields, fmt.Sprintf("translations[%d].language must be %q or %q", i, LanguageHindi, LanguageEnglish))
		}
		if tr.Confidence < 0 || tr.Confidence > 1 {
			fields = append(fields, fmt.Sprintf("translations[%d].confidence must be between 0 and 1", i))
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TermPatch describes a partial update. Nil fields are left unchanged.
// Translations and UsageExamples, when present, replace the existing
// collections entirely.
type TermPatch struct {
	Text          *string        `json:"text,omitempty"`
	Language      *string        `json:"language,omitempty"`
	Region        *string        `json:"region,omitempty"`
	Context       *string        `json:"context,omitempty"`
	Popularity    *int           `json:"popularity,omitempty"`
	Translations  *[]Translation `json:"translations,omitempty"`
	UsageExamples *[]string      `json:"usage_examples,omitempty"`
}

// Alternative is a secondary translation candidate in a result.
type Alternative struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context,omitempty"`
}

// TranslationResult is the outcome of a translate or reverse-translate call.
// An unknown term is a successful result with IsUnknown set and confidence 0,
// never an error.
type TranslationResult struct {
	OriginalText   string        `json:"original_text"`
	TranslatedText string        `json:"translated_text"`
	Confidence     float64       `json:"confidence"`
	Region         string        `json:"region,omitempty"`
	Context        string        `json:"context,omitempty"`
	Alternatives   []Alternative `json:"alternatives"`
	UsageExamples  []string      `json:"usage_examples,omitempty"`
	IsFuzzyMatch   bool          `json:"is_fuzzy_match,omitempty"`
	IsUnknown      bool          `json:"is_unknown,omitempty"`
}

// RegionalVariation is a derived, read-only projection: the most popular term
// for a concept within one region, with sibling term texts as alternatives.
type RegionalVariation struct {
	Region         string   `json:"region"`
	Term           string   `json:"term"`
	TopTranslation string   `json:"top_translation"`
	Popularity     int      `json:"popularity"`
	Alternatives   []string `json:"alternatives,omitempty"`
}

// Normalize lowercases, trims, and strips punctuation from a query or stored
// term text so lookups compare on canonical form.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' ||
			(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 127 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
