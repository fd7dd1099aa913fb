package slang

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mukesh-219/indian-local-guide-api/internal/tracing"
)

// Fuzzy-match confidence decay. A fuzzy hit is reported at the stored
// confidence minus the penalty, floored so a strong entry never drops below
// a usable score. These constants are load-bearing: clients calibrate
// display thresholds against them.
const (
	fuzzyPenalty         = 0.2
	fuzzyConfidenceFloor = 0.3
)

// Reverse-lookup confidences. The narrow substring pass is more trustworthy
// than the broad free-text pass; alternatives sit one notch below the winner.
const (
	reverseNarrowConfidence = 0.8
	reverseBroadConfidence  = 0.5
	reverseAlternativeStep  = 0.1
)

// Result list caps.
const (
	maxAlternatives  = 3
	maxUsageExamples = 2
	maxSimilarTerms  = 10
	broadSearchLimit = 25
)

// TranslateRequest carries a forward or reverse translation query.
// PreferredRegion and PreferredContext are optional.
type TranslateRequest struct {
	Text             string
	SourceLanguage   string
	TargetLanguage   string
	PreferredRegion  string
	PreferredContext string
}

// Translator resolves queries against the term store. All methods are
// stateless between calls; concurrent invocations do not interact.
type Translator struct {
	store Store
}

// NewTranslator creates a Translator backed by the given store.
func NewTranslator(store Store) *Translator {
	return &Translator{store: store}
}

// Translate resolves a source-language term to its best translation.
// Strategy order: exact lookup, then fuzzy-candidate lookup with confidence
// decay, then an unknown result. An unknown result is a normal outcome, not
// an error; only store failures return an error.
func (t *Translator) Translate(ctx context.Context, req TranslateRequest) (result *TranslationResult, err error) {
	ctx, end := tracing.StartSpan(ctx, "translate")
	defer func() { end(err) }()

	if strings.TrimSpace(req.Text) == "" {
		return unknownResult(req.Text), nil
	}

	normalized := Normalize(req.Text)

	exact, err := t.store.FindExact(ctx, normalized, req.SourceLanguage)
	if err != nil {
		return nil, fmt.Errorf("exact lookup for %q: %w", normalized, err)
	}
	if len(exact) > 0 {
		return buildResult(req, pickBestMatch(exact, req.PreferredRegion), false), nil
	}

	fuzzyHits, err := t.lookupFuzzy(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(fuzzyHits) > 0 {
		tracing.AddEvent(ctx, "fuzzy_fallback")
		return buildResult(req, pickBestMatch(fuzzyHits, req.PreferredRegion), true), nil
	}

	return unknownResult(req.Text), nil
}

// ReverseTranslate resolves target-language text back to a source term via a
// substring search over stored translation texts, escalating to a broader
// free-text search at lower confidence.
func (t *Translator) ReverseTranslate(ctx context.Context, req TranslateRequest) (*TranslationResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return unknownResult(req.Text), nil
	}

	narrow, err := t.store.SearchTranslations(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("reverse lookup for %q: %w", req.Text, err)
	}
	if len(narrow) > 0 {
		return reverseResult(req, narrow, reverseNarrowConfidence), nil
	}

	broad, err := t.store.SearchText(ctx, req.Text, broadSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("broad reverse lookup for %q: %w", req.Text, err)
	}
	if len(broad) > 0 {
		return reverseResult(req, broad, reverseBroadConfidence), nil
	}

	return unknownResult(req.Text), nil
}

// Add validates and stores a new term. Returns *ValidationError for invariant
// violations and ErrDuplicateTerm when a term with the same (text, language,
// region) already exists.
func (t *Translator) Add(ctx context.Context, term *Term) (*Term, error) {
	if err := term.Validate(); err != nil {
		return nil, err
	}

	existing, err := t.store.FindExact(ctx, Normalize(term.Text), term.Language)
	if err != nil {
		return nil, fmt.Errorf("uniqueness check for %q: %w", term.Text, err)
	}
	for _, e := range existing {
		if strings.EqualFold(e.Region, term.Region) {
			return nil, ErrDuplicateTerm
		}
	}

	stored := term.Clone()
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := t.store.Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("create term %q: %w", stored.Text, err)
	}
	return stored, nil
}

// Update applies a partial update. The uniqueness constraint is re-checked
// only when text, language, or region change, comparing against every other
// stored term. Translations and usage examples, when present in the patch,
// replace the stored collections in a single transactional step.
func (t *Translator) Update(ctx context.Context, id string, patch TermPatch) (*Term, error) {
	current, err := t.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	identityChanged := false
	if patch.Text != nil && *patch.Text != updated.Text {
		updated.Text = *patch.Text
		identityChanged = true
	}
	if patch.Language != nil && *patch.Language != updated.Language {
		updated.Language = *patch.Language
		identityChanged = true
	}
	if patch.Region != nil && !strings.EqualFold(*patch.Region, updated.Region) {
		updated.Region = *patch.Region
		identityChanged = true
	}
	if patch.Context != nil {
		updated.Context = *patch.Context
	}
	if patch.Popularity != nil {
		updated.Popularity = *patch.Popularity
	}
	if patch.Translations != nil {
		updated.Translations = append([]Translation(nil), (*patch.Translations)...)
	}
	if patch.UsageExamples != nil {
		updated.UsageExamples = append([]string(nil), (*patch.UsageExamples)...)
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if identityChanged {
		all, err := t.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("uniqueness check for %q: %w", updated.Text, err)
		}
		key := updated.Key()
		for _, other := range all {
			if other.ID != id && other.Key() == key {
				return nil, ErrDuplicateTerm
			}
		}
	}

	updated.UpdatedAt = time.Now().UTC()
	err = t.store.Transact(ctx, func(tx Store) error {
		return tx.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a term by id.
func (t *Translator) Delete(ctx context.Context, id string) error {
	return t.store.Delete(ctx, id)
}

// Get returns a term by id.
func (t *Translator) Get(ctx context.Context, id string) (*Term, error) {
	return t.store.GetByID(ctx, id)
}

// lookupFuzzy looks each candidate variant up independently, merges the hits,
// and deduplicates by (text, region, language).
func (t *Translator) lookupFuzzy(ctx context.Context, normalized string) ([]Term, error) {
	seen := make(map[string]bool)
	var merged []Term
	for _, variant := range FuzzyCandidates(normalized) {
		hits, err := t.store.FindFuzzy(ctx, variant)
		if err != nil {
			return nil, fmt.Errorf("fuzzy lookup for %q: %w", variant, err)
		}
		for _, h := range hits {
			if key := h.Key(); !seen[key] {
				seen[key] = true
				merged = append(merged, h)
			}
		}
	}
	return merged, nil
}

// pickBestMatch applies the region-preference tie-break: a candidate from the
// preferred region wins regardless of other candidates' popularity; within
// the chosen set, highest popularity wins.
func pickBestMatch(candidates []Term, preferredRegion string) Term {
	pool := candidates
	if preferredRegion != "" {
		var regional []Term
		for _, c := range candidates {
			if strings.EqualFold(c.Region, preferredRegion) {
				regional = append(regional, c)
			}
		}
		if len(regional) > 0 {
			pool = regional
		}
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.Popularity > best.Popularity {
			best = c
		}
	}
	return best
}

// orderTranslations sorts a copy of the translation list by preference: a
// context match ranks first, then descending confidence.
func orderTranslations(translations []Translation, preferredContext string) []Translation {
	ordered := append([]Translation(nil), translations...)
	sort.SliceStable(ordered, func(i, j int) bool {
		im := ordered[i].Context == preferredContext
		jm := ordered[j].Context == preferredContext
		if im != jm {
			return im
		}
		return ordered[i].Confidence > ordered[j].Confidence
	})
	return ordered
}

// buildResult assembles a TranslationResult from the winning term. For fuzzy
// matches, every reported confidence decays by the fuzzy penalty with a
// floor.
func buildResult(req TranslateRequest, match Term, fuzzy bool) *TranslationResult {
	prefCtx := req.PreferredContext
	if prefCtx == "" {
		prefCtx = DefaultContext
	}

	ordered := orderTranslations(match.Translations, prefCtx)
	chosen := ordered[0]

	confidence := func(c float64) float64 {
		if !fuzzy {
			return c
		}
		if decayed := c - fuzzyPenalty; decayed > fuzzyConfidenceFloor {
			return decayed
		}
		return fuzzyConfidenceFloor
	}

	alternatives := make([]Alternative, 0, maxAlternatives)
	for _, tr := range ordered[1:] {
		if len(alternatives) == maxAlternatives {
			break
		}
		alternatives = append(alternatives, Alternative{
			Text:       tr.Text,
			Confidence: confidence(tr.Confidence),
			Context:    tr.Context,
		})
	}

	examples := match.UsageExamples
	if len(examples) > maxUsageExamples {
		examples = examples[:maxUsageExamples]
	}

	return &TranslationResult{
		OriginalText:   req.Text,
		TranslatedText: chosen.Text,
		Confidence:     confidence(chosen.Confidence),
		Region:         match.Region,
		Context:        chosen.Context,
		Alternatives:   alternatives,
		UsageExamples:  examples,
		IsFuzzyMatch:   fuzzy,
	}
}

// reverseResult assembles a result for the reverse direction: the winner's
// term text is the translation, other matched terms become alternatives one
// confidence notch below.
func reverseResult(req TranslateRequest, matches []Term, winnerConfidence float64) *TranslationResult {
	best := pickBestMatch(matches, req.PreferredRegion)

	altConfidence := winnerConfidence - reverseAlternativeStep
	alternatives := make([]Alternative, 0, maxAlternatives)
	for _, m := range matches {
		if len(alternatives) == maxAlternatives {
			break
		}
		if m.ID == best.ID {
			continue
		}
		alternatives = append(alternatives, Alternative{
			Text:       m.Text,
			Confidence: altConfidence,
			Context:    m.Context,
		})
	}

	examples := best.UsageExamples
	if len(examples) > maxUsageExamples {
		examples = examples[:maxUsageExamples]
	}

	return &TranslationResult{
		OriginalText:   req.Text,
		TranslatedText: best.Text,
		Confidence:     winnerConfidence,
		Region:         best.Region,
		Context:        best.Context,
		Alternatives:   alternatives,
		UsageExamples:  examples,
	}
}

// unknownResult echoes the input back with zero confidence. Rendered as a
// normal response, never an HTTP failure.
func unknownResult(text string) *TranslationResult {
	return &TranslationResult{
		OriginalText:   text,
		TranslatedText: text,
		Confidence:     0,
		Alternatives:   []Alternative{},
		IsUnknown:      true,
	}
}
