package slang

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store implementation. It guards its map with a
// RWMutex and hands out deep copies so callers never alias stored data.
// Suitable for development, tests, and snapshot-backed deployments.
type MemoryStore struct {
	mu    sync.RWMutex
	terms map[string]*Term
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{terms: make(map[string]*Term)}
}

// FindExact returns all terms whose normalized text equals the query.
func (s *MemoryStore) FindExact(_ context.Context, normalized, language string) ([]Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Term
	for _, t := range s.terms {
		if Normalize(t.Text) != normalized {
			continue
		}
		if language != "" && t.Language != language {
			continue
		}
		out = append(out, *t.Clone())
	}
	sortStable(out)
	return out, nil
}

// FindFuzzy looks up a heuristic variant with no language constraint.
func (s *MemoryStore) FindFuzzy(ctx context.Context, variant string) ([]Term, error) {
	return s.FindExact(ctx, variant, "")
}

// SearchTranslations returns terms with a translation containing the query.
func (s *MemoryStore) SearchTranslations(_ context.Context, query string) ([]Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var out []Term
	for _, t := range s.terms {
		for _, tr := range t.Translations {
			if strings.Contains(strings.ToLower(tr.Text), q) {
				out = append(out, *t.Clone())
				break
			}
		}
	}
	sortStable(out)
	return out, nil
}

// SearchText matches against term text, translation texts, and usage
// examples.
func (s *MemoryStore) SearchText(_ context.Context, query string, limit int) ([]Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var out []Term
	for _, t := range s.terms {
		if matchesFreeText(t, q) {
			out = append(out, *t.Clone())
		}
	}
	sortStable(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func matchesFreeText(t *Term, q string) bool {
	if strings.Contains(strings.ToLower(t.Text), q) {
		return true
	}
	for _, tr := range t.Translations {
		if strings.Contains(strings.ToLower(tr.Text), q) {
			return true
		}
	}
	for _, ex := range t.UsageExamples {
		if strings.Contains(strings.ToLower(ex), q) {
			return true
		}
	}
	return false
}

// FindByRegion returns all terms in the region, case-insensitively.
func (s *MemoryStore) FindByRegion(_ context.Context, region string) ([]Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := strings.ToLower(region)
	var out []Term
	for _, t := range s.terms {
		if strings.ToLower(t.Region) == r {
			out = append(out, *t.Clone())
		}
	}
	sortStable(out)
	return out, nil
}

// GetByID returns the term or ErrNotFound.
func (s *MemoryStore) GetByID(_ context.Context, id string) (*Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.terms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t.Clone(), nil
}

// Create stores a new term.
func (s *MemoryStore) Create(_ context.Context, term *Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.terms[term.ID] = term.Clone()
	return nil
}

// Update replaces the stored term wholesale.
func (s *MemoryStore) Update(_ context.Context, term *Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.terms[term.ID]; !ok {
		return ErrNotFound
	}
	s.terms[term.ID] = term.Clone()
	return nil
}

// Delete removes a term.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.terms[id]; !ok {
		return ErrNotFound
	}
	delete(s.terms, id)
	return nil
}

// List returns every stored term.
func (s *MemoryStore) List(_ context.Context) ([]Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Term, 0, len(s.terms))
	for _, t := range s.terms {
		out = append(out, *t.Clone())
	}
	sortStable(out)
	return out, nil
}

// Transact runs fn against a staged copy of the store. The copy replaces the
// live map only when fn succeeds, giving all-or-nothing semantics for
// multi-collection updates.
func (s *MemoryStore) Transact(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := NewMemoryStore()
	for id, t := range s.terms {
		staged.terms[id] = t.Clone()
	}

	if err := fn(staged); err != nil {
		return err
	}
	s.terms = staged.terms
	return nil
}

// sortStable orders results by (text, region, language) so map iteration
// order never leaks into responses.
func sortStable(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Text != terms[j].Text {
			return terms[i].Text < terms[j].Text
		}
		if terms[i].Region != terms[j].Region {
			return terms[i].Region < terms[j].Region
		}
		return terms[i].Language < terms[j].Language
	})
}
