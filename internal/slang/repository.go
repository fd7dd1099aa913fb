package slang

import "context"

// Store defines the persistence contract for the slang domain. The matcher
// never retries or swallows store failures; they propagate unchanged.
type Store interface {
	// FindExact returns all terms whose normalized text equals the
	// normalized query. When language is non-empty, only terms in that
	// language are returned.
	FindExact(ctx context.Context, normalized, language string) ([]Term, error)

	// FindFuzzy looks up a single heuristic variant. Semantically identical
	// to FindExact without a language constraint; kept separate so backends
	// can index variants differently.
	FindFuzzy(ctx context.Context, variant string) ([]Term, error)

	// SearchTranslations returns terms with at least one translation whose
	// text contains the query substring, case-insensitively.
	SearchTranslations(ctx context.Context, query string) ([]Term, error)

	// SearchText is the broad free-text search: matches against term text,
	// translation texts, and usage examples. Returns at most limit terms.
	SearchText(ctx context.Context, query string, limit int) ([]Term, error)

	// FindByRegion returns all terms tagged with the region,
	// case-insensitively.
	FindByRegion(ctx context.Context, region string) ([]Term, error)

	// GetByID returns the term or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Term, error)

	// Create stores a new term. Uniqueness is enforced by the caller; the
	// store only persists.
	Create(ctx context.Context, term *Term) error

	// Update replaces the stored term and its child collections wholesale.
	// Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, term *Term) error

	// Delete removes a term. Returns ErrNotFound for an unknown id.
	Delete(ctx context.Context, id string) error

	// List returns every stored term. Used for uniqueness checks and
	// snapshots.
	List(ctx context.Context) ([]Term, error)

	// Transact runs fn against a transactional view of the store. All writes
	// made by fn are applied together or not at all.
	Transact(ctx context.Context, fn func(Store) error) error
}
