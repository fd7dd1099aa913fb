package slang

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/Mukesh-219/indian-local-guide-api/internal/tracing"
)

// querier abstracts *sql.DB and *sql.Tx so the same query code serves both
// direct calls and the transactional view.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// PostgresStore is a Store backed by PostgreSQL. Schema lives in
// migrations/; usage examples are a text[] column, translations a child
// table replaced wholesale on update.
type PostgresStore struct {
	db *sql.DB
	q  querier
}

// NewPostgresStore creates a Postgres-backed term store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, q: db}
}

const termColumns = `t.id, t.text, t.language, t.region, t.context, t.popularity, t.usage_examples, t.created_at, t.updated_at`

func (s *PostgresStore) queryTerms(ctx context.Context, where string, args ...any) (result []Term, err error) {
	ctx, end := tracing.StartDBSpan(ctx, "terms", tracing.DBOperationQuery)
	defer func() { end(err) }()

	query := `SELECT ` + termColumns + ` FROM terms t ` + where + ` ORDER BY t.text, t.region, t.language`
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var t Term
		if err := rows.Scan(&t.ID, &t.Text, &t.Language, &t.Region, &t.Context,
			&t.Popularity, pq.Array(&t.UsageExamples), &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}

	for i := range terms {
		if err := s.loadTranslations(ctx, &terms[i]); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

func (s *PostgresStore) loadTranslations(ctx context.Context, t *Term) error {
	rows, err := s.q.QueryContext(ctx,
		`SELECT text, language, context, confidence FROM translations WHERE term_id = $1 ORDER BY confidence DESC, text`,
		t.ID)
	if err != nil {
		return fmt.Errorf("query translations for %s: %w", t.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tr Translation
		if err := rows.Scan(&tr.Text, &tr.Language, &tr.Context, &tr.Confidence); err != nil {
			return fmt.Errorf("scan translation: %w", err)
		}
		t.Translations = append(t.Translations, tr)
	}
	return rows.Err()
}

// FindExact matches on the stored normalized text.
func (s *PostgresStore) FindExact(ctx context.Context, normalized, language string) ([]Term, error) {
	if language != "" {
		return s.queryTerms(ctx, `WHERE t.normalized_text = $1 AND t.language = $2`, normalized, language)
	}
	return s.queryTerms(ctx, `WHERE t.normalized_text = $1`, normalized)
}

// FindFuzzy looks up a heuristic variant with no language constraint.
func (s *PostgresStore) FindFuzzy(ctx context.Context, variant string) ([]Term, error) {
	return s.FindExact(ctx, variant, "")
}

// SearchTranslations matches terms whose translation text contains the query.
func (s *PostgresStore) SearchTranslations(ctx context.Context, query string) ([]Term, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	return s.queryTerms(ctx,
		`WHERE EXISTS (SELECT 1 FROM translations tr WHERE tr.term_id = t.id AND tr.text ILIKE '%' || $1 || '%')`, q)
}

// SearchText is the broad free-text search over term text, translation texts,
// and usage examples.
func (s *PostgresStore) SearchText(ctx context.Context, query string, limit int) (result []Term, err error) {
	ctx, end := tracing.StartDBSpan(ctx, "terms", tracing.DBOperationQuery)
	defer func() { end(err) }()

	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = broadSearchLimit
	}

	sqlQuery := `SELECT ` + termColumns + ` FROM terms t
		WHERE t.text ILIKE '%' || $1 || '%'
		   OR EXISTS (SELECT 1 FROM translations tr WHERE tr.term_id = t.id AND tr.text ILIKE '%' || $1 || '%')
		   OR EXISTS (SELECT 1 FROM unnest(t.usage_examples) ex WHERE ex ILIKE '%' || $1 || '%')
		ORDER BY t.text, t.region, t.language
		LIMIT $2`
	rows, err := s.q.QueryContext(ctx, sqlQuery, q, limit)
	if err != nil {
		return nil, fmt.Errorf("free-text search: %w", err)
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var t Term
		if err := rows.Scan(&t.ID, &t.Text, &t.Language, &t.Region, &t.Context,
			&t.Popularity, pq.Array(&t.UsageExamples), &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}
	for i := range terms {
		if err := s.loadTranslations(ctx, &terms[i]); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

// FindByRegion returns all terms in the region, case-insensitively.
func (s *PostgresStore) FindByRegion(ctx context.Context, region string) ([]Term, error) {
	return s.queryTerms(ctx, `WHERE LOWER(t.region) = LOWER($1)`, region)
}

// GetByID returns the term or ErrNotFound.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*Term, error) {
	terms, err := s.queryTerms(ctx, `WHERE t.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, ErrNotFound
	}
	return &terms[0], nil
}

// Create inserts the term and its translations.
func (s *PostgresStore) Create(ctx context.Context, term *Term) (err error) {
	ctx, end := tracing.StartDBSpan(ctx, "terms", tracing.DBOperationInsert)
	defer func() { end(err) }()

	_, err = s.q.ExecContext(ctx,
		`INSERT INTO terms (id, text, normalized_text, language, region, context, popularity, usage_examples, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		term.ID, term.Text, Normalize(term.Text), term.Language, term.Region, term.Context,
		term.Popularity, pq.Array(term.UsageExamples), term.CreatedAt, term.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert term %q: %w", term.Text, err)
	}
	return s.insertTranslations(ctx, term)
}

// Update replaces the term row and its translation rows wholesale. Callers
// needing atomicity run this inside Transact.
func (s *PostgresStore) Update(ctx context.Context, term *Term) (err error) {
	ctx, end := tracing.StartDBSpan(ctx, "terms", tracing.DBOperationUpdate)
	defer func() { end(err) }()

	res, err := s.q.ExecContext(ctx,
		`UPDATE terms SET text = $2, normalized_text = $3, language = $4, region = $5,
		        context = $6, popularity = $7, usage_examples = $8, updated_at = $9
		 WHERE id = $1`,
		term.ID, term.Text, Normalize(term.Text), term.Language, term.Region,
		term.Context, term.Popularity, pq.Array(term.UsageExamples), term.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update term %s: %w", term.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update term %s: %w", term.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := s.q.ExecContext(ctx, `DELETE FROM translations WHERE term_id = $1`, term.ID); err != nil {
		return fmt.Errorf("clear translations for %s: %w", term.ID, err)
	}
	return s.insertTranslations(ctx, term)
}

func (s *PostgresStore) insertTranslations(ctx context.Context, term *Term) error {
	for _, tr := range term.Translations {
		_, err := s.q.ExecContext(ctx,
			`INSERT INTO translations (term_id, text, language, context, confidence) VALUES ($1, $2, $3, $4, $5)`,
			term.ID, tr.Text, tr.Language, tr.Context, tr.Confidence)
		if err != nil {
			return fmt.Errorf("insert translation for %s: %w", term.ID, err)
		}
	}
	return nil
}

// Delete removes a term; translations cascade via the schema.
func (s *PostgresStore) Delete(ctx context.Context, id string) (err error) {
	ctx, end := tracing.StartDBSpan(ctx, "terms", tracing.DBOperationDelete)
	defer func() { end(err) }()

	res, err := s.q.ExecContext(ctx, `DELETE FROM terms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete term %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete term %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every stored term.
func (s *PostgresStore) List(ctx context.Context) ([]Term, error) {
	return s.queryTerms(ctx, ``)
}

// Transact runs fn against a transaction-bound view of the store.
func (s *PostgresStore) Transact(ctx context.Context, fn func(Store) error) error {
	if s.db == nil {
		return errors.New("nested transactions are not supported")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txStore := &PostgresStore{q: tx}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}
