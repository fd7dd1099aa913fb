package slang

import (
	"context"
	"errors"
	"testing"
)

// TestMemoryStore_TransactRollsBackOnError: writes inside a failed
// transaction never reach the live store.
func TestMemoryStore_TransactRollsBackOnError(t *testing.T) {
	store := NewMemoryStore()
	term := jugaadTerm()
	term.ID = "t1"
	if err := store.Create(context.Background(), &term); err != nil {
		t.Fatalf("Create: %v", err)
	}

	boom := errors.New("boom")
	err := store.Transact(context.Background(), func(tx Store) error {
		updated := term.Clone()
		updated.Popularity = 1
		if err := tx.Update(context.Background(), updated); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transact = %v, want wrapped boom", err)
	}

	got, err := store.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Popularity != term.Popularity {
		t.Errorf("popularity = %d, want unchanged %d after rollback", got.Popularity, term.Popularity)
	}
}

// TestMemoryStore_TransactCommits: successful transactions apply all writes.
func TestMemoryStore_TransactCommits(t *testing.T) {
	store := NewMemoryStore()
	term := jugaadTerm()
	term.ID = "t1"
	if err := store.Create(context.Background(), &term); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := store.Transact(context.Background(), func(tx Store) error {
		updated := term.Clone()
		updated.Popularity = 42
		updated.UsageExamples = []string{"replaced"}
		return tx.Update(context.Background(), updated)
	})
	if err != nil {
		t.Fatalf("Transact: %v", err)
	}

	got, err := store.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Popularity != 42 || len(got.UsageExamples) != 1 {
		t.Errorf("got %+v, want committed update", got)
	}
}

// TestMemoryStore_ClonesOnRead: mutating a returned term must not affect the
// stored copy.
func TestMemoryStore_ClonesOnRead(t *testing.T) {
	store := NewMemoryStore()
	term := jugaadTerm()
	term.ID = "t1"
	if err := store.Create(context.Background(), &term); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Translations[0].Text = "mutated"

	again, err := store.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if again.Translations[0].Text == "mutated" {
		t.Error("stored term was aliased by a reader")
	}
}

func TestMemoryStore_DeleteNotFound(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete = %v, want ErrNotFound", err)
	}
}
