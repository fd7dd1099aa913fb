package user

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Store defines persistence for accounts and their scoped collections.
type Store interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, u *User) error

	AddFavorite(ctx context.Context, f *Favorite) error
	ListFavorites(ctx context.Context, userID string) ([]Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID string) error

	AppendHistory(ctx context.Context, h *HistoryEntry) error
	ListHistory(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
}

// MemoryStore is an in-memory Store guarded by a RWMutex, handing out deep
// copies.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]*User
	byEmail   map[string]string
	favorites map[string][]Favorite
	history   map[string][]HistoryEntry
}

// NewMemoryStore creates an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*User),
		byEmail:   make(map[string]string),
		favorites: make(map[string][]Favorite),
		history:   make(map[string][]HistoryEntry),
	}
}

// CreateUser stores a new account; the email must be unused.
func (s *MemoryStore) CreateUser(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, taken := s.byEmail[email]; taken {
		return ErrEmailTaken
	}
	s.users[u.ID] = u.Clone()
	s.byEmail[email] = u.ID
	return nil
}

// GetUser returns the user or ErrNotFound.
func (s *MemoryStore) GetUser(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.Clone(), nil
}

// GetUserByEmail returns the user for a (case-insensitive) email.
func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return s.users[id].Clone(), nil
}

// UpdateUser replaces the stored record. Email changes re-key the index.
func (s *MemoryStore) UpdateUser(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	oldEmail := strings.ToLower(existing.Email)
	newEmail := strings.ToLower(u.Email)
	if oldEmail != newEmail {
		if _, taken := s.byEmail[newEmail]; taken {
			return ErrEmailTaken
		}
		delete(s.byEmail, oldEmail)
		s.byEmail[newEmail] = u.ID
	}
	s.users[u.ID] = u.Clone()
	return nil
}

// AddFavorite appends a favorite to the user's list.
func (s *MemoryStore) AddFavorite(_ context.Context, f *Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[f.UserID]; !ok {
		return ErrNotFound
	}
	s.favorites[f.UserID] = append(s.favorites[f.UserID], *f)
	return nil
}

// ListFavorites returns the user's favorites, newest first.
func (s *MemoryStore) ListFavorites(_ context.Context, userID string) ([]Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, ErrNotFound
	}
	out := append([]Favorite(nil), s.favorites[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if out == nil {
		out = []Favorite{}
	}
	return out, nil
}

// RemoveFavorite deletes one favorite by id, scoped to the user.
func (s *MemoryStore) RemoveFavorite(_ context.Context, userID, favoriteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.favorites[userID]
	for i, f := range favs {
		if f.ID == favoriteID {
			s.favorites[userID] = append(favs[:i], favs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AppendHistory records a served recommendation.
func (s *MemoryStore) AppendHistory(_ context.Context, h *HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[h.UserID]; !ok {
		return ErrNotFound
	}
	s.history[h.UserID] = append(s.history[h.UserID], *h)
	return nil
}

// ListHistory returns the user's history, newest first, capped at limit when
// limit > 0.
func (s *MemoryStore) ListHistory(_ context.Context, userID string, limit int) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, ErrNotFound
	}
	out := append([]HistoryEntry(nil), s.history[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []HistoryEntry{}
	}
	return out, nil
}
