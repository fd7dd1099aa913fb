package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mukesh-219/indian-local-guide-api/internal/auth"
	"github.com/Mukesh-219/indian-local-guide-api/internal/validate"
)

// DefaultHistoryLimit bounds history listings when the caller does not ask
// for a specific page size.
const DefaultHistoryLimit = 50

// TokenPair is the access/refresh pair issued on register and login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service implements account lifecycle and the per-user collections.
type Service struct {
	store Store
	jwt   *auth.JWTService
	now   func() time.Time
}

// NewService creates a user service.
func NewService(store Store, jwt *auth.JWTService) *Service {
	return &Service{store: store, jwt: jwt, now: time.Now}
}

// Register creates an account and returns the user with a fresh token pair.
// The password is stored as a bcrypt digest.
func (s *Service) Register(ctx context.Context, email, name, password string) (*User, *TokenPair, error) {
	normalizedEmail, err := validate.Email(email)
	if err != nil {
		return nil, nil, &ValidationError{Fields: []string{"email: " + err.Error()}}
	}
	var fields []string
	if strings.TrimSpace(name) == "" {
		fields = append(fields, "name must not be empty")
	}
	if len(password) < 8 {
		fields = append(fields, "password must be at least 8 characters")
	}
	if len(fields) > 0 {
		return nil, nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u := &User{
		ID:           uuid.NewString(),
		Email:        normalizedEmail,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Login verifies credentials and returns the user with a fresh token pair.
// Unknown email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*User, *TokenPair, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

func (s *Service) issueTokens(u *User) (*TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// SetPreferences replaces the user's preferences wholesale.
func (s *Service) SetPreferences(ctx context.Context, userID string, prefs Preferences) (*User, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Preferences = prefs
	u.UpdatedAt = s.now().UTC()
	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// AddFavorite bookmarks an entry by opaque id and kind tag. The referenced
// entity's existence is not checked.
func (s *Service) AddFavorite(ctx context.Context, userID string, kind RefKind, refID, label string) (*Favorite, error) {
	var fields []string
	if !ValidKind(kind) {
		fields = append(fields, fmt.Sprintf("kind must be one of slang, food, cultural; got %q", kind))
	}
	if strings.TrimSpace(refID) == "" {
		fields = append(fields, "ref_id must not be empty")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	f := &Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		RefID:     refID,
		Label:     strings.TrimSpace(label),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AddFavorite(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Favorites lists the user's bookmarks, newest first.
func (s *Service) Favorites(ctx context.Context, userID string) ([]Favorite, error) {
	return s.store.ListFavorites(ctx, userID)
}

// RemoveFavorite deletes one bookmark.
func (s *Service) RemoveFavorite(ctx context.Context, userID, favoriteID string) error {
	return s.store.RemoveFavorite(ctx, userID, favoriteID)
}

// RecordHistory appends a served result to the user's history. Failures are
// reported but callers on the serving path may choose to log and continue.
func (s *Service) RecordHistory(ctx context.Context, userID string, kind RefKind, refID, query string) error {
	if !ValidKind(kind) {
		return &ValidationError{Fields: []string{fmt.Sprintf("kind must be one of slang, food, cultural; got %q", kind)}}
	}
	h := &HistoryEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		RefID:     refID,
		Query:     query,
		CreatedAt: s.now().UTC(),
	}
	return s.store.AppendHistory(ctx, h)
}

// History lists the user's recommendation history, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.ListHistory(ctx, userID, limit)
}
