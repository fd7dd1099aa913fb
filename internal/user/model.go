// Package user implements accounts, sessions, preferences, favorites, and
// recommendation history.
package user

import (
	"errors"
	"strings"
	"time"
)

// RefKind tags which domain a favorite or history entry points into.
// References are opaque ids; the referenced entity's existence is not
// validated.
type RefKind string

const (
	KindSlang    RefKind = "slang"
	KindFood     RefKind = "food"
	KindCultural RefKind = "cultural"
)

// ValidKind reports whether k is a known reference kind.
func ValidKind(k RefKind) bool {
	switch k {
	case KindSlang, KindFood, KindCultural:
		return true
	}
	return false
}

// Sentinel errors for the user domain.
var (
	// ErrNotFound indicates the user or referenced record does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another account already uses the email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries field-level messages for invariant violations.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// User is a registered account. PasswordHash is a bcrypt digest and never
// serialized.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash []byte      `json:"-"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	cp := *u
	cp.PasswordHash = append([]byte(nil), u.PasswordHash...)
	cp.Preferences = *u.Preferences.Clone()
	return &cp
}

// Preferences are the per-user defaults applied to lookups when the request
// leaves them unspecified.
type Preferences struct {
	Language       string `json:"language,omitempty"`
	Region         string `json:"region,omitempty"`
	Vegetarian     bool   `json:"vegetarian"`
	SpiceTolerance int    `json:"spice_tolerance"`
}

// Clone returns a copy of the preferences.
func (p *Preferences) Clone() *Preferences {
	cp := *p
	return &cp
}

// Favorite is a bookmarked entry in one of the three content domains.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Kind      RefKind   `json:"kind"`
	RefID     string    `json:"ref_id"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry records one recommendation or translation served to a user.
type HistoryEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Kind      RefKind   `json:"kind"`
	RefID     string    `json:"ref_id,omitempty"`
	Query     string    `json:"query,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
