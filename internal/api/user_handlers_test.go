package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mukesh-219/indian-local-guide-api/internal/auth"
	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/user"
)

func newUserFixture(t *testing.T) (*UserHandlers, *user.Service) {
	t.Helper()
	jwt := auth.NewJWTService("user-handler-test-secret")
	users := user.NewService(user.NewMemoryStore(), jwt)
	return NewUserHandlers(users), users
}

func registerTestUser(t *testing.T, users *user.Service) *user.User {
	t.Helper()
	u, _, err := users.Register(context.Background(), "tester@example.com", "Tester", "password123")
	if err != nil {
		t.Fatalf("register fixture user: %v", err)
	}
	return u
}

func authedRequest(method, path, body, userID string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req.WithContext(middleware.SetUserID(req.Context(), userID))
}

func TestRegister_ReturnsTokens(t *testing.T) {
	h, _ := newUserFixture(t)

	rec := postJSON(t, h.Register, "/users", `{"email": "a@example.com", "name": "A", "password": "password123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data authResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Tokens == nil || env.Data.Tokens.AccessToken == "" || env.Data.Tokens.RefreshToken == "" {
		t.Error("expected both tokens in register response")
	}
	if env.Data.User == nil || env.Data.User.Email != "a@example.com" {
		t.Error("expected user record in register response")
	}
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	h, _ := newUserFixture(t)

	rec := postJSON(t, h.Register, "/users", `{"email": "a@example.com", "name": "A", "password": "short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	h, users := newUserFixture(t)
	registerTestUser(t, users)

	rec := postJSON(t, h.Login, "/users/login", `{"email": "tester@example.com", "password": "wrong-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPreferences_ReplacedWholesale(t *testing.T) {
	h, users := newUserFixture(t)
	u := registerTestUser(t, users)

	req := authedRequest(http.MethodPut, "/users/preferences",
		`{"language": "hindi", "region": "delhi", "vegetarian": true, "spice_tolerance": 2}`, u.ID)
	rec := httptest.NewRecorder()
	h.Preferences(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, _, err := users.Login(context.Background(), "tester@example.com", "password123")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !stored.Preferences.Vegetarian || stored.Preferences.Region != "delhi" {
		t.Errorf("preferences not persisted: %+v", stored.Preferences)
	}
}

func TestFavorites_AddListRemove(t *testing.T) {
	h, users := newUserFixture(t)
	u := registerTestUser(t, users)

	// Add.
	req := authedRequest(http.MethodPost, "/users/favorites", `{"kind": "slang", "ref_id": "seed-term-jugaad", "label": "jugaad"}`, u.ID)
	rec := httptest.NewRecorder()
	h.Favorites(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data user.Favorite `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// List.
	req = authedRequest(http.MethodGet, "/users/favorites", "", u.ID)
	rec = httptest.NewRecorder()
	h.Favorites(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing favorites, got %d", rec.Code)
	}
	var listed struct {
		Data []user.Favorite `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Data) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(listed.Data))
	}

	// Remove.
	req = authedRequest(http.MethodDelete, "/users/favorites/"+created.Data.ID, "", u.ID)
	rec = httptest.NewRecorder()
	h.FavoriteByID(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 removing favorite, got %d", rec.Code)
	}
}

func TestFavorites_UnknownKindRejected(t *testing.T) {
	h, users := newUserFixture(t)
	u := registerTestUser(t, users)

	req := authedRequest(http.MethodPost, "/users/favorites", `{"kind": "bogus", "ref_id": "x"}`, u.ID)
	rec := httptest.NewRecorder()
	h.Favorites(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown kind, got %d", rec.Code)
	}
}

func TestHistory_NewestFirstWithLimit(t *testing.T) {
	h, users := newUserFixture(t)
	u := registerTestUser(t, users)

	ctx := context.Background()
	for _, q := range []string{"first", "second", "third"} {
		if err := users.RecordHistory(ctx, u.ID, user.KindSlang, "ref", q); err != nil {
			t.Fatalf("record history: %v", err)
		}
	}

	req := authedRequest(http.MethodGet, "/users/history?limit=2", "", u.ID)
	rec := httptest.NewRecorder()
	h.History(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data []user.HistoryEntry `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("expected limit of 2 entries, got %d", len(env.Data))
	}
}
