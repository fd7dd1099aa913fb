package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/user"
)

// UserHandlers serves account registration, login, preferences, favorites,
// and recommendation history.
type UserHandlers struct {
	users *user.Service
}

// NewUserHandlers creates the user handler set.
func NewUserHandlers(users *user.Service) *UserHandlers {
	return &UserHandlers{users: users}
}

// authResponse pairs the public user record with the issued tokens.
type authResponse struct {
	User   *user.User      `json:"user"`
	Tokens *user.TokenPair `json:"tokens"`
}

// Register handles POST /users.
func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var body struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	u, tokens, err := h.users.Register(r.Context(), body.Email, body.Name, body.Password)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteCreated(w, authResponse{User: u, Tokens: tokens})
}

// Login handles POST /users/login.
func (h *UserHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	u, tokens, err := h.users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, authResponse{User: u, Tokens: tokens})
}

// Preferences handles PUT /users/preferences. Requires authentication.
func (h *UserHandlers) Preferences(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	var prefs user.Preferences
	if !decodeBody(w, r, &prefs) {
		return
	}

	u, err := h.users.SetPreferences(r.Context(), middleware.GetUserID(r.Context()), prefs)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, u)
}

// Favorites handles POST and GET on /users/favorites. Requires
// authentication.
func (h *UserHandlers) Favorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	switch r.Method {
	case http.MethodPost:
		var body struct {
			Kind  string `json:"kind"`
			RefID string `json:"ref_id"`
			Label string `json:"label,omitempty"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		f, err := h.users.AddFavorite(r.Context(), userID, user.RefKind(body.Kind), body.RefID, body.Label)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		WriteCreated(w, f)

	case http.MethodGet:
		favorites, err := h.users.Favorites(r.Context(), userID)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		WriteSuccess(w, favorites)

	default:
		WriteError(w, r.Context(), http.StatusMethodNotAllowed, ErrCodeBadRequest, "method not allowed")
	}
}

// FavoriteByID handles DELETE /users/favorites/{id}. Requires
// authentication.
func (h *UserHandlers) FavoriteByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/users/favorites/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "favorite not found")
		return
	}

	if err := h.users.RemoveFavorite(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, map[string]string{"id": id})
}

// History handles GET /users/history?limit=. Requires authentication.
func (h *UserHandlers) History(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "limit must be a positive integer")
			return
		}
		limit = v
	}

	history, err := h.users.History(r.Context(), middleware.GetUserID(r.Context()), limit)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, history)
}
