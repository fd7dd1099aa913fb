// Package api provides the HTTP handlers and response envelope for the
// local guide API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Mukesh-219/indian-local-guide-api/internal/content"
	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
	"github.com/Mukesh-219/indian-local-guide-api/internal/user"
)

// Common error codes used throughout the API.
const (
	// ErrCodeValidation indicates input validation failure.
	ErrCodeValidation = "validation_error"

	// ErrCodeAuthFailed indicates authentication failure.
	ErrCodeAuthFailed = "auth_failed"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound = "not_found"

	// ErrCodeConflict indicates a conflict with the current state.
	ErrCodeConflict = "conflict"

	// ErrCodeBadRequest indicates a malformed request.
	ErrCodeBadRequest = "bad_request"

	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
)

// Response is the uniform envelope for every API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteSuccess writes a 200 envelope with the given payload.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// WriteCreated writes a 201 envelope with the given payload.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// WriteJSON writes any envelope with the given status.
func WriteJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError writes an error envelope and records the code for the logging
// middleware.
func WriteError(w http.ResponseWriter, ctx context.Context, status int, code, message string) {
	middleware.SetErrorCode(ctx, code)
	WriteJSON(w, status, Response{Success: false, Error: code, Message: message})
}

// WriteDomainError maps a domain error to its HTTP representation:
// not-found errors to 404, validation failures to 400, duplicates to 409,
// auth failures to 401, anything unrecognized to 500 with a generic message.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var slangValidation *slang.ValidationError
	var foodValidation *food.ValidationError
	var userValidation *user.ValidationError
	var contentValidation *content.ValidationError

	switch {
	case errors.Is(err, slang.ErrNotFound),
		errors.Is(err, food.ErrVendorNotFound),
		errors.Is(err, food.ErrItemNotFound),
		errors.Is(err, food.ErrUnknownCity),
		errors.Is(err, cultural.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		WriteError(w, ctx, http.StatusNotFound, ErrCodeNotFound, err.Error())

	case errors.Is(err, slang.ErrDuplicateTerm),
		errors.Is(err, user.ErrEmailTaken):
		WriteError(w, ctx, http.StatusConflict, ErrCodeConflict, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		WriteError(w, ctx, http.StatusUnauthorized, ErrCodeAuthFailed, err.Error())

	case errors.As(err, &slangValidation),
		errors.As(err, &foodValidation),
		errors.As(err, &userValidation),
		errors.As(err, &contentValidation):
		WriteError(w, ctx, http.StatusBadRequest, ErrCodeValidation, err.Error())

	default:
		slog.ErrorContext(ctx, "unhandled error", "error", err, "path", r.URL.Path)
		WriteError(w, ctx, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields.
// A false return means the error response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// requireMethod enforces the HTTP method, writing a 405 otherwise.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteError(w, r.Context(), http.StatusMethodNotAllowed, ErrCodeBadRequest, "method not allowed")
		return false
	}
	return true
}
