package api

import (
	"net/http"

	"github.com/Mukesh-219/indian-local-guide-api/internal/content"
)

// ContentHandlers serves the admin content-ingestion endpoint.
type ContentHandlers struct {
	service *content.Service
}

// NewContentHandlers creates the content handler set.
func NewContentHandlers(service *content.Service) *ContentHandlers {
	return &ContentHandlers{service: service}
}

// Ingest handles POST /admin/content. The body is a tagged submission:
// {"kind": "slang"|"food"|"cultural", "payload": {...}}. Unknown kinds and
// malformed payloads are rejected as validation failures; slang duplicates
// surface as conflicts.
func (h *ContentHandlers) Ingest(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var sub content.Submission
	if !decodeBody(w, r, &sub) {
		return
	}

	result, err := h.service.Ingest(r.Context(), sub)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteCreated(w, result)
}
