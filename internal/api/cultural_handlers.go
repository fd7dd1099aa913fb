package api

import (
	"net/http"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
	"github.com/Mukesh-219/indian-local-guide-api/internal/validate"
)

// CulturalHandlers serves the static cultural reference content. The tables
// are immutable after startup, so these handlers are read-only and lock-free.
type CulturalHandlers struct {
	content func() *cultural.Content
}

// NewCulturalHandlers creates the cultural handler set. content is a getter
// rather than a fixed pointer because admin ingestion rebuilds the tables.
func NewCulturalHandlers(content func() *cultural.Content) *CulturalHandlers {
	return &CulturalHandlers{content: content}
}

// Search handles GET /cultural/search?q=.
func (h *CulturalHandlers) Search(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	query, err := validate.QueryText(r.URL.Query().Get("q"))
	if err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "q: "+err.Error())
		return
	}
	WriteSuccess(w, h.content().Search(query))
}

// Region handles GET /cultural/regions/{region}.
func (h *CulturalHandlers) Region(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	region := strings.TrimPrefix(r.URL.Path, "/cultural/regions/")
	if region == "" || strings.Contains(region, "/") {
		WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "region not found")
		return
	}

	info, err := h.content().Region(region)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, info)
}

// Festivals handles GET /cultural/festivals and
// GET /cultural/festivals?name= for a single festival.
func (h *CulturalHandlers) Festivals(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if name := r.URL.Query().Get("name"); name != "" {
		festival, err := h.content().Festival(name)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		WriteSuccess(w, festival)
		return
	}
	WriteSuccess(w, h.content().Festivals())
}

// Etiquette handles GET /cultural/etiquette/{topic}.
func (h *CulturalHandlers) Etiquette(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	topic := strings.TrimPrefix(r.URL.Path, "/cultural/etiquette/")
	if topic == "" || strings.Contains(topic, "/") {
		WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "etiquette topic not found")
		return
	}

	rule, err := h.content().Etiquette(topic)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, rule)
}

// BargainingTips handles GET /cultural/bargaining-tips.
func (h *CulturalHandlers) BargainingTips(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	WriteSuccess(w, h.content().BargainingTips())
}
