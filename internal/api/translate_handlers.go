package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cache"
	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
	"github.com/Mukesh-219/indian-local-guide-api/internal/user"
	"github.com/Mukesh-219/indian-local-guide-api/internal/validate"
)

// TranslateHandlers serves the slang translation endpoints.
type TranslateHandlers struct {
	translator *slang.Translator
	cache      *cache.TranslationCache
	metrics    *middleware.Metrics
	history    historyRecorder
}

// historyRecorder is the slice of the user service the translate and food
// handlers need: appending a history entry for authenticated requests.
type historyRecorder interface {
	RecordHistory(ctx context.Context, userID string, kind user.RefKind, refID, query string) error
}

// NewTranslateHandlers creates the translation handler set. cache, metrics,
// and history may be nil to disable the respective concern.
func NewTranslateHandlers(translator *slang.Translator, c *cache.TranslationCache, m *middleware.Metrics, h historyRecorder) *TranslateHandlers {
	return &TranslateHandlers{translator: translator, cache: c, metrics: m, history: h}
}

// translateBody is the request body for POST /translate and
// POST /translate/reverse.
type translateBody struct {
	Text             string `json:"text"`
	SourceLanguage   string `json:"source_language,omitempty"`
	TargetLanguage   string `json:"target_language,omitempty"`
	PreferredRegion  string `json:"preferred_region,omitempty"`
	PreferredContext string `json:"preferred_context,omitempty"`
}

// Translate handles POST /translate.
func (h *TranslateHandlers) Translate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var body translateBody
	if !decodeBody(w, r, &body) {
		return
	}
	// Empty text is a legitimate query: the matcher answers it with an
	// unknown result. Only over-length text is rejected here.
	if body.Text != "" {
		if _, err := validate.QueryText(body.Text); err != nil {
			WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "text: "+err.Error())
			return
		}
	}

	key := ""
	if h.cache != nil {
		key = cache.Key(body.Text, body.SourceLanguage, body.PreferredRegion)
		if result, ok := h.cache.Get(r.Context(), key); ok {
			h.countOutcome(result)
			h.recordHistory(r, user.KindSlang, result.OriginalText, body.Text)
			WriteSuccess(w, result)
			return
		}
	}

	result, err := h.translator.Translate(r.Context(), slang.TranslateRequest{
		Text:             body.Text,
		SourceLanguage:   body.SourceLanguage,
		TargetLanguage:   body.TargetLanguage,
		PreferredRegion:  body.PreferredRegion,
		PreferredContext: body.PreferredContext,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), key, result)
	}
	h.countOutcome(result)
	h.recordHistory(r, user.KindSlang, result.OriginalText, body.Text)
	WriteSuccess(w, result)
}

// ReverseTranslate handles POST /translate/reverse.
func (h *TranslateHandlers) ReverseTranslate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var body translateBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Text != "" {
		if _, err := validate.QueryText(body.Text); err != nil {
			WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "text: "+err.Error())
			return
		}
	}

	result, err := h.translator.ReverseTranslate(r.Context(), slang.TranslateRequest{
		Text:             body.Text,
		SourceLanguage:   body.SourceLanguage,
		TargetLanguage:   body.TargetLanguage,
		PreferredRegion:  body.PreferredRegion,
		PreferredContext: body.PreferredContext,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	h.countOutcome(result)
	WriteSuccess(w, result)
}

// Variations handles GET /translate/variations?term=.
func (h *TranslateHandlers) Variations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	term, err := validate.TermText(r.URL.Query().Get("term"))
	if err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "term: "+err.Error())
		return
	}

	variations, err := h.translator.RegionalVariations(r.Context(), term)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, variations)
}

// Search handles GET /translate/search?q=.
func (h *TranslateHandlers) Search(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	query, err := validate.QueryText(r.URL.Query().Get("q"))
	if err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "q: "+err.Error())
		return
	}

	terms, err := h.translator.SearchSimilar(r.Context(), query)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, terms)
}

// CreateTerm handles POST /terms.
func (h *TranslateHandlers) CreateTerm(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var term slang.Term
	if !decodeBody(w, r, &term) {
		return
	}

	stored, err := h.translator.Add(r.Context(), &term)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	h.invalidateCache(r)
	WriteCreated(w, stored)
}

// TermByID handles GET and PATCH on /terms/{id}.
func (h *TranslateHandlers) TermByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/terms/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "term not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		term, err := h.translator.Get(r.Context(), id)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		WriteSuccess(w, term)

	case http.MethodPatch:
		var patch slang.TermPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		updated, err := h.translator.Update(r.Context(), id, patch)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		h.invalidateCache(r)
		WriteSuccess(w, updated)

	case http.MethodDelete:
		if err := h.translator.Delete(r.Context(), id); err != nil {
			WriteDomainError(w, r, err)
			return
		}
		h.invalidateCache(r)
		WriteSuccess(w, map[string]string{"id": id})

	default:
		WriteError(w, r.Context(), http.StatusMethodNotAllowed, ErrCodeBadRequest, "method not allowed")
	}
}

func (h *TranslateHandlers) countOutcome(result *slang.TranslationResult) {
	if h.metrics == nil {
		return
	}
	switch {
	case result.IsUnknown:
		h.metrics.IncTranslationsServed(middleware.TranslationOutcomeUnknown)
	case result.IsFuzzyMatch:
		h.metrics.IncTranslationsServed(middleware.TranslationOutcomeFuzzy)
	default:
		h.metrics.IncTranslationsServed(middleware.TranslationOutcomeExact)
	}
}

func (h *TranslateHandlers) invalidateCache(r *http.Request) {
	if h.cache != nil {
		h.cache.Invalidate(r.Context())
	}
}

// recordHistory appends a history entry for authenticated requests. Failures
// are dropped: history is best-effort and never blocks a lookup.
func (h *TranslateHandlers) recordHistory(r *http.Request, kind user.RefKind, refID, query string) {
	if h.history == nil {
		return
	}
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		return
	}
	_ = h.history.RecordHistory(r.Context(), userID, kind, refID, query)
}
