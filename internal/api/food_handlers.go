package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/user"
	"github.com/Mukesh-219/indian-local-guide-api/internal/validate"
)

// FoodHandlers serves the food recommendation endpoints.
type FoodHandlers struct {
	recommender *food.Recommender
	metrics     *middleware.Metrics
	history     historyRecorder
}

// NewFoodHandlers creates the food handler set. metrics and history may be
// nil to disable the respective concern.
func NewFoodHandlers(recommender *food.Recommender, m *middleware.Metrics, h historyRecorder) *FoodHandlers {
	return &FoodHandlers{recommender: recommender, metrics: m, history: h}
}

// Recommendations handles GET /food/recommendations. Query parameters:
// lat, lng (required), vegetarian, vegan, max_spice, max_price, min_safety,
// radius_km (all optional).
func (h *FoodHandlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	origin, ok := parseOrigin(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filters := food.Filters{
		VegetarianOnly: parseBool(q.Get("vegetarian")),
		VeganOnly:      parseBool(q.Get("vegan")),
	}
	var bad []string
	filters.MaxSpiceLevel = parseOptionalInt(q.Get("max_spice"), "max_spice", &bad)
	filters.MaxPrice = parseOptionalInt(q.Get("max_price"), "max_price", &bad)
	filters.MinSafety = parseOptionalInt(q.Get("min_safety"), "min_safety", &bad)
	if raw := q.Get("radius_km"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			bad = append(bad, "radius_km must be a positive number")
		} else {
			filters.RadiusKm = radius
		}
	}
	if len(bad) > 0 {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, strings.Join(bad, "; "))
		return
	}

	recs, err := h.recommender.Recommend(r.Context(), origin, filters)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	h.countServed("recommendations")
	h.recordHistory(r, recs, q.Get("q"))
	WriteSuccess(w, recs)
}

// Category handles GET /food/category/{category}?lat=&lng=.
func (h *FoodHandlers) Category(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	category := strings.TrimPrefix(r.URL.Path, "/food/category/")
	if category == "" || strings.Contains(category, "/") {
		WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "category not found")
		return
	}
	origin, ok := parseOrigin(w, r)
	if !ok {
		return
	}

	recs, err := h.recommender.ByCategory(r.Context(), category, origin)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	h.countServed("category")
	WriteSuccess(w, recs)
}

// Search handles GET /food/search?q=&lat=&lng=.
func (h *FoodHandlers) Search(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	query, err := validate.QueryText(r.URL.Query().Get("q"))
	if err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "q: "+err.Error())
		return
	}
	origin, ok := parseOrigin(w, r)
	if !ok {
		return
	}

	recs, err := h.recommender.Search(r.Context(), query, origin)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	h.countServed("search")
	h.recordHistory(r, recs, query)
	WriteSuccess(w, recs)
}

// Hubs handles GET /food/hubs?city=.
func (h *FoodHandlers) Hubs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	city, err := validate.RegionName(r.URL.Query().Get("city"))
	if err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "city: "+err.Error())
		return
	}

	hubs, err := h.recommender.PopularHubs(r.Context(), city)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, hubs)
}

// VendorSafety handles GET /food/vendors/{id}/safety.
func (h *FoodHandlers) VendorSafety(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/food/vendors/")
	id, found := strings.CutSuffix(rest, "/safety")
	if !found || id == "" || strings.Contains(id, "/") {
		WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "vendor not found")
		return
	}

	rating, err := h.recommender.VendorSafety(r.Context(), id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteSuccess(w, rating)
}

func (h *FoodHandlers) countServed(endpoint string) {
	if h.metrics != nil {
		h.metrics.IncRecommendationsServed(endpoint)
	}
}

// recordHistory appends the top recommendation for authenticated requests.
// Best-effort: failures never block the response.
func (h *FoodHandlers) recordHistory(r *http.Request, recs []food.Recommendation, query string) {
	if h.history == nil || len(recs) == 0 {
		return
	}
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		return
	}
	_ = h.history.RecordHistory(r.Context(), userID, user.KindFood, recs[0].ItemID, query)
}

// parseOrigin reads and validates the lat/lng query parameters. A false
// return means the error response has already been written.
func parseOrigin(w http.ResponseWriter, r *http.Request) (geo.Point, bool) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, "lat and lng are required and must be numbers")
		return geo.Point{}, false
	}
	p := geo.Point{Lat: lat, Lng: lng}
	if err := geo.ValidatePoint(p); err != nil {
		WriteError(w, r.Context(), http.StatusBadRequest, ErrCodeValidation, err.Error())
		return geo.Point{}, false
	}
	return p, true
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// parseOptionalInt parses an optional integer query parameter, appending a
// message to bad on malformed input. Returns nil when the parameter is absent.
func parseOptionalInt(raw, name string, bad *[]string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*bad = append(*bad, name+" must be an integer")
		return nil
	}
	return &v
}
