package api

import (
	"net/http"

	"github.com/Mukesh-219/indian-local-guide-api/internal/auth"
)

// Handlers bundles every handler set the router mounts. Metrics may be nil
// when the /metrics endpoint is disabled.
type Handlers struct {
	Translate *TranslateHandlers
	Food      *FoodHandlers
	Cultural  *CulturalHandlers
	Users     *UserHandlers
	Content   *ContentHandlers
	Health    *HealthHandlers

	JWT     *auth.JWTService
	Metrics http.Handler

	// WriteLimit, when set, rate limits authenticated write endpoints. It
	// runs after RequireAuth so it can key on the user id.
	WriteLimit func(http.Handler) http.Handler
}

func (h Handlers) writeLimited(next http.HandlerFunc) http.HandlerFunc {
	if h.WriteLimit == nil {
		return next
	}
	return h.WriteLimit(next).ServeHTTP
}

// NewMux registers every route on a fresh ServeMux. Read endpoints are
// public; mutations and per-user collections require a bearer token. Read
// endpoints that record per-user history accept an optional token.
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Slang translation.
	mux.HandleFunc("/translate", OptionalAuth(h.JWT, h.Translate.Translate))
	mux.HandleFunc("/translate/reverse", h.Translate.ReverseTranslate)
	mux.HandleFunc("/translate/variations", h.Translate.Variations)
	mux.HandleFunc("/translate/search", h.Translate.Search)
	mux.HandleFunc("/terms", RequireAuth(h.JWT, h.writeLimited(h.Translate.CreateTerm)))
	mux.HandleFunc("/terms/", func(w http.ResponseWriter, r *http.Request) {
		// Reads are public; PATCH and DELETE need a token.
		if r.Method == http.MethodGet {
			h.Translate.TermByID(w, r)
			return
		}
		RequireAuth(h.JWT, h.writeLimited(h.Translate.TermByID))(w, r)
	})

	// Food recommendations.
	mux.HandleFunc("/food/recommendations", OptionalAuth(h.JWT, h.Food.Recommendations))
	mux.HandleFunc("/food/category/", h.Food.Category)
	mux.HandleFunc("/food/search", OptionalAuth(h.JWT, h.Food.Search))
	mux.HandleFunc("/food/hubs", h.Food.Hubs)
	mux.HandleFunc("/food/vendors/", h.Food.VendorSafety)

	// Cultural reference content.
	mux.HandleFunc("/cultural/search", h.Cultural.Search)
	mux.HandleFunc("/cultural/regions/", h.Cultural.Region)
	mux.HandleFunc("/cultural/festivals", h.Cultural.Festivals)
	mux.HandleFunc("/cultural/etiquette/", h.Cultural.Etiquette)
	mux.HandleFunc("/cultural/bargaining-tips", h.Cultural.BargainingTips)

	// Accounts.
	mux.HandleFunc("/users", h.Users.Register)
	mux.HandleFunc("/users/login", h.Users.Login)
	mux.HandleFunc("/users/preferences", RequireAuth(h.JWT, h.Users.Preferences))
	mux.HandleFunc("/users/favorites", RequireAuth(h.JWT, h.Users.Favorites))
	mux.HandleFunc("/users/favorites/", RequireAuth(h.JWT, h.Users.FavoriteByID))
	mux.HandleFunc("/users/history", RequireAuth(h.JWT, h.Users.History))

	// Admin content ingestion.
	mux.HandleFunc("/admin/content", RequireAuth(h.JWT, h.writeLimited(h.Content.Ingest)))

	// Probes and metrics.
	mux.HandleFunc("/health", h.Health.Health)
	mux.HandleFunc("/ready", h.Health.Ready)
	if h.Metrics != nil {
		mux.Handle("/metrics", h.Metrics)
	}

	// Root returns service identity; anything unrouted is a structured 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			WriteError(w, r.Context(), http.StatusNotFound, ErrCodeNotFound, "the requested resource was not found")
			return
		}
		WriteSuccess(w, map[string]string{"service": "indian-local-guide-api", "version": "0.1.0"})
	})

	return mux
}
