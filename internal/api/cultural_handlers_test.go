package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
)

func testCulturalContent() *cultural.Content {
	return cultural.NewContent(
		[]cultural.RegionalInfo{
			{Region: "Rajasthan", Summary: "Desert forts, folk music, and mirrored textiles."},
			{Region: "Kerala", Summary: "Backwaters, coconut cuisine, and monsoon festivals."},
		},
		[]cultural.Festival{
			{Name: "Diwali", Region: "Pan-India", Description: "Festival of lights."},
			{Name: "Onam", Region: "Kerala", Description: "Harvest festival with boat races."},
		},
		[]cultural.EtiquetteRule{
			{Topic: "temple visits", Dos: []string{"Remove shoes before entering."}, Donts: []string{"Don't point feet at shrines."}},
		},
		[]cultural.BargainingTip{
			{Situation: "street markets", Tip: "Start at half the quoted price."},
		},
	)
}

func staticContent(c *cultural.Content) func() *cultural.Content {
	return func() *cultural.Content { return c }
}

func TestCulturalSearch_RanksExactAboveSubstring(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/search?q=kerala", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data []cultural.SearchResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) == 0 {
		t.Fatal("expected results")
	}
	// The region exact match should lead; Onam (Kerala-tagged but not
	// name-matched) only surfaces through its own name, so it is absent.
	if env.Data[0].Name != "Kerala" {
		t.Errorf("expected Kerala first, got %q", env.Data[0].Name)
	}
	for i := 1; i < len(env.Data); i++ {
		if env.Data[i-1].Score < env.Data[i].Score {
			t.Errorf("results out of score order at %d", i)
		}
	}
}

func TestCulturalSearch_EmptyQueryRejected(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/search?q=", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty query, got %d", rec.Code)
	}
}

func TestCulturalRegion_CaseInsensitive(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/regions/RAJASTHAN", nil)
	rec := httptest.NewRecorder()
	h.Region(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCulturalRegion_NotFound(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/regions/narnia", nil)
	rec := httptest.NewRecorder()
	h.Region(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCulturalFestivals_ListAndSingle(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/festivals", nil)
	rec := httptest.NewRecorder()
	h.Festivals(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing festivals, got %d", rec.Code)
	}
	var env struct {
		Data []cultural.Festival `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("expected 2 festivals, got %d", len(env.Data))
	}

	req = httptest.NewRequest(http.MethodGet, "/cultural/festivals?name=onam", nil)
	rec = httptest.NewRecorder()
	h.Festivals(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for single festival, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cultural/festivals?name=unknown", nil)
	rec = httptest.NewRecorder()
	h.Festivals(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown festival, got %d", rec.Code)
	}
}

func TestCulturalEtiquette_Topic(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/etiquette/temple%20visits", nil)
	rec := httptest.NewRecorder()
	h.Etiquette(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCulturalBargainingTips(t *testing.T) {
	h := NewCulturalHandlers(staticContent(testCulturalContent()))

	req := httptest.NewRequest(http.MethodGet, "/cultural/bargaining-tips", nil)
	rec := httptest.NewRecorder()
	h.BargainingTips(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data []cultural.BargainingTip `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("expected 1 tip, got %d", len(env.Data))
	}
}
