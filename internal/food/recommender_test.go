package food

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
)

// Delhi-area coordinates used throughout: Connaught Place as the query
// origin, with vendors placed at known offsets.
var connaughtPlace = geo.Point{Lat: 28.6315, Lng: 77.2167}

func testStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()

	items := []Item{
		{ID: "i-chaat", Name: "Aloo Chaat", Description: "spiced potato snack", Category: "chaat", Vegetarian: true, Vegan: true, SpiceLevel: 3},
		{ID: "i-golgappa", Name: "Golgappa", Description: "crisp shells with tangy water", Category: "chaat", Vegetarian: true, Vegan: true, SpiceLevel: 4},
		{ID: "i-kebab", Name: "Seekh Kebab", Description: "minced meat skewers", Category: "kebab", Vegetarian: false, Vegan: false, SpiceLevel: 3},
		{ID: "i-lassi", Name: "Sweet Lassi", Description: "yogurt drink", Category: "beverage", Vegetarian: true, Vegan: false, SpiceLevel: 0},
	}
	for i := range items {
		if err := store.CreateItem(context.Background(), &items[i]); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	vendors := []Vendor{
		{
			ID:   "v-near-high",
			Name: "Sharma Chaat Bhandar",
			Location: Location{
				Point: geo.Point{Lat: 28.6350, Lng: 77.2200},
				City:  "Delhi",
			},
			ItemIDs:  []string{"i-chaat", "i-golgappa"},
			Safety:   SafetyRating{Overall: 5, Hygiene: 5, Freshness: 4, Popularity: 5, ReviewCount: 210, LastUpdated: time.Now()},
			PriceMin: 30, PriceMax: 80,
		},
		{
			ID:   "v-near-low",
			Name: "Corner Kebab Cart",
			Location: Location{
				Point: geo.Point{Lat: 28.6330, Lng: 77.2180},
				City:  "Delhi",
			},
			ItemIDs:  []string{"i-kebab", "i-lassi"},
			Safety:   SafetyRating{Overall: 3, Hygiene: 3, Freshness: 3, Popularity: 4, ReviewCount: 45, LastUpdated: time.Now()},
			PriceMin: 60, PriceMax: 150,
		},
		{
			ID:   "v-far",
			Name: "Gurgaon Chaat Corner",
			Location: Location{
				// Roughly 12 km southwest of Connaught Place.
				Point: geo.Point{Lat: 28.5355, Lng: 77.1500},
				City:  "Delhi",
			},
			ItemIDs:  []string{"i-chaat"},
			Safety:   SafetyRating{Overall: 5, Hygiene: 5, Freshness: 5, Popularity: 3, ReviewCount: 30, LastUpdated: time.Now()},
			PriceMin: 40, PriceMax: 90,
		},
	}
	for i := range vendors {
		if err := store.CreateVendor(context.Background(), &vendors[i]); err != nil {
			t.Fatalf("CreateVendor: %v", err)
		}
	}

	store.SetCityCenter("Delhi", geo.Point{Lat: 28.6139, Lng: 77.2090})
	return store
}

func TestRecommend_RadiusContainment(t *testing.T) {
	rec := NewRecommender(testStore(t))

	got, err := rec.Recommend(context.Background(), connaughtPlace, Filters{RadiusKm: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range got {
		if r.DistanceKm > 10 {
			t.Errorf("vendor %s at %.2f km exceeds 10 km radius", r.VendorID, r.DistanceKm)
		}
		if r.VendorID == "v-far" {
			t.Errorf("vendor ~12 km away included within 10 km radius")
		}
	}
	if len(got) == 0 {
		t.Fatal("expected nearby vendors within radius")
	}
}

func TestRecommend_DefaultRadius(t *testing.T) {
	rec := NewRecommender(testStore(t))

	got, err := rec.Recommend(context.Background(), connaughtPlace, Filters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range got {
		if r.DistanceKm > DefaultRadiusKm {
			t.Errorf("vendor %s at %.2f km exceeds default %.0f km radius", r.VendorID, r.DistanceKm, DefaultRadiusKm)
		}
	}
	if len(got) != 4 {
		t.Errorf("got %d recommendations, want 4 (two nearby vendors, two items each)", len(got))
	}
}

// TestRecommend_Ordering: for any adjacent pair, either the first has a
// strictly higher overall rating, or ratings are equal and the first is no
// farther away.
func TestRecommend_Ordering(t *testing.T) {
	rec := NewRecommender(testStore(t))

	got, err := rec.Recommend(context.Background(), connaughtPlace, Filters{RadiusKm: 20})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) < 2 {
		t.Fatal("need at least two recommendations to check ordering")
	}
	for i := 0; i < len(got)-1; i++ {
		a, b := got[i], got[i+1]
		if a.Safety.Overall < b.Safety.Overall {
			t.Errorf("position %d: rating %d before rating %d", i, a.Safety.Overall, b.Safety.Overall)
		}
		if a.Safety.Overall == b.Safety.Overall && a.DistanceKm > b.DistanceKm {
			t.Errorf("position %d: equal ratings but %.3f km before %.3f km", i, a.DistanceKm, b.DistanceKm)
		}
	}
}

func TestRecommend_Filters(t *testing.T) {
	rec := NewRecommender(testStore(t))
	ctx := context.Background()

	veg, err := rec.Recommend(ctx, connaughtPlace, Filters{VegetarianOnly: true, RadiusKm: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range veg {
		if !r.Vegetarian {
			t.Errorf("non-vegetarian item %s passed vegetarian filter", r.ItemName)
		}
	}

	vegan, err := rec.Recommend(ctx, connaughtPlace, Filters{VeganOnly: true, RadiusKm: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range vegan {
		if !r.Vegan {
			t.Errorf("non-vegan item %s passed vegan filter", r.ItemName)
		}
	}

	minSafety := 4
	safe, err := rec.Recommend(ctx, connaughtPlace, Filters{MinSafety: &minSafety, RadiusKm: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range safe {
		if r.Safety.Overall < minSafety {
			t.Errorf("vendor %s rated %d passed min-safety %d", r.VendorID, r.Safety.Overall, minSafety)
		}
	}

	spice := 1
	mild, err := rec.Recommend(ctx, connaughtPlace, Filters{MaxSpiceLevel: &spice, RadiusKm: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, r := range mild {
		if r.SpiceLevel > spice {
			t.Errorf("item %s spice %d passed max %d", r.ItemName, r.SpiceLevel, spice)
		}
	}
}

func TestRecommend_EmptyAreaIsSuccess(t *testing.T) {
	rec := NewRecommender(testStore(t))

	// Middle of the Arabian Sea.
	got, err := rec.Recommend(context.Background(), geo.Point{Lat: 15.0, Lng: 65.0}, Filters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got == nil {
		t.Error("empty result should be a non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("got %d recommendations far from any vendor, want 0", len(got))
	}
}

func TestRecommend_InvalidOrigin(t *testing.T) {
	rec := NewRecommender(testStore(t))

	_, err := rec.Recommend(context.Background(), geo.Point{Lat: 91, Lng: 0}, Filters{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Recommend = %v, want ValidationError", err)
	}
}

func TestRecommend_CapsAtTwenty(t *testing.T) {
	store := NewMemoryStore()
	item := Item{ID: "i1", Name: "Vada Pav", Category: "snack", Vegetarian: true, SpiceLevel: 2}
	if err := store.CreateItem(context.Background(), &item); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	for n := 0; n < 30; n++ {
		v := Vendor{
			ID:       fmt.Sprintf("v%02d", n),
			Name:     fmt.Sprintf("Stall %02d", n),
			Location: Location{Point: geo.Point{Lat: 28.6315 + float64(n)*0.0001, Lng: 77.2167}, City: "Delhi"},
			ItemIDs:  []string{"i1"},
			Safety:   SafetyRating{Overall: 4},
			PriceMin: 20, PriceMax: 40,
		}
		if err := store.CreateVendor(context.Background(), &v); err != nil {
			t.Fatalf("CreateVendor: %v", err)
		}
	}

	got, err := NewRecommender(store).Recommend(context.Background(), connaughtPlace, Filters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != MaxRecommendations {
		t.Errorf("got %d recommendations, want cap of %d", len(got), MaxRecommendations)
	}
}

func TestByCategory(t *testing.T) {
	rec := NewRecommender(testStore(t))

	got, err := rec.ByCategory(context.Background(), "Chaat", connaughtPlace)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2 chaat offerings within 10 km", len(got))
	}
	for _, r := range got {
		if r.Category != "chaat" {
			t.Errorf("category = %q, want chaat", r.Category)
		}
		if r.DistanceKm > CategoryRadiusKm {
			t.Errorf("vendor %s at %.2f km exceeds category radius", r.VendorID, r.DistanceKm)
		}
	}
}

func TestByCategory_UnknownCategoryIsEmpty(t *testing.T) {
	rec := NewRecommender(testStore(t))

	got, err := rec.ByCategory(context.Background(), "sushi", connaughtPlace)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d results for unknown category, want 0", len(got))
	}
}

func TestSearch_NameMatchesFirst(t *testing.T) {
	rec := NewRecommender(testStore(t))

	// "chaat" appears in the item name Aloo Chaat and in the category of
	// Golgappa; the name match must sort first.
	got, err := rec.Search(context.Background(), "chaat", connaughtPlace)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("got %d results, want at least 2", len(got))
	}
	if got[0].ItemName != "Aloo Chaat" {
		t.Errorf("first result = %q, want name match Aloo Chaat", got[0].ItemName)
	}
}

func TestSearch_DescriptionMatch(t *testing.T) {
	rec := NewRecommender(testStore(t))

	got, err := rec.Search(context.Background(), "yogurt", connaughtPlace)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ItemName != "Sweet Lassi" {
		t.Fatalf("got %v, want single Sweet Lassi via description match", got)
	}
}

func TestPopularHubs(t *testing.T) {
	rec := NewRecommender(testStore(t))

	hubs, err := rec.PopularHubs(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("PopularHubs: %v", err)
	}
	if len(hubs) == 0 {
		t.Fatal("expected at least one hub near the Delhi center")
	}

	// Both nearby vendors truncate to the same 0.1-degree cell (28.6, 77.2)
	// and the far vendor to (28.5, 77.1), still within 50 km.
	first := hubs[0]
	if first.VendorCount != 2 {
		t.Errorf("top hub vendor count = %d, want 2", first.VendorCount)
	}
	if len(first.Items) != 4 {
		t.Errorf("top hub distinct items = %d, want 4", len(first.Items))
	}
	for i := 0; i < len(hubs)-1; i++ {
		if len(hubs[i].Items) < len(hubs[i+1].Items) {
			t.Errorf("hubs out of order: %d items before %d", len(hubs[i].Items), len(hubs[i+1].Items))
		}
	}
}

func TestPopularHubs_UnknownCity(t *testing.T) {
	rec := NewRecommender(testStore(t))

	_, err := rec.PopularHubs(context.Background(), "Atlantis")
	if !errors.Is(err, ErrUnknownCity) {
		t.Errorf("PopularHubs = %v, want ErrUnknownCity", err)
	}
}

func TestVendorSafety(t *testing.T) {
	rec := NewRecommender(testStore(t))

	rating, err := rec.VendorSafety(context.Background(), "v-near-high")
	if err != nil {
		t.Fatalf("VendorSafety: %v", err)
	}
	if rating.Overall != 5 || rating.ReviewCount != 210 {
		t.Errorf("rating = %+v, want overall 5 with 210 reviews", rating)
	}

	if _, err := rec.VendorSafety(context.Background(), "nope"); !errors.Is(err, ErrVendorNotFound) {
		t.Errorf("VendorSafety = %v, want ErrVendorNotFound", err)
	}
}

func TestVendorValidate(t *testing.T) {
	v := Vendor{
		Name:     "",
		Location: Location{Point: geo.Point{Lat: 95, Lng: 0}},
		PriceMin: 100,
		PriceMax: 50,
	}
	err := v.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate = %v, want ValidationError", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(verr.Fields), verr.Fields)
	}
}
