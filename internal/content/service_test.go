package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
)

func newTestService() (*Service, *food.MemoryStore, *CulturalLibrary) {
	translator := slang.NewTranslator(slang.NewMemoryStore())
	foodStore := food.NewMemoryStore()
	library := NewCulturalLibrary(
		[]cultural.RegionalInfo{{Region: "Delhi", Summary: "The capital."}},
		nil, nil, nil,
	)
	return NewService(translator, foodStore, library), foodStore, library
}

func TestIngest_UnknownKind(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Ingest(context.Background(), Submission{Kind: "music", Payload: json.RawMessage(`{}`)})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestIngest_Slang(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	payload := json.RawMessage(`{
		"kind": "slang",
		"payload": {
			"id": "",
			"text": "jugaad",
			"language": "hindi",
			"region": "North India",
			"context": "casual",
			"popularity": 90,
			"translations": [{"text": "hack", "language": "english", "context": "casual", "confidence": 0.9}]
		}
	}`)
	var sub Submission
	if err := json.Unmarshal(payload, &sub); err != nil {
		t.Fatalf("unmarshal submission: %v", err)
	}

	result, err := svc.Ingest(ctx, sub)
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if result.Kind != KindSlang || result.Name != "jugaad" || result.ID == "" {
		t.Errorf("unexpected result: %+v", result)
	}

	// Resubmitting the same term keeps conflict semantics.
	if _, err := svc.Ingest(ctx, sub); !errors.Is(err, slang.ErrDuplicateTerm) {
		t.Errorf("duplicate submission error = %v, want ErrDuplicateTerm", err)
	}
}

func TestIngest_SlangValidationFails(t *testing.T) {
	svc, _, _ := newTestService()

	sub := Submission{
		Kind:    "slang",
		Payload: json.RawMessage(`{"text": "", "language": "hindi", "region": "Delhi"}`),
	}
	if _, err := svc.Ingest(context.Background(), sub); err == nil {
		t.Fatal("expected validation error for empty text")
	}
}

func TestIngest_Food(t *testing.T) {
	svc, foodStore, _ := newTestService()
	ctx := context.Background()

	sub := Submission{
		Kind: "food",
		Payload: json.RawMessage(`{
			"vendor": {
				"name": "Test Chaat Stall",
				"location": {"lat": 28.63, "lng": 77.21, "city": "Delhi"},
				"safety_rating": {"overall": 4, "hygiene": 4, "freshness": 4, "popularity": 3, "review_count": 10, "last_updated": "2026-01-01T00:00:00Z"},
				"price_min": 20,
				"price_max": 80,
				"item_ids": []
			},
			"items": [
				{"name": "Papdi Chaat", "category": "chaat", "vegetarian": true, "spice_level": 2}
			]
		}`),
	}

	result, err := svc.Ingest(ctx, sub)
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if result.Kind != KindFood || result.ID == "" {
		t.Errorf("unexpected result: %+v", result)
	}

	vendor, err := foodStore.GetVendor(ctx, result.ID)
	if err != nil {
		t.Fatalf("GetVendor() error: %v", err)
	}
	if len(vendor.ItemIDs) != 1 {
		t.Fatalf("vendor has %d items, want 1", len(vendor.ItemIDs))
	}
	item, err := foodStore.GetItem(ctx, vendor.ItemIDs[0])
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if item.Name != "Papdi Chaat" {
		t.Errorf("item name = %q, want Papdi Chaat", item.Name)
	}
}

func TestIngest_FoodRejectsBadVendor(t *testing.T) {
	svc, _, _ := newTestService()

	// Latitude out of range and inverted price band.
	sub := Submission{
		Kind: "food",
		Payload: json.RawMessage(`{
			"vendor": {
				"name": "Broken Stall",
				"location": {"lat": 91.0, "lng": 77.21, "city": "Delhi"},
				"price_min": 100,
				"price_max": 50
			}
		}`),
	}
	var verr *food.ValidationError
	if _, err := svc.Ingest(context.Background(), sub); !errors.As(err, &verr) {
		t.Fatalf("expected food ValidationError, got %v", err)
	}
}

func TestIngest_Cultural(t *testing.T) {
	svc, _, library := newTestService()
	ctx := context.Background()

	sub := Submission{
		Kind: "cultural",
		Payload: json.RawMessage(`{
			"festival": {
				"name": "Pongal",
				"region": "Tamil Nadu",
				"month": "January",
				"description": "Harvest festival of Tamil Nadu."
			}
		}`),
	}
	result, err := svc.Ingest(ctx, sub)
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if result.Kind != KindCultural || result.Name != "Pongal" {
		t.Errorf("unexpected result: %+v", result)
	}

	// Visible through the swapped content tables.
	if _, err := library.Content().Festival("pongal"); err != nil {
		t.Errorf("Festival(pongal) after ingest: %v", err)
	}
	// Seeded region still present.
	if _, err := library.Content().Region("delhi"); err != nil {
		t.Errorf("Region(delhi) after ingest: %v", err)
	}
}

func TestIngest_CulturalEmptyPayload(t *testing.T) {
	svc, _, _ := newTestService()

	sub := Submission{Kind: "cultural", Payload: json.RawMessage(`{}`)}
	var verr *ValidationError
	if _, err := svc.Ingest(context.Background(), sub); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestIngest_UnknownFieldRejected(t *testing.T) {
	svc, _, _ := newTestService()

	sub := Submission{
		Kind:    "cultural",
		Payload: json.RawMessage(`{"festivle": {"name": "Typo"}}`),
	}
	var verr *ValidationError
	if _, err := svc.Ingest(context.Background(), sub); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown field, got %v", err)
	}
}
