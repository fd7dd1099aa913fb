// Package content implements admin content ingestion: a tagged-union
// submission envelope routed to the slang, food, or cultural domain with
// per-kind validation.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
)

// Submission kinds.
const (
	KindSlang    = "slang"
	KindFood     = "food"
	KindCultural = "cultural"
)

// ValidationError carries field-level messages for a rejected submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "content validation failed: " + strings.Join(e.Fields, "; ")
}

// Submission is the admin ingestion envelope. Payload shape depends on Kind.
type Submission struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// FoodPayload bundles a vendor with any new items it offers. Items are
// created first so the vendor's item references resolve.
type FoodPayload struct {
	Vendor food.Vendor `json:"vendor"`
	Items  []food.Item `json:"items,omitempty"`
}

// CulturalPayload carries at most one entry per table; at least one entry
// must be present.
type CulturalPayload struct {
	Region    *cultural.RegionalInfo  `json:"region,omitempty"`
	Festival  *cultural.Festival      `json:"festival,omitempty"`
	Etiquette *cultural.EtiquetteRule `json:"etiquette,omitempty"`
	Tip       *cultural.BargainingTip `json:"bargaining_tip,omitempty"`
}

// Result identifies what a successful submission created.
type Result struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Service routes admin submissions to the owning domain.
type Service struct {
	translator *slang.Translator
	food       food.Store
	cultural   *CulturalLibrary
}

// NewService creates the ingestion service.
func NewService(translator *slang.Translator, foodStore food.Store, library *CulturalLibrary) *Service {
	return &Service{translator: translator, food: foodStore, cultural: library}
}

// Ingest validates and applies one submission. Unknown kinds and malformed
// payloads are ValidationErrors; slang duplicates keep their Conflict
// semantics from the translator.
func (s *Service) Ingest(ctx context.Context, sub Submission) (*Result, error) {
	switch strings.ToLower(strings.TrimSpace(sub.Kind)) {
	case KindSlang:
		return s.ingestSlang(ctx, sub.Payload)
	case KindFood:
		return s.ingestFood(ctx, sub.Payload)
	case KindCultural:
		return s.ingestCultural(sub.Payload)
	default:
		return nil, &ValidationError{Fields: []string{
			fmt.Sprintf("kind must be one of %s, %s, %s", KindSlang, KindFood, KindCultural),
		}}
	}
}

func (s *Service) ingestSlang(ctx context.Context, payload json.RawMessage) (*Result, error) {
	var term slang.Term
	if err := strictUnmarshal(payload, &term); err != nil {
		return nil, &ValidationError{Fields: []string{"payload: " + err.Error()}}
	}

	stored, err := s.translator.Add(ctx, &term)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: KindSlang, ID: stored.ID, Name: stored.Text}, nil
}

func (s *Service) ingestFood(ctx context.Context, payload json.RawMessage) (*Result, error) {
	var p FoodPayload
	if err := strictUnmarshal(payload, &p); err != nil {
		return nil, &ValidationError{Fields: []string{"payload: " + err.Error()}}
	}

	var fields []string
	for i := range p.Items {
		if strings.TrimSpace(p.Items[i].Name) == "" {
			fields = append(fields, fmt.Sprintf("items[%d].name must not be empty", i))
		}
		if strings.TrimSpace(p.Items[i].Category) == "" {
			fields = append(fields, fmt.Sprintf("items[%d].category must not be empty", i))
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if err := p.Vendor.Validate(); err != nil {
		return nil, err
	}

	for i := range p.Items {
		if p.Items[i].ID == "" {
			p.Items[i].ID = uuid.NewString()
		}
		if err := s.food.CreateItem(ctx, &p.Items[i]); err != nil {
			return nil, fmt.Errorf("create item %q: %w", p.Items[i].Name, err)
		}
		p.Vendor.ItemIDs = append(p.Vendor.ItemIDs, p.Items[i].ID)
	}

	if p.Vendor.ID == "" {
		p.Vendor.ID = uuid.NewString()
	}
	if err := s.food.CreateVendor(ctx, &p.Vendor); err != nil {
		return nil, fmt.Errorf("create vendor %q: %w", p.Vendor.Name, err)
	}
	return &Result{Kind: KindFood, ID: p.Vendor.ID, Name: p.Vendor.Name}, nil
}

func (s *Service) ingestCultural(payload json.RawMessage) (*Result, error) {
	var p CulturalPayload
	if err := strictUnmarshal(payload, &p); err != nil {
		return nil, &ValidationError{Fields: []string{"payload: " + err.Error()}}
	}

	var fields []string
	name := ""
	switch {
	case p.Region != nil:
		if strings.TrimSpace(p.Region.Region) == "" {
			fields = append(fields, "region.region must not be empty")
		}
		if strings.TrimSpace(p.Region.Summary) == "" {
			fields = append(fields, "region.summary must not be empty")
		}
		name = p.Region.Region
	case p.Festival != nil:
		if strings.TrimSpace(p.Festival.Name) == "" {
			fields = append(fields, "festival.name must not be empty")
		}
		if strings.TrimSpace(p.Festival.Description) == "" {
			fields = append(fields, "festival.description must not be empty")
		}
		name = p.Festival.Name
	case p.Etiquette != nil:
		if strings.TrimSpace(p.Etiquette.Topic) == "" {
			fields = append(fields, "etiquette.topic must not be empty")
		}
		if len(p.Etiquette.Dos) == 0 && len(p.Etiquette.Donts) == 0 {
			fields = append(fields, "etiquette needs at least one do or don't")
		}
		name = p.Etiquette.Topic
	case p.Tip != nil:
		if strings.TrimSpace(p.Tip.Situation) == "" {
			fields = append(fields, "bargaining_tip.situation must not be empty")
		}
		if strings.TrimSpace(p.Tip.Tip) == "" {
			fields = append(fields, "bargaining_tip.tip must not be empty")
		}
		name = p.Tip.Situation
	default:
		fields = append(fields, "payload must contain a region, festival, etiquette rule, or bargaining tip")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	s.cultural.add(p.Region, p.Festival, p.Etiquette, p.Tip)
	return &Result{Kind: KindCultural, Name: name}, nil
}

// strictUnmarshal rejects unknown fields so typos in admin payloads surface
// as errors instead of silently dropped data.
func strictUnmarshal(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return errors.New("payload is required")
	}
	dec := json.NewDecoder(strings.NewReader(string(payload)))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
