// Package food implements the street-food recommendation domain: vendors
// with safety ratings and locations, dish metadata, and the distance- and
// rating-aware ranking that turns them into recommendations.
package food

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
)

// Sentinel errors surfaced by the store and recommender.
var (
	// ErrVendorNotFound indicates the referenced vendor does not exist.
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrItemNotFound indicates the referenced food item does not exist.
	ErrItemNotFound = errors.New("food item not found")

	// ErrUnknownCity indicates no city center is known for the given name.
	ErrUnknownCity = errors.New("unknown city")
)

// ValidationError carries field-level messages for invariant violations.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// SafetyRating is the five-part hygiene/quality score attached to a vendor.
// Sub-scores run 1 (worst) to 5 (best).
type SafetyRating struct {
	Overall     int       `json:"overall"`
	Hygiene     int       `json:"hygiene"`
	Freshness   int       `json:"freshness"`
	Popularity  int       `json:"popularity"`
	ReviewCount int       `json:"review_count"`
	LastUpdated time.Time `json:"last_updated"`
}

// Location is a coordinate pair with human-readable place names. Never
// persisted independently of its owning vendor.
type Location struct {
	geo.Point
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Item is a dish description, independent of any particular seller.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Region      string   `json:"region,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Vegetarian  bool     `json:"vegetarian"`
	Vegan       bool     `json:"vegan"`
	SpiceLevel  int      `json:"spice_level"`
}

// Vendor is a physical seller at a location offering a set of items.
type Vendor struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Location     Location          `json:"location"`
	ItemIDs      []string          `json:"item_ids"`
	Safety       SafetyRating      `json:"safety_rating"`
	PriceMin     int               `json:"price_min"`
	PriceMax     int               `json:"price_max"`
	Hours        map[string]string `json:"hours,omitempty"`
	HygieneNotes []string          `json:"hygiene_notes,omitempty"`
}

// Validate checks the vendor invariants: a sane price range and in-bounds
// coordinates.
func (v *Vendor) Validate() error {
	var fields []string
	if strings.TrimSpace(v.Name) == "" {
		fields = append(fields, "name must not be empty")
	}
	if v.PriceMax < v.PriceMin {
		fields = append(fields, fmt.Sprintf("price_max (%d) must be >= price_min (%d)", v.PriceMax, v.PriceMin))
	}
	if err := geo.ValidatePoint(v.Location.Point); err != nil {
		fields = append(fields, err.Error())
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a deep copy of the vendor.
func (v *Vendor) Clone() *Vendor {
	cp := *v
	cp.ItemIDs = append([]string(nil), v.ItemIDs...)
	cp.HygieneNotes = append([]string(nil), v.HygieneNotes...)
	if v.Hours != nil {
		cp.Hours = make(map[string]string, len(v.Hours))
		for k, val := range v.Hours {
			cp.Hours[k] = val
		}
	}
	return &cp
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	cp := *i
	cp.Ingredients = append([]string(nil), i.Ingredients...)
	return &cp
}

// Offering is a (vendor, item) pairing produced by the store for the
// recommender to rank.
type Offering struct {
	Vendor Vendor
	Item   Item
}

// Recommendation is the ephemeral query-time composition of an item's
// descriptive fields with its vendor's rating, price, hours, and the
// computed distance from the query origin. Never stored.
type Recommendation struct {
	ItemID      string            `json:"item_id"`
	ItemName    string            `json:"item_name"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Vegetarian  bool              `json:"vegetarian"`
	Vegan       bool              `json:"vegan"`
	SpiceLevel  int               `json:"spice_level"`
	VendorID    string            `json:"vendor_id"`
	VendorName  string            `json:"vendor_name"`
	Location    Location          `json:"location"`
	Safety      SafetyRating      `json:"safety_rating"`
	PriceMin    int               `json:"price_min"`
	PriceMax    int               `json:"price_max"`
	Hours       map[string]string `json:"hours,omitempty"`
	DistanceKm  float64           `json:"distance_km"`
}

// Filters constrain a recommendation query. Nil pointer fields mean
// unconstrained.
type Filters struct {
	VegetarianOnly bool
	VeganOnly      bool
	MaxSpiceLevel  *int
	MaxPrice       *int
	MinSafety      *int
	RadiusKm       float64
}

// Hub is a coarse geographic cluster of vendors within a city, synthesized
// by the popular-hubs aggregation.
type Hub struct {
	City        string   `json:"city"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	VendorCount int      `json:"vendor_count"`
	Items       []string `json:"items"`
}
