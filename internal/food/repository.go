package food

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
)

// Store defines the persistence contract for the food domain. Empty result
// sets are success values; only vendor/city lookups by identity return
// not-found errors.
type Store interface {
	// FindOfferings returns every (vendor, item) pairing satisfying the
	// dietary, price, and rating filters. Radius is applied by the
	// recommender, not the store.
	FindOfferings(ctx context.Context, f Filters) ([]Offering, error)

	// ItemsByCategory returns all items in a category, case-insensitively.
	ItemsByCategory(ctx context.Context, category string) ([]Item, error)

	// SearchItems matches the query as a substring of item name,
	// description, or category.
	SearchItems(ctx context.Context, query string) ([]Item, error)

	// VendorsForItem returns the vendors listing the item.
	VendorsForItem(ctx context.Context, itemID string) ([]Vendor, error)

	// GetVendor returns the vendor or ErrVendorNotFound.
	GetVendor(ctx context.Context, id string) (*Vendor, error)

	// GetItem returns the item or ErrItemNotFound.
	GetItem(ctx context.Context, id string) (*Item, error)

	// ListVendors returns every vendor.
	ListVendors(ctx context.Context) ([]Vendor, error)

	// CityCenter returns the nominal center point for a city, or
	// ErrUnknownCity.
	CityCenter(ctx context.Context, city string) (geo.Point, error)

	// CreateVendor and CreateItem persist new records. Used by seed load
	// and admin content ingestion.
	CreateVendor(ctx context.Context, v *Vendor) error
	CreateItem(ctx context.Context, i *Item) error
}

// MemoryStore is an in-memory Store guarded by a RWMutex, handing out deep
// copies.
type MemoryStore struct {
	mu      sync.RWMutex
	vendors map[string]*Vendor
	items   map[string]*Item
	cities  map[string]geo.Point
}

// NewMemoryStore creates an empty in-memory food store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vendors: make(map[string]*Vendor),
		items:   make(map[string]*Item),
		cities:  make(map[string]geo.Point),
	}
}

// SetCityCenter registers a nominal city center used by hub aggregation.
func (s *MemoryStore) SetCityCenter(city string, p geo.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[strings.ToLower(city)] = p
}

// CreateVendor stores a vendor.
func (s *MemoryStore) CreateVendor(_ context.Context, v *Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors[v.ID] = v.Clone()
	return nil
}

// CreateItem stores an item.
func (s *MemoryStore) CreateItem(_ context.Context, i *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID] = i.Clone()
	return nil
}

// FindOfferings expands each vendor's listings and applies the dietary,
// price, and rating filters.
func (s *MemoryStore) FindOfferings(_ context.Context, f Filters) ([]Offering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Offering
	for _, v := range s.vendors {
		if f.MinSafety != nil && v.Safety.Overall < *f.MinSafety {
			continue
		}
		if f.MaxPrice != nil && v.PriceMin > *f.MaxPrice {
			continue
		}
		for _, itemID := range v.ItemIDs {
			item, ok := s.items[itemID]
			if !ok {
				continue
			}
			if f.VegetarianOnly && !item.Vegetarian {
				continue
			}
			if f.VeganOnly && !item.Vegan {
				continue
			}
			if f.MaxSpiceLevel != nil && item.SpiceLevel > *f.MaxSpiceLevel {
				continue
			}
			out = append(out, Offering{Vendor: *v.Clone(), Item: *item.Clone()})
		}
	}
	sortOfferings(out)
	return out, nil
}

// ItemsByCategory returns all items in a category, case-insensitively.
func (s *MemoryStore) ItemsByCategory(_ context.Context, category string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := strings.ToLower(category)
	var out []Item
	for _, i := range s.items {
		if strings.ToLower(i.Category) == c {
			out = append(out, *i.Clone())
		}
	}
	sortItems(out)
	return out, nil
}

// SearchItems matches query substrings against name, description, and
// category.
func (s *MemoryStore) SearchItems(_ context.Context, query string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var out []Item
	for _, i := range s.items {
		if strings.Contains(strings.ToLower(i.Name), q) ||
			strings.Contains(strings.ToLower(i.Description), q) ||
			strings.Contains(strings.ToLower(i.Category), q) {
			out = append(out, *i.Clone())
		}
	}
	sortItems(out)
	return out, nil
}

// VendorsForItem returns the vendors listing the item.
func (s *MemoryStore) VendorsForItem(_ context.Context, itemID string) ([]Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Vendor
	for _, v := range s.vendors {
		for _, id := range v.ItemIDs {
			if id == itemID {
				out = append(out, *v.Clone())
				break
			}
		}
	}
	sortVendors(out)
	return out, nil
}

// GetVendor returns the vendor or ErrVendorNotFound.
func (s *MemoryStore) GetVendor(_ context.Context, id string) (*Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil, ErrVendorNotFound
	}
	return v.Clone(), nil
}

// GetItem returns the item or ErrItemNotFound.
func (s *MemoryStore) GetItem(_ context.Context, id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return i.Clone(), nil
}

// ListVendors returns every vendor.
func (s *MemoryStore) ListVendors(_ context.Context) ([]Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, *v.Clone())
	}
	sortVendors(out)
	return out, nil
}

// ListItems returns every item. Used by snapshot collection.
func (s *MemoryStore) ListItems(_ context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, i := range s.items {
		out = append(out, *i.Clone())
	}
	sortItems(out)
	return out, nil
}

// CityCenters returns a copy of the registered city centers.
func (s *MemoryStore) CityCenters() map[string]geo.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]geo.Point, len(s.cities))
	for city, p := range s.cities {
		out[city] = p
	}
	return out
}

// CityCenter returns the nominal center point for a city.
func (s *MemoryStore) CityCenter(_ context.Context, city string) (geo.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.cities[strings.ToLower(city)]
	if !ok {
		return geo.Point{}, ErrUnknownCity
	}
	return p, nil
}

// Stable orderings keep map iteration order out of responses.

func sortOfferings(offerings []Offering) {
	sort.Slice(offerings, func(i, j int) bool {
		if offerings[i].Vendor.ID != offerings[j].Vendor.ID {
			return offerings[i].Vendor.ID < offerings[j].Vendor.ID
		}
		return offerings[i].Item.ID < offerings[j].Item.ID
	})
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

func sortVendors(vendors []Vendor) {
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].Name < vendors[j].Name })
}
