// Package seed provides the built-in starter dataset, applies it to the
// domain stores, and persists store state to a CBOR snapshot so admin-added
// content survives restarts in the in-memory configuration.
package seed

import (
	"context"
	"fmt"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
)

// Data is the full seedable state: slang terms, food vendors and items with
// city centers, and the cultural reference tables. It doubles as the
// snapshot format.
type Data struct {
	Terms       []slang.Term             `cbor:"terms"`
	Items       []food.Item              `cbor:"items"`
	Vendors     []food.Vendor            `cbor:"vendors"`
	CityCenters map[string]geo.Point     `cbor:"city_centers"`
	Regions     []cultural.RegionalInfo  `cbor:"regions"`
	Festivals   []cultural.Festival      `cbor:"festivals"`
	Etiquette   []cultural.EtiquetteRule `cbor:"etiquette"`
	Tips        []cultural.BargainingTip `cbor:"bargaining_tips"`
}

// Apply loads terms, items, vendors, and city centers into the stores.
// Items are created before vendors so vendor item references resolve.
func (d *Data) Apply(ctx context.Context, terms slang.Store, foodStore *food.MemoryStore) error {
	for i := range d.Terms {
		if err := terms.Create(ctx, &d.Terms[i]); err != nil {
			return fmt.Errorf("seed term %q: %w", d.Terms[i].Text, err)
		}
	}
	for i := range d.Items {
		if err := foodStore.CreateItem(ctx, &d.Items[i]); err != nil {
			return fmt.Errorf("seed item %q: %w", d.Items[i].Name, err)
		}
	}
	for i := range d.Vendors {
		if err := foodStore.CreateVendor(ctx, &d.Vendors[i]); err != nil {
			return fmt.Errorf("seed vendor %q: %w", d.Vendors[i].Name, err)
		}
	}
	for city, center := range d.CityCenters {
		foodStore.SetCityCenter(city, center)
	}
	return nil
}

// Cultural builds the immutable cultural content tables from the dataset.
func (d *Data) Cultural() *cultural.Content {
	return cultural.NewContent(d.Regions, d.Festivals, d.Etiquette, d.Tips)
}

// Collect gathers the current store state back into a snapshot-ready Data.
// The cultural tables are passed in by the caller because they live in the
// content library, not in a store.
func Collect(ctx context.Context, terms slang.Store, foodStore *food.MemoryStore,
	regions []cultural.RegionalInfo, festivals []cultural.Festival,
	etiquette []cultural.EtiquetteRule, tips []cultural.BargainingTip) (*Data, error) {

	allTerms, err := terms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect terms: %w", err)
	}
	items, err := foodStore.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect items: %w", err)
	}
	vendors, err := foodStore.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect vendors: %w", err)
	}

	return &Data{
		Terms:       allTerms,
		Items:       items,
		Vendors:     vendors,
		CityCenters: foodStore.CityCenters(),
		Regions:     regions,
		Festivals:   festivals,
		Etiquette:   etiquette,
		Tips:        tips,
	}, nil
}
