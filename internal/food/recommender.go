package food

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
	"github.com/Mukesh-219/indian-local-guide-api/internal/tracing"
)

// Radius and result-size constants. The defaults mirror what street-food
// discovery actually needs: a walkable radius for recommendations, a short
// ride for category browsing, and a metro-scale sweep for hub aggregation.
const (
	DefaultRadiusKm  = 5.0
	CategoryRadiusKm = 10.0
	HubRadiusKm      = 50.0

	MaxRecommendations = 20
	MaxCategoryResults = 15
	MaxSearchResults   = 15
)

// hubBucketDegrees is the coordinate truncation step for hub bucketing
// (~11 km cells at the equator).
const hubBucketDegrees = 0.1

// Recommender ranks vendor/item offerings for a query origin. Stateless
// between calls.
type Recommender struct {
	store Store
}

// NewRecommender creates a Recommender backed by the given store.
func NewRecommender(store Store) *Recommender {
	return &Recommender{store: store}
}

// Recommend returns up to 20 recommendations within the search radius
// (default 5 km), ordered by overall safety rating descending with distance
// ascending as the tie-break.
func (r *Recommender) Recommend(ctx context.Context, origin geo.Point, f Filters) (recs []Recommendation, err error) {
	ctx, end := tracing.StartSpan(ctx, "recommend_food")
	defer func() { end(err) }()

	if err := geo.ValidatePoint(origin); err != nil {
		return nil, &ValidationError{Fields: []string{err.Error()}}
	}

	radius := f.RadiusKm
	if radius <= 0 {
		radius = DefaultRadiusKm
	}

	offerings, err := r.store.FindOfferings(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find offerings: %w", err)
	}

	recs = make([]Recommendation, 0, len(offerings))
	for _, o := range offerings {
		distance := geo.Distance(origin, o.Vendor.Location.Point)
		if distance > radius {
			continue
		}
		recs = append(recs, compose(o, distance))
	}

	sortBySafetyThenDistance(recs)
	return limitResults(recs, MaxRecommendations), nil
}

// ByCategory returns up to 15 recommendations for a dish category, drawn
// from vendors within a fixed 10 km radius of the origin, using the same
// composite ordering as Recommend.
func (r *Recommender) ByCategory(ctx context.Context, category string, origin geo.Point) ([]Recommendation, error) {
	if err := geo.ValidatePoint(origin); err != nil {
		return nil, &ValidationError{Fields: []string{err.Error()}}
	}

	items, err := r.store.ItemsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("items by category %q: %w", category, err)
	}

	recs, err := r.crossReference(ctx, items, origin, CategoryRadiusKm)
	if err != nil {
		return nil, err
	}

	sortBySafetyThenDistance(recs)
	return limitResults(recs, MaxCategoryResults), nil
}

// Search returns up to 15 recommendations matching the query against item
// names, descriptions, and categories. Items whose name contains the query
// outrank description-only matches regardless of rating; safety rating
// breaks ties within each group.
func (r *Recommender) Search(ctx context.Context, query string, origin geo.Point) ([]Recommendation, error) {
	if err := geo.ValidatePoint(origin); err != nil {
		return nil, &ValidationError{Fields: []string{err.Error()}}
	}

	items, err := r.store.SearchItems(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search items %q: %w", query, err)
	}

	recs, err := r.crossReference(ctx, items, origin, CategoryRadiusKm)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	sort.SliceStable(recs, func(i, j int) bool {
		ni := strings.Contains(strings.ToLower(recs[i].ItemName), q)
		nj := strings.Contains(strings.ToLower(recs[j].ItemName), q)
		if ni != nj {
			return ni
		}
		return recs[i].Safety.Overall > recs[j].Safety.Overall
	})
	return limitResults(recs, MaxSearchResults), nil
}

// PopularHubs groups vendors within 50 km of the city's nominal center into
// coarse buckets (city name + lat/lng truncated to 0.1°), one hub per
// bucket carrying the union of distinct item names sold there, ordered by
// distinct-item count descending.
func (r *Recommender) PopularHubs(ctx context.Context, city string) ([]Hub, error) {
	center, err := r.store.CityCenter(ctx, city)
	if err != nil {
		return nil, err
	}

	vendors, err := r.store.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	type bucket struct {
		hub   Hub
		items map[string]bool
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, v := range vendors {
		if geo.Distance(center, v.Location.Point) > HubRadiusKm {
			continue
		}
		lat := truncate(v.Location.Lat)
		lng := truncate(v.Location.Lng)
		key := fmt.Sprintf("%s:%.1f:%.1f", strings.ToLower(city), lat, lng)

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				hub:   Hub{City: city, Lat: lat, Lng: lng},
				items: make(map[string]bool),
			}
			buckets[key] = b
			order = append(order, key)
		}
		b.hub.VendorCount++
		names, err := r.itemNames(ctx, v.ItemIDs)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			b.items[n] = true
		}
	}

	hubs := make([]Hub, 0, len(buckets))
	for _, key := range order {
		b := buckets[key]
		for n := range b.items {
			b.hub.Items = append(b.hub.Items, n)
		}
		sort.Strings(b.hub.Items)
		hubs = append(hubs, b.hub)
	}

	sort.SliceStable(hubs, func(i, j int) bool {
		return len(hubs[i].Items) > len(hubs[j].Items)
	})
	return hubs, nil
}

// VendorSafety returns a vendor's safety rating or ErrVendorNotFound.
func (r *Recommender) VendorSafety(ctx context.Context, vendorID string) (*SafetyRating, error) {
	v, err := r.store.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	rating := v.Safety
	return &rating, nil
}

// crossReference pairs each item with the vendors selling it inside the
// radius, computing per-vendor distance.
func (r *Recommender) crossReference(ctx context.Context, items []Item, origin geo.Point, radiusKm float64) ([]Recommendation, error) {
	var recs []Recommendation
	for _, item := range items {
		vendors, err := r.store.VendorsForItem(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("vendors for item %s: %w", item.ID, err)
		}
		for _, v := range vendors {
			distance := geo.Distance(origin, v.Location.Point)
			if distance > radiusKm {
				continue
			}
			recs = append(recs, compose(Offering{Vendor: v, Item: item}, distance))
		}
	}
	return recs, nil
}

// itemNames resolves item ids to names, skipping dangling references.
func (r *Recommender) itemNames(ctx context.Context, ids []string) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		item, err := r.store.GetItem(ctx, id)
		if errors.Is(err, ErrItemNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		names = append(names, item.Name)
	}
	return names, nil
}

// compose builds the ephemeral recommendation from an offering and its
// computed distance, rounding distance to meters.
func compose(o Offering, distanceKm float64) Recommendation {
	return Recommendation{
		ItemID:      o.Item.ID,
		ItemName:    o.Item.Name,
		Description: o.Item.Description,
		Category:    o.Item.Category,
		Vegetarian:  o.Item.Vegetarian,
		Vegan:       o.Item.Vegan,
		SpiceLevel:  o.Item.SpiceLevel,
		VendorID:    o.Vendor.ID,
		VendorName:  o.Vendor.Name,
		Location:    o.Vendor.Location,
		Safety:      o.Vendor.Safety,
		PriceMin:    o.Vendor.PriceMin,
		PriceMax:    o.Vendor.PriceMax,
		Hours:       o.Vendor.Hours,
		DistanceKm:  math.Round(distanceKm*1000) / 1000,
	}
}

// sortBySafetyThenDistance applies the composite key: overall safety rating
// descending, then distance ascending.
func sortBySafetyThenDistance(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Safety.Overall != recs[j].Safety.Overall {
			return recs[i].Safety.Overall > recs[j].Safety.Overall
		}
		return recs[i].DistanceKm < recs[j].DistanceKm
	})
}

func limitResults(recs []Recommendation, max int) []Recommendation {
	if len(recs) > max {
		recs = recs[:max]
	}
	if recs == nil {
		recs = []Recommendation{}
	}
	return recs
}

func truncate(v float64) float64 {
	return math.Trunc(v/hubBucketDegrees) * hubBucketDegrees
}
