// Package cultural serves static regional reference content: region guides,
// festivals, etiquette rules, and bargaining tips. The tables are built once
// at startup and never mutated afterward, so reads need no locking.
package cultural

import (
	"errors"
	"sort"
	"strings"

	"github.com/Mukesh-219/indian-local-guide-api/internal/ranking"
)

// ErrNotFound indicates the requested region, festival, or topic does not
// exist in the content tables.
var ErrNotFound = errors.New("cultural content not found")

// MaxSearchResults caps Search output.
const MaxSearchResults = 20

// RegionalInfo is the reference card for one region.
type RegionalInfo struct {
	Region     string   `json:"region"`
	Summary    string   `json:"summary"`
	Languages  []string `json:"languages,omitempty"`
	Customs    []string `json:"customs,omitempty"`
	MustTry    []string `json:"must_try,omitempty"`
	TravelTips []string `json:"travel_tips,omitempty"`
}

// Festival is one festival entry, optionally tied to a region.
type Festival struct {
	Name         string `json:"name"`
	Region       string `json:"region,omitempty"`
	Month        string `json:"month,omitempty"`
	Description  string `json:"description"`
	Significance string `json:"significance,omitempty"`
}

// EtiquetteRule covers one behavioral topic.
type EtiquetteRule struct {
	Topic  string   `json:"topic"`
	Region string   `json:"region,omitempty"`
	Dos    []string `json:"dos"`
	Donts  []string `json:"donts"`
}

// BargainingTip is advice for a market or purchase situation.
type BargainingTip struct {
	Situation string `json:"situation"`
	Tip       string `json:"tip"`
	Phrase    string `json:"phrase,omitempty"`
}

// ResultType tags which content table a search hit came from.
type ResultType string

const (
	ResultRegion   ResultType = "region"
	ResultFestival ResultType = "festival"
	ResultCustom   ResultType = "custom"
)

// SearchResult is one scored hit. The same concept can surface once per
// content type; hits are not deduplicated across tables.
type SearchResult struct {
	Type    ResultType `json:"type"`
	Name    string     `json:"name"`
	Region  string     `json:"region,omitempty"`
	Summary string     `json:"summary"`
	Score   int        `json:"score"`
}

// Content holds the immutable lookup tables. Construct with NewContent at
// startup and share by reference.
type Content struct {
	regions   map[string]RegionalInfo
	festivals map[string]Festival
	etiquette map[string]EtiquetteRule
	tips      []BargainingTip

	regionOrder   []string
	festivalOrder []string
}

// NewContent builds the lookup tables. Keys are lowercased region, festival,
// and topic names; later duplicates overwrite earlier ones.
func NewContent(regions []RegionalInfo, festivals []Festival, etiquette []EtiquetteRule, tips []BargainingTip) *Content {
	c := &Content{
		regions:   make(map[string]RegionalInfo, len(regions)),
		festivals: make(map[string]Festival, len(festivals)),
		etiquette: make(map[string]EtiquetteRule, len(etiquette)),
		tips:      append([]BargainingTip(nil), tips...),
	}
	for _, r := range regions {
		key := strings.ToLower(r.Region)
		if _, seen := c.regions[key]; !seen {
			c.regionOrder = append(c.regionOrder, key)
		}
		c.regions[key] = r
	}
	for _, f := range festivals {
		key := strings.ToLower(f.Name)
		if _, seen := c.festivals[key]; !seen {
			c.festivalOrder = append(c.festivalOrder, key)
		}
		c.festivals[key] = f
	}
	for _, e := range etiquette {
		c.etiquette[strings.ToLower(e.Topic)] = e
	}
	return c
}

// Region returns the reference card for a region, case-insensitively.
func (c *Content) Region(region string) (*RegionalInfo, error) {
	r, ok := c.regions[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// Festivals returns every festival, in insertion order.
func (c *Content) Festivals() []Festival {
	out := make([]Festival, 0, len(c.festivals))
	for _, key := range c.festivalOrder {
		out = append(out, c.festivals[key])
	}
	return out
}

// Festival returns one festival by name, case-insensitively.
func (c *Content) Festival(name string) (*Festival, error) {
	f, ok := c.festivals[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

// Etiquette returns the rule for a topic, case-insensitively.
func (c *Content) Etiquette(topic string) (*EtiquetteRule, error) {
	e, ok := c.etiquette[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

// BargainingTips returns every tip.
func (c *Content) BargainingTips() []BargainingTip {
	return append([]BargainingTip(nil), c.tips...)
}

// Search runs the region, custom, and festival sub-searches, scores each hit
// with string relevance plus a word-boundary token bonus, merges them without
// cross-type deduplication, and returns up to 20 results ordered by score
// descending.
func (c *Content) Search(query string) []SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return []SearchResult{}
	}

	var results []SearchResult
	for _, key := range c.regionOrder {
		r := c.regions[key]
		if s := score(r.Region, q); s > 0 {
			results = append(results, SearchResult{
				Type:    ResultRegion,
				Name:    r.Region,
				Region:  r.Region,
				Summary: r.Summary,
				Score:   s,
			})
		}
	}

	topics := make([]string, 0, len(c.etiquette))
	for topic := range c.etiquette {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	for _, topic := range topics {
		e := c.etiquette[topic]
		if s := score(e.Topic, q); s > 0 {
			summary := ""
			if len(e.Dos) > 0 {
				summary = e.Dos[0]
			}
			results = append(results, SearchResult{
				Type:    ResultCustom,
				Name:    e.Topic,
				Region:  e.Region,
				Summary: summary,
				Score:   s,
			})
		}
	}

	for _, key := range c.festivalOrder {
		f := c.festivals[key]
		if s := score(f.Name, q); s > 0 {
			results = append(results, SearchResult{
				Type:    ResultFestival,
				Name:    f.Name,
				Region:  f.Region,
				Summary: f.Description,
				Score:   s,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}

// score combines the tiered relevance score with the word-boundary token
// bonus. No minimum threshold beyond zero: a weak hit still surfaces when
// nothing better exists.
func score(candidate, query string) int {
	s := ranking.Relevance(candidate, query)
	if ranking.HasExactToken(candidate, query) {
		s += ranking.TokenBonus
	}
	return s
}
