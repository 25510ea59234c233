// Package search turns free-text queries into candidate places.
package search

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
)

type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used to evaluate UTC offsets.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search resolves a query against country names, aliases and capital
// cities. It returns nil when nothing matches.
func (e *Engine) Search(query string) []domain.SearchResult {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	if code, ok := catalog.CountryCode(trimmed); ok {
		return e.CountryResults(code)
	}

	if code, ok := catalog.CapitalCityCountryCode(trimmed); ok {
		return []domain.SearchResult{{
			ID:       uuid.NewString(),
			Name:     catalog.TitleCase(strings.ToLower(trimmed)),
			Subtitle: catalog.CountryName(code),
		}}
	}

	return nil
}

// CountryResults lists the candidate places for a country: one per distinct
// UTC offset, or a single placeholder to be geocoded when the country has no
// curated zones.
func (e *Engine) CountryResults(code string) []domain.SearchResult {
	country := catalog.CountryName(code)
	zones := catalog.DistinctOffsetZones(code, e.now())

	switch len(zones) {
	case 0:
		return []domain.SearchResult{{ID: uuid.NewString(), Name: country}}
	case 1:
		return []domain.SearchResult{{
			ID:       uuid.NewString(),
			Name:     catalog.CityName(zones[0]),
			Subtitle: country,
			TimeZone: zones[0],
		}}
	}

	now := e.now()
	results := make([]domain.SearchResult, 0, len(zones))
	for _, z := range zones {
		off, _ := catalog.OffsetAt(z, now)
		results = append(results, domain.SearchResult{
			ID:       uuid.NewString(),
			Name:     catalog.CityName(z),
			Subtitle: country + " · " + catalog.UTCOffsetLabel(off),
			TimeZone: z,
		})
	}
	return results
}
