// Package locations keeps the ordered list of places being compared.
package locations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
	"github.com/vbonduro/taptime/internal/geo"
	"github.com/vbonduro/taptime/internal/schedule"
	"github.com/vbonduro/taptime/internal/search"
)

// CacheSize bounds the reverse geocoding cache.
const CacheSize = 50

// Store owns the list of saved locations. Mutations are serialized by mu;
// resolver calls happen outside the lock, and at most one add resolves at a
// time.
type Store struct {
	mu        sync.Mutex
	locations []domain.SavedLocation
	adding    bool

	resolver geo.Resolver
	search   *search.Engine
	cache    *lru.Cache[string, geo.Place]
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Store)

// WithClock overrides the clock used to order entries by UTC offset.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(resolver geo.Resolver, engine *search.Engine, logger *slog.Logger, opts ...Option) (*Store, error) {
	cache, err := lru.New[string, geo.Place](CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode cache: %w", err)
	}
	s := &Store{
		resolver: resolver,
		search:   engine,
		cache:    cache,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List returns a copy of the saved locations in display order.
func (s *Store) List() []domain.SavedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SavedLocation(nil), s.locations...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locations)
}

func (s *Store) Get(id string) (domain.SavedLocation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.locations[i], true
	}
	return domain.SavedLocation{}, false
}

func (s *Store) HasTimeZone(zone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoneIndexLocked(zone) >= 0
}

// AddAt adds the place under a map coordinate.
func (s *Store) AddAt(ctx context.Context, c domain.Coordinate) (domain.SavedLocation, error) {
	if err := s.begin(); err != nil {
		return domain.SavedLocation{}, err
	}
	defer s.end()

	place, err := s.reverse(ctx, c)
	if err != nil {
		return domain.SavedLocation{}, err
	}
	zone, err := s.zoneFor(&place)
	if err != nil {
		return domain.SavedLocation{}, err
	}
	place.ZoneID = zone

	return s.insert(domain.SavedLocation{
		ID:           uuid.NewString(),
		Coordinate:   c,
		TimeZone:     zone,
		LocationName: geo.LocationName(place),
	})
}

// AddFromSearchResult adds a search candidate. Placeholder results are
// geocoded to find their zone; concrete results are geocoded only to find a
// map coordinate, and a failure there is tolerated.
func (s *Store) AddFromSearchResult(ctx context.Context, r domain.SearchResult) (domain.SavedLocation, error) {
	if err := s.begin(); err != nil {
		return domain.SavedLocation{}, err
	}
	defer s.end()

	zone := r.TimeZone
	coord := r.Coordinate
	var place *geo.Place

	if r.NeedsResolution() || coord.IsZero() {
		query := r.Name
		if r.NeedsResolution() && r.Subtitle != "" {
			query += ", " + r.Subtitle
		}
		p, err := s.resolver.ForwardGeocode(ctx, query)
		switch {
		case err == nil:
			place = p
			if !p.Coordinate.IsZero() {
				coord = p.Coordinate
			}
		case r.NeedsResolution():
			s.logger.Warn("failed to geocode search result", "query", query, "error", err)
			return domain.SavedLocation{}, fmt.Errorf("%w: %s", domain.ErrFailed, r.Name)
		default:
			s.logger.Debug("no coordinate for search result", "query", query, "error", err)
		}
	}

	if r.NeedsResolution() {
		z, err := s.zoneFor(place)
		if err != nil {
			return domain.SavedLocation{}, err
		}
		zone = z
	}

	return s.insert(domain.SavedLocation{
		ID:           uuid.NewString(),
		Coordinate:   coord,
		TimeZone:     zone,
		LocationName: nameForResult(r, zone, place),
	})
}

// AddByQuery adds a place typed by the user. IANA identifiers are taken as
// is; anything else is forward geocoded.
func (s *Store) AddByQuery(ctx context.Context, query string) (domain.SavedLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SavedLocation{}, fmt.Errorf("%w: empty query", domain.ErrFailed)
	}
	if err := s.begin(); err != nil {
		return domain.SavedLocation{}, err
	}
	defer s.end()

	if isZoneID(query) {
		var coord domain.Coordinate
		if p, err := s.resolver.ForwardGeocode(ctx, catalog.CityName(query)); err == nil {
			coord = p.Coordinate
		}
		return s.insert(domain.SavedLocation{
			ID:           uuid.NewString(),
			Coordinate:   coord,
			TimeZone:     query,
			LocationName: catalog.FriendlyName(query),
		})
	}

	place, err := s.resolver.ForwardGeocode(ctx, query)
	if err != nil {
		s.logger.Warn("failed to geocode query", "query", query, "error", err)
		return domain.SavedLocation{}, fmt.Errorf("%w: %s", domain.ErrFailed, query)
	}
	zone, err := s.zoneFor(place)
	if err != nil {
		return domain.SavedLocation{}, err
	}
	place.ZoneID = zone

	return s.insert(domain.SavedLocation{
		ID:           uuid.NewString(),
		Coordinate:   place.Coordinate,
		TimeZone:     zone,
		LocationName: geo.LocationName(*place),
	})
}

// UpdateCoordinate moves an entry to a new coordinate and re-resolves its
// zone and name. When resolution fails only the coordinate changes. Moving
// into a zone held by another entry is rejected.
func (s *Store) UpdateCoordinate(ctx context.Context, id string, c domain.Coordinate) (domain.SavedLocation, error) {
	if _, ok := s.Get(id); !ok {
		return domain.SavedLocation{}, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
	}

	place, resolveErr := s.reverse(ctx, c)
	zone := ""
	if resolveErr == nil {
		zone, resolveErr = s.zoneFor(&place)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.SavedLocation{}, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
	}

	if resolveErr != nil {
		s.logger.Info("keeping zone for moved location", "id", id, "error", resolveErr)
		s.locations[i].Coordinate = c
		return s.locations[i], nil
	}

	if j := s.zoneIndexLocked(zone); j >= 0 && j != i {
		return domain.SavedLocation{}, fmt.Errorf("%w: %s", domain.ErrDuplicate, zone)
	}

	place.ZoneID = zone
	s.locations[i].Coordinate = c
	s.locations[i].TimeZone = zone
	s.locations[i].LocationName = geo.LocationName(place)
	updated := s.locations[i]
	s.sortLocked()
	return updated, nil
}

// Remove deletes an entry. Unknown ids are ignored; locked entries are kept.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	if s.locations[i].IsLocked {
		return domain.ErrLocked
	}
	s.locations = append(s.locations[:i], s.locations[i+1:]...)
	return nil
}

// ToggleLock flips the lock flag and returns the new value.
func (s *Store) ToggleLock(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
	}
	s.locations[i].IsLocked = !s.locations[i].IsLocked
	return s.locations[i].IsLocked, nil
}

// SetAll replaces the list. Later entries repeating a zone and entries past
// MaxLocations are dropped.
func (s *Store) SetAll(locs []domain.SavedLocation) {
	kept := make([]domain.SavedLocation, 0, len(locs))
	seen := make(map[string]bool)
	for _, l := range locs {
		if seen[l.TimeZone] || len(kept) >= domain.MaxLocations {
			s.logger.Warn("dropping location", "zone", l.TimeZone, "name", l.LocationName)
			continue
		}
		seen[l.TimeZone] = true
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		kept = append(kept, l)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = kept
	s.sortLocked()
}

// ClearUnlocked removes every unlocked entry and returns how many were
// removed.
func (s *Store) ClearUnlocked() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.locations[:0]
	for _, l := range s.locations {
		if l.IsLocked {
			kept = append(kept, l)
		}
	}
	removed := len(s.locations) - len(kept)
	s.locations = kept
	return removed
}

// ClearCache drops every cached reverse geocoding result.
func (s *Store) ClearCache() {
	s.cache.Purge()
}

func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adding {
		return domain.ErrBusy
	}
	if len(s.locations) >= domain.MaxLocations {
		return domain.ErrLimitReached
	}
	s.adding = true
	return nil
}

func (s *Store) end() {
	s.mu.Lock()
	s.adding = false
	s.mu.Unlock()
}

func (s *Store) insert(loc domain.SavedLocation) (domain.SavedLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.zoneIndexLocked(loc.TimeZone) >= 0 {
		return domain.SavedLocation{}, fmt.Errorf("%w: %s", domain.ErrDuplicate, loc.TimeZone)
	}
	if len(s.locations) >= domain.MaxLocations {
		return domain.SavedLocation{}, domain.ErrLimitReached
	}
	s.locations = append(s.locations, loc)
	s.sortLocked()

	s.logger.Info("location added", "id", loc.ID, "zone", loc.TimeZone, "name", loc.LocationName)
	return loc, nil
}

// reverse resolves a coordinate, consulting the cache first.
func (s *Store) reverse(ctx context.Context, c domain.Coordinate) (geo.Place, error) {
	key := cacheKey(c)
	if p, ok := s.cache.Get(key); ok {
		return p, nil
	}

	p, err := s.resolver.ReverseGeocode(ctx, c)
	if err != nil {
		if errors.Is(err, geo.ErrNoResult) {
			return geo.Place{}, fmt.Errorf("%w: no place at %s", domain.ErrFailed, key)
		}
		s.logger.Warn("reverse geocoding failed", "coordinate", key, "error", err)
		return geo.Place{}, fmt.Errorf("%w: %w", domain.ErrFailed, err)
	}
	if p.ZoneID == "" && p.CountryCode == "" {
		return geo.Place{}, fmt.Errorf("%w: no place at %s", domain.ErrFailed, key)
	}

	s.cache.Add(key, *p)
	return *p, nil
}

// zoneFor picks the zone for a resolved place. A place known only by its
// country gets the country's zone when there is exactly one, and an
// AmbiguousError listing the candidates otherwise.
func (s *Store) zoneFor(p *geo.Place) (string, error) {
	if p == nil {
		return "", domain.ErrFailed
	}
	if p.ZoneID != "" {
		return p.ZoneID, nil
	}
	zones := catalog.DistinctOffsetZones(p.CountryCode, s.now())
	switch len(zones) {
	case 0:
		return "", fmt.Errorf("%w: no time zone for %s", domain.ErrFailed, p.Country)
	case 1:
		return zones[0], nil
	}
	return "", &domain.AmbiguousError{
		Country:    catalog.CountryName(p.CountryCode),
		Candidates: s.search.CountryResults(p.CountryCode),
	}
}

func (s *Store) indexLocked(id string) int {
	for i, l := range s.locations {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) zoneIndexLocked(zone string) int {
	for i, l := range s.locations {
		if l.TimeZone == zone {
			return i
		}
	}
	return -1
}

func (s *Store) sortLocked() {
	schedule.SortByOffset(s.locations, s.now())
}

func cacheKey(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func isZoneID(q string) bool {
	if !strings.Contains(q, "/") {
		return false
	}
	_, err := time.LoadLocation(q)
	return err == nil
}

func nameForResult(r domain.SearchResult, zone string, place *geo.Place) string {
	if r.NeedsResolution() && place != nil {
		p := *place
		p.ZoneID = zone
		return geo.LocationName(p)
	}
	if name := catalog.FriendlyName(zone); name != zone {
		return name
	}
	if r.Subtitle != "" && !strings.Contains(r.Subtitle, "·") {
		return r.Subtitle + "/" + catalog.CityName(zone)
	}
	return zone
}
