package domain

import (
	"encoding/json"
	"time"
)

// MaxLocations caps how many places a plan can compare at once.
const MaxLocations = 10

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether c is the (0,0) sentinel meaning "not yet resolved".
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// SavedLocation is one place on the user's comparison list.
type SavedLocation struct {
	ID           string
	Coordinate   Coordinate
	TimeZone     string
	LocationName string
	IsLocked     bool
}

// Location returns the IANA location for the entry, falling back to UTC
// when the identifier is unknown to the tz database.
func (l SavedLocation) Location() *time.Location {
	loc, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type savedLocationJSON struct {
	ID           string  `json:"id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	TimeZone     string  `json:"timeZoneIdentifier"`
	LocationName string  `json:"locationName"`
	IsLocked     bool    `json:"isLocked,omitempty"`
}

func (l SavedLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(savedLocationJSON{
		ID:           l.ID,
		Latitude:     l.Coordinate.Latitude,
		Longitude:    l.Coordinate.Longitude,
		TimeZone:     l.TimeZone,
		LocationName: l.LocationName,
		IsLocked:     l.IsLocked,
	})
}

func (l *SavedLocation) UnmarshalJSON(data []byte) error {
	var raw savedLocationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = SavedLocation{
		ID:           raw.ID,
		Coordinate:   Coordinate{Latitude: raw.Latitude, Longitude: raw.Longitude},
		TimeZone:     raw.TimeZone,
		LocationName: raw.LocationName,
		IsLocked:     raw.IsLocked,
	}
	return nil
}

// SearchResult is a candidate place produced by search. An empty TimeZone
// means the place must be geocoded before it can be added.
type SearchResult struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Subtitle   string     `json:"subtitle"`
	Coordinate Coordinate `json:"coordinate"`
	TimeZone   string     `json:"timeZone"`
}

func (r SearchResult) NeedsResolution() bool {
	return r.TimeZone == ""
}

// Meeting is a named snapshot of a plan. Timestamps are seconds since the
// Unix epoch.
type Meeting struct {
	ID                 string
	Name               string
	Locations          []SavedLocation
	SelectedLocationID string
	DateTimestamp      float64
	CreatedAt          float64
	ModifiedAt         float64
}

// Date returns the meeting's pivot instant.
func (m Meeting) Date() time.Time {
	return FromEpoch(m.DateTimestamp)
}

// Clone returns a copy that shares no slice storage with m.
func (m Meeting) Clone() Meeting {
	c := m
	c.Locations = append([]SavedLocation(nil), m.Locations...)
	return c
}

// Epoch converts t to fractional Unix seconds.
func Epoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromEpoch converts fractional Unix seconds to a time.Time in UTC.
func FromEpoch(s float64) time.Time {
	return time.Unix(0, int64(s*float64(time.Second))).UTC()
}
