package domain

import (
	"encoding/json"
	"fmt"
)

// MeetingSchemaVersion is the current persisted meeting layout. Version 1
// records (and unversioned ones) predate the createdAt/modifiedAt fields.
const MeetingSchemaVersion = 2

type meetingRecord struct {
	Version            int             `json:"version,omitempty"`
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Locations          []SavedLocation `json:"locations"`
	SelectedLocationID string          `json:"selectedLocationID"`
	DateTimestamp      float64         `json:"dateTimestamp"`
	CreatedAt          *float64        `json:"createdAt,omitempty"`
	ModifiedAt         *float64        `json:"modifiedAt,omitempty"`
}

func (m Meeting) MarshalJSON() ([]byte, error) {
	created, modified := m.CreatedAt, m.ModifiedAt
	locs := m.Locations
	if locs == nil {
		locs = []SavedLocation{}
	}
	return json.Marshal(meetingRecord{
		Version:            MeetingSchemaVersion,
		ID:                 m.ID,
		Name:               m.Name,
		Locations:          locs,
		SelectedLocationID: m.SelectedLocationID,
		DateTimestamp:      m.DateTimestamp,
		CreatedAt:          &created,
		ModifiedAt:         &modified,
	})
}

func (m *Meeting) UnmarshalJSON(data []byte) error {
	var rec meetingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.Version > MeetingSchemaVersion {
		return fmt.Errorf("unsupported meeting schema version %d", rec.Version)
	}
	created, modified := MigrateLegacyTimestamps(rec.DateTimestamp, rec.CreatedAt, rec.ModifiedAt)
	*m = Meeting{
		ID:                 rec.ID,
		Name:               rec.Name,
		Locations:          rec.Locations,
		SelectedLocationID: rec.SelectedLocationID,
		DateTimestamp:      rec.DateTimestamp,
		CreatedAt:          created,
		ModifiedAt:         modified,
	}
	return nil
}

// MigrateLegacyTimestamps fills in timestamps missing from records written
// before they existed. A missing value takes the meeting's own date.
// The result always satisfies createdAt <= modifiedAt.
func MigrateLegacyTimestamps(dateTimestamp float64, createdAt, modifiedAt *float64) (float64, float64) {
	created, modified := dateTimestamp, dateTimestamp
	if createdAt != nil {
		created = *createdAt
	}
	if modifiedAt != nil {
		modified = *modifiedAt
	}
	if modified < created {
		modified = created
	}
	return created, modified
}

// DecodeMeetings parses a JSON array of meeting records of any supported
// version.
func DecodeMeetings(data []byte) ([]Meeting, error) {
	var meetings []Meeting
	if err := json.Unmarshal(data, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}
