package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingRoundTrip(t *testing.T) {
	m := Meeting{
		ID:   "5F0C2B1E-8E0B-4E4B-9C41-6D2E7B0F9A11",
		Name: "Quarterly sync",
		Locations: []SavedLocation{
			{ID: "a", Coordinate: Coordinate{Latitude: 35.68, Longitude: 139.76}, TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"},
			{ID: "b", Coordinate: Coordinate{Latitude: 51.5, Longitude: -0.12}, TimeZone: "Europe/London", LocationName: "United Kingdom/London", IsLocked: true},
		},
		SelectedLocationID: "b",
		DateTimestamp:      1771255800.5,
		CreatedAt:          1771000000,
		ModifiedAt:         1771100000.25,
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var got Meeting
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m, got)
}

func TestMeetingJSONKeys(t *testing.T) {
	data, err := json.Marshal(Meeting{ID: "m1", Name: "x"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"version", "id", "name", "locations", "selectedLocationID", "dateTimestamp", "createdAt", "modifiedAt"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["locations"])
}

func TestDecodeLegacyMeetingBackfillsTimestamps(t *testing.T) {
	legacy := `[{
		"id": "m1",
		"name": "Old meeting",
		"locations": [{"id":"l1","latitude":-33.87,"longitude":151.21,"timeZoneIdentifier":"Australia/Sydney","locationName":"Australia/Sydney"}],
		"selectedLocationID": "",
		"dateTimestamp": 1700000000
	}]`

	meetings, err := DecodeMeetings([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, meetings, 1)

	m := meetings[0]
	assert.Equal(t, float64(1700000000), m.CreatedAt)
	assert.Equal(t, float64(1700000000), m.ModifiedAt)
	assert.Equal(t, "Australia/Sydney", m.Locations[0].TimeZone)
	assert.False(t, m.Locations[0].IsLocked)
}

func TestDecodeMeetingRejectsFutureVersion(t *testing.T) {
	var m Meeting
	err := json.Unmarshal([]byte(`{"version":99,"id":"x"}`), &m)
	assert.Error(t, err)
}

func TestMigrateLegacyTimestamps(t *testing.T) {
	created := 200.0
	modified := 100.0

	tests := []struct {
		name         string
		createdAt    *float64
		modifiedAt   *float64
		wantCreated  float64
		wantModified float64
	}{
		{"both missing", nil, nil, 50, 50},
		{"modified missing", &created, nil, 200, 200},
		{"modified before created", &created, &modified, 200, 200},
		{"created missing", nil, &modified, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := MigrateLegacyTimestamps(50, tt.createdAt, tt.modifiedAt)
			assert.Equal(t, tt.wantCreated, c)
			assert.Equal(t, tt.wantModified, m)
		})
	}
}

func TestMeetingCloneIsIndependent(t *testing.T) {
	m := Meeting{Locations: []SavedLocation{{ID: "a", TimeZone: "UTC"}}}
	c := m.Clone()
	c.Locations[0].TimeZone = "Asia/Tokyo"
	assert.Equal(t, "UTC", m.Locations[0].TimeZone)
}
