package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	january = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	july    = time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
)

func TestCountryCode(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"United States", "US", true},
		{"united states", "US", true},
		{"  Japan ", "JP", true},
		{"USA", "US", true},
		{"england", "GB", true},
		{"Great Britain", "GB", true},
		{"UAE", "AE", true},
		{"nz", "NZ", true},
		{"Narnia", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CountryCode(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Japan", CountryName("JP"))
	assert.Equal(t, "Australia", CountryName("au"))
	assert.Equal(t, "", CountryName("ZZ"))
}

func TestTimeZones(t *testing.T) {
	assert.Equal(t, []string{"Europe/Lisbon", "Atlantic/Azores"}, TimeZones("PT"))
	assert.Empty(t, TimeZones("AF"))

	zones := TimeZones("JP")
	zones[0] = "changed"
	assert.Equal(t, []string{"Asia/Tokyo"}, TimeZones("JP"))
}

func TestDistinctOffsetZonesSortedAscending(t *testing.T) {
	assert.Equal(t,
		[]string{"Pacific/Honolulu", "America/Anchorage", "America/Los_Angeles", "America/Denver", "America/Chicago", "America/New_York"},
		DistinctOffsetZones("US", january))
}

func TestDistinctOffsetZonesDedupesByCurrentOffset(t *testing.T) {
	// Southern summer: Sydney and Adelaide observe DST, Brisbane and Darwin do not.
	assert.Equal(t,
		[]string{"Australia/Perth", "Australia/Darwin", "Australia/Brisbane", "Australia/Adelaide", "Australia/Sydney"},
		DistinctOffsetZones("AU", january))

	// Southern winter: Darwin matches Adelaide and Brisbane matches Sydney.
	assert.Equal(t,
		[]string{"Australia/Perth", "Australia/Adelaide", "Australia/Sydney"},
		DistinctOffsetZones("AU", july))
}

func TestCountryHasMultipleTimeZones(t *testing.T) {
	assert.True(t, CountryHasMultipleTimeZones("US", january))
	assert.False(t, CountryHasMultipleTimeZones("JP", january))
	assert.False(t, CountryHasMultipleTimeZones("CN", january))
	assert.False(t, CountryHasMultipleTimeZones("AF", january))
}

func TestFriendlyName(t *testing.T) {
	assert.Equal(t, "Canada/Toronto", FriendlyName("America/Toronto"))
	assert.Equal(t, "Argentina/Buenos Aires", FriendlyName("America/Argentina/Buenos_Aires"))
	assert.Equal(t, "Asia/Kabul", FriendlyName("Asia/Kabul"))
	assert.Equal(t, "UTC", FriendlyName("UTC"))
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "New York", CityName("America/New_York"))
	assert.Equal(t, "UTC", CityName("UTC"))
}

func TestPillDisplayName(t *testing.T) {
	assert.Equal(t, "Japan", PillDisplayName("Japan/Tokyo", "Asia/Tokyo", january))
	assert.Equal(t, "United States/New York", PillDisplayName("United States/New York", "America/New_York", january))
	assert.Equal(t, "Tokyo", PillDisplayName("Tokyo", "Asia/Tokyo", january))
	assert.Equal(t, "Afghanistan", PillDisplayName("Afghanistan/Kabul", "Asia/Kabul", january))
}

func TestCapitalCityCountryCode(t *testing.T) {
	code, ok := CapitalCityCountryCode("Canberra")
	assert.True(t, ok)
	assert.Equal(t, "AU", code)

	code, ok = CapitalCityCountryCode("kiev")
	assert.True(t, ok)
	assert.Equal(t, "UA", code)

	_, ok = CapitalCityCountryCode("Springfield")
	assert.False(t, ok)
}

func TestCapitalOf(t *testing.T) {
	city, ok := CapitalOf("VN")
	assert.True(t, ok)
	assert.Equal(t, "hanoi", city)

	city, ok = CapitalOf("za")
	assert.True(t, ok)
	assert.Equal(t, "cape town", city)

	_, ok = CapitalOf("AQ")
	assert.False(t, ok)
}

func TestAutocomplete(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
		wantOK bool
	}{
		{"au", "Australia", true},
		{"AUS", "Australia", true},
		{"austri", "Austria", true},
		{"ca", "Cairo", true},
		{"wash", "Washington", true},
		{"a", "", false},
		{"", "", false},
		{"qqq", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, ok := Autocomplete(tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUTCOffsetLabel(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "UTC+0"},
		{9 * 3600, "UTC+9"},
		{-8 * 3600, "UTC-8"},
		{19800, "UTC+5:30"},
		{20700, "UTC+5:45"},
		{-12600, "UTC-3:30"},
		{-1800, "UTC-0:30"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UTCOffsetLabel(tt.seconds))
	}
}
