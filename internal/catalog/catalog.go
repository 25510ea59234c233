// Package catalog holds the static country and time zone knowledge used by
// search and naming: country names, curated per-country zone lists, capital
// cities and aliases.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// minAutocompletePrefix is the shortest prefix Autocomplete will complete.
const minAutocompletePrefix = 2

var (
	countryNames = sync.OnceValue(func() map[string]string {
		namer := display.English.Regions()
		names := make(map[string]string, len(isoCountryCodes))
		for _, code := range isoCountryCodes {
			region, err := language.ParseRegion(code)
			if err != nil {
				continue
			}
			if name := namer.Name(region); name != "" {
				names[code] = name
			}
		}
		return names
	})

	countryCodesByName = sync.OnceValue(func() map[string]string {
		byName := make(map[string]string)
		for code, name := range countryNames() {
			byName[strings.ToLower(name)] = code
		}
		for alias, code := range aliases {
			byName[alias] = code
		}
		return byName
	})

	zoneCountries = sync.OnceValue(func() map[string]string {
		m := make(map[string]string)
		for code, zones := range countryZones {
			for _, z := range zones {
				m[z] = code
			}
		}
		return m
	})

	capitalsByCountry = sync.OnceValue(func() map[string]string {
		m := make(map[string]string)
		for city, code := range capitals {
			if cur, ok := m[code]; !ok || city < cur {
				m[code] = city
			}
		}
		return m
	})

	searchableNames = sync.OnceValue(func() []string {
		seen := make(map[string]bool)
		var names []string
		add := func(n string) {
			if n != "" && !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
		for _, name := range countryNames() {
			add(name)
		}
		for city := range capitals {
			add(TitleCase(city))
		}
		for _, a := range aliasDisplayNames {
			add(a)
		}
		sort.Strings(names)
		return names
	})
)

// CountryCode resolves an English country name or alias, case-insensitively.
func CountryCode(name string) (string, bool) {
	code, ok := countryCodesByName()[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// CountryName returns the English display name for an ISO code, or "" when
// the code is unknown.
func CountryName(code string) string {
	return countryNames()[strings.ToUpper(code)]
}

// TimeZones returns the curated zone identifiers for a country, in table
// order. Countries without a curated list return nil.
func TimeZones(code string) []string {
	zones := countryZones[strings.ToUpper(code)]
	if zones == nil {
		return nil
	}
	return append([]string(nil), zones...)
}

// DistinctOffsetZones returns one zone per distinct UTC offset at the given
// instant, the first listed zone winning, sorted by ascending offset.
func DistinctOffsetZones(code string, at time.Time) []string {
	type zoneOffset struct {
		zone   string
		offset int
	}
	var picked []zoneOffset
	seen := make(map[int]bool)
	for _, z := range countryZones[strings.ToUpper(code)] {
		off, ok := OffsetAt(z, at)
		if !ok || seen[off] {
			continue
		}
		seen[off] = true
		picked = append(picked, zoneOffset{zone: z, offset: off})
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].offset < picked[j].offset })

	zones := make([]string, len(picked))
	for i, p := range picked {
		zones[i] = p.zone
	}
	return zones
}

// CountryHasMultipleTimeZones reports whether the curated zones of a country
// span more than one UTC offset at the given instant.
func CountryHasMultipleTimeZones(code string, at time.Time) bool {
	return len(DistinctOffsetZones(code, at)) > 1
}

// CountryCodeForZone returns the country a curated zone belongs to.
func CountryCodeForZone(zone string) (string, bool) {
	code, ok := zoneCountries()[zone]
	return code, ok
}

// CuratedZones returns every curated zone identifier, sorted.
func CuratedZones() []string {
	zones := make([]string, 0, len(zoneCountries()))
	for z := range zoneCountries() {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}

// CityName returns the last path segment of a zone identifier with
// underscores replaced by spaces.
func CityName(zone string) string {
	parts := strings.Split(zone, "/")
	if len(parts) < 2 {
		return zone
	}
	return strings.ReplaceAll(parts[len(parts)-1], "_", " ")
}

// FriendlyName renders a zone as "Country/City" when the zone belongs to a
// known country, otherwise returns the identifier unchanged.
func FriendlyName(zone string) string {
	code, ok := CountryCodeForZone(zone)
	if !ok {
		return zone
	}
	country := CountryName(code)
	if country == "" {
		return zone
	}
	return country + "/" + CityName(zone)
}

// PillDisplayName shortens a "Country/City" name to just the country unless
// the country spans several offsets.
func PillDisplayName(locationName, zone string, at time.Time) string {
	country, _, found := strings.Cut(locationName, "/")
	if !found {
		return locationName
	}
	if code, ok := CountryCodeForZone(zone); ok && CountryHasMultipleTimeZones(code, at) {
		return locationName
	}
	return country
}

// CapitalCityCountryCode returns the country whose capital is city.
func CapitalCityCountryCode(city string) (string, bool) {
	code, ok := capitals[strings.ToLower(strings.TrimSpace(city))]
	return code, ok
}

// CapitalOf returns the capital of a country in lower case, the
// alphabetically first one when a country lists several.
func CapitalOf(code string) (string, bool) {
	city, ok := capitalsByCountry()[strings.ToUpper(code)]
	return city, ok
}

// Autocomplete returns the alphabetically first searchable name starting
// with prefix, ignoring case.
func Autocomplete(prefix string) (string, bool) {
	prefix = strings.TrimSpace(prefix)
	if len([]rune(prefix)) < minAutocompletePrefix {
		return "", false
	}
	lower := strings.ToLower(prefix)
	for _, name := range searchableNames() {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return name, true
		}
	}
	return "", false
}

// OffsetAt returns the UTC offset of zone in seconds at the given instant.
func OffsetAt(zone string, at time.Time) (int, bool) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, false
	}
	_, off := at.In(loc).Zone()
	return off, true
}

// UTCOffsetLabel formats an offset in seconds as "UTC+5:30", "UTC-8" or
// "UTC+0".
func UTCOffsetLabel(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

// TitleCase capitalizes each word of s using English rules.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
