package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when a place resolves to a zone already on the list.
	ErrDuplicate = errors.New("time zone already added")
	// ErrLimitReached is returned when the list already holds MaxLocations entries.
	ErrLimitReached = errors.New("location limit reached")
	// ErrFailed covers unresolvable coordinates (ocean, no placemark) and
	// resolver failures.
	ErrFailed = errors.New("could not resolve location")
	// ErrNotRecognized is returned by search when a query matches nothing.
	ErrNotRecognized = errors.New("place not recognized")
	// ErrBusy is returned when another add is still resolving. It matches
	// ErrFailed.
	ErrBusy     = fmt.Errorf("%w: another location is being added", ErrFailed)
	ErrLocked   = errors.New("location is locked")
	ErrNotFound = errors.New("not found")
)

// AmbiguousError is returned when a tap resolved to a country spanning
// several UTC offsets but not to a specific zone. Candidates holds one
// result per distinct offset.
type AmbiguousError struct {
	Country    string
	Candidates []SearchResult
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s spans %d time zones", e.Country, len(e.Candidates))
}
