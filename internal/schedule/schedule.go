// Package schedule computes per-zone wall-clock times for a pivot instant
// and renders the shareable schedule text.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vbonduro/taptime/internal/domain"
)

const (
	dateTimeLayout = "Jan 2, 2006 at 3:04 PM"
	clockLayout    = "3:04 PM"
	dayLayout      = "Mon, Jan 2"
)

// LocalTime converts the pivot instant to wall-clock time in zone.
func LocalTime(zone string, pivot time.Time) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load time zone %q: %w", zone, err)
	}
	return pivot.In(loc), nil
}

// OffsetDifference returns how many seconds zone is ahead of anchorZone at
// the pivot instant.
func OffsetDifference(zone, anchorZone string, pivot time.Time) (int, error) {
	a, err := LocalTime(zone, pivot)
	if err != nil {
		return 0, err
	}
	b, err := LocalTime(anchorZone, pivot)
	if err != nil {
		return 0, err
	}
	_, offA := a.Zone()
	_, offB := b.Zone()
	return offA - offB, nil
}

// FormatOffsetDifference renders an offset difference for a time card:
// "same time", "+5h", "+5.5h", "+5:45h", "-3h".
func FormatOffsetDifference(seconds int) string {
	if seconds == 0 {
		return "same time"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	switch minutes {
	case 0:
		return fmt.Sprintf("%s%dh", sign, hours)
	case 30:
		return fmt.Sprintf("%s%d.5h", sign, hours)
	default:
		return fmt.Sprintf("%s%d:%02dh", sign, hours, minutes)
	}
}

// DifferencePhrase describes an offset difference relative to the user's
// own zone, as used in the shared schedule. Only whole hours count, so a
// difference under an hour reads as the same time.
func DifferencePhrase(seconds int) string {
	hours := seconds / 3600
	switch {
	case hours == 0:
		return "Same time as your location"
	case hours > 0:
		return fmt.Sprintf("%d %s ahead", hours, plural(hours, "hour"))
	default:
		return fmt.Sprintf("%d %s behind", -hours, plural(-hours, "hour"))
	}
}

// SortByOffset orders locations by UTC offset at the given instant, keeping
// the relative order of equal offsets.
func SortByOffset(locs []domain.SavedLocation, at time.Time) {
	offsets := make([]int, len(locs))
	idx := make([]int, len(locs))
	for i, l := range locs {
		_, offsets[i] = at.In(l.Location()).Zone()
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return offsets[idx[a]] < offsets[idx[b]] })

	sorted := make([]domain.SavedLocation, len(locs))
	for i, j := range idx {
		sorted[i] = locs[j]
	}
	copy(locs, sorted)
}

// OrderedForDisplay returns the locations sorted by offset at the pivot
// instant, with the anchor (when present) moved to the front.
func OrderedForDisplay(locs []domain.SavedLocation, anchorID string, pivot time.Time) []domain.SavedLocation {
	rest := make([]domain.SavedLocation, 0, len(locs))
	var anchor *domain.SavedLocation
	for i := range locs {
		if anchorID != "" && anchor == nil && locs[i].ID == anchorID {
			anchor = &locs[i]
			continue
		}
		rest = append(rest, locs[i])
	}
	SortByOffset(rest, pivot)
	if anchor == nil {
		return rest
	}
	return append([]domain.SavedLocation{*anchor}, rest...)
}

// FormatDateTime renders t like "Feb 16, 2026 at 3:30 PM".
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// FormatClock renders the time of day, "3:30 PM".
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// FormatDay renders the calendar day, "Mon, Feb 16".
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// Request is the input to FormatSchedule.
type Request struct {
	MeetingName string
	// Locations are rendered in the order given.
	Locations        []domain.SavedLocation
	AnchorZone       string
	AnchorIsUserZone bool
	Pivot            time.Time
	UserZone         string
}

// FormatSchedule renders the plain-text schedule handed to share targets.
func FormatSchedule(req Request) string {
	anchor := loadOrUTC(req.AnchorZone)
	user := loadOrUTC(req.UserZone)
	_, userOffset := req.Pivot.In(user).Zone()

	var b strings.Builder
	if req.MeetingName != "" {
		b.WriteString(req.MeetingName + "\n")
		b.WriteString(strings.Repeat("=", utf8.RuneCountInString(req.MeetingName)) + "\n\n")
	}

	fmt.Fprintf(&b, "Meeting time zone: %s\n", strings.ReplaceAll(anchor.String(), "_", " "))
	fmt.Fprintf(&b, "Meeting time: %s (local time)\n\n", FormatDateTime(req.Pivot.In(anchor)))
	b.WriteString("World Times Schedule\n\n")

	if !req.AnchorIsUserZone && anchor.String() != user.String() {
		b.WriteString("Your Location:\n")
		b.WriteString(FormatDateTime(req.Pivot.In(user)) + "\n")
		b.WriteString(user.String() + "\n\n")
	}

	for _, l := range req.Locations {
		local := req.Pivot.In(l.Location())
		_, off := local.Zone()
		b.WriteString(l.LocationName + ":\n")
		b.WriteString(FormatDateTime(local) + "\n")
		b.WriteString(DifferencePhrase(off-userOffset) + "\n\n")
	}

	return b.String()
}

func loadOrUTC(zone string) *time.Location {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
