package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/taptime/internal/db"
	"github.com/vbonduro/taptime/internal/domain"
	"github.com/vbonduro/taptime/internal/geo/offline"
	"github.com/vbonduro/taptime/internal/locations"
	"github.com/vbonduro/taptime/internal/search"
	"github.com/vbonduro/taptime/internal/store"
)

const testDelay = 40 * time.Millisecond

var january = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

var (
	tokyo   = domain.Coordinate{Latitude: 35.68, Longitude: 139.76}
	sydney  = domain.Coordinate{Latitude: -33.87, Longitude: 151.21}
	newYork = domain.Coordinate{Latitude: 40.71, Longitude: -74.0}
	ocean   = domain.Coordinate{Latitude: -30, Longitude: -140}
)

func fakeLookup(lat, lon float64) string {
	switch (domain.Coordinate{Latitude: lat, Longitude: lon}) {
	case tokyo:
		return "Asia/Tokyo"
	case sydney:
		return "Australia/Sydney"
	case newYork:
		return "America/New_York"
	}
	return ""
}

// countingMeetings records how often the service writes a meeting.
type countingMeetings struct {
	*store.MeetingStore
	saves atomic.Int32
}

func (c *countingMeetings) Save(ctx context.Context, m domain.Meeting) (*domain.Meeting, error) {
	c.saves.Add(1)
	return c.MeetingStore.Save(ctx, m)
}

type fixture struct {
	svc      *PlannerService
	meetings *countingMeetings
	live     *store.LocationListStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	clock := func() time.Time { return january }
	engine := search.NewEngine(search.WithClock(clock))
	locs, err := locations.NewStore(offline.NewResolverWithLookup(fakeLookup), engine, slog.Default(), locations.WithClock(clock))
	require.NoError(t, err)

	f := &fixture{
		meetings: &countingMeetings{MeetingStore: store.NewMeetingStore(d).WithClock(clock)},
		live:     store.NewLocationListStore(d),
	}
	f.svc = NewPlannerService(locs, engine, f.meetings, f.live, slog.Default(),
		WithUserZone("America/New_York"),
		WithAutosaveDelay(testDelay),
		WithClock(clock),
	)
	t.Cleanup(f.svc.Close)
	return f
}

func TestAddPersistsLiveList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	loc, err := f.svc.AddAt(ctx, tokyo)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.TimeZone)
	assert.Equal(t, "Japan/Tokyo", loc.LocationName)

	assert.Eventually(t, func() bool {
		saved, err := f.live.Load(ctx)
		return err == nil && len(saved) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAddAtOceanFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddAt(context.Background(), ocean)
	assert.ErrorIs(t, err, domain.ErrFailed)
	assert.Empty(t, f.svc.Locations())
}

func TestClearUnlockedThenDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	syd, err := f.svc.AddAt(ctx, sydney)
	require.NoError(t, err)
	_, err = f.svc.AddAt(ctx, newYork)
	require.NoError(t, err)

	locked, err := f.svc.ToggleLock(syd.ID)
	require.NoError(t, err)
	assert.True(t, locked)

	assert.Equal(t, 1, f.svc.ClearUnlocked())
	require.Len(t, f.svc.Locations(), 1)

	_, err = f.svc.AddByQuery(ctx, "Australia/Sydney")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, f.svc.Locations(), 1)
}

func TestViewIsAnchorFirstWithDifferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	london, err := f.svc.AddByQuery(ctx, "Europe/London")
	require.NoError(t, err)
	_, err = f.svc.AddByQuery(ctx, "Asia/Kolkata")
	require.NoError(t, err)
	_, err = f.svc.AddByQuery(ctx, "America/New_York")
	require.NoError(t, err)

	require.NoError(t, f.svc.SetAnchor(london.ID))
	view := f.svc.View()

	require.Len(t, view.Locations, 3)
	assert.Equal(t, "Europe/London", view.AnchorZone)
	assert.Equal(t, []string{"Europe/London", "America/New_York", "Asia/Kolkata"}, viewZones(view))
	assert.True(t, view.Locations[0].IsAnchor)
	assert.Equal(t, "same time", view.Locations[0].OffsetDifference)
	assert.Equal(t, "-5h", view.Locations[1].OffsetDifference)
	assert.Equal(t, "+5.5h", view.Locations[2].OffsetDifference)
	assert.Equal(t, "12:00 PM", view.Locations[0].LocalTime)
	assert.Equal(t, "Thu, Jan 15", view.Locations[0].Day)
}

func TestViewWithoutAnchorUsesUserZone(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddAt(context.Background(), tokyo)
	require.NoError(t, err)

	view := f.svc.View()
	assert.Empty(t, view.AnchorID)
	assert.Equal(t, "America/New_York", view.AnchorZone)
	require.Len(t, view.Locations, 1)
	assert.Equal(t, "+14h", view.Locations[0].OffsetDifference)
}

func TestSetAnchorUnknown(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.SetAnchor("missing"), domain.ErrNotFound)
}

func TestRemovingAnchorResetsToUserZone(t *testing.T) {
	f := newFixture(t)

	loc, err := f.svc.AddAt(context.Background(), tokyo)
	require.NoError(t, err)
	require.NoError(t, f.svc.SetAnchor(loc.ID))

	require.NoError(t, f.svc.RemoveLocation(loc.ID))
	assert.Empty(t, f.svc.View().AnchorID)
}

func TestRemoveLockedLocation(t *testing.T) {
	f := newFixture(t)

	loc, err := f.svc.AddAt(context.Background(), tokyo)
	require.NoError(t, err)
	_, err = f.svc.ToggleLock(loc.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.RemoveLocation(loc.ID), domain.ErrLocked)
	assert.Len(t, f.svc.Locations(), 1)
}

func TestSearch(t *testing.T) {
	f := newFixture(t)

	results, err := f.svc.Search("Japan")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	_, err = f.svc.Search("Nowhereistan")
	assert.ErrorIs(t, err, domain.ErrNotRecognized)

	results, err = f.svc.Search("   ")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestDebouncedAutosaveCoalescesChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddAt(ctx, tokyo)
	require.NoError(t, err)
	m, err := f.svc.SaveMeeting(ctx, "Sync")
	require.NoError(t, err)

	// Let the add's pending save run before counting.
	time.Sleep(3 * testDelay)
	before := f.meetings.saves.Load()

	last := january.Add(3 * time.Hour)
	f.svc.SetPivot(january.Add(time.Hour))
	f.svc.SetPivot(january.Add(2 * time.Hour))
	f.svc.SetPivot(last)

	assert.Eventually(t, func() bool { return f.meetings.saves.Load() == before+1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDelay)
	assert.Equal(t, before+1, f.meetings.saves.Load())

	got, err := f.meetings.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Epoch(last), got.DateTimestamp)
}

func TestOpenMeetingRestoresStateWithoutSaving(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pivot := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.meetings.Import(ctx, []domain.Meeting{{
		ID:   "m1",
		Name: "Quarterly",
		Locations: []domain.SavedLocation{
			{ID: "t", TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"},
			{ID: "l", TimeZone: "Europe/London", LocationName: "United Kingdom/London", IsLocked: true},
		},
		SelectedLocationID: "t",
		DateTimestamp:      domain.Epoch(pivot),
		CreatedAt:          1,
		ModifiedAt:         2,
	}}))

	m, err := f.svc.OpenMeeting(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Quarterly", m.Name)

	view := f.svc.View()
	assert.Equal(t, "m1", view.MeetingID)
	assert.Equal(t, "t", view.AnchorID)
	assert.True(t, pivot.Equal(view.Pivot))
	assert.Equal(t, []string{"Asia/Tokyo", "Europe/London"}, viewZones(view))

	time.Sleep(3 * testDelay)
	assert.Zero(t, f.meetings.saves.Load())

	live, err := f.live.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 2)
}

func TestOpenMeetingWithMissingAnchor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.meetings.Import(ctx, []domain.Meeting{{
		ID:                 "m1",
		Name:               "Orphan",
		Locations:          []domain.SavedLocation{{ID: "t", TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"}},
		SelectedLocationID: "gone",
	}}))

	_, err := f.svc.OpenMeeting(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, f.svc.View().AnchorID)

	_, err = f.svc.OpenMeeting(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAutosaveWhileSwitchingMeetingsKeepsThemApart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.meetings.Import(ctx, []domain.Meeting{
		{ID: "a", Name: "Tokyo sync", Locations: []domain.SavedLocation{{ID: "t", TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"}}},
		{ID: "b", Name: "Sydney sync", Locations: []domain.SavedLocation{{ID: "s", TimeZone: "Australia/Sydney", LocationName: "Australia/Sydney"}}},
	}))

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				f.svc.autosave()
			}
		}
	}()

	for i := 0; i < 200; i++ {
		id := "a"
		if i%2 == 1 {
			id = "b"
		}
		_, err := f.svc.OpenMeeting(ctx, id)
		require.NoError(t, err)
	}
	close(stop)
	<-done

	a, err := f.meetings.Get(ctx, "a")
	require.NoError(t, err)
	require.Len(t, a.Locations, 1)
	assert.Equal(t, "Asia/Tokyo", a.Locations[0].TimeZone)

	b, err := f.meetings.Get(ctx, "b")
	require.NoError(t, err)
	require.Len(t, b.Locations, 1)
	assert.Equal(t, "Australia/Sydney", b.Locations[0].TimeZone)
}

func TestSaveCurrentSkippedWhileLoading(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddAt(ctx, tokyo)
	require.NoError(t, err)
	_, err = f.svc.SaveMeeting(ctx, "Standup")
	require.NoError(t, err)

	f.svc.saver.Suppress(func() {
		saves := f.meetings.saves.Load()
		require.NoError(t, f.svc.SaveCurrent(ctx))
		assert.Equal(t, saves, f.meetings.saves.Load())
	})
}

func TestEditsDoNotAlterSavedMeeting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddAt(ctx, tokyo)
	require.NoError(t, err)
	m, err := f.svc.SaveMeeting(ctx, "Snapshot")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteMeeting(ctx, m.ID))
	_, err = f.svc.AddAt(ctx, sydney)
	require.NoError(t, err)

	assert.Len(t, m.Locations, 1)
	assert.Empty(t, f.svc.View().MeetingID)
}

func TestSaveCurrentDetachesDeletedMeeting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.svc.SaveMeeting(ctx, "Gone soon")
	require.NoError(t, err)
	require.NoError(t, f.meetings.Delete(ctx, m.ID))

	require.NoError(t, f.svc.SaveCurrent(ctx))
	assert.Empty(t, f.svc.View().MeetingID)

	_, err = f.meetings.Get(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveMeetingRequiresName(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.SaveMeeting(context.Background(), "  ")
	assert.Error(t, err)
}

func TestListMeetingsNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.meetings.Import(ctx, []domain.Meeting{
		{ID: "old", Name: "Old", CreatedAt: 1, ModifiedAt: 10},
		{ID: "new", Name: "New", CreatedAt: 1, ModifiedAt: 20},
	}))

	meetings, err := f.svc.ListMeetings(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 2)
	assert.Equal(t, "new", meetings[0].ID)
	assert.Equal(t, "old", meetings[1].ID)
}

func TestImportLegacyMeetings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := `[{"id":"a","name":"Legacy","locations":[],"selectedLocationID":"","dateTimestamp":1700000000},
	         {"name":"No id","locations":[],"selectedLocationID":"","dateTimestamp":5}]`

	n, err := f.svc.ImportMeetings(ctx, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	m, err := f.meetings.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1700000000.0, m.CreatedAt)
	assert.Equal(t, 1700000000.0, m.ModifiedAt)

	_, err = f.svc.ImportMeetings(ctx, []byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestShareTextIncludesMeetingName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddAt(ctx, tokyo)
	require.NoError(t, err)
	_, err = f.svc.SaveMeeting(ctx, "Launch")
	require.NoError(t, err)

	text := f.svc.ShareText()
	assert.Contains(t, text, "Launch\n======\n")
	assert.Contains(t, text, "Meeting time zone: America/New York\n")
	assert.Contains(t, text, "Japan/Tokyo:\nJan 15, 2026 at 9:00 PM\n14 hours ahead\n")
}

func TestRestore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.live.Replace(ctx, []domain.SavedLocation{
		{ID: "t", TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"},
		{ID: "n", TimeZone: "America/New_York", LocationName: "United States/New York"},
	}))

	require.NoError(t, f.svc.Restore(ctx))
	assert.Equal(t, []string{"America/New_York", "Asia/Tokyo"}, zonesOf(f.svc.Locations()))
}

func viewZones(v View) []string {
	out := make([]string, len(v.Locations))
	for i, l := range v.Locations {
		out[i] = l.TimeZone
	}
	return out
}

func zonesOf(locs []domain.SavedLocation) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.TimeZone
	}
	return out
}
