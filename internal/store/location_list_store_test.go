package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/taptime/internal/domain"
)

func TestLocationListStoreRoundTrip(t *testing.T) {
	store := NewLocationListStore(openTestDB(t))
	ctx := context.Background()

	locs, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, locs)

	want := []domain.SavedLocation{
		{ID: "ny", Coordinate: domain.Coordinate{Latitude: 40.71, Longitude: -74.0}, TimeZone: "America/New_York", LocationName: "United States/New York", IsLocked: true},
		{ID: "ldn", Coordinate: domain.Coordinate{Latitude: 51.5, Longitude: -0.12}, TimeZone: "Europe/London", LocationName: "United Kingdom/London"},
	}
	require.NoError(t, store.Replace(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocationListStoreReplaceOverwrites(t *testing.T) {
	store := NewLocationListStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, []domain.SavedLocation{
		{ID: "a", TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"},
		{ID: "b", TimeZone: "Europe/Paris", LocationName: "France/Paris"},
	}))
	require.NoError(t, store.Replace(ctx, []domain.SavedLocation{
		{ID: "c", TimeZone: "Asia/Tokyo", LocationName: "Japan/Tokyo"},
	}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestLocationListStoreRejectsDuplicateZones(t *testing.T) {
	store := NewLocationListStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, []domain.SavedLocation{{ID: "a", TimeZone: "UTC"}}))

	err := store.Replace(ctx, []domain.SavedLocation{
		{ID: "x", TimeZone: "Asia/Tokyo"},
		{ID: "y", TimeZone: "Asia/Tokyo"},
	})
	assert.Error(t, err)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
