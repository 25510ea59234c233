package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vbonduro/taptime/internal/domain"
)

// LocationListStore persists the live comparison list between runs.
type LocationListStore struct {
	db *sql.DB
}

func NewLocationListStore(db *sql.DB) *LocationListStore {
	return &LocationListStore{db: db}
}

// Load returns the saved list in its stored order.
func (s *LocationListStore) Load(ctx context.Context) ([]domain.SavedLocation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, latitude, longitude, time_zone, location_name, is_locked
		FROM saved_locations ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	defer rows.Close()

	var locs []domain.SavedLocation
	for rows.Next() {
		var l domain.SavedLocation
		if err := rows.Scan(&l.ID, &l.Coordinate.Latitude, &l.Coordinate.Longitude, &l.TimeZone, &l.LocationName, &l.IsLocked); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locs = append(locs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locs, nil
}

// Replace overwrites the saved list with locs.
func (s *LocationListStore) Replace(ctx context.Context, locs []domain.SavedLocation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_locations`); err != nil {
		return fmt.Errorf("failed to clear locations: %w", err)
	}

	for i, l := range locs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO saved_locations (position, id, latitude, longitude, time_zone, location_name, is_locked)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, i, l.ID, l.Coordinate.Latitude, l.Coordinate.Longitude, l.TimeZone, l.LocationName, l.IsLocked)
		if err != nil {
			return fmt.Errorf("failed to save location %q: %w", l.TimeZone, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit locations: %w", err)
	}
	return nil
}
