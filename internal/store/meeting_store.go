package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vbonduro/taptime/internal/domain"
)

type MeetingStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewMeetingStore(db *sql.DB) *MeetingStore {
	return &MeetingStore{db: db, now: time.Now}
}

// WithClock replaces the clock used to stamp modifiedAt.
func (s *MeetingStore) WithClock(now func() time.Time) *MeetingStore {
	s.now = now
	return s
}

// Save inserts or replaces the meeting with m.ID. An existing row keeps
// its createdAt; modifiedAt is always stamped with the current time.
func (s *MeetingStore) Save(ctx context.Context, m domain.Meeting) (*domain.Meeting, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("failed to save meeting: empty id")
	}
	locs := m.Locations
	if locs == nil {
		locs = []domain.SavedLocation{}
	}
	encoded, err := json.Marshal(locs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meeting locations: %w", err)
	}

	now := domain.Epoch(s.now())
	created := m.CreatedAt
	if created == 0 {
		created = now
	}

	// modified_at never drops below the stored created_at.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO meetings (id, name, locations, selected_location_id, date_timestamp, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, MAX(?, ?))
		ON CONFLICT(id) DO UPDATE SET
			name                 = excluded.name,
			locations            = excluded.locations,
			selected_location_id = excluded.selected_location_id,
			date_timestamp       = excluded.date_timestamp,
			created_at           = COALESCE(meetings.created_at, excluded.created_at),
			modified_at          = MAX(?, COALESCE(meetings.created_at, excluded.created_at))
	`, m.ID, m.Name, string(encoded), m.SelectedLocationID, m.DateTimestamp, created, now, created, now)
	if err != nil {
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}

	return s.Get(ctx, m.ID)
}

// Get returns domain.ErrNotFound when no meeting has the id.
func (s *MeetingStore) Get(ctx context.Context, id string) (*domain.Meeting, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, locations, selected_location_id, date_timestamp, created_at, modified_at
		FROM meetings WHERE id = ?
	`, id)
	m, err := scanMeeting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// List returns every meeting, most recently modified first.
func (s *MeetingStore) List(ctx context.Context) ([]domain.Meeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, locations, selected_location_id, date_timestamp, created_at, modified_at
		FROM meetings
		ORDER BY COALESCE(modified_at, created_at, date_timestamp) DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	meetings := []domain.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meetings: %w", err)
	}

	return meetings, nil
}

// Delete removes the meeting. Deleting an unknown id is not an error.
func (s *MeetingStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// Import writes meetings exactly as given, timestamps included. Existing
// rows with the same id are replaced.
func (s *MeetingStore) Import(ctx context.Context, meetings []domain.Meeting) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range meetings {
		if m.ID == "" {
			return fmt.Errorf("failed to import meeting %q: empty id", m.Name)
		}
		locs := m.Locations
		if locs == nil {
			locs = []domain.SavedLocation{}
		}
		encoded, err := json.Marshal(locs)
		if err != nil {
			return fmt.Errorf("failed to encode meeting locations: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO meetings (id, name, locations, selected_location_id, date_timestamp, created_at, modified_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, m.ID, m.Name, string(encoded), m.SelectedLocationID, m.DateTimestamp, m.CreatedAt, m.ModifiedAt)
		if err != nil {
			return fmt.Errorf("failed to import meeting %q: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(r rowScanner) (*domain.Meeting, error) {
	var (
		m                 domain.Meeting
		locs              string
		created, modified sql.NullFloat64
	)
	if err := r.Scan(&m.ID, &m.Name, &locs, &m.SelectedLocationID, &m.DateTimestamp, &created, &modified); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(locs), &m.Locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations of meeting %q: %w", m.ID, err)
	}
	if m.Locations == nil {
		m.Locations = []domain.SavedLocation{}
	}
	m.CreatedAt, m.ModifiedAt = domain.MigrateLegacyTimestamps(m.DateTimestamp, nullable(created), nullable(modified))
	return &m, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
