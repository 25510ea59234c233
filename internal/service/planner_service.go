package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vbonduro/taptime/internal/autosave"
	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
	"github.com/vbonduro/taptime/internal/locations"
	"github.com/vbonduro/taptime/internal/schedule"
	"github.com/vbonduro/taptime/internal/search"
)

// saveTimeout bounds a background auto-save.
const saveTimeout = 5 * time.Second

// meetingRepository is the subset of store.MeetingStore that PlannerService requires.
type meetingRepository interface {
	Save(ctx context.Context, m domain.Meeting) (*domain.Meeting, error)
	Get(ctx context.Context, id string) (*domain.Meeting, error)
	List(ctx context.Context) ([]domain.Meeting, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, meetings []domain.Meeting) error
}

// locationListRepository is the subset of store.LocationListStore that
// PlannerService requires.
type locationListRepository interface {
	Load(ctx context.Context) ([]domain.SavedLocation, error)
	Replace(ctx context.Context, locs []domain.SavedLocation) error
}

type Option func(*PlannerService)

// WithUserZone sets the zone of the user's own device.
func WithUserZone(zone string) Option {
	return func(s *PlannerService) {
		if zone != "" {
			s.userZone = zone
		}
	}
}

func WithAutosaveDelay(d time.Duration) Option {
	return func(s *PlannerService) { s.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *PlannerService) { s.now = now }
}

// PlannerService owns the planning state: the live location list, the
// pivot instant, the anchor and the meeting being edited. Every mutation
// schedules a debounced save.
type PlannerService struct {
	locations *locations.Store
	search    *search.Engine
	meetings  meetingRepository
	live      locationListRepository
	saver     *autosave.Debouncer
	logger    *slog.Logger
	now       func() time.Time
	delay     time.Duration

	mu          sync.Mutex
	pivot       time.Time
	anchorID    string
	userZone    string
	meetingID   string
	meetingName string
}

func NewPlannerService(
	locs *locations.Store,
	engine *search.Engine,
	meetings meetingRepository,
	live locationListRepository,
	logger *slog.Logger,
	opts ...Option,
) *PlannerService {
	s := &PlannerService{
		locations: locs,
		search:    engine,
		meetings:  meetings,
		live:      live,
		logger:    logger,
		now:       time.Now,
		delay:     autosave.DefaultDelay,
		userZone:  "UTC",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pivot = s.now()
	s.saver = autosave.New(s.delay, s.autosave)
	return s
}

// Restore reloads the live location list persisted by a previous run.
func (s *PlannerService) Restore(ctx context.Context) error {
	locs, err := s.live.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore locations: %w", err)
	}
	s.saver.Suppress(func() { s.locations.SetAll(locs) })
	s.logger.Info("locations restored", "count", s.locations.Len())
	return nil
}

// Close writes any pending save and stops auto-saving.
func (s *PlannerService) Close() {
	s.saver.Flush()
	s.saver.Stop()
}

func (s *PlannerService) Locations() []domain.SavedLocation {
	return s.locations.List()
}

func (s *PlannerService) AddAt(ctx context.Context, c domain.Coordinate) (domain.SavedLocation, error) {
	loc, err := s.locations.AddAt(ctx, c)
	if err != nil {
		return loc, err
	}
	s.changed()
	return loc, nil
}

func (s *PlannerService) AddFromSearchResult(ctx context.Context, r domain.SearchResult) (domain.SavedLocation, error) {
	loc, err := s.locations.AddFromSearchResult(ctx, r)
	if err != nil {
		return loc, err
	}
	s.changed()
	return loc, nil
}

func (s *PlannerService) AddByQuery(ctx context.Context, query string) (domain.SavedLocation, error) {
	loc, err := s.locations.AddByQuery(ctx, query)
	if err != nil {
		return loc, err
	}
	s.changed()
	return loc, nil
}

// MoveLocation re-resolves a dragged pin.
func (s *PlannerService) MoveLocation(ctx context.Context, id string, c domain.Coordinate) (domain.SavedLocation, error) {
	loc, err := s.locations.UpdateCoordinate(ctx, id, c)
	if err != nil {
		return loc, err
	}
	s.changed()
	return loc, nil
}

// RemoveLocation deletes an unlocked entry. Removing the anchor makes the
// user's own zone the anchor again.
func (s *PlannerService) RemoveLocation(id string) error {
	if err := s.locations.Remove(id); err != nil {
		return err
	}
	s.dropMissingAnchor()
	s.changed()
	return nil
}

func (s *PlannerService) ToggleLock(id string) (bool, error) {
	locked, err := s.locations.ToggleLock(id)
	if err != nil {
		return false, err
	}
	s.changed()
	return locked, nil
}

// ClearUnlocked removes every unlocked entry.
func (s *PlannerService) ClearUnlocked() int {
	removed := s.locations.ClearUnlocked()
	if removed > 0 {
		s.dropMissingAnchor()
		s.changed()
	}
	return removed
}

// Search returns domain.ErrNotRecognized when a non-blank query matches
// nothing.
func (s *PlannerService) Search(query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	results := s.search.Search(query)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRecognized, strings.TrimSpace(query))
	}
	return results, nil
}

func (s *PlannerService) Autocomplete(prefix string) (string, bool) {
	return catalog.Autocomplete(prefix)
}

func (s *PlannerService) SetPivot(t time.Time) {
	s.mu.Lock()
	s.pivot = t
	s.mu.Unlock()
	s.changed()
}

func (s *PlannerService) Pivot() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pivot
}

// SetAnchor makes the location with id the meeting's reference zone. An
// empty id selects the user's own zone.
func (s *PlannerService) SetAnchor(id string) error {
	if id != "" {
		if _, ok := s.locations.Get(id); !ok {
			return fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
		}
	}
	s.mu.Lock()
	s.anchorID = id
	s.mu.Unlock()
	s.changed()
	return nil
}

// LocationView is one row of the schedule screen.
type LocationView struct {
	ID               string            `json:"id"`
	LocationName     string            `json:"locationName"`
	PillName         string            `json:"pillName"`
	TimeZone         string            `json:"timeZone"`
	Coordinate       domain.Coordinate `json:"coordinate"`
	IsLocked         bool              `json:"isLocked"`
	IsAnchor         bool              `json:"isAnchor"`
	LocalTime        string            `json:"localTime"`
	Day              string            `json:"day"`
	OffsetSeconds    int               `json:"offsetSeconds"`
	OffsetDifference string            `json:"offsetDifference"`
}

// View is the schedule screen's model.
type View struct {
	Pivot       time.Time      `json:"pivot"`
	AnchorID    string         `json:"anchorId"`
	AnchorZone  string         `json:"anchorZone"`
	UserZone    string         `json:"userZone"`
	MeetingID   string         `json:"meetingId,omitempty"`
	MeetingName string         `json:"meetingName,omitempty"`
	Locations   []LocationView `json:"locations"`
}

// View renders the anchor-first schedule with each location's wall clock
// and difference from the anchor.
func (s *PlannerService) View() View {
	st := s.state()
	ordered := schedule.OrderedForDisplay(st.locations, st.anchorID, st.pivot)

	rows := make([]LocationView, 0, len(ordered))
	for _, l := range ordered {
		local := st.pivot.In(l.Location())
		diff, err := schedule.OffsetDifference(l.TimeZone, st.anchorZone, st.pivot)
		if err != nil {
			s.logger.Warn("failed to compute offset difference", "zone", l.TimeZone, "error", err)
		}
		rows = append(rows, LocationView{
			ID:               l.ID,
			LocationName:     l.LocationName,
			PillName:         catalog.PillDisplayName(l.LocationName, l.TimeZone, st.pivot),
			TimeZone:         l.TimeZone,
			Coordinate:       l.Coordinate,
			IsLocked:         l.IsLocked,
			IsAnchor:         l.ID == st.anchorID,
			LocalTime:        schedule.FormatClock(local),
			Day:              schedule.FormatDay(local),
			OffsetSeconds:    diff,
			OffsetDifference: schedule.FormatOffsetDifference(diff),
		})
	}

	return View{
		Pivot:       st.pivot,
		AnchorID:    st.anchorID,
		AnchorZone:  st.anchorZone,
		UserZone:    st.userZone,
		MeetingID:   st.meetingID,
		MeetingName: st.meetingName,
		Locations:   rows,
	}
}

// ShareText renders the plain-text schedule for share targets.
func (s *PlannerService) ShareText() string {
	st := s.state()
	return schedule.FormatSchedule(schedule.Request{
		MeetingName:      st.meetingName,
		Locations:        schedule.OrderedForDisplay(st.locations, st.anchorID, st.pivot),
		AnchorZone:       st.anchorZone,
		AnchorIsUserZone: st.anchorID == "",
		Pivot:            st.pivot,
		UserZone:         st.userZone,
	})
}

// SaveMeeting stores the current plan as a new meeting and makes it the
// one later edits auto-save into.
func (s *PlannerService) SaveMeeting(ctx context.Context, name string) (*domain.Meeting, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("meeting name is required")
	}

	st := s.state()
	m := st.snapshot(uuid.NewString(), name)
	saved, err := s.meetings.Save(ctx, m)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.meetingID = saved.ID
	s.meetingName = saved.Name
	s.mu.Unlock()

	s.logger.Info("meeting saved", "id", saved.ID, "name", saved.Name, "locations", len(saved.Locations))
	return saved, nil
}

// SaveCurrent writes the plan into the active meeting, if any. A meeting
// deleted elsewhere stops being the active one. Nothing is written while a
// meeting is loading.
func (s *PlannerService) SaveCurrent(ctx context.Context) error {
	if s.saver.Suppressed() {
		s.logger.Debug("save skipped while loading")
		return nil
	}
	st := s.state()
	if err := s.live.Replace(ctx, st.locations); err != nil {
		return err
	}
	if st.meetingID == "" {
		return nil
	}

	if _, err := s.meetings.Get(ctx, st.meetingID); errors.Is(err, domain.ErrNotFound) {
		s.logger.Info("active meeting no longer exists", "id", st.meetingID)
		s.clearMeeting(st.meetingID)
		return nil
	} else if err != nil {
		return err
	}

	if _, err := s.meetings.Save(ctx, st.snapshot(st.meetingID, st.meetingName)); err != nil {
		return err
	}
	s.logger.Debug("meeting auto-saved", "id", st.meetingID)
	return nil
}

// OpenMeeting replaces the plan with a saved meeting. Auto-save stays off
// while the meeting loads.
func (s *PlannerService) OpenMeeting(ctx context.Context, id string) (*domain.Meeting, error) {
	m, err := s.meetings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.saver.Suppress(func() {
		// Readers of state() see either the old plan or the new one.
		s.mu.Lock()
		defer s.mu.Unlock()

		s.locations.SetAll(m.Clone().Locations)

		anchor := ""
		if _, ok := s.locations.Get(m.SelectedLocationID); ok {
			anchor = m.SelectedLocationID
		}
		s.pivot = m.Date()
		s.anchorID = anchor
		s.meetingID = m.ID
		s.meetingName = m.Name
	})

	if err := s.live.Replace(ctx, s.locations.List()); err != nil {
		s.logger.Warn("failed to persist opened locations", "id", id, "error", err)
	}

	s.logger.Info("meeting opened", "id", m.ID, "name", m.Name)
	return m, nil
}

// DeleteMeeting removes a saved meeting. Deleting the active meeting
// detaches the plan from it.
func (s *PlannerService) DeleteMeeting(ctx context.Context, id string) error {
	if err := s.meetings.Delete(ctx, id); err != nil {
		return err
	}
	s.clearMeeting(id)
	s.logger.Info("meeting deleted", "id", id)
	return nil
}

// ListMeetings returns saved meetings, most recently modified first.
func (s *PlannerService) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	meetings, err := s.meetings.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].ModifiedAt > meetings[j].ModifiedAt
	})
	return meetings, nil
}

// ImportMeetings stores meetings from a JSON document of any supported
// version and returns how many were imported.
func (s *PlannerService) ImportMeetings(ctx context.Context, data []byte) (int, error) {
	meetings, err := domain.DecodeMeetings(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrFailed, err)
	}
	for i := range meetings {
		if meetings[i].ID == "" {
			meetings[i].ID = uuid.NewString()
		}
	}
	if err := s.meetings.Import(ctx, meetings); err != nil {
		return 0, err
	}
	s.logger.Info("meetings imported", "count", len(meetings))
	return len(meetings), nil
}

func (s *PlannerService) changed() {
	s.saver.Trigger()
}

func (s *PlannerService) autosave() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.SaveCurrent(ctx); err != nil {
		s.logger.Error("auto-save failed", "error", err)
	}
}

func (s *PlannerService) dropMissingAnchor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.anchorID == "" {
		return
	}
	if _, ok := s.locations.Get(s.anchorID); !ok {
		s.anchorID = ""
	}
}

func (s *PlannerService) clearMeeting(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meetingID == id {
		s.meetingID = ""
		s.meetingName = ""
	}
}

type plannerState struct {
	locations   []domain.SavedLocation
	pivot       time.Time
	anchorID    string
	anchorZone  string
	userZone    string
	meetingID   string
	meetingName string
}

func (s *PlannerService) state() plannerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := plannerState{
		locations:   s.locations.List(),
		pivot:       s.pivot,
		anchorID:    s.anchorID,
		anchorZone:  s.userZone,
		userZone:    s.userZone,
		meetingID:   s.meetingID,
		meetingName: s.meetingName,
	}
	if l, ok := s.locations.Get(s.anchorID); ok && s.anchorID != "" {
		st.anchorZone = l.TimeZone
	} else {
		st.anchorID = ""
	}
	return st
}

func (st plannerState) snapshot(id, name string) domain.Meeting {
	return domain.Meeting{
		ID:                 id,
		Name:               name,
		Locations:          append([]domain.SavedLocation(nil), st.locations...),
		SelectedLocationID: st.anchorID,
		DateTimestamp:      domain.Epoch(st.pivot),
	}
}
