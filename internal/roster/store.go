package roster

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

// Source is what the store loads from. *repository.Repository satisfies
// it in production; tests plug in fakes.
type Source interface {
	GetAllBaristas() ([]*domain.Barista, error)
	GetAllSchedules() ([]*domain.WeeklySchedule, error)
	GetShiftsByScheduleID(scheduleID int64) ([]domain.Shift, error)
}

// Store is the single source of truth for baristas and the current
// weekly schedule. Load methods replace whole slices; nothing else
// mutates them. The manual planner grid deliberately lives elsewhere
// and never writes here.
//
// The two load paths keep separate advisories: barista and schedule
// loads interleave freely, so a healthy load on one side must not
// erase a still-true banner from the other.
type Store struct {
	mu               sync.RWMutex
	src              Source
	baristas         []*domain.Barista
	current          *domain.WeeklySchedule
	shifts           []domain.Shift
	baristaAdvisory  string
	scheduleAdvisory string
}

func NewStore(src Source) *Store {
	return &Store{
		src: src,
	}
}

// LoadBaristas replaces the roster from the source. A failing or empty
// source is never fatal: the store falls back to the fixed seed roster
// and records an advisory for the UI banner.
func (s *Store) LoadBaristas() {
	baristas, err := s.src.GetAllBaristas()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || len(baristas) == 0 {
		if err != nil {
			slog.Warn("failed to load baristas, falling back to seed roster", "error", err)
		}
		s.baristas = SeedRoster()
		s.baristaAdvisory = "Barista roster is unavailable, showing mock data."
		return
	}

	s.baristas = baristas
	s.baristaAdvisory = ""
}

// LoadSchedules fetches all schedules newest-first and makes the first
// one current, then loads its shifts. A source failure on either fetch
// leaves the store with an advisory instead of propagating the error;
// read-path transport failures never escalate past a banner.
func (s *Store) LoadSchedules() error {
	schedules, err := s.src.GetAllSchedules()
	if err != nil {
		slog.Warn("failed to load schedules", "error", err)
		s.mu.Lock()
		s.scheduleAdvisory = "Schedules are unavailable, showing mock data."
		s.mu.Unlock()
		return nil
	}

	// the repository already orders newest-first; re-sort so a
	// misbehaving source cannot change which schedule becomes current
	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].WeekStart.After(schedules[j].WeekStart)
	})

	s.mu.Lock()
	s.scheduleAdvisory = ""
	if len(schedules) == 0 {
		s.current = nil
		s.shifts = nil
		s.mu.Unlock()
		return nil
	}
	s.current = schedules[0]
	currentID := schedules[0].ID
	s.mu.Unlock()

	// a failing shift fetch degrades the same way the schedule fetch
	// does; the direct LoadShifts path below keeps returning errors
	// for callers that need them
	if err := s.LoadShifts(currentID); err != nil {
		slog.Warn("failed to load shifts for the current schedule", "error", err)
		s.mu.Lock()
		s.shifts = []domain.Shift{}
		s.scheduleAdvisory = "Shifts are unavailable, showing mock data."
		s.mu.Unlock()
	}
	return nil
}

// LoadShifts replaces the current shift list. A source that returns
// nothing is treated as "no shifts", not as an error.
func (s *Store) LoadShifts(scheduleID int64) error {
	shifts, err := s.src.GetShiftsByScheduleID(scheduleID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if shifts == nil {
		shifts = []domain.Shift{}
	}
	s.shifts = shifts
	return nil
}

// SetShifts ingests a shift list handed over directly, e.g. by a
// generation response that embeds its shifts.
func (s *Store) SetShifts(scheduleID int64, shifts []domain.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make([]domain.Shift, len(shifts))
	copy(replaced, shifts)
	for i := range replaced {
		replaced[i].ScheduleID = scheduleID
	}
	s.shifts = replaced
}

func (s *Store) Baristas() []*domain.Barista {
	s.mu.RLock()
	defer s.mu.RUnlock()

	baristas := make([]*domain.Barista, len(s.baristas))
	copy(baristas, s.baristas)
	return baristas
}

func (s *Store) Current() *domain.WeeklySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *Store) Shifts() []domain.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shifts := make([]domain.Shift, len(s.shifts))
	copy(shifts, s.shifts)
	return shifts
}

// Advisory joins the banner texts for degraded loads, empty when the
// last loads on both paths were healthy.
func (s *Store) Advisory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.baristaAdvisory != "" && s.scheduleAdvisory != "":
		return s.baristaAdvisory + " " + s.scheduleAdvisory
	case s.baristaAdvisory != "":
		return s.baristaAdvisory
	default:
		return s.scheduleAdvisory
	}
}

func (s *Store) BaristaByID(id int64) (*domain.Barista, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.baristas {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// BaristaByName resolves a display name to a barista. The manual grid
// references workers by name; every assignment must resolve to exactly
// one barista before it can be committed.
func (s *Store) BaristaByName(name string) (*domain.Barista, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.baristas {
		if b.FullName == name {
			return b, true
		}
	}
	return nil, false
}
