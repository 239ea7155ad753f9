package generator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
)

type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingConfirmation State = "awaiting-confirmation"
	StateRequesting           State = "requesting"
)

var (
	ErrRequestInFlight = errors.New("a generation request is already in flight")
	ErrNotIdle         = errors.New("generation adapter is busy")
)

// Collaborator is the outbound generation call. *Client satisfies it.
type Collaborator interface {
	Generate(ctx context.Context, weekStart time.Time, prefs planner.PreferenceSet) (*Response, error)
}

// Store is the slice of the roster store the adapter writes back into.
type Store interface {
	SetShifts(scheduleID int64, shifts []domain.Shift)
	LoadShifts(scheduleID int64) error
	LoadSchedules() error
}

// Adapter bridges captured preferences to the generation collaborator.
// At most one request is in flight; a second caller gets
// ErrRequestInFlight instead of a second request.
type Adapter struct {
	mu     sync.Mutex
	state  State
	client Collaborator
	store  Store
}

func NewAdapter(client Collaborator, store Store) *Adapter {
	return &Adapter{
		state:  StateIdle,
		client: client,
		store:  store,
	}
}

func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// OpenPreferences moves idle -> awaiting-confirmation, mirroring the
// preferences dialog being opened.
func (a *Adapter) OpenPreferences() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateIdle {
		return ErrNotIdle
	}
	a.state = StateAwaitingConfirmation
	return nil
}

// Cancel abandons the awaiting-confirmation state.
func (a *Adapter) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateAwaitingConfirmation {
		a.state = StateIdle
	}
}

func (a *Adapter) enterRequesting() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateRequesting {
		return ErrRequestInFlight
	}
	a.state = StateRequesting
	return nil
}

func (a *Adapter) backToIdle() {
	a.mu.Lock()
	a.state = StateIdle
	a.mu.Unlock()
}

// Generate resolves weekFor to its ISO Monday, submits the request and
// ingests the result. The collaborator's response shape varies by code
// path, so ingestion is three-tiered: an embedded shift list is taken
// as-is, a bare schedule id triggers a shift fetch, and anything else
// reloads the whole schedule list. On any failure the adapter returns
// to idle with no partial state and no retry.
func (a *Adapter) Generate(ctx context.Context, weekFor time.Time, prefs planner.PreferenceSet) (*Response, error) {
	if err := a.enterRequesting(); err != nil {
		return nil, err
	}
	defer a.backToIdle()

	weekStart := domain.WeekStart(weekFor)

	resp, err := a.client.Generate(ctx, weekStart, prefs)
	if err != nil {
		return nil, err
	}

	switch {
	case len(resp.Shifts) > 0:
		a.store.SetShifts(resp.ScheduleID, resp.Shifts)
	case resp.ScheduleID != 0:
		if err := a.store.LoadShifts(resp.ScheduleID); err != nil {
			return nil, err
		}
	default:
		if err := a.store.LoadSchedules(); err != nil {
			return nil, err
		}
	}

	return resp, nil
}
