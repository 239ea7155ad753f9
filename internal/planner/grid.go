package planner

import (
	"slices"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

type SlotKind string

const (
	SlotOpenings SlotKind = "openings"
	SlotClosings SlotKind = "closings"
	SlotOff      SlotKind = "off"
)

type DropKind string

const (
	DropBarista   DropKind = "barista"
	DropTimeLabel DropKind = "time_label"
	DropEvent     DropKind = "event"
)

// DaySlots are the three named lists of one grid day. Entries are
// barista display names in drop order.
type DaySlots struct {
	Openings []string `json:"openings"`
	Closings []string `json:"closings"`
	Off      []string `json:"off"`
}

// Grid is the client-local editing surface for one week, populated by
// drag and drop. It is scratch state: it never touches the roster store
// until it is compiled and published.
type Grid struct {
	Days       [7]DaySlots                    `json:"days"`
	TimeLabels map[string]map[SlotKind]string `json:"time_labels"` // barista name -> slot kind -> time range
	Events     map[int][]string               `json:"events"`      // day -> event labels
}

func NewGrid() *Grid {
	g := &Grid{
		TimeLabels: map[string]map[SlotKind]string{},
		Events:     map[int][]string{},
	}
	for d := range g.Days {
		g.Days[d] = DaySlots{
			Openings: []string{},
			Closings: []string{},
			Off:      []string{},
		}
	}
	return g
}

// Drop describes one drag-and-drop gesture. Which fields matter depends
// on Kind; see Apply.
type Drop struct {
	Kind    DropKind `json:"kind"`
	Day     int      `json:"day"`
	Slot    SlotKind `json:"slot"`
	Barista string   `json:"barista"`
	Label   string   `json:"label"`
}

func validDay(day int) bool {
	return day >= 0 && day <= 6
}

func (d *DaySlots) list(slot SlotKind) *[]string {
	switch slot {
	case SlotOpenings:
		return &d.Openings
	case SlotClosings:
		return &d.Closings
	case SlotOff:
		return &d.Off
	}
	return nil
}

// Apply performs one drop as a synchronous state transition. A drop
// either completes fully or is a no-op: unknown kinds, out-of-range
// days, unknown slots and exact duplicates all return false and leave
// the grid untouched.
//
// Dropping the same barista into the same list twice is rejected;
// dropping them into a different list or day is accepted, since a
// worker may legitimately take an opening and a closing extra shift.
func (g *Grid) Apply(drop Drop) bool {
	switch drop.Kind {
	case DropBarista:
		if !validDay(drop.Day) || drop.Barista == "" {
			return false
		}
		list := g.Days[drop.Day].list(drop.Slot)
		if list == nil || slices.Contains(*list, drop.Barista) {
			return false
		}
		*list = append(*list, drop.Barista)
		return true

	case DropTimeLabel:
		if drop.Barista == "" || drop.Label == "" {
			return false
		}
		if drop.Slot != SlotOpenings && drop.Slot != SlotClosings {
			return false
		}
		if _, _, err := ParseTimeRange(drop.Label); err != nil {
			return false
		}
		if g.TimeLabels[drop.Barista] == nil {
			g.TimeLabels[drop.Barista] = map[SlotKind]string{}
		}
		// dropping onto an already-labelled barista overwrites
		g.TimeLabels[drop.Barista][drop.Slot] = drop.Label
		return true

	case DropEvent:
		if !validDay(drop.Day) || drop.Label == "" {
			return false
		}
		if slices.Contains(g.Events[drop.Day], drop.Label) {
			return false
		}
		g.Events[drop.Day] = append(g.Events[drop.Day], drop.Label)
		return true
	}

	// unrecognized drop source, ignore
	return false
}

// RemoveBarista deletes one placed barista token from one specific
// list. Other placements of the same barista are untouched.
func (g *Grid) RemoveBarista(day int, slot SlotKind, name string) bool {
	if !validDay(day) {
		return false
	}
	list := g.Days[day].list(slot)
	if list == nil {
		return false
	}
	idx := slices.Index(*list, name)
	if idx < 0 {
		return false
	}
	*list = slices.Delete(*list, idx, idx+1)
	return true
}

func (g *Grid) RemoveTimeLabel(name string, slot SlotKind) bool {
	labels, ok := g.TimeLabels[name]
	if !ok {
		return false
	}
	if _, ok := labels[slot]; !ok {
		return false
	}
	delete(labels, slot)
	if len(labels) == 0 {
		delete(g.TimeLabels, name)
	}
	return true
}

func (g *Grid) RemoveEvent(day int, label string) bool {
	if !validDay(day) {
		return false
	}
	idx := slices.Index(g.Events[day], label)
	if idx < 0 {
		return false
	}
	g.Events[day] = slices.Delete(g.Events[day], idx, idx+1)
	if len(g.Events[day]) == 0 {
		delete(g.Events, day)
	}
	return true
}

// Clear resets the day lists, the time-label assignments and the day
// events in one step.
func (g *Grid) Clear() {
	for d := range g.Days {
		g.Days[d] = DaySlots{
			Openings: []string{},
			Closings: []string{},
			Off:      []string{},
		}
	}
	g.TimeLabels = map[string]map[SlotKind]string{}
	g.Events = map[int][]string{}
}

// Available returns the baristas not placed in any of the day's three
// lists, preserving roster order. It backs the per-day "unscheduled"
// pool.
func (g *Grid) Available(day int, all []*domain.Barista) []*domain.Barista {
	if !validDay(day) {
		return nil
	}

	slots := g.Days[day]
	placed := make(map[string]bool, len(slots.Openings)+len(slots.Closings)+len(slots.Off))
	for _, list := range [][]string{slots.Openings, slots.Closings, slots.Off} {
		for _, name := range list {
			placed[name] = true
		}
	}

	available := []*domain.Barista{}
	for _, b := range all {
		if !placed[b.FullName] {
			available = append(available, b)
		}
	}
	return available
}
