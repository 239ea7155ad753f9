package planner

import (
	"testing"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

type mapResolver map[string]*domain.Barista

func (m mapResolver) BaristaByName(name string) (*domain.Barista, bool) {
	b, ok := m[name]
	return b, ok
}

func TestCompile(t *testing.T) {
	resolver := mapResolver{
		"A": {ID: 1, FullName: "A"},
		"B": {ID: 2, FullName: "B"},
	}

	g := NewGrid()
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: "A"})
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotClosings, Barista: "B"})
	g.Apply(Drop{Kind: DropBarista, Day: 1, Slot: SlotOff, Barista: "B"})
	g.Apply(Drop{Kind: DropTimeLabel, Slot: SlotClosings, Barista: "B", Label: "17:00-01:00"})

	shifts, err := g.Compile(9, resolver)
	if err != nil {
		t.Fatal(err)
	}
	if len(shifts) != 3 {
		t.Fatalf("got %d shifts, want 3", len(shifts))
	}

	byKey := map[string]domain.Shift{}
	for _, s := range shifts {
		if s.ScheduleID != 9 {
			t.Errorf("schedule id = %d, want 9", s.ScheduleID)
		}
		byKey[string(s.Type)] = s
	}

	opening := byKey[string(domain.ShiftMorning)]
	if opening.BaristaID != 1 || opening.StartTime != "08:00" || opening.EndTime != "16:00" || opening.Hours != 8 {
		t.Errorf("opening shift = %+v, want the default opening range", opening)
	}

	closing := byKey[string(domain.ShiftEvening)]
	if closing.BaristaID != 2 || closing.StartTime != "17:00" || closing.EndTime != "01:00" || closing.Hours != 8 {
		t.Errorf("closing shift = %+v, want the assigned label", closing)
	}

	off := byKey[string(domain.ShiftOff)]
	if off.DayOfWeek != 1 || off.StartTime != "" || off.Hours != 0 {
		t.Errorf("off shift = %+v, want no times", off)
	}
}

func TestCompileUnknownNameAbortsEverything(t *testing.T) {
	resolver := mapResolver{"A": {ID: 1, FullName: "A"}}

	g := NewGrid()
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: "A"})
	g.Apply(Drop{Kind: DropBarista, Day: 3, Slot: SlotClosings, Barista: "Ghost"})

	shifts, err := g.Compile(1, resolver)
	if err == nil {
		t.Fatal("an unresolvable name must abort compilation")
	}
	if shifts != nil {
		t.Error("no partial shift list on failure")
	}
}

func TestCompileEmptyGrid(t *testing.T) {
	shifts, err := NewGrid().Compile(1, mapResolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(shifts) != 0 {
		t.Errorf("empty grid compiled to %d shifts", len(shifts))
	}
}

func TestParseTimeRange(t *testing.T) {
	start, end, err := ParseTimeRange("16:00-00:00")
	if err != nil {
		t.Fatal(err)
	}
	if start != "16:00" || end != "00:00" {
		t.Errorf("got %s/%s", start, end)
	}

	for _, bad := range []string{"", "08:00", "8:00-16:00", "08:00-16:00-17:00"} {
		if _, _, err := ParseTimeRange(bad); err == nil {
			t.Errorf("%q should not parse", bad)
		}
	}
}
