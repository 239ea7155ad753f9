package planner

import (
	"testing"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

func TestApplySameListTwiceIsIgnored(t *testing.T) {
	g := NewGrid()
	drop := Drop{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: "Derya Yılmaz"}

	if !g.Apply(drop) {
		t.Fatal("first drop should be accepted")
	}
	if g.Apply(drop) {
		t.Fatal("duplicate drop into the same list should be ignored")
	}
	if got := len(g.Days[0].Openings); got != 1 {
		t.Errorf("openings = %d, want 1", got)
	}
}

func TestApplyCrossListIsAccepted(t *testing.T) {
	g := NewGrid()
	name := "Emre Kaya"

	if !g.Apply(Drop{Kind: DropBarista, Day: 2, Slot: SlotOpenings, Barista: name}) {
		t.Fatal("opening drop should be accepted")
	}
	// the same worker may take a closing extra shift on the same day
	if !g.Apply(Drop{Kind: DropBarista, Day: 2, Slot: SlotClosings, Barista: name}) {
		t.Fatal("closing drop for the same barista should be accepted")
	}
	if !g.Apply(Drop{Kind: DropBarista, Day: 3, Slot: SlotOpenings, Barista: name}) {
		t.Fatal("drop on another day should be accepted")
	}
}

func TestApplyInvalidDropsLeaveGridUntouched(t *testing.T) {
	g := NewGrid()
	invalid := []Drop{
		{Kind: DropBarista, Day: 7, Slot: SlotOpenings, Barista: "X"},
		{Kind: DropBarista, Day: -1, Slot: SlotOpenings, Barista: "X"},
		{Kind: DropBarista, Day: 0, Slot: "lunch", Barista: "X"},
		{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: ""},
		{Kind: "sticker", Day: 0, Slot: SlotOpenings, Barista: "X"},
		{Kind: DropTimeLabel, Slot: SlotOpenings, Barista: "X", Label: "morningish"},
		{Kind: DropTimeLabel, Slot: SlotOff, Barista: "X", Label: "08:00-16:00"},
		{Kind: DropEvent, Day: 9, Label: "Cam"},
	}
	for _, drop := range invalid {
		if g.Apply(drop) {
			t.Errorf("drop %+v should be ignored", drop)
		}
	}

	for d := range g.Days {
		if len(g.Days[d].Openings)+len(g.Days[d].Closings)+len(g.Days[d].Off) != 0 {
			t.Fatalf("day %d is not empty after invalid drops", d)
		}
	}
	if len(g.TimeLabels) != 0 || len(g.Events) != 0 {
		t.Error("labels or events leaked from invalid drops")
	}
}

func TestTimeLabelOverwrites(t *testing.T) {
	g := NewGrid()
	name := "Selin Öztürk"

	g.Apply(Drop{Kind: DropTimeLabel, Slot: SlotOpenings, Barista: name, Label: "08:00-16:00"})
	g.Apply(Drop{Kind: DropTimeLabel, Slot: SlotOpenings, Barista: name, Label: "09:00-17:00"})

	if got := g.TimeLabels[name][SlotOpenings]; got != "09:00-17:00" {
		t.Errorf("label = %q, want the later drop to win", got)
	}
}

func TestEventDropIsIdempotent(t *testing.T) {
	g := NewGrid()
	if !g.Apply(Drop{Kind: DropEvent, Day: 5, Label: "Cam"}) {
		t.Fatal("event drop should be accepted")
	}
	if g.Apply(Drop{Kind: DropEvent, Day: 5, Label: "Cam"}) {
		t.Fatal("duplicate event on the same day should be ignored")
	}
	if !g.Apply(Drop{Kind: DropEvent, Day: 6, Label: "Cam"}) {
		t.Fatal("same event on another day should be accepted")
	}
}

func TestRemoveBaristaOnlyTouchesOnePlacement(t *testing.T) {
	g := NewGrid()
	name := "Çağla Demir"
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: name})
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotClosings, Barista: name})

	if !g.RemoveBarista(0, SlotOpenings, name) {
		t.Fatal("removal should succeed")
	}
	if len(g.Days[0].Openings) != 0 {
		t.Error("opening placement should be gone")
	}
	if len(g.Days[0].Closings) != 1 {
		t.Error("closing placement must survive")
	}
	if g.RemoveBarista(0, SlotOpenings, name) {
		t.Error("second removal should report nothing to remove")
	}
}

func TestClearResetsEverything(t *testing.T) {
	g := NewGrid()
	g.Apply(Drop{Kind: DropBarista, Day: 1, Slot: SlotOpenings, Barista: "A"})
	g.Apply(Drop{Kind: DropBarista, Day: 4, Slot: SlotOff, Barista: "B"})
	g.Apply(Drop{Kind: DropTimeLabel, Slot: SlotClosings, Barista: "A", Label: "16:00-00:00"})
	g.Apply(Drop{Kind: DropEvent, Day: 1, Label: "Bar"})

	g.Clear()

	for d := range g.Days {
		if len(g.Days[d].Openings)+len(g.Days[d].Closings)+len(g.Days[d].Off) != 0 {
			t.Fatalf("day %d not cleared", d)
		}
	}
	if len(g.TimeLabels) != 0 {
		t.Error("time labels not cleared")
	}
	if len(g.Events) != 0 {
		t.Error("events not cleared")
	}
}

func TestAvailableExcludesPlacedBaristas(t *testing.T) {
	roster := []*domain.Barista{
		{ID: 1, FullName: "A"},
		{ID: 2, FullName: "B"},
		{ID: 3, FullName: "C"},
	}

	g := NewGrid()
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: "A"})
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotOff, Barista: "C"})

	available := g.Available(0, roster)
	if len(available) != 1 || available[0].FullName != "B" {
		t.Fatalf("available = %+v, want only B", available)
	}

	// placements on day 0 must not shrink day 1's pool
	if got := len(g.Available(1, roster)); got != 3 {
		t.Errorf("day 1 available = %d, want 3", got)
	}
}

func TestCoverage(t *testing.T) {
	g := NewGrid()
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotOpenings, Barista: "A"})
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotClosings, Barista: "B"})
	g.Apply(Drop{Kind: DropBarista, Day: 0, Slot: SlotClosings, Barista: "C"})

	c := g.Coverage(0)
	if c.Openings != 1 || c.OpeningShortfall != 1 {
		t.Errorf("openings %d/%d, want 1 with shortfall 1", c.Openings, c.OpeningShortfall)
	}
	if c.Closings != 2 || c.ClosingShortfall != 1 {
		t.Errorf("closings %d/%d, want 2 with shortfall 1", c.Closings, c.ClosingShortfall)
	}

	empty := g.Coverage(3)
	if empty.ClosingShortfall != ClosingTarget {
		t.Errorf("empty day shortfall = %d, want %d", empty.ClosingShortfall, ClosingTarget)
	}
}
