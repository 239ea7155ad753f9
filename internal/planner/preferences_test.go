package planner

import (
	"slices"
	"testing"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

func testRoster() []*domain.Barista {
	return []*domain.Barista{
		{ID: 1, FullName: "A"},
		{ID: 2, FullName: "B"},
	}
}

func TestNewPreferenceSetSeedsEveryBarista(t *testing.T) {
	ps := NewPreferenceSet(testRoster())
	if len(ps) != 2 {
		t.Fatalf("got %d entries, want 2", len(ps))
	}
	for id, pref := range ps {
		if pref.DayOff != domain.DayOffUnset {
			t.Errorf("barista %d day off = %d, want unset", id, pref.DayOff)
		}
		if pref.PreferredOpening == nil || pref.PreferredClosing == nil {
			t.Errorf("barista %d preferred-day sets must be empty, not nil", id)
		}
	}
}

func TestReseedDiscardsEdits(t *testing.T) {
	roster := testRoster()
	ps := NewPreferenceSet(roster)
	if err := ps.SetDayOff(1, 3); err != nil {
		t.Fatal(err)
	}

	ps = NewPreferenceSet(roster)
	if ps[1].DayOff != domain.DayOffUnset {
		t.Error("reopening the capture must discard earlier edits")
	}
}

func TestSetDayOff(t *testing.T) {
	ps := NewPreferenceSet(testRoster())

	if err := ps.SetDayOff(1, 6); err != nil {
		t.Fatal(err)
	}
	if ps[1].DayOff != 6 {
		t.Errorf("day off = %d, want 6", ps[1].DayOff)
	}

	// two baristas may want the same day off
	if err := ps.SetDayOff(2, 6); err != nil {
		t.Errorf("same day off for another barista must be allowed: %v", err)
	}

	if err := ps.SetDayOff(1, domain.DayOffUnset); err != nil {
		t.Fatal(err)
	}
	if ps[1].DayOff != domain.DayOffUnset {
		t.Error("unset should clear the day off")
	}

	if err := ps.SetDayOff(1, 7); err == nil {
		t.Error("day 7 must be rejected")
	}
	if err := ps.SetDayOff(99, 0); err == nil {
		t.Error("unknown barista must be rejected")
	}
}

func TestValidateRejectsOutOfRangeDays(t *testing.T) {
	ps := PreferenceSet{
		1: {DayOff: 99, PreferredOpening: []int{}, PreferredClosing: []int{}},
	}
	if err := ps.Validate(); err == nil {
		t.Error("day off 99 must be rejected")
	}

	ps = PreferenceSet{
		1: {DayOff: domain.DayOffUnset, PreferredOpening: []int{9}, PreferredClosing: []int{}},
	}
	if err := ps.Validate(); err == nil {
		t.Error("preferred opening day 9 must be rejected")
	}

	ps = PreferenceSet{
		1: {DayOff: domain.DayOffUnset, PreferredOpening: []int{}, PreferredClosing: []int{-1}},
	}
	if err := ps.Validate(); err == nil {
		t.Error("preferred closing day -1 must be rejected")
	}

	ps = PreferenceSet{1: nil}
	if err := ps.Validate(); err == nil {
		t.Error("a nil preference record must be rejected")
	}
}

func TestValidateAcceptsSetterOutput(t *testing.T) {
	ps := NewPreferenceSet(testRoster())
	if err := ps.SetDayOff(1, 6); err != nil {
		t.Fatal(err)
	}
	if err := ps.ReplaceDays(2, FieldPreferredOpening, []int{0, 3}); err != nil {
		t.Fatal(err)
	}

	if err := ps.Validate(); err != nil {
		t.Errorf("a set built through the setters must validate: %v", err)
	}
}

func TestToggleDayIsSymmetric(t *testing.T) {
	ps := NewPreferenceSet(testRoster())

	if err := ps.ToggleDay(1, FieldPreferredOpening, 2); err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(ps[1].PreferredOpening, 2) {
		t.Fatal("day 2 should be present after the first toggle")
	}

	if err := ps.ToggleDay(1, FieldPreferredOpening, 2); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(ps[1].PreferredOpening, 2) {
		t.Error("day 2 should be gone after the second toggle")
	}
}

func TestToggleDayRejectsDayOffField(t *testing.T) {
	ps := NewPreferenceSet(testRoster())
	if err := ps.ToggleDay(1, FieldDayOff, 2); err == nil {
		t.Error("dayOff is not a toggleable day set")
	}
}

func TestReplaceDays(t *testing.T) {
	ps := NewPreferenceSet(testRoster())

	if err := ps.ReplaceDays(2, FieldPreferredClosing, []int{0, 5}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ps[2].PreferredClosing, []int{0, 5}) {
		t.Errorf("preferred closing = %v, want [0 5]", ps[2].PreferredClosing)
	}

	if err := ps.ReplaceDays(2, FieldPreferredClosing, []int{0, 8}); err == nil {
		t.Error("out-of-range day must reject the whole replacement")
	}
	if !slices.Equal(ps[2].PreferredClosing, []int{0, 5}) {
		t.Error("a rejected replacement must not change the set")
	}
}
