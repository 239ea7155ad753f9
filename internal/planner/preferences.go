package planner

import (
	"fmt"
	"slices"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

type PreferenceField string

const (
	FieldDayOff           PreferenceField = "dayOff"
	FieldPreferredOpening PreferenceField = "preferredOpening"
	FieldPreferredClosing PreferenceField = "preferredClosing"
)

// PreferenceSet holds per-barista wishes for one generation request,
// keyed by barista ID.
type PreferenceSet map[int64]*domain.Preference

// NewPreferenceSet seeds every barista with an unset day off and empty
// preferred-day sets. Calling it again yields a fresh set; a re-opened
// preferences dialog discards prior edits by design of the capture flow.
func NewPreferenceSet(baristas []*domain.Barista) PreferenceSet {
	ps := make(PreferenceSet, len(baristas))
	for _, b := range baristas {
		ps[b.ID] = domain.NewPreference()
	}
	return ps
}

// SetDayOff replaces one barista's day off. domain.DayOffUnset clears
// it. Two baristas may request the same day off; no cross-barista
// validation happens here.
func (ps PreferenceSet) SetDayOff(baristaID int64, day int) error {
	pref, ok := ps[baristaID]
	if !ok {
		return fmt.Errorf("unknown barista %d", baristaID)
	}
	if day != domain.DayOffUnset && (day < 0 || day > 6) {
		return fmt.Errorf("day %d out of range", day)
	}
	pref.DayOff = day
	return nil
}

// ReplaceDays totally replaces one preferred-day set.
func (ps PreferenceSet) ReplaceDays(baristaID int64, field PreferenceField, days []int) error {
	pref, ok := ps[baristaID]
	if !ok {
		return fmt.Errorf("unknown barista %d", baristaID)
	}
	for _, day := range days {
		if day < 0 || day > 6 {
			return fmt.Errorf("day %d out of range", day)
		}
	}

	replaced := append([]int{}, days...)
	switch field {
	case FieldPreferredOpening:
		pref.PreferredOpening = replaced
	case FieldPreferredClosing:
		pref.PreferredClosing = replaced
	default:
		return fmt.Errorf("field %q is not a day set", field)
	}
	return nil
}

// Validate checks an externally supplied set against the same bounds
// the setters enforce. Decoded request bodies bypass the setters, so
// they go through here before anything acts on them.
func (ps PreferenceSet) Validate() error {
	for id, pref := range ps {
		if pref == nil {
			return fmt.Errorf("barista %d has an empty preference record", id)
		}
		if pref.DayOff != domain.DayOffUnset && (pref.DayOff < 0 || pref.DayOff > 6) {
			return fmt.Errorf("barista %d: day off %d out of range", id, pref.DayOff)
		}
		for _, day := range pref.PreferredOpening {
			if day < 0 || day > 6 {
				return fmt.Errorf("barista %d: preferred opening day %d out of range", id, day)
			}
		}
		for _, day := range pref.PreferredClosing {
			if day < 0 || day > 6 {
				return fmt.Errorf("barista %d: preferred closing day %d out of range", id, day)
			}
		}
	}
	return nil
}

// ToggleDay adds the day to the preferred-day set if absent, removes it
// if present.
func (ps PreferenceSet) ToggleDay(baristaID int64, field PreferenceField, day int) error {
	pref, ok := ps[baristaID]
	if !ok {
		return fmt.Errorf("unknown barista %d", baristaID)
	}
	if day < 0 || day > 6 {
		return fmt.Errorf("day %d out of range", day)
	}

	var days *[]int
	switch field {
	case FieldPreferredOpening:
		days = &pref.PreferredOpening
	case FieldPreferredClosing:
		days = &pref.PreferredClosing
	default:
		return fmt.Errorf("field %q is not a day set", field)
	}

	if idx := slices.Index(*days, day); idx >= 0 {
		*days = slices.Delete(*days, idx, idx+1)
	} else {
		*days = append(*days, day)
	}
	return nil
}
