package domain

// DayOffUnset is the sentinel for "no day off requested".
const DayOffUnset = -1

// Preference captures one barista's wishes for a single generation
// request. Preferences are transient and never persisted.
type Preference struct {
	DayOff           int   `json:"dayOff"`
	PreferredOpening []int `json:"preferredOpening"`
	PreferredClosing []int `json:"preferredClosing"`
}

func NewPreference() *Preference {
	return &Preference{
		DayOff:           DayOffUnset,
		PreferredOpening: []int{},
		PreferredClosing: []int{},
	}
}
