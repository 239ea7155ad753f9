package planner

// Daily coverage targets. These are a display contract: the UI and the
// exports flag understaffed days but never block saving them.
const (
	// OpeningTarget is the wanted opener count; the second slot is
	// always rendered, empty if unfilled.
	OpeningTarget = 2
	// ClosingTarget is the wanted closer count.
	ClosingTarget = 3

	// Row counts of the styled spreadsheet layout.
	OpeningRows = 2
	ClosingRows = 4
)

type Coverage struct {
	Openings         int `json:"openings"`
	Closings         int `json:"closings"`
	OpeningShortfall int `json:"opening_shortfall"`
	ClosingShortfall int `json:"closing_shortfall"`
}

// Shortfall returns how many closers a day is missing, zero when the
// target is met.
func Shortfall(closings int) int {
	if closings >= ClosingTarget {
		return 0
	}
	return ClosingTarget - closings
}

// Coverage summarizes one grid day against the targets.
func (g *Grid) Coverage(day int) Coverage {
	if !validDay(day) {
		return Coverage{}
	}

	c := Coverage{
		Openings: len(g.Days[day].Openings),
		Closings: len(g.Days[day].Closings),
	}
	if c.Openings < OpeningTarget {
		c.OpeningShortfall = OpeningTarget - c.Openings
	}
	c.ClosingShortfall = Shortfall(c.Closings)
	return c
}
