package planner

import (
	"fmt"
	"strings"
)

// DayNames indexes day-of-week labels, 0 = Monday.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ShiftTimeRanges is the fixed catalog of draggable shift-time tokens.
var ShiftTimeRanges = []string{
	"07:30-15:30",
	"08:00-16:00",
	"09:00-17:00",
	"12:00-20:00",
	"16:00-00:00",
	"17:00-01:00",
}

// DayEvents is the fixed catalog of draggable day-event tokens.
var DayEvents = []string{"Cam", "Bar"}

const (
	DefaultOpeningRange = "08:00-16:00"
	DefaultClosingRange = "16:00-00:00"
)

// ParseTimeRange splits a catalog label like "16:00-00:00" into its
// start and end times.
func ParseTimeRange(label string) (string, string, error) {
	start, end, ok := strings.Cut(label, "-")
	if !ok || len(start) != 5 || len(end) != 5 {
		return "", "", fmt.Errorf("invalid time range %q", label)
	}
	return start, end, nil
}
