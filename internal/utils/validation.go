package utils

import (
	"fmt"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

// ValidateShifts checks a compiled shift list right before it is
// committed: every shift must fall inside the week and working shifts
// need a well-formed time range.
func ValidateShifts(shifts []domain.Shift) error {
	for i, shift := range shifts {
		if shift.DayOfWeek < 0 || shift.DayOfWeek > 6 {
			return fmt.Errorf("shift %d has day %d out of range", i, shift.DayOfWeek)
		}
		if shift.Type == domain.ShiftOff {
			continue
		}
		if _, err := time.Parse("15:04", shift.StartTime); err != nil {
			return fmt.Errorf("shift %d has a malformed start time %q", i, shift.StartTime)
		}
		if _, err := time.Parse("15:04", shift.EndTime); err != nil {
			return fmt.Errorf("shift %d has a malformed end time %q", i, shift.EndTime)
		}
	}
	return nil
}
