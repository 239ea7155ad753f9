package planner

import (
	"fmt"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

// Resolver maps display names back to baristas. The grid references
// workers by name; generated shifts reference them by ID, so compiling
// is where the two identity schemes meet.
type Resolver interface {
	BaristaByName(name string) (*domain.Barista, bool)
}

var slotShiftTypes = map[SlotKind]domain.ShiftType{
	SlotOpenings: domain.ShiftMorning,
	SlotClosings: domain.ShiftEvening,
	SlotOff:      domain.ShiftOff,
}

var slotDefaultRanges = map[SlotKind]string{
	SlotOpenings: DefaultOpeningRange,
	SlotClosings: DefaultClosingRange,
}

// Compile turns the grid into shift entities for an explicit publish. A
// name that does not resolve to exactly one barista aborts the whole
// compilation; nothing is partially committed.
func (g *Grid) Compile(scheduleID int64, resolver Resolver) ([]domain.Shift, error) {
	shifts := []domain.Shift{}

	for day := range g.Days {
		for _, slot := range []SlotKind{SlotOpenings, SlotClosings, SlotOff} {
			for _, name := range *g.Days[day].list(slot) {
				barista, ok := resolver.BaristaByName(name)
				if !ok {
					return nil, fmt.Errorf("assignment %q on %s does not resolve to a known barista", name, DayNames[day])
				}

				shift := domain.Shift{
					ScheduleID: scheduleID,
					BaristaID:  barista.ID,
					DayOfWeek:  day,
					Type:       slotShiftTypes[slot],
				}

				if slot != SlotOff {
					label := slotDefaultRanges[slot]
					if assigned, ok := g.TimeLabels[name][slot]; ok {
						label = assigned
					}
					start, end, err := ParseTimeRange(label)
					if err != nil {
						return nil, err
					}
					hours, err := domain.ShiftHours(start, end)
					if err != nil {
						return nil, err
					}
					shift.StartTime = start
					shift.EndTime = end
					shift.Hours = hours
				}

				shifts = append(shifts, shift)
			}
		}
	}

	return shifts, nil
}
