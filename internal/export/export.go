package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// FileName builds "<prefix>_<week_start>.<ext>".
func FileName(prefix string, weekStart time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, weekStart.Format("2006-01-02"), ext)
}

var shiftLabels = map[domain.ShiftType]string{
	domain.ShiftMorning:  "Opening",
	domain.ShiftPartTime: "Part-time",
	domain.ShiftEvening:  "Closing",
	domain.ShiftOff:      "Off",
}

// opening-before-closing within a day
var shiftOrder = map[domain.ShiftType]int{
	domain.ShiftMorning:  0,
	domain.ShiftPartTime: 1,
	domain.ShiftEvening:  2,
	domain.ShiftOff:      3,
}

type nameIndex map[int64]*domain.Barista

func indexBaristas(baristas []*domain.Barista) nameIndex {
	idx := make(nameIndex, len(baristas))
	for _, b := range baristas {
		idx[b.ID] = b
	}
	return idx
}

func (idx nameIndex) name(id int64) string {
	if b, ok := idx[id]; ok {
		return b.FullName
	}
	return fmt.Sprintf("#%d", id)
}

func (idx nameIndex) employmentType(id int64) string {
	if b, ok := idx[id]; ok {
		return string(b.EmploymentType)
	}
	return "-"
}

// dayShifts returns the day's shifts ordered opening-before-closing and
// then by barista name, so output never depends on the order the source
// delivered them in. The input slice is not touched.
func dayShifts(shifts []domain.Shift, day int, idx nameIndex) []domain.Shift {
	selected := []domain.Shift{}
	for _, s := range shifts {
		if s.DayOfWeek == day {
			selected = append(selected, s)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if shiftOrder[selected[i].Type] != shiftOrder[selected[j].Type] {
			return shiftOrder[selected[i].Type] < shiftOrder[selected[j].Type]
		}
		return idx.name(selected[i].BaristaID) < idx.name(selected[j].BaristaID)
	})
	return selected
}

// unscheduled lists baristas with no shift at all on the given day, in
// roster order.
func unscheduled(shifts []domain.Shift, day int, baristas []*domain.Barista) []*domain.Barista {
	working := map[int64]bool{}
	for _, s := range shifts {
		if s.DayOfWeek == day {
			working[s.BaristaID] = true
		}
	}

	off := []*domain.Barista{}
	for _, b := range baristas {
		if !working[b.ID] {
			off = append(off, b)
		}
	}
	return off
}

func timeRange(s domain.Shift) string {
	if s.StartTime == "" || s.EndTime == "" {
		return "-"
	}
	return s.StartTime + "-" + s.EndTime
}
