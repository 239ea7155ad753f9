package export

import (
	"io"
	"strings"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
)

// The CSV dialect matches what the consuming spreadsheet tool expects:
// UTF-8 with a byte-order mark so Turkish names render correctly,
// semicolon delimiters, and every field quoted. encoding/csv only
// quotes on demand, so rows are assembled by hand.

var csvHeader = []string{"Day", "Date", "Shift", "Time", "Barista", "Type"}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	_, err := io.WriteString(w, strings.Join(quoted, ";")+"\r\n")
	return err
}

// WriteCSV renders one schedule snapshot: a header row, one row per
// (day, shift) pair ordered opening-before-closing, and one trailing
// off row per day listing everyone without a shift that day. The
// snapshot is read-only; repeated calls produce identical bytes.
func WriteCSV(w io.Writer, schedule *domain.WeeklySchedule, shifts []domain.Shift, baristas []*domain.Barista) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}

	idx := indexBaristas(baristas)

	for day := 0; day < 7; day++ {
		date := schedule.WeekStart.AddDate(0, 0, day).Format("02.01.2006")

		for _, shift := range dayShifts(shifts, day, idx) {
			row := []string{
				planner.DayNames[day],
				date,
				shiftLabels[shift.Type],
				timeRange(shift),
				idx.name(shift.BaristaID),
				idx.employmentType(shift.BaristaID),
			}
			if err := writeRow(w, row); err != nil {
				return err
			}
		}

		off := unscheduled(shifts, day, baristas)
		if len(off) == 0 {
			continue
		}
		names := make([]string, len(off))
		for i, b := range off {
			names[i] = b.FullName
		}
		row := []string{planner.DayNames[day], date, "Off", "-", strings.Join(names, ", "), "-"}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}

	return nil
}
