package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
)

const sheetName = "Schedule"

// WriteXLSX renders the dense spreadsheet layout: a date row, a day
// name row, then two opening rows and four closing rows per the
// coverage model. The second opening row stays empty when only one
// opener is placed, and days short of three closers get an explicit
// shortfall marker. The first two rows are frozen.
func WriteXLSX(w io.Writer, schedule *domain.WeeklySchedule, shifts []domain.Shift, baristas []*domain.Barista) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return err
	}
	openingStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFF2CC"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	closingStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	idx := indexBaristas(baristas)

	for day := 0; day < 7; day++ {
		col := day + 1

		dateCell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, dateCell, schedule.WeekStart.AddDate(0, 0, day).Format("02.01.2006")); err != nil {
			return err
		}

		nameCell, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, nameCell, planner.DayNames[day]); err != nil {
			return err
		}

		openings := []domain.Shift{}
		closings := []domain.Shift{}
		for _, shift := range dayShifts(shifts, day, idx) {
			switch shift.Type {
			case domain.ShiftMorning, domain.ShiftPartTime:
				openings = append(openings, shift)
			case domain.ShiftEvening:
				closings = append(closings, shift)
			}
		}

		for i := 0; i < planner.OpeningRows; i++ {
			cell, err := excelize.CoordinatesToCellName(col, 3+i)
			if err != nil {
				return err
			}
			// the second opening slot is rendered even when empty to
			// signal the two-person target
			value := ""
			if i < len(openings) {
				value = fmt.Sprintf("Opening - %s/%s", idx.name(openings[i].BaristaID), timeRange(openings[i]))
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}

		shortfall := planner.Shortfall(len(closings))
		for i := 0; i < planner.ClosingRows; i++ {
			cell, err := excelize.CoordinatesToCellName(col, 3+planner.OpeningRows+i)
			if err != nil {
				return err
			}
			value := ""
			switch {
			case i < len(closings):
				value = fmt.Sprintf("Closing - %s/%s", idx.name(closings[i].BaristaID), timeRange(closings[i]))
			case i == len(closings) && shortfall > 0:
				value = fmt.Sprintf("Missing %d closer(s)", shortfall)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(7)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 28); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"2", headerStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A3", fmt.Sprintf("%s%d", lastCol, 2+planner.OpeningRows), openingStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", 3+planner.OpeningRows), fmt.Sprintf("%s%d", lastCol, 2+planner.OpeningRows+planner.ClosingRows), closingStyle); err != nil {
		return err
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return err
	}

	return nil
}
