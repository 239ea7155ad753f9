package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
)

func testSchedule() *domain.WeeklySchedule {
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	return &domain.WeeklySchedule{
		ID:        1,
		WeekStart: weekStart,
		WeekEnd:   domain.WeekEnd(weekStart),
		Status:    domain.StatusPublished,
	}
}

func testBaristas() []*domain.Barista {
	return []*domain.Barista{
		{ID: 1, FullName: "Çağla Demir", EmploymentType: domain.EmploymentFullTime},
		{ID: 2, FullName: "Ömer Şahin", EmploymentType: domain.EmploymentFullTime},
		{ID: 3, FullName: "Selin Öztürk", EmploymentType: domain.EmploymentPartTime},
	}
}

func testShifts() []domain.Shift {
	return []domain.Shift{
		// deliberately unsorted, output order must not depend on input order
		{ScheduleID: 1, BaristaID: 2, DayOfWeek: 0, Type: domain.ShiftEvening, StartTime: "16:00", EndTime: "00:00", Hours: 8},
		{ScheduleID: 1, BaristaID: 1, DayOfWeek: 0, Type: domain.ShiftMorning, StartTime: "08:00", EndTime: "16:00", Hours: 8},
		{ScheduleID: 1, BaristaID: 1, DayOfWeek: 1, Type: domain.ShiftOff},
	}
}

func TestFileName(t *testing.T) {
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	got := FileName("shift_schedule", weekStart, "csv")
	if got != "shift_schedule_2025-01-06.csv" {
		t.Errorf("FileName = %q", got)
	}
}

func TestWriteCSVStartsWithBOM(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, testSchedule(), testShifts(), testBaristas()); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("CSV must start with a UTF-8 byte-order mark")
	}
}

func TestWriteCSVQuotesEveryField(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, testSchedule(), testShifts(), testBaristas()); err != nil {
		t.Fatal(err)
	}

	out := string(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	for i, line := range lines {
		for _, field := range strings.Split(line, ";") {
			if !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
				t.Fatalf("line %d field %q is not quoted", i+1, field)
			}
		}
	}
}

func TestWriteCSVContent(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, testSchedule(), testShifts(), testBaristas()); err != nil {
		t.Fatal(err)
	}

	// the dialect is still parseable as standard semicolon CSV, which
	// also proves Turkish names survive the round trip
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF})))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	header := records[0]
	want := []string{"Day", "Date", "Shift", "Time", "Barista", "Type"}
	for i := range want {
		if header[i] != want[i] {
			t.Fatalf("header = %v, want %v", header, want)
		}
	}

	// 1 header + day0: opening, closing, off row (Selin unscheduled)
	// + day1: off shift for Çağla, off row (Ömer, Selin)
	// + days 2..6: one off row each with all three baristas
	wantRows := 1 + 3 + 2 + 5
	if len(records) != wantRows {
		t.Fatalf("got %d rows, want %d", len(records), wantRows)
	}

	monday := records[1]
	if monday[0] != "Monday" || monday[1] != "06.01.2025" {
		t.Errorf("first data row = %v", monday)
	}
	if monday[2] != "Opening" || monday[4] != "Çağla Demir" || monday[3] != "08:00-16:00" {
		t.Errorf("opening must come before closing, got %v", monday)
	}

	tuesdayOff := records[4]
	if tuesdayOff[0] != "Tuesday" || tuesdayOff[2] != "Off" {
		t.Errorf("row 5 = %v, want Tuesday's off shift", tuesdayOff)
	}

	// the trailing off row lists every unscheduled barista
	mondayOff := records[3]
	if mondayOff[2] != "Off" || !strings.Contains(mondayOff[4], "Selin Öztürk") {
		t.Errorf("Monday off row = %v", mondayOff)
	}
}

func TestWriteCSVIsDeterministic(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	if err := WriteCSV(first, testSchedule(), testShifts(), testBaristas()); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(second, testSchedule(), testShifts(), testBaristas()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("repeated exports of the same snapshot must be identical")
	}
}

func TestWriteXLSXLayout(t *testing.T) {
	shifts := []domain.Shift{
		{ScheduleID: 1, BaristaID: 1, DayOfWeek: 0, Type: domain.ShiftMorning, StartTime: "08:00", EndTime: "16:00", Hours: 8},
		{ScheduleID: 1, BaristaID: 2, DayOfWeek: 0, Type: domain.ShiftEvening, StartTime: "16:00", EndTime: "00:00", Hours: 8},
		{ScheduleID: 1, BaristaID: 3, DayOfWeek: 0, Type: domain.ShiftEvening, StartTime: "17:00", EndTime: "01:00", Hours: 8},
	}

	buf := &bytes.Buffer{}
	if err := WriteXLSX(buf, testSchedule(), shifts, testBaristas()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	if err != nil {
		t.Fatal(err)
	}

	if rows[0][0] != "06.01.2025" {
		t.Errorf("row 1 col A = %q, want the Monday date", rows[0][0])
	}
	if rows[1][0] != "Monday" || rows[1][6] != "Sunday" {
		t.Errorf("row 2 = %v, want day names Monday..Sunday", rows[1])
	}

	if !strings.HasPrefix(rows[2][0], "Opening - Çağla Demir") {
		t.Errorf("first opening cell = %q", rows[2][0])
	}
	// the second opening slot stays rendered but empty
	if len(rows[3]) > 0 && rows[3][0] != "" {
		t.Errorf("second opening cell = %q, want empty", rows[3][0])
	}

	if !strings.HasPrefix(rows[4][0], "Closing - ") {
		t.Errorf("first closing cell = %q", rows[4][0])
	}
	// two closers placed, target is three
	if rows[6][0] != "Missing 1 closer(s)" {
		t.Errorf("shortfall cell = %q", rows[6][0])
	}
}

func TestWriteXLSXFreezesHeaderRows(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteXLSX(buf, testSchedule(), testShifts(), testBaristas()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	panes, err := f.GetPanes("Schedule")
	if err != nil {
		t.Fatal(err)
	}
	if !panes.Freeze || panes.YSplit != 2 {
		t.Errorf("panes = %+v, want the first two rows frozen", panes)
	}
}

func TestDayShiftsDoesNotMutateInput(t *testing.T) {
	shifts := testShifts()
	original := make([]domain.Shift, len(shifts))
	copy(original, shifts)

	idx := indexBaristas(testBaristas())
	_ = dayShifts(shifts, 0, idx)

	for i := range shifts {
		if shifts[i] != original[i] {
			t.Fatal("dayShifts reordered the caller's slice")
		}
	}
}

func TestShortfallMarkerPlacement(t *testing.T) {
	if got := planner.Shortfall(0); got != 3 {
		t.Errorf("Shortfall(0) = %d", got)
	}
	if got := planner.Shortfall(3); got != 0 {
		t.Errorf("Shortfall(3) = %d", got)
	}
	if got := planner.Shortfall(5); got != 0 {
		t.Errorf("Shortfall(5) = %d", got)
	}
}
