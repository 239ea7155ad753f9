package seed

import (
	"slices"
	"testing"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

func TestColumnIndexes(t *testing.T) {
	idx, err := columnIndexes([]string{" Full_Name ", "EMAIL", "employment_type", "extra"})
	if err != nil {
		t.Fatal(err)
	}
	if idx["full_name"] != 0 || idx["email"] != 1 {
		t.Errorf("indexes = %v", idx)
	}

	if _, err := columnIndexes([]string{"full_name", "email"}); err == nil {
		t.Error("a header without employment_type must be rejected")
	}
}

func TestBaristaFromRecord(t *testing.T) {
	idx, err := columnIndexes([]string{"full_name", "email", "employment_type", "max_weekly_hours", "skills"})
	if err != nil {
		t.Fatal(err)
	}

	b, err := baristaFromRecord([]string{"Gül Arslan", "gul@wodenstock.local", "part-time", "22.5", "espresso|register"}, idx)
	if err != nil {
		t.Fatal(err)
	}
	if b.FullName != "Gül Arslan" || b.EmploymentType != domain.EmploymentPartTime {
		t.Errorf("barista = %+v", b)
	}
	if b.MaxWeeklyHours != 22.5 {
		t.Errorf("max weekly hours = %v", b.MaxWeeklyHours)
	}
	if !slices.Equal(b.Skills, []string{"espresso", "register"}) {
		t.Errorf("skills = %v", b.Skills)
	}
	if !slices.Equal(b.PreferredShifts, []domain.ShiftType{domain.ShiftPartTime}) {
		t.Errorf("preferred shifts = %v", b.PreferredShifts)
	}
}

func TestBaristaFromRecordDefaults(t *testing.T) {
	idx, _ := columnIndexes([]string{"full_name", "employment_type"})

	b, err := baristaFromRecord([]string{"Okan Koç", "full-time"}, idx)
	if err != nil {
		t.Fatal(err)
	}
	if b.MaxWeeklyHours != 45 {
		t.Errorf("full-time default hours = %v, want 45", b.MaxWeeklyHours)
	}
	if len(b.Skills) != 0 {
		t.Errorf("skills = %v, want empty", b.Skills)
	}
}

func TestBaristaFromRecordRejectsBadRows(t *testing.T) {
	idx, _ := columnIndexes([]string{"full_name", "employment_type", "max_weekly_hours"})

	if _, err := baristaFromRecord([]string{"", "full-time", ""}, idx); err == nil {
		t.Error("empty name must be rejected")
	}
	if _, err := baristaFromRecord([]string{"A", "contractor", ""}, idx); err == nil {
		t.Error("unknown employment type must be rejected")
	}
	if _, err := baristaFromRecord([]string{"A", "full-time", "lots"}, idx); err == nil {
		t.Error("malformed hours must be rejected")
	}
}
