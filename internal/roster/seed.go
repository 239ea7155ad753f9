package roster

import (
	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

// SeedRoster is the deterministic fallback roster used when the barista
// source is unreachable or returns garbage. IDs are fixed so exports
// and grid sessions built on top of it stay stable across reloads.
func SeedRoster() []*domain.Barista {
	return []*domain.Barista{
		{
			ID:              1,
			FullName:        "Derya Yılmaz",
			EmploymentType:  domain.EmploymentFullTime,
			MaxWeeklyHours:  45,
			PreferredShifts: []domain.ShiftType{domain.ShiftMorning},
			Skills:          []string{"espresso", "latte-art"},
			IsActive:        true,
		},
		{
			ID:              2,
			FullName:        "Ömer Şahin",
			EmploymentType:  domain.EmploymentFullTime,
			MaxWeeklyHours:  45,
			PreferredShifts: []domain.ShiftType{domain.ShiftEvening},
			Skills:          []string{"bar", "cash"},
			IsActive:        true,
		},
		{
			ID:              3,
			FullName:        "Çağla Demir",
			EmploymentType:  domain.EmploymentFullTime,
			MaxWeeklyHours:  40,
			PreferredShifts: []domain.ShiftType{domain.ShiftMorning, domain.ShiftEvening},
			Skills:          []string{"espresso", "brew"},
			IsActive:        true,
		},
		{
			ID:              4,
			FullName:        "Emre Kaya",
			EmploymentType:  domain.EmploymentFullTime,
			MaxWeeklyHours:  45,
			PreferredShifts: []domain.ShiftType{domain.ShiftEvening},
			Skills:          []string{"bar"},
			IsActive:        true,
		},
		{
			ID:              5,
			FullName:        "Selin Öztürk",
			EmploymentType:  domain.EmploymentPartTime,
			MaxWeeklyHours:  25,
			PreferredShifts: []domain.ShiftType{domain.ShiftPartTime},
			Skills:          []string{"cash"},
			IsActive:        true,
		},
		{
			ID:              6,
			FullName:        "Barış Doğan",
			EmploymentType:  domain.EmploymentPartTime,
			MaxWeeklyHours:  20,
			PreferredShifts: []domain.ShiftType{domain.ShiftPartTime, domain.ShiftEvening},
			Skills:          []string{"brew"},
			IsActive:        true,
		},
	}
}
