package domain

import (
	"time"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
)

// Barista is a schedulable worker. Records are created by the owner or
// imported by the seeder; the scheduling core only reads them.
type Barista struct {
	ID              int64          `json:"id"`
	FullName        string         `json:"full_name"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	EmploymentType  EmploymentType `json:"employment_type"`
	MaxWeeklyHours  float64        `json:"max_weekly_hours"`
	PreferredShifts []ShiftType    `json:"preferred_shifts"`
	Skills          []string       `json:"skills"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	Version         int32          `json:"-"`
}
