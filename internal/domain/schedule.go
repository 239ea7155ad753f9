package domain

import (
	"fmt"
	"time"
)

type ShiftType string

const (
	ShiftMorning  ShiftType = "morning"
	ShiftEvening  ShiftType = "evening"
	ShiftOff      ShiftType = "off"
	ShiftPartTime ShiftType = "part-time"
)

type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "draft"
	StatusPublished ScheduleStatus = "published"
	StatusArchived  ScheduleStatus = "archived"
)

// Shift is one barista's assignment inside a weekly schedule.
// DayOfWeek is 0 = Monday ... 6 = Sunday.
type Shift struct {
	ID         int64     `json:"id"`
	ScheduleID int64     `json:"schedule_id"`
	BaristaID  int64     `json:"barista_id"`
	DayOfWeek  int       `json:"day_of_week"`
	Type       ShiftType `json:"shift_type"`
	StartTime  string    `json:"start_time,omitempty"` // "15:04"
	EndTime    string    `json:"end_time,omitempty"`
	Hours      float64   `json:"hours"`
	Note       string    `json:"note,omitempty"`
}

type WeeklySchedule struct {
	ID        int64          `json:"id"`
	WeekStart time.Time      `json:"week_start"`
	WeekEnd   time.Time      `json:"week_end"`
	Status    ScheduleStatus `json:"status"`
	CreatedBy string         `json:"created_by"`
	Notes     string         `json:"notes,omitempty"`
	Shifts    []Shift        `json:"shifts,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Version   int32          `json:"-"`
}

// WeekStart returns the Monday on or before t, truncated to midnight UTC.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday of the week that starts on weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// ShiftHours computes the duration of a "15:04" time range in hours.
// Ranges that end at or before their start wrap past midnight, so
// "16:00-00:00" is 8 hours.
func ShiftHours(startTime, endTime string) (float64, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q", startTime)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q", endTime)
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return end.Sub(start).Hours(), nil
}
