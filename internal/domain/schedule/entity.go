package schedule

import (
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var WeekdayValues = []string{
	string(Monday),
	string(Tuesday),
	string(Wednesday),
	string(Thursday),
	string(Friday),
	string(Saturday),
	string(Sunday),
}

// TimeWeekday maps w to the standard library weekday. Unknown values map to Sunday.
func (w Weekday) TimeWeekday() time.Weekday {
	switch w {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	case Saturday:
		return time.Saturday
	}
	return time.Sunday
}

// WorkSchedule is one weekday shift of an employee. Times are "HH:MM".
type WorkSchedule struct {
	ID         string
	EmployeeID string
	Weekday    Weekday
	StartTime  string
	EndTime    string
	BreakStart *string
	BreakEnd   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
