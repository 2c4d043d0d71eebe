package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("work schedule not found")
	ErrWeekdayTaken     = errors.New("employee already has a schedule for this weekday")
)
