package attendance

import (
	"time"
)

// Day is one attendance row per (employee, calendar date).
type Day struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}

// Action is a clock action. Its value is also the column it fills.
type Action string

const (
	ActionCheckIn    Action = "check_in"
	ActionBreakStart Action = "break_start"
	ActionBreakEnd   Action = "break_end"
	ActionCheckOut   Action = "check_out"
)

// Actions in the order they happen during a day.
var Actions = []Action{ActionCheckIn, ActionBreakStart, ActionBreakEnd, ActionCheckOut}

// ParseAction accepts both "check_in" and the URL form "check-in".
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s || a.Slug() == s {
			return a, nil
		}
	}
	return "", ErrInvalidAction
}

// Slug is the dashed form used in URLs.
func (a Action) Slug() string {
	switch a {
	case ActionCheckIn:
		return "check-in"
	case ActionBreakStart:
		return "break-start"
	case ActionBreakEnd:
		return "break-end"
	case ActionCheckOut:
		return "check-out"
	}
	return string(a)
}

// Get returns the timestamp the action records, nil when unset.
func (d Day) Get(a Action) *time.Time {
	switch a {
	case ActionCheckIn:
		return d.CheckIn
	case ActionBreakStart:
		return d.BreakStart
	case ActionBreakEnd:
		return d.BreakEnd
	case ActionCheckOut:
		return d.CheckOut
	}
	return nil
}

// Set stores ts in the field the action records.
func (d *Day) Set(a Action, ts time.Time) {
	switch a {
	case ActionCheckIn:
		d.CheckIn = &ts
	case ActionBreakStart:
		d.BreakStart = &ts
	case ActionBreakEnd:
		d.BreakEnd = &ts
	case ActionCheckOut:
		d.CheckOut = &ts
	}
}

// In returns a copy of d with every timestamp expressed in loc.
func (d Day) In(loc *time.Location) Day {
	conv := func(t *time.Time) *time.Time {
		if t == nil {
			return nil
		}
		v := t.In(loc)
		return &v
	}
	d.CheckIn = conv(d.CheckIn)
	d.BreakStart = conv(d.BreakStart)
	d.BreakEnd = conv(d.BreakEnd)
	d.CheckOut = conv(d.CheckOut)
	return d
}
