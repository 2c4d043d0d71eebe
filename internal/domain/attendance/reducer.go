package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04:05"
	Placeholder = "-"
)

// Cutoff is the wall clock time after which a check-in counts as late.
type Cutoff struct {
	Hour   int
	Minute int
}

// DefaultCutoff is 09:00:00.
var DefaultCutoff = Cutoff{Hour: 9, Minute: 0}

// ParseCutoff parses an "HH:MM" cutoff.
func ParseCutoff(s string) (Cutoff, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Cutoff{}, fmt.Errorf("invalid cutoff %q: %w", s, err)
	}
	return Cutoff{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Cutoff) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MonthSummary is the reduction of a month of days for one or more employees.
type MonthSummary struct {
	TotalMinutes int
	TotalHours   float64
	LateCount    int
}

// minutesBetween returns whole minutes from earlier to later, truncated toward zero.
func minutesBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier) / time.Minute)
}

// WorkedMinutes is the check-in to check-out span minus a closed break.
// A day missing either end counts as zero. A break with only one end is
// not deducted. Out-of-order timestamps may give a negative result.
func WorkedMinutes(d Day) int {
	if d.CheckIn == nil || d.CheckOut == nil {
		return 0
	}

	duration := minutesBetween(*d.CheckOut, *d.CheckIn)
	if d.BreakStart != nil && d.BreakEnd != nil {
		duration -= minutesBetween(*d.BreakEnd, *d.BreakStart)
	}
	return duration
}

// IsLate reports whether the check-in time of day is after the cutoff on the
// check-in's own date. Fractions of a second are ignored.
func IsLate(d Day, cutoff Cutoff) bool {
	if d.CheckIn == nil {
		return false
	}
	in := *d.CheckIn
	limit := time.Date(in.Year(), in.Month(), in.Day(), cutoff.Hour, cutoff.Minute, 0, in.Nanosecond(), in.Location())
	return in.After(limit)
}

// HoursFromMinutes converts minutes to hours rounded half up to 2 decimals.
func HoursFromMinutes(minutes int) decimal.Decimal {
	hours := decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
	return hours.Shift(2).Add(decimal.New(5, -1)).Floor().Shift(-2)
}

// FormatHours renders minutes as hours with exactly two decimals.
func FormatHours(minutes int) string {
	return HoursFromMinutes(minutes).StringFixed(2)
}

// AggregateMonth sums worked hours and counts late arrivals. The caller
// decides which days belong to the month.
func AggregateMonth(days []Day, cutoff Cutoff) MonthSummary {
	var summary MonthSummary
	for _, d := range days {
		summary.TotalMinutes += WorkedMinutes(d)
		if IsLate(d, cutoff) {
			summary.LateCount++
		}
	}
	summary.TotalHours = HoursFromMinutes(summary.TotalMinutes).InexactFloat64()
	return summary
}

func formatClock(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format(ClockLayout)
}

// FormatRow returns date, check-in, break-start, break-end, check-out and
// worked hours, in that order.
func FormatRow(d Day) []string {
	return []string{
		d.Date.Format(DateLayout),
		formatClock(d.CheckIn),
		formatClock(d.BreakStart),
		formatClock(d.BreakEnd),
		formatClock(d.CheckOut),
		FormatHours(WorkedMinutes(d)),
	}
}

// ParseRow reads back a row produced by FormatRow. Timestamps are placed on
// the row's date in loc and keep second precision.
func ParseRow(row []string, loc *time.Location) (Day, error) {
	if len(row) < 5 {
		return Day{}, fmt.Errorf("row has %d fields, want at least 5", len(row))
	}

	date, err := time.ParseInLocation(DateLayout, row[0], loc)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", row[0], err)
	}

	d := Day{Date: date}
	for i, a := range Actions {
		field := row[i+1]
		if field == Placeholder {
			continue
		}
		clock, err := time.Parse(ClockLayout, field)
		if err != nil {
			return Day{}, fmt.Errorf("invalid %s %q: %w", a, field, err)
		}
		d.Set(a, time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, loc))
	}
	return d, nil
}
