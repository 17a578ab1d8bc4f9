package reservation

import (
	"fmt"
	"time"

	"room-booking/internal/pkg/errs"
)

const (
	MaxReserverNameLength = 255
	MaxNotesLength        = 500

	dateLayout       = "2006-01-02"
	secondsPerDay    = 24 * 60 * 60
	timeLayoutShort  = "15:04"
	timeLayoutSecond = "15:04:05"
)

// ID is assigned by the store on commit. Zero means not yet admitted.
type ID int64

// Date is a calendar day with no zone attached.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.Wrapf(errs.ErrInvalidDate, "parse %q", s)
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// At combines the date with a time of day in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, tod.seconds, 0, loc)
}

// TimeOfDay is a wall-clock time in whole seconds since midnight.
type TimeOfDay struct {
	seconds int
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, errs.Wrapf(errs.ErrInvalidTimeOfDay, "%02d:%02d:%02d", hour, minute, second)
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

// MustTimeOfDay panics on an out-of-range value; for fixtures and constants.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute, 0)
	if err != nil {
		panic(err)
	}
	return tod
}

func TimeOfDayFromSeconds(seconds int) (TimeOfDay, error) {
	if seconds < 0 || seconds >= secondsPerDay {
		return TimeOfDay{}, errs.Wrapf(errs.ErrInvalidTimeOfDay, "%d seconds", seconds)
	}
	return TimeOfDay{seconds: seconds}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{timeLayoutShort, timeLayoutSecond} {
		if len(s) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			break
		}
		return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
	}
	return TimeOfDay{}, errs.Wrapf(errs.ErrInvalidTimeOfDay, "parse %q", s)
}

func (t TimeOfDay) Seconds() int { return t.seconds }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.seconds < other.seconds }

func (t TimeOfDay) String() string {
	h := t.seconds / 3600
	m := (t.seconds % 3600) / 60
	s := t.seconds % 60
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Slot is the half-open interval [Start, End) on Date.
type Slot struct {
	Date  Date
	Start TimeOfDay
	End   TimeOfDay
}

func (s Slot) String() string {
	return fmt.Sprintf("%s [%s,%s)", s.Date, s.Start, s.End)
}
