package reservation

import "time"

// Overlaps reports whether two slots of the same room intersect.
// Slots are half-open, so a slot ending at 10:00 and one starting at 10:00 do not overlap.
func Overlaps(a, b Slot) bool {
	if !a.Date.Equal(b.Date) {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// IsPast reports whether date+start is at or before now. The wall-clock values are
// read in now's location.
func IsPast(date Date, start TimeOfDay, now time.Time) bool {
	return !date.At(start, now.Location()).After(now)
}

func IsOrdered(start, end TimeOfDay) bool {
	return start.Before(end)
}
