package timezone

import (
	"errors"
	"time"
)

// The shop operates in a single fixed time zone. Mexico City stopped
// observing DST in 2022, so the UTC offset is a constant -6 and local
// midnight is always 06:00 UTC of the same calendar day.
const (
	BusinessTimezone = "America/Mexico_City"
	utcOffsetHours   = 6
)

var ErrInvalidDate = errors.New("invalid date")

// NormalizeDate turns a caller-supplied date string into the instant that
// represents local midnight of that business day: 06:00:00.000 UTC with the
// date components taken from the input. Accepts "YYYY-MM-DD" or an ISO
// datetime whose date part is followed by a "T" or space separator. The
// operation is idempotent: re-normalizing the date of a normalized instant
// yields the same instant.
func NormalizeDate(s string) (time.Time, error) {
	if len(s) > 10 {
		if s[10] != 'T' && s[10] != ' ' {
			return time.Time{}, ErrInvalidDate
		}
		s = s[:10]
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(d.Year(), d.Month(), d.Day(), utcOffsetHours, 0, 0, 0, time.UTC), nil
}

// EndOfDayBound returns the exclusive upper bound covering the entire
// business day of s: local midnight of the following day. Used together
// with NormalizeDate(start) this expresses the inclusive calendar-day range
// [local-midnight-of-start, local-midnight-of-(end+1 day)).
func EndOfDayBound(s string) (time.Time, error) {
	d, err := NormalizeDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(24 * time.Hour), nil
}

// ValidClock reports whether s is a fixed-width "HH:MM" wall-clock string.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.FixedZone("UTC-6", -utcOffsetHours*3600)
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today is the normalized instant of the current business day.
func Today() time.Time {
	n := Now()
	return time.Date(n.Year(), n.Month(), n.Day(), utcOffsetHours, 0, 0, 0, time.UTC)
}

// MonthStart is the normalized instant of the first day of the current
// business month.
func MonthStart() time.Time {
	n := Now()
	return time.Date(n.Year(), n.Month(), 1, utcOffsetHours, 0, 0, 0, time.UTC)
}
