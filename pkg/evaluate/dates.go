package evaluate

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts a plain calendar date (read as UTC) or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, value)
}

// endOfDay returns the last instant of t's calendar day in t's zone.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999000, t.Location())
}

// IsOverdue reports whether the end of target's calendar day is strictly before now.
func IsOverdue(target, now time.Time) bool {
	return endOfDay(target).Before(now)
}

// DaysOverdue is the calendar-day difference between now (UTC) and target.
// It is 0 when target is not overdue and at least 1 when it is.
func DaysOverdue(target, now time.Time) int {
	if !IsOverdue(target, now) {
		return 0
	}

	ny, nm, nd := now.UTC().Date()
	ty, tm, td := target.Date()
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	targetDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	days := int(nowDay.Sub(targetDay).Hours() / 24)
	if days < 1 {
		// An offset far ahead of UTC can end its day while UTC is still on it.
		days = 1
	}
	return days
}

// DaysInactive is the number of whole 24h periods between updated and now.
func DaysInactive(updated, now time.Time) int {
	return int(math.Floor(now.Sub(updated).Hours() / 24))
}
