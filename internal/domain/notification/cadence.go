// internal/domain/notification/cadence.go
package notification

import "time"

// Near-zone thresholds and repeat intervals, in days. Inside the near zone a
// reminder fires on every run; outside it, only when the repeat interval has
// elapsed since the last send of the same kind for the same subject.
const (
	DueNearZoneDays     = 5
	OverdueNearZoneDays = 7
	BillingNearZoneDays = 3

	RepeatIntervalDays        = 3
	PartialRepeatIntervalDays = 7
)

// Decide reports whether a reminder of the given kind should be sent now.
// dayOffset is the obligation's trigger date minus today, in civil days.
// lastSentAt is the most recent history timestamp for (subject, kind), or nil
// when no history exists.
func Decide(kind Kind, dayOffset int, lastSentAt *time.Time, now time.Time, loc *time.Location) bool {
	switch kind {
	case KindDue:
		if dayOffset < 0 {
			return false
		}
		if dayOffset <= DueNearZoneDays {
			return true
		}
		return repeatElapsed(lastSentAt, now, loc, RepeatIntervalDays)
	case KindOverdue:
		if dayOffset >= 0 {
			return false
		}
		if -dayOffset <= OverdueNearZoneDays {
			return true
		}
		return repeatElapsed(lastSentAt, now, loc, RepeatIntervalDays)
	case KindBilling:
		if abs(dayOffset) <= BillingNearZoneDays {
			return true
		}
		return repeatElapsed(lastSentAt, now, loc, RepeatIntervalDays)
	case KindPartial:
		// No near zone: first touch fires, then a weekly repeat. The caller
		// gates on the partial-balance condition and the alert threshold.
		return repeatElapsed(lastSentAt, now, loc, PartialRepeatIntervalDays)
	default:
		return false
	}
}

// repeatElapsed implements the far-zone rule: fire on first touch, otherwise
// only when at least intervalDays civil days have passed since the last send.
func repeatElapsed(lastSentAt *time.Time, now time.Time, loc *time.Location, intervalDays int) bool {
	if lastSentAt == nil {
		return true
	}
	return CivilDaysBetween(*lastSentAt, now, loc) >= intervalDays
}

// CivilDaysBetween returns b minus a in calendar days, truncating both
// timestamps to dates in loc first. Time-of-day variance between runs never
// affects the result.
func CivilDaysBetween(a, b time.Time, loc *time.Location) int {
	a = a.In(loc)
	b = b.In(loc)
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}

// BillingDayOffset returns the day offset to the card's billing occurrence
// nearest to today. Candidates from the previous, current and next month are
// considered, with the billing day clamped to the month's length, so the
// near-zone window works across month boundaries.
func BillingDayOffset(now time.Time, billingDay int, loc *time.Location) int {
	today := now.In(loc)
	best := 0
	bestAbs := -1
	for m := -1; m <= 1; m++ {
		firstOfMonth := time.Date(today.Year(), today.Month()+time.Month(m), 1, 0, 0, 0, 0, loc)
		day := billingDay
		if last := daysInMonth(firstOfMonth); day > last {
			day = last
		}
		occurrence := time.Date(firstOfMonth.Year(), firstOfMonth.Month(), day, 0, 0, 0, 0, loc)
		offset := CivilDaysBetween(today, occurrence, loc)
		if bestAbs < 0 || abs(offset) < bestAbs {
			best = offset
			bestAbs = abs(offset)
		}
	}
	return best
}

func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return firstOfNext.AddDate(0, 0, -1).Day()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
