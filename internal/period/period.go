// Package period resolves named date-range granularities (day, week,
// month, year, rolling twelve months, custom interval) into concrete
// inclusive ranges.  Weeks start on Monday.  All helpers are pure.
package period

import "time"

// Kind names a date-range granularity.
type Kind string

const (
	Day       Kind = "day"
	Week      Kind = "week"
	Month     Kind = "month"
	Year      Kind = "year"
	Rolling12 Kind = "12months"
	Custom    Kind = "custom"
)

// ParseKind maps a query string to a Kind.  Unknown values map to Day,
// matching the engine's "unrecognized period defaults to the day range"
// rule.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case Day, Week, Month, Year, Rolling12, Custom:
		return Kind(s)
	}
	return Day
}

// Range is an inclusive date interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// StartOfDay truncates t to 00:00:00 in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay clamps t to 23:59:59 in its location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Resolve computes the inclusive range for kinds anchored on a
// reference date: day, week (Monday through Sunday), month and year.
// Any other kind resolves to the anchor's day range.  This is the
// resolver used by the availability engine; the statistics layer uses
// ResolveAt, which also understands Rolling12 and Custom.
func Resolve(kind Kind, anchor time.Time) Range {
	switch kind {
	case Week:
		// Monday-start: Go's Weekday has Sunday == 0.
		offset := (int(anchor.Weekday()) + 6) % 7
		start := StartOfDay(anchor.AddDate(0, 0, -offset))
		return Range{Start: start, End: EndOfDay(start.AddDate(0, 0, 6))}
	case Month:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return Range{Start: first, End: EndOfDay(first.AddDate(0, 1, -1))}
	case Year:
		first := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		return Range{Start: first, End: EndOfDay(first.AddDate(1, 0, -1))}
	default:
		return Range{Start: StartOfDay(anchor), End: EndOfDay(anchor)}
	}
}

// ResolveAt computes the inclusive range for every kind.  Rolling12
// spans from the first day of the month eleven months before now
// through now; it is always relative to the current time, never to the
// anchor.  Custom truncates the supplied bounds to whole-day limits.
// A Custom kind with a nil or zero-bounded range falls back to the
// anchor's day range, since the behavior is undefined otherwise.
func ResolveAt(kind Kind, anchor, now time.Time, custom *Range) Range {
	switch kind {
	case Rolling12:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: first.AddDate(0, -11, 0), End: now}
	case Custom:
		if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
			return Resolve(Day, anchor)
		}
		return Range{Start: StartOfDay(custom.Start), End: EndOfDay(custom.End)}
	default:
		return Resolve(kind, anchor)
	}
}
