// Package period resolves named reporting periods to concrete date
// ranges anchored on an evaluation instant.
package period

import (
	"fmt"
	"time"
)

// Token is a named, enumerated date-range shorthand.
type Token string

const (
	Today        Token = "today"
	Last7Days    Token = "last7days"
	Last30Days   Token = "last30days"
	CurrentMonth Token = "currentMonth"
	CurrentYear  Token = "currentYear"
)

// DefaultToken is the fallback for unknown period tokens; resolution
// never faults.
const DefaultToken = CurrentMonth

// Tokens lists every known token in menu order.
func Tokens() []Token {
	return []Token{Today, Last7Days, Last30Days, CurrentMonth, CurrentYear}
}

// Range is a closed [Start, End] interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, both ends
// inclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ExpandToDay widens the range to whole calendar days: Start moves to
// midnight, End to the last nanosecond of its day. Callers that want
// "today" to mean the calendar day rather than the exact instant apply
// this before filtering.
func (r Range) ExpandToDay() Range {
	return Range{
		Start: time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location()),
		End:   time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), r.End.Location()),
	}
}

// Label renders the range for display, e.g. "2025-03-03 - 2025-03-10".
func (r Range) Label() string {
	return fmt.Sprintf("%s - %s", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
}

// Resolve maps a token to a concrete range anchored on now. Today keeps
// both ends at the exact instant; the week/month tokens subtract whole
// days; currentMonth and currentYear span the full calendar unit
// containing now. Unknown tokens resolve as DefaultToken.
func Resolve(token Token, now time.Time) Range {
	switch token {
	case Today:
		return Range{Start: now, End: now}
	case Last7Days:
		return Range{Start: now.AddDate(0, 0, -7), End: now}
	case Last30Days:
		return Range{Start: now.AddDate(0, 0, -30), End: now}
	case CurrentYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
	case CurrentMonth:
		return monthOf(now)
	default:
		return monthOf(now)
	}
}

func monthOf(now time.Time) Range {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Range{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// Spanish (es-AR) month abbreviations, as the panel renders them. The
// standard library only formats English month names and x/text does not
// expose CLDR month data, so the table lives here.
var monthAbbr = [...]string{
	time.January:   "ene",
	time.February:  "feb",
	time.March:     "mar",
	time.April:     "abr",
	time.May:       "may",
	time.June:      "jun",
	time.July:      "jul",
	time.August:    "ago",
	time.September: "sep",
	time.October:   "oct",
	time.November:  "nov",
	time.December:  "dic",
}

// MonthLabel renders the bucket label for a timestamp, e.g. "ene 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbr[t.Month()], t.Year())
}
