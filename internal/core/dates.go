package core

import "time"

// Site-wide date conventions. The site renders dates exactly two ways and
// never localizes.
const (
	monthYearLayout = "January 2006"
	longDateLayout  = "January 2, 2006"
)

// DisplayDate is either a structured date or an opaque pre-formatted
// string. Structured values render through the fixed site conventions;
// string values pass through untouched, byte for byte.
type DisplayDate struct {
	t      time.Time
	text   string
	isText bool
}

// DateOf wraps a structured date.
func DateOf(t time.Time) DisplayDate {
	return DisplayDate{t: t}
}

// TextDate wraps a caller-formatted string. No parsing or validation is
// attempted; the string is the display value.
func TextDate(s string) DisplayDate {
	return DisplayDate{text: s, isText: true}
}

// IsZero reports whether the value was never set. Optional dates use the
// zero DisplayDate to mean "absent".
func (d DisplayDate) IsZero() bool {
	return !d.isText && d.t.IsZero()
}

// MonthYear renders the value as "March 2025", or passes through a
// pre-formatted string unchanged.
func (d DisplayDate) MonthYear() string {
	if d.isText {
		return d.text
	}
	return d.t.Format(monthYearLayout)
}

// LongDate renders the value as "March 4, 2025", or passes through a
// pre-formatted string unchanged.
func (d DisplayDate) LongDate() string {
	if d.isText {
		return d.text
	}
	return d.t.Format(longDateLayout)
}

// FormatLongDate applies the long convention to a structured date.
func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// FormatDateRange joins a start date and an optional end date. An absent
// end date means the range is ongoing and only the start is shown.
func FormatDateRange(start, end DisplayDate) string {
	if end.IsZero() {
		return start.MonthYear()
	}
	return start.MonthYear() + " - " + end.MonthYear()
}
