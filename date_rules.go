package rulekit

import "time"

// Date and time rules. Values may be time.Time or strings in RFC 3339,
// "2006-01-02T15:04:05", "2006-01-02 15:04:05", or "2006-01-02" form.
// These evaluate each wildcard-expanded element individually.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(value any, loc *time.Location) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, v, loc); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Date validates that the value parses as a date.
func Date(fields []string, opts ...Option) Rule {
	return newRule("date", fields, true,
		func(value any, _ bool) bool {
			_, ok := parseDate(value, time.UTC)
			return ok
		},
		func(field string) string { return field + " must be a valid date" },
		func(field string) string { return field + " must not be a valid date" },
		opts)
}

// BeforeToday validates that the value falls on a calendar day before
// today.
func BeforeToday(fields []string, opts ...Option) Rule {
	return newRule("before_today", fields, true,
		func(value any, _ bool) bool {
			t, ok := parseDate(value, time.Local)
			return ok && dayOf(t).Before(dayOf(time.Now()))
		},
		func(field string) string { return field + " must be a date before today" },
		func(field string) string { return field + " must not be a date before today" },
		opts)
}

// AfterToday validates that the value falls on a calendar day after today.
func AfterToday(fields []string, opts ...Option) Rule {
	return newRule("after_today", fields, true,
		func(value any, _ bool) bool {
			t, ok := parseDate(value, time.Local)
			return ok && dayOf(t).After(dayOf(time.Now()))
		},
		func(field string) string { return field + " must be a date after today" },
		func(field string) string { return field + " must not be a date after today" },
		opts)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsPast validates that the value is an instant before now, evaluated in
// UTC.
func IsPast(fields []string, opts ...Option) Rule {
	return isPastIn("is_past", fields, time.UTC, opts)
}

// IsPastIn is IsPast evaluated in the named IANA timezone. An unknown
// zone makes the predicate fail; the string grammar rejects it up front.
func IsPastIn(fields []string, tz string, opts ...Option) Rule {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = nil
	}
	return isPastIn("is_past", fields, loc, opts)
}

// IsFuture validates that the value is an instant after now, evaluated in
// UTC.
func IsFuture(fields []string, opts ...Option) Rule {
	return isFutureIn("is_future", fields, time.UTC, opts)
}

// IsFutureIn is IsFuture evaluated in the named IANA timezone.
func IsFutureIn(fields []string, tz string, opts ...Option) Rule {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = nil
	}
	return isFutureIn("is_future", fields, loc, opts)
}

func isPastIn(name string, fields []string, loc *time.Location, opts []Option) Rule {
	return newRule(name, fields, true,
		func(value any, _ bool) bool {
			if loc == nil {
				return false
			}
			t, ok := parseDate(value, loc)
			return ok && t.Before(time.Now().In(loc))
		},
		func(field string) string { return field + " must be a time in the past" },
		func(field string) string { return field + " must not be a time in the past" },
		opts)
}

func isFutureIn(name string, fields []string, loc *time.Location, opts []Option) Rule {
	return newRule(name, fields, true,
		func(value any, _ bool) bool {
			if loc == nil {
				return false
			}
			t, ok := parseDate(value, loc)
			return ok && t.After(time.Now().In(loc))
		},
		func(field string) string { return field + " must be a time in the future" },
		func(field string) string { return field + " must not be a time in the future" },
		opts)
}

// ZoneLookup reports whether a timezone name is known. The default
// consults the system timezone database via time.LoadLocation.
type ZoneLookup func(name string) bool

// Timezone validates that a string value names a known IANA timezone. A
// nil lookup falls back to the system timezone database.
func Timezone(fields []string, lookup ZoneLookup, opts ...Option) Rule {
	if lookup == nil {
		lookup = systemZoneLookup
	}
	return newRule("timezone", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			return ok && s != "" && lookup(s)
		},
		func(field string) string { return field + " must be a valid timezone" },
		func(field string) string { return field + " must not be a valid timezone" },
		opts)
}

func systemZoneLookup(name string) bool {
	// "Local" and "" load successfully but are not real zone names.
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
