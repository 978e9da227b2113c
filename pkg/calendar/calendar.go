// Package calendar provides ISO-8601 week numbering and the mapping
// between the canonical French day tokens used as storage identity
// (Lundi..Vendredi) and their localized display names.
package calendar

import (
	"time"

	"go.uber.org/zap"
)

// Canonical day tokens. The database only ever stores these five
// values; weekend days are out of model scope.
const (
	Lundi    = "Lundi"
	Mardi    = "Mardi"
	Mercredi = "Mercredi"
	Jeudi    = "Jeudi"
	Vendredi = "Vendredi"
)

// Days lists the canonical tokens in week order.
var Days = []string{Lundi, Mardi, Mercredi, Jeudi, Vendredi}

// WeekNumber returns the ISO-8601 week number of t: week 1 is the
// week containing the year's first Thursday.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WeekYear returns the ISO week number of t together with the year
// that week belongs to (which can differ from t.Year() around new
// year).
func WeekYear(t time.Time) (week, year int) {
	year, week = t.ISOWeek()
	return week, year
}

// MondayOf returns the Monday of t's ISO week, truncated to midnight
// in t's location.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOfWeek returns the Monday of ISO week (year, week) at midnight
// in loc. January 4th is always in week 1, which anchors the search.
func MondayOfWeek(year, week int, loc *time.Location) time.Time {
	anchor := MondayOf(time.Date(year, time.January, 4, 0, 0, 0, 0, loc))
	return anchor.AddDate(0, 0, (week-1)*7)
}

// DayIndex returns the zero-based week-order index of a canonical day
// token, or -1 for anything else.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// displayNames maps locale -> canonical token -> display name. French
// is the identity locale.
var displayNames = map[string]map[string]string{
	"fr": {
		Lundi: Lundi, Mardi: Mardi, Mercredi: Mercredi, Jeudi: Jeudi, Vendredi: Vendredi,
	},
	"en": {
		Lundi: "Monday", Mardi: "Tuesday", Mercredi: "Wednesday", Jeudi: "Thursday", Vendredi: "Friday",
	},
	"de": {
		Lundi: "Montag", Mardi: "Dienstag", Mercredi: "Mittwoch", Jeudi: "Donnerstag", Vendredi: "Freitag",
	},
}

// canonicalNames is the reverse index: locale -> display name ->
// canonical token.
var canonicalNames = func() map[string]map[string]string {
	rev := make(map[string]map[string]string, len(displayNames))
	for locale, table := range displayNames {
		r := make(map[string]string, len(table))
		for canonical, display := range table {
			r[display] = canonical
		}
		rev[locale] = r
	}
	return rev
}()

// IsCanonical reports whether day is one of the five canonical tokens.
func IsCanonical(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// ToCanonicalDay converts a localized display name back to its
// canonical token. A value that is already canonical is returned
// unchanged. An unrecognized name is passed through unchanged, with
// a diagnostic so a missing
// locale table shows up in the logs instead of silently corrupting
// the day field.
func ToCanonicalDay(displayName, locale string, logger *zap.Logger) string {
	if IsCanonical(displayName) {
		return displayName
	}

	if table, ok := canonicalNames[locale]; ok {
		if canonical, ok := table[displayName]; ok {
			return canonical
		}
	}
	// Unknown locale: try every table before giving up.
	for _, table := range canonicalNames {
		if canonical, ok := table[displayName]; ok {
			return canonical
		}
	}

	if logger != nil {
		logger.Warn("jour non reconnu, valeur conservée telle quelle",
			zap.String("jour", displayName),
			zap.String("locale", locale),
		)
	}
	return displayName
}

// FromCanonicalDay converts a canonical token to its display name in
// the given locale, falling back to the token itself when no
// translation exists.
func FromCanonicalDay(canonicalDay, locale string) string {
	if table, ok := displayNames[locale]; ok {
		if display, ok := table[canonicalDay]; ok {
			return display
		}
	}
	return canonicalDay
}
