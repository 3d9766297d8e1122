package domain

import (
	"strings"
	"time"
)

// weekdayLabels holds the canonical lower-case weekday tokens, Monday first,
// matching how the clinic states availability.
var weekdayLabels = [7]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekdayLabel returns the canonical label for t's weekday.
func WeekdayLabel(t time.Time) string {
	// time.Weekday counts from Sunday; the clinic counts from Monday.
	return weekdayLabels[(int(t.Weekday())+6)%7]
}

// IsWeekdayToken reports whether s names a weekday, ignoring case.
func IsWeekdayToken(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, label := range weekdayLabels {
		if s == label {
			return true
		}
	}
	return false
}

// WeekdayTokens returns the canonical weekday labels, Monday first.
func WeekdayTokens() []string {
	tokens := make([]string, len(weekdayLabels))
	copy(tokens, weekdayLabels[:])
	return tokens
}
