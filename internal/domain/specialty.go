package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Specialty-specific validation errors
var (
	// ErrSpecialtyNameEmpty is returned when a specialty's name is empty.
	ErrSpecialtyNameEmpty = errors.New("specialty name cannot be empty")
)

// Specialty is a named medical specialty together with the weekdays on
// which it is offered. Days are stored lower-cased in insertion order and
// never change after the specialty is attached to a doctor.
type Specialty struct {
	Name string `json:"name"`
	days []string
}

// NewSpecialty creates a Specialty with the given name and weekday list.
// Days are lower-cased; duplicates are kept as supplied.
func NewSpecialty(name string, days []string) (*Specialty, error) {
	if name == "" {
		return nil, ErrSpecialtyNameEmpty
	}

	specialty := &Specialty{Name: name}
	for _, day := range days {
		specialty.days = append(specialty.days, strings.ToLower(strings.TrimSpace(day)))
	}

	return specialty, nil
}

// OfferedOn reports whether the specialty is offered on the given weekday.
// Matching is case-insensitive.
func (s *Specialty) OfferedOn(day string) bool {
	day = strings.ToLower(day)
	for _, d := range s.days {
		if d == day {
			return true
		}
	}
	return false
}

// Days returns a copy of the specialty's weekday list in insertion order.
func (s *Specialty) Days() []string {
	days := make([]string, len(s.days))
	copy(days, s.days)
	return days
}

func (s *Specialty) String() string {
	return fmt.Sprintf("%s (days: %s)", s.Name, strings.Join(s.days, ", "))
}
