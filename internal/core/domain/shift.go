package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeOfDayPattern matches a 24-hour clock HH:mm string. A single-digit hour
// is accepted ("9:05"), a single-digit minute is not ("9:5").
var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether v is a well-formed HH:mm time-of-day.
func ValidTimeOfDay(v string) bool {
	return timeOfDayPattern.MatchString(v)
}

// CombineDateTime merges a calendar date with an HH:mm time-of-day into a
// single instant, zeroing seconds and sub-second components.
func CombineDateTime(date time.Time, timeOfDay string) (time.Time, error) {
	if !ValidTimeOfDay(timeOfDay) {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid time (HH:mm)", ErrValidation, timeOfDay)
	}
	sep := strings.IndexByte(timeOfDay, ':')
	hour, _ := strconv.Atoi(timeOfDay[:sep])
	minute, _ := strconv.Atoi(timeOfDay[sep+1:])
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// Shift is a staffing requirement for a time window at a location.
// CreatedBy records the account that created it; it carries no weight in
// access decisions.
type Shift struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	RequiredStaff int       `json:"required_staff"`
	Location      string    `json:"location"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks field-level invariants. The window is not required to end
// after it starts, and overlapping shifts at the same location are allowed;
// callers needing either rule compare the derived instants themselves.
func (s *Shift) Validate() error {
	if s.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !ValidTimeOfDay(s.StartTime) {
		return fmt.Errorf("%w: start_time %q is not a valid time (HH:mm)", ErrValidation, s.StartTime)
	}
	if !ValidTimeOfDay(s.EndTime) {
		return fmt.Errorf("%w: end_time %q is not a valid time (HH:mm)", ErrValidation, s.EndTime)
	}
	if s.RequiredStaff < 1 {
		return fmt.Errorf("%w: required_staff must be at least 1", ErrValidation)
	}
	if s.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	return nil
}

// StartInstant returns the shift date combined with StartTime.
func (s *Shift) StartInstant() (time.Time, error) {
	return CombineDateTime(s.Date, s.StartTime)
}

// EndInstant returns the shift date combined with EndTime.
func (s *Shift) EndInstant() (time.Time, error) {
	return CombineDateTime(s.Date, s.EndTime)
}
