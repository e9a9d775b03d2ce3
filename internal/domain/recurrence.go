package domain

import (
	"fmt"
	"time"
)

// RecurrenceConfig describes how a template item regenerates child items on a
// schedule. It is embedded in PlanningItem, not persisted separately.
//
// Days is meaningful only for weekly and biweekly recurrence. A config loaded
// with stale days under another type is tolerated; consumers must ignore the
// days rather than fail.
type RecurrenceConfig struct {
	Type    RecurrenceType
	Days    []time.Weekday
	Time    string // "HH:MM" local time of day, empty for none
	EndDate *time.Time
}

// Enabled reports whether the config describes any recurrence at all.
func (r RecurrenceConfig) Enabled() bool {
	return r.Type != "" && r.Type != RecurrenceNone
}

// UsesDays reports whether the weekday set applies to this recurrence type.
func (r RecurrenceConfig) UsesDays() bool {
	return r.Type == RecurrenceWeekly || r.Type == RecurrenceBiweekly
}

// Normalize enforces the recurrence invariants: disabling clears every field
// so that no partial day/time configuration survives, and a weekday set under
// a type that ignores it is dropped.
func (r RecurrenceConfig) Normalize() RecurrenceConfig {
	if !r.Enabled() {
		return RecurrenceConfig{Type: RecurrenceNone}
	}
	if !r.UsesDays() {
		r.Days = nil
	}
	return r
}

// Validate checks the config for values that must be rejected on input.
// A previously saved past EndDate still loads; only new input is constrained.
func (r RecurrenceConfig) Validate(now time.Time) error {
	if r.Type != "" && !ValidRecurrenceTypes[string(r.Type)] {
		return fmt.Errorf("unknown recurrence type %q", r.Type)
	}
	if r.Time != "" {
		if _, err := time.Parse("15:04", r.Time); err != nil {
			return fmt.Errorf("recurrence time %q: want HH:MM", r.Time)
		}
	}
	if r.EndDate != nil && r.EndDate.Before(now.Truncate(24*time.Hour)) {
		return fmt.Errorf("recurrence end date %s is in the past", r.EndDate.Format("2006-01-02"))
	}
	return nil
}

// timeOfDay returns the configured hour and minute, defaulting to 09:00.
func (r RecurrenceConfig) timeOfDay() (hour, min int) {
	t, err := time.Parse("15:04", r.Time)
	if err != nil {
		return 9, 0
	}
	return t.Hour(), t.Minute()
}

// NextOccurrence returns the first occurrence strictly after the given
// instant, or nil when the recurrence is disabled or has ended.
func (r RecurrenceConfig) NextOccurrence(after time.Time) *time.Time {
	if !r.Enabled() {
		return nil
	}
	hour, min := r.timeOfDay()
	day := time.Date(after.Year(), after.Month(), after.Day(), hour, min, 0, 0, after.Location())

	var next time.Time
	switch r.Type {
	case RecurrenceDaily:
		next = day
		if !next.After(after) {
			next = next.AddDate(0, 0, 1)
		}

	case RecurrenceWeekly, RecurrenceBiweekly:
		days := r.Days
		if len(days) == 0 {
			days = []time.Weekday{after.Weekday()}
		}
		wanted := make(map[time.Weekday]bool, len(days))
		for _, d := range days {
			wanted[d] = true
		}
		next = day
		// An anchor that itself lands on an occurrence (the last generated
		// one) starts the next fortnight for biweekly; a mid-cycle anchor
		// takes the first match.
		if r.Type == RecurrenceBiweekly && wanted[after.Weekday()] && !day.After(after) {
			next = day.AddDate(0, 0, 14)
		}
		for i := 0; i < 15; i++ {
			if wanted[next.Weekday()] && next.After(after) {
				break
			}
			next = next.AddDate(0, 0, 1)
		}

	case RecurrenceMonthly:
		next = day
		if !next.After(after) {
			next = next.AddDate(0, 1, 0)
		}

	default:
		return nil
	}

	if r.EndDate != nil {
		end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(),
			23, 59, 59, 0, next.Location())
		if next.After(end) {
			return nil
		}
	}
	return &next
}
