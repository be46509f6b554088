package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoWorkingHours means the professional never configured working hours.
// Callers render this as "no availability", not as a server error.
var ErrNoWorkingHours = errors.New("working hours not configured")

const (
	defaultSlotDuration   = 30
	defaultMaxAdvanceDays = 30
)

// Policy is the validated form of a professional's booking settings blob.
// All slot arithmetic runs against a Policy, never against the raw JSONB.
type Policy struct {
	WorkingDays         []time.Weekday // empty = every day bookable
	WorkingHoursStart   string         // "HH:MM"
	WorkingHoursEnd     string         // "HH:MM", exclusive
	SlotDurationMinutes int
	MinAdvanceHours     int
	MaxAdvanceDays      int
}

// ResolvePolicy validates raw booking settings into a Policy.
//
// Working hours are never fabricated: when start or end is unset the
// resolver returns ErrNoWorkingHours. Slot duration falls back from the
// settings value to the professional's generic appointment duration, then
// to 30 minutes. Malformed values are rejected here so they never reach
// the generators.
func ResolvePolicy(settings map[string]interface{}, defaultDuration int) (Policy, error) {
	start, startSet, err := clockField(settings, "working_hours_start")
	if err != nil {
		return Policy{}, err
	}
	end, endSet, err := clockField(settings, "working_hours_end")
	if err != nil {
		return Policy{}, err
	}
	if !startSet || !endSet {
		return Policy{}, ErrNoWorkingHours
	}
	if clockMinutes(start) >= clockMinutes(end) {
		return Policy{}, fmt.Errorf("working hours start %q must be before end %q", start, end)
	}

	duration, durationSet, err := intField(settings, "slot_duration_minutes")
	if err != nil {
		return Policy{}, err
	}
	if durationSet && duration <= 0 {
		return Policy{}, fmt.Errorf("slot_duration_minutes must be positive, got %d", duration)
	}
	if !durationSet {
		duration = defaultDuration
	}
	if duration <= 0 {
		duration = defaultSlotDuration
	}

	minAdvance, minSet, err := intField(settings, "min_advance_hours")
	if err != nil {
		return Policy{}, err
	}
	if minSet && minAdvance < 0 {
		return Policy{}, fmt.Errorf("min_advance_hours must not be negative, got %d", minAdvance)
	}
	if !minSet {
		minAdvance = 0
	}

	maxAdvance, maxSet, err := intField(settings, "max_advance_days")
	if err != nil {
		return Policy{}, err
	}
	if maxSet && maxAdvance < 0 {
		return Policy{}, fmt.Errorf("max_advance_days must not be negative, got %d", maxAdvance)
	}
	if !maxSet {
		maxAdvance = defaultMaxAdvanceDays
	}

	days, err := weekdayField(settings, "working_days")
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		WorkingDays:         days,
		WorkingHoursStart:   start,
		WorkingHoursEnd:     end,
		SlotDurationMinutes: duration,
		MinAdvanceHours:     minAdvance,
		MaxAdvanceDays:      maxAdvance,
	}, nil
}

func clockField(settings map[string]interface{}, key string) (string, bool, error) {
	raw, ok := settings[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%s must be a string, got %T", key, raw)
	}
	if s == "" {
		return "", false, nil
	}
	normalized, err := NormalizeClock(s)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", key, err)
	}
	return normalized, true, nil
}

func intField(settings map[string]interface{}, key string) (int, bool, error) {
	raw, ok := settings[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
}

func weekdayField(settings map[string]interface{}, key string) ([]time.Weekday, error) {
	raw, ok := settings[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be a list, got %T", key, raw)
	}
	days := make([]time.Weekday, 0, len(list))
	for _, item := range list {
		n, ok := item.(float64)
		if !ok || n != float64(int(n)) {
			return nil, fmt.Errorf("%s entries must be integers, got %v", key, item)
		}
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("%s entries must be 0 (Sunday) through 6 (Saturday), got %v", key, n)
		}
		days = append(days, time.Weekday(int(n)))
	}
	return days, nil
}
