package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestResolvePolicy_NoWorkingHours(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"working_hours_start": "08:00"},
		{"working_hours_end": "18:00"},
		{"working_hours_start": "", "working_hours_end": "18:00"},
	}
	for i, settings := range cases {
		if _, err := ResolvePolicy(settings, 30); !errors.Is(err, ErrNoWorkingHours) {
			t.Fatalf("case %d: expected ErrNoWorkingHours, got %v", i, err)
		}
	}
}

func TestResolvePolicy_Valid(t *testing.T) {
	settings := map[string]interface{}{
		"working_days":          []interface{}{float64(1), float64(2), float64(3), float64(4), float64(5)},
		"working_hours_start":   "08:00:00",
		"working_hours_end":     "18:00:00",
		"slot_duration_minutes": float64(45),
		"min_advance_hours":     float64(2),
		"max_advance_days":      float64(60),
	}

	p, err := ResolvePolicy(settings, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.WorkingHoursStart != "08:00" || p.WorkingHoursEnd != "18:00" {
		t.Fatalf("expected seconds truncated, got %q-%q", p.WorkingHoursStart, p.WorkingHoursEnd)
	}
	if p.SlotDurationMinutes != 45 {
		t.Fatalf("expected duration 45, got %d", p.SlotDurationMinutes)
	}
	if p.MinAdvanceHours != 2 || p.MaxAdvanceDays != 60 {
		t.Fatalf("unexpected advance bounds: %+v", p)
	}
	if len(p.WorkingDays) != 5 || p.WorkingDays[0] != time.Monday {
		t.Fatalf("unexpected working days: %v", p.WorkingDays)
	}
}

func TestResolvePolicy_DurationFallbacks(t *testing.T) {
	base := map[string]interface{}{
		"working_hours_start": "08:00",
		"working_hours_end":   "18:00",
	}

	// No settings value: fall back to the professional's generic duration.
	p, err := ResolvePolicy(base, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SlotDurationMinutes != 50 {
		t.Fatalf("expected fallback to 50, got %d", p.SlotDurationMinutes)
	}

	// Neither set: fall back to 30.
	p, err = ResolvePolicy(base, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SlotDurationMinutes != 30 {
		t.Fatalf("expected fallback to 30, got %d", p.SlotDurationMinutes)
	}

	// Settings value wins over both.
	withDuration := map[string]interface{}{
		"working_hours_start":   "08:00",
		"working_hours_end":     "18:00",
		"slot_duration_minutes": float64(20),
	}
	p, err = ResolvePolicy(withDuration, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SlotDurationMinutes != 20 {
		t.Fatalf("expected settings duration 20, got %d", p.SlotDurationMinutes)
	}
}

func TestResolvePolicy_Defaults(t *testing.T) {
	p, err := ResolvePolicy(map[string]interface{}{
		"working_hours_start": "09:00",
		"working_hours_end":   "17:00",
	}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MinAdvanceHours != 0 {
		t.Fatalf("expected min advance default 0, got %d", p.MinAdvanceHours)
	}
	if p.MaxAdvanceDays != 30 {
		t.Fatalf("expected max advance default 30, got %d", p.MaxAdvanceDays)
	}
	if p.WorkingDays != nil {
		t.Fatalf("expected unset working days, got %v", p.WorkingDays)
	}
}

func TestResolvePolicy_Malformed(t *testing.T) {
	cases := []map[string]interface{}{
		{"working_hours_start": "18:00", "working_hours_end": "08:00"},
		{"working_hours_start": "08:00", "working_hours_end": "08:00"},
		{"working_hours_start": "25:00", "working_hours_end": "18:00"},
		{"working_hours_start": float64(8), "working_hours_end": "18:00"},
		{"working_hours_start": "08:00", "working_hours_end": "18:00", "slot_duration_minutes": float64(0)},
		{"working_hours_start": "08:00", "working_hours_end": "18:00", "slot_duration_minutes": float64(-30)},
		{"working_hours_start": "08:00", "working_hours_end": "18:00", "min_advance_hours": float64(-1)},
		{"working_hours_start": "08:00", "working_hours_end": "18:00", "max_advance_days": float64(-1)},
		{"working_hours_start": "08:00", "working_hours_end": "18:00", "working_days": []interface{}{float64(7)}},
		{"working_hours_start": "08:00", "working_hours_end": "18:00", "working_days": "weekdays"},
	}
	for i, settings := range cases {
		_, err := ResolvePolicy(settings, 30)
		if err == nil || errors.Is(err, ErrNoWorkingHours) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestPolicyScenario_MondayWithOccupiedSlot(t *testing.T) {
	settings := map[string]interface{}{
		"working_days":          []interface{}{float64(1), float64(2), float64(3), float64(4), float64(5)},
		"working_hours_start":   "08:00",
		"working_hours_end":     "10:00",
		"slot_duration_minutes": float64(60),
		"min_advance_hours":     float64(2),
	}
	p, err := ResolvePolicy(settings, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local) // Tuesday
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)

	if DateBookable(p, sunday, today) {
		t.Fatal("Sunday should not be bookable")
	}
	if !DateBookable(p, monday, today) {
		t.Fatal("Monday should be bookable")
	}

	times := GenerateSlots(p)
	if len(times) != 2 || times[0] != "08:00" || times[1] != "09:00" {
		t.Fatalf("expected [08:00 09:00], got %v", times)
	}

	slots := AnnotateSlots(times, OccupiedSet([]string{"09:00:00"}), monday, today, p.MinAdvanceHours)
	if !slots[0].Available {
		t.Fatalf("expected 08:00 available, got %+v", slots[0])
	}
	if slots[1].Available || slots[1].Reason != ReasonOccupied {
		t.Fatalf("expected 09:00 occupied, got %+v", slots[1])
	}
}
