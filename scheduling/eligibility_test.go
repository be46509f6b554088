package scheduling

import (
	"testing"
	"time"
)

func weekdayPolicy() Policy {
	return Policy{
		WorkingDays:         []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		WorkingHoursStart:   "08:00",
		WorkingHoursEnd:     "18:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
	}
}

func TestDateBookable_PastDates(t *testing.T) {
	today := time.Date(2026, 9, 2, 15, 30, 0, 0, time.Local) // Wednesday
	p := weekdayPolicy()

	if DateBookable(p, today.AddDate(0, 0, -1), today) {
		t.Fatal("yesterday should not be bookable")
	}
	if !DateBookable(p, today, today) {
		t.Fatal("today itself should be bookable")
	}
}

func TestDateBookable_WorkingDays(t *testing.T) {
	today := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)
	p := weekdayPolicy()

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
	if DateBookable(p, sunday, today) {
		t.Fatal("Sunday should not be bookable for a weekday policy")
	}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	if !DateBookable(p, monday, today) {
		t.Fatal("Monday should be bookable")
	}
}

func TestDateBookable_EmptyWorkingDaysOpenByDefault(t *testing.T) {
	today := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)
	p := weekdayPolicy()
	p.WorkingDays = nil

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
	if !DateBookable(p, sunday, today) {
		t.Fatal("every day should be bookable when working days are unset")
	}
}

func TestDateBookable_AdvanceWindow(t *testing.T) {
	today := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)
	p := weekdayPolicy()
	p.WorkingDays = nil

	inside := today.AddDate(0, 0, 30)
	if !DateBookable(p, inside, today) {
		t.Fatal("today+30 should be inside the advance window")
	}
	outside := today.AddDate(0, 0, 31)
	if DateBookable(p, outside, today) {
		t.Fatal("today+31 should be outside the advance window")
	}
}

func TestDateBookable_AdvanceWindowDefault(t *testing.T) {
	today := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)
	p := weekdayPolicy()
	p.WorkingDays = nil
	p.MaxAdvanceDays = 0 // unset falls back to 30

	if !DateBookable(p, today.AddDate(0, 0, 30), today) {
		t.Fatal("default window should allow today+30")
	}
	if DateBookable(p, today.AddDate(0, 0, 31), today) {
		t.Fatal("default window should reject today+31")
	}
}
