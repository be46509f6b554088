package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 9, 1, 23, 50, 0, 0, time.Local)
	end := time.Date(2026, 9, 3, 0, 10, 0, 0, time.Local)

	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
	if got := DaysBetween(end, end); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}
