package utils

import (
	"testing"
	"time"
)

func TestHolidayName(t *testing.T) {
	christmas := time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local)
	if got := HolidayName(christmas); got != "Christmas Day" {
		t.Fatalf("expected Christmas Day, got %q", got)
	}
	ordinary := time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)
	if got := HolidayName(ordinary); got != "" {
		t.Fatalf("expected no holiday, got %q", got)
	}
}
