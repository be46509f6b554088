package scheduling

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateSlots_Basic(t *testing.T) {
	p := Policy{
		WorkingHoursStart:   "08:00",
		WorkingHoursEnd:     "10:00",
		SlotDurationMinutes: 60,
	}

	got := GenerateSlots(p)
	want := []string{"08:00", "09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_HalfOpenEnd(t *testing.T) {
	// The last slot does not fit entirely, but generation only requires the
	// start time to be strictly before the end boundary.
	p := Policy{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "10:00",
		SlotDurationMinutes: 45,
	}

	got := GenerateSlots(p)
	want := []string{"09:00", "09:45"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_CountMatchesCeil(t *testing.T) {
	cases := []struct {
		start, end string
		duration   int
		count      int
	}{
		{"08:00", "18:00", 30, 20},
		{"08:00", "18:00", 60, 10},
		{"08:00", "17:30", 60, 10},
		{"09:00", "09:30", 30, 1},
		{"09:00", "09:30", 40, 1},
	}

	for _, tc := range cases {
		p := Policy{
			WorkingHoursStart:   tc.start,
			WorkingHoursEnd:     tc.end,
			SlotDurationMinutes: tc.duration,
		}
		got := GenerateSlots(p)
		if len(got) != tc.count {
			t.Fatalf("%s-%s/%dm: expected %d slots, got %d", tc.start, tc.end, tc.duration, tc.count, len(got))
		}
		last := got[len(got)-1]
		if clockMinutes(last) >= clockMinutes(tc.end) {
			t.Fatalf("%s-%s/%dm: last slot %s not before end", tc.start, tc.end, tc.duration, last)
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	p := Policy{
		WorkingHoursStart:   "08:00",
		WorkingHoursEnd:     "12:00",
		SlotDurationMinutes: 25,
	}

	first := GenerateSlots(p)
	second := GenerateSlots(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical slot lists, got %v then %v", first, second)
	}
}

func TestAnnotateSlots_Occupied(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local) // a Monday
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	occupied := OccupiedSet([]string{"09:00:00"})
	got := AnnotateSlots([]string{"08:00", "09:00"}, occupied, date, now, 2)

	if !got[0].Available || got[0].Reason != "" {
		t.Fatalf("expected 08:00 available, got %+v", got[0])
	}
	if got[1].Available || got[1].Reason != ReasonOccupied {
		t.Fatalf("expected 09:00 occupied, got %+v", got[1])
	}
}

func TestAnnotateSlots_TooSoonSameDayOnly(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 8, 30, 0, 0, time.Local)

	got := AnnotateSlots([]string{"09:00", "10:30", "11:00"}, nil, date, now, 2)

	// now+2h = 10:30. Slots before the cutoff are too soon; a slot exactly
	// at the cutoff stays bookable.
	if got[0].Available || got[0].Reason != ReasonTooSoon {
		t.Fatalf("expected 09:00 too soon, got %+v", got[0])
	}
	if !got[1].Available {
		t.Fatalf("expected 10:30 available at the cutoff, got %+v", got[1])
	}
	if !got[2].Available {
		t.Fatalf("expected 11:00 available, got %+v", got[2])
	}

	// The same slots on a future date are exempt from the advance-notice rule.
	tomorrow := date.AddDate(0, 0, 1)
	future := AnnotateSlots([]string{"09:00"}, nil, tomorrow, now, 2)
	if !future[0].Available {
		t.Fatalf("expected future-date 09:00 available, got %+v", future[0])
	}
}

func TestAnnotateSlots_OccupiedWinsOverTooSoon(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 8, 30, 0, 0, time.Local)

	occupied := OccupiedSet([]string{"09:00"})
	got := AnnotateSlots([]string{"09:00"}, occupied, date, now, 2)

	if got[0].Available || got[0].Reason != ReasonOccupied {
		t.Fatalf("expected occupied reason to win, got %+v", got[0])
	}
}

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08:00", "08:00"},
		{"08:00:00", "08:00"},
		{"8:05", "08:05"},
		{"23:59:59", "23:59"},
	}
	for _, tc := range cases {
		got, err := NormalizeClock(tc.in)
		if err != nil {
			t.Fatalf("NormalizeClock(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "24:00", "10:60", "morning", "10"} {
		if _, err := NormalizeClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
