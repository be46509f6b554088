package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slot is one bookable time-of-day unit, produced fresh per request.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

const (
	ReasonOccupied = "occupied"
	ReasonTooSoon  = "too soon"
)

// GenerateSlots enumerates candidate "HH:MM" start times from the policy's
// working hours: starting at WorkingHoursStart, stepping by the slot
// duration, strictly before WorkingHoursEnd. The interval is half-open; a
// slot starting at the end boundary is excluded even if it would fit.
func GenerateSlots(p Policy) []string {
	start := clockMinutes(p.WorkingHoursStart)
	end := clockMinutes(p.WorkingHoursEnd)
	if p.SlotDurationMinutes <= 0 || start >= end {
		return nil
	}
	var slots []string
	for t := start; t < end; t += p.SlotDurationMinutes {
		slots = append(slots, minutesToClock(t))
	}
	return slots
}

// AnnotateSlots marks each candidate slot available or not. A slot whose
// time appears in occupied is "occupied". On the target date itself, a free
// slot starting before now+minAdvanceHours becomes "too soon"; future dates
// are exempt from the advance-notice rule. The occupied reason is never
// overwritten by the advance-notice one.
func AnnotateSlots(times []string, occupied map[string]bool, date, now time.Time, minAdvanceHours int) []Slot {
	sameDay := sameLocalDay(date, now)
	cutoff := now.Add(time.Duration(minAdvanceHours) * time.Hour)

	slots := make([]Slot, 0, len(times))
	for _, hm := range times {
		slot := Slot{Time: hm, Available: !occupied[hm]}
		if !slot.Available {
			slot.Reason = ReasonOccupied
		} else if sameDay && slotStart(date, hm).Before(cutoff) {
			slot.Available = false
			slot.Reason = ReasonTooSoon
		}
		slots = append(slots, slot)
	}
	return slots
}

// OccupiedSet builds the conflict lookup from stored appointment times,
// normalizing any "HH:MM:SS" values down to "HH:MM".
func OccupiedSet(times []string) map[string]bool {
	set := make(map[string]bool, len(times))
	for _, t := range times {
		if hm, err := NormalizeClock(t); err == nil {
			set[hm] = true
		}
	}
	return set
}

// NormalizeClock parses "HH:MM" or "HH:MM:SS" and returns zero-padded
// "HH:MM", dropping any seconds component.
func NormalizeClock(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", s)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// clockMinutes assumes a normalized "HH:MM" string.
func clockMinutes(hm string) int {
	hour, _ := strconv.Atoi(hm[:2])
	minute, _ := strconv.Atoi(hm[3:])
	return hour*60 + minute
}

func minutesToClock(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

func slotStart(date time.Time, hm string) time.Time {
	t := clockMinutes(hm)
	return time.Date(date.Year(), date.Month(), date.Day(), t/60, t%60, 0, 0, date.Location())
}

func sameLocalDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
