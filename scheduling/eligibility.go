package scheduling

import "time"

// DateBookable reports whether a calendar date may be offered for booking
// at all: not strictly in the past (today itself is fine), on a working
// day, and within the advance window. An empty WorkingDays set leaves
// every weekday open.
func DateBookable(p Policy, date, today time.Time) bool {
	day := startOfDay(date)
	base := startOfDay(today)

	if day.Before(base) {
		return false
	}
	if len(p.WorkingDays) > 0 && !isWorkingDay(p.WorkingDays, date.Weekday()) {
		return false
	}

	maxDays := p.MaxAdvanceDays
	if maxDays <= 0 {
		maxDays = defaultMaxAdvanceDays
	}
	return !day.After(base.AddDate(0, 0, maxDays))
}

func isWorkingDay(days []time.Weekday, d time.Weekday) bool {
	for _, wd := range days {
		if wd == d {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
