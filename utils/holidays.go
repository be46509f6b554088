// utils/holidays.go
package utils

import (
	"fmt"
	"time"
)

// Fixed-date national holidays. Informational only: the booking path never
// blocks a holiday, the UI just labels it.
var fixedHolidays = map[string]string{
	"01-01": "New Year's Day",
	"04-21": "Tiradentes Day",
	"05-01": "Labour Day",
	"09-07": "Independence Day",
	"10-12": "Our Lady of Aparecida",
	"11-02": "All Souls' Day",
	"11-15": "Republic Day",
	"12-25": "Christmas Day",
}

// HolidayName returns the holiday name for a date, or "" when it is not a
// fixed-date holiday.
func HolidayName(date time.Time) string {
	key := fmt.Sprintf("%02d-%02d", int(date.Month()), date.Day())
	return fixedHolidays[key]
}
