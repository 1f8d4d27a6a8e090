/* time_conversion.go
 * Contains the logic for converting a match start time from IST to EST. IST is UTC+5:30 and EST is UTC-5:00, so the
 * conversion is a fixed 10 hour 30 minute subtraction with no daylight saving adjustment
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"matchpost-bot/api/shared"
)

var (
	// e.g. "7:00 PM", "19:00", "7:00pm"
	clockTimePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?`)
	// e.g. "7 PM", "7pm"
	hourOnlyPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(AM|PM)`)
)

const targetZone = "EST"

// ConvertISTtoEST converts a time of day string from IST to EST.
// Preconditions: Receives a string containing a time such as "7:00 PM", "19:00" or "7 PM"
// Postconditions: Returns the converted time in the form "H:MM AM EST", or the input unchanged if it can't be parsed
func ConvertISTtoEST(istTime string) string {
	if t, ok := parseClockTime(istTime); ok {
		return convertClockTime(t)
	}
	if t, ok := parseHourOnlyTime(istTime); ok {
		return convertHourOnlyTime(t)
	}
	return istTime
}

// parseClockTime matches the "H:MM" form with an optional meridiem
func parseClockTime(s string) (shared.TimeOfDay, bool) {
	m := clockTimePattern.FindStringSubmatch(s)
	if m == nil {
		return shared.TimeOfDay{}, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return shared.TimeOfDay{Hour: hours, Minute: minutes, Meridiem: strings.ToUpper(m[3])}, true
}

// parseHourOnlyTime matches the "H AM" form. The meridiem is required here
func parseHourOnlyTime(s string) (shared.TimeOfDay, bool) {
	m := hourOnlyPattern.FindStringSubmatch(s)
	if m == nil {
		return shared.TimeOfDay{}, false
	}
	hours, _ := strconv.Atoi(m[1])
	return shared.TimeOfDay{Hour: hours, Meridiem: strings.ToUpper(m[2])}, true
}

// to24Hour resolves a meridiem qualified hour. Hours without a meridiem are already 24-hour
func to24Hour(hours int, meridiem string) int {
	switch {
	case meridiem == "PM" && hours != 12:
		return hours + 12
	case meridiem == "AM" && hours == 12:
		return 0
	}
	return hours
}

// convertClockTime subtracts 10:30 from a parsed "H:MM" value, borrowing an hour when the minutes go negative
func convertClockTime(t shared.TimeOfDay) string {
	hours := to24Hour(t.Hour, t.Meridiem)
	minutes := t.Minute

	minutes -= 30
	if minutes < 0 {
		hours--
		minutes += 60
	}
	hours -= 10

	return formatTwelveHour(wrapHour(hours), minutes)
}

// convertHourOnlyTime handles input without minutes. The minutes always come out as 30 since the input minutes are
// implicitly zero, so the borrow is applied unconditionally
func convertHourOnlyTime(t shared.TimeOfDay) string {
	hours := to24Hour(t.Hour, t.Meridiem)

	hours -= 10
	hours--
	minutes := 30

	return formatTwelveHour(wrapHour(hours), minutes)
}

// wrapHour handles a single day of overflow in either direction
func wrapHour(hours int) int {
	if hours < 0 {
		hours += 24
	}
	if hours >= 24 {
		hours -= 24
	}
	return hours
}

func formatTwelveHour(hours int, minutes int) string {
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s %s", display, minutes, period, targetZone)
}
