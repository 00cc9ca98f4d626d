package tracking

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatClockTime converts a 24-hour "HH:MM" clock time into a 12-hour
// "H:MM AM/PM" display form. The "--" placeholder (and anything unparseable)
// comes back as "--".
func FormatClockTime(clockTime string) string {
	hours, minutes, ok := parseClockTime(clockTime)
	if !ok {
		return placeholderClockTime
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHours, minutes, period)
}

func parseClockTime(clockTime string) (int, int, bool) {
	parts := strings.Split(clockTime, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return hours, minutes, true
}
