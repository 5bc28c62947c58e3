package domain

import (
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// FormatDate renders YYYY-MM-DD as "Saturday, June 15, 2024".
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatTime renders HH:MM as a 12-hour clock, e.g. "19:00" -> "7:00 PM".
func FormatTime(clock string) string {
	hours, minutes, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return clock
	}
	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 23 {
		return clock
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return strconv.Itoa(h12) + ":" + minutes + " " + ampm
}
