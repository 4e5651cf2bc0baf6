package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-friends/internal/config"
)

// Birthday is a recurring annual date. A person without a birthday holds a nil *Birthday,
// so a month cannot exist without a day.
type Birthday struct {
	Month int
	Day   int
}

// DayOfYear returns the ordinal of the birthday in the fixed 365-day model.
func (b Birthday) DayOfYear() int {
	return DayOfYear(b.Month, b.Day)
}

// String formats the birthday as "M/D".
func (b Birthday) String() string {
	return fmt.Sprintf(config.FormatBirthday, b.Month, b.Day)
}

// DayOfYear sums the fixed month lengths preceding month and adds day.
// Leap years are ignored on purpose: February always has 28 days.
// Input is not validated; out-of-range values give out-of-range results but never panic.
func DayOfYear(month, day int) int {
	total := 0
	for i := 0; i < month-1 && i < len(config.DaysInMonth); i++ {
		total += config.DaysInMonth[i]
	}
	return total + day
}

// DaysUntil returns the forward distance from today to the next occurrence of birthday,
// both expressed as day-of-year values. Dates already passed wrap to next year.
func DaysUntil(today, birthday int) int {
	if birthday >= today {
		return birthday - today
	}
	return config.DaysInYear - (today - birthday)
}

// TodayOfYear converts a point in time to its day-of-year in the 365-day model.
func TodayOfYear(now time.Time) int {
	return DayOfYear(int(now.Month()), now.Day())
}

// Clock supplies "today" to the birthday report and calendar export.
type Clock interface {
	Now() time.Time
}

// RealClock reads the local wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ParseBirthday builds a Birthday only when both month and day are non-empty
// strings of ASCII digits. Anything else means "no birthday".
func ParseBirthday(month, day string) *Birthday {
	m, okM := ParseDigits(month)
	d, okD := ParseDigits(day)
	if !okM || !okD {
		return nil
	}
	return &Birthday{Month: m, Day: d}
}

// ParseDigits parses a trimmed, non-empty string made only of ASCII digits.
// Signs, spaces inside the number and overflowing values are rejected.
func ParseDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
