// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/structcred/abf-portal/pkg/constants"
)

// DateTimeLayout is the month-granularity date format used in config files and
// report output.
const DateTimeLayout = constants.DateTimeLayout

// MustParseTime parses a date string using the given layout and panics on
// error. Intended for use in tests and static data where the date string is
// known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

// PeriodDates returns the sequence of month labels for a projection that
// begins the month after startDate and runs for the given number of periods.
func PeriodDates(startDate string, periods int) ([]string, error) {
	dates := make([]string, 0, periods)
	current := startDate
	for i := 0; i < periods; i++ {
		next, err := OffsetDate(current, DateTimeLayout, 1)
		if err != nil {
			return nil, err
		}
		dates = append(dates, next)
		current = next
	}
	return dates, nil
}
