package recurring

import (
	"fmt"
	"time"
)

// daysInMonth holds the length of each month in a non-leap year,
// indexed by time.Month. February is adjusted via lastDay.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func lastDay(year int, month time.Month) int {
	if month == time.February && isLeapYear(year) {
		return 29
	}

	return daysInMonth[month]
}

// addMonths advances a date by n calendar months, clamping the
// day-of-month to the last valid day of the target month. Jan 31 plus
// one month is Feb 28 (or 29 in a leap year), never Mar 3; the clamp is
// applied against the final target month, so Nov 30 plus a quarter is
// Feb 28/29, not the result of three independent monthly steps.
func addMonths(date time.Time, n int) time.Time {
	months := int(date.Month()) + n
	year := date.Year() + (months-1)/12
	month := time.Month((months-1)%12 + 1)

	day := date.Day()
	if last := lastDay(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// addYears advances by n years, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func addYears(date time.Time, n int) time.Time {
	year := date.Year() + n

	day := date.Day()
	if last := lastDay(year, date.Month()); day > last {
		day = last
	}

	return time.Date(year, date.Month(), day, 0, 0, 0, 0, time.UTC)
}

// Next returns the occurrence date one period after current. It is a
// pure date calculation: it never reads the wall clock.
func Next(current time.Time, freq Frequency) (time.Time, error) {
	switch freq {
	case FrequencyDaily:
		return current.AddDate(0, 0, 1), nil
	case FrequencyWeekly:
		return current.AddDate(0, 0, 7), nil
	case FrequencyBiweekly:
		return current.AddDate(0, 0, 14), nil
	case FrequencyMonthly:
		return addMonths(current, 1), nil
	case FrequencyBimonthly:
		return addMonths(current, 2), nil
	case FrequencyQuarterly:
		return addMonths(current, 3), nil
	case FrequencyYearly:
		return addYears(current, 1), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, freq)
	}
}

// NextOccurrence computes the date a template would fire at after
// current, applying its end conditions. ok is false when the schedule is
// exhausted: the candidate falls past the end date, or countCreated has
// already reached maxOccurrences (regardless of date).
func NextOccurrence(current time.Time, freq Frequency, endDate *time.Time, maxOccurrences *int, countCreated int) (next time.Time, ok bool, err error) {
	candidate, err := Next(current, freq)
	if err != nil {
		return time.Time{}, false, err
	}

	if endDate != nil && candidate.After(*endDate) {
		return time.Time{}, false, nil
	}

	if maxOccurrences != nil && countCreated >= *maxOccurrences {
		return time.Time{}, false, nil
	}

	return candidate, true, nil
}
