package schedule

import "time"

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	if month == time.April || month == time.June || month == time.September || month == time.November {
		return 30
	}

	return 31
}

// AddMonths moves a billing date forward by whole calendar months. A day that does not
// exist in the target month is clamped to that month's last day, so Jan 31 + 1 month is
// Feb 28 (or 29), never Mar 2 or 3.
func AddMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()

	total := int(month) - 1 + months
	year += total / 12
	total %= 12
	if total < 0 {
		total += 12
		year--
	}
	target := time.Month(total + 1)

	if last := DaysInMonth(year, target); day > last {
		day = last
	}
	return time.Date(year, target, day, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a billing date by whole days.
func AddDays(date time.Time, days int) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day+days, 0, 0, 0, 0, time.UTC)
}

// PeriodCount is ceil(durationMonths / payCycleMonths). Both must be positive.
func PeriodCount(durationMonths, payCycleMonths int) int {
	return (durationMonths + payCycleMonths - 1) / payCycleMonths
}
