// Package datemath provides pure calendar-day arithmetic for the picker.
//
// All functions treat dates as local wall-clock values and never mutate
// their inputs. Day-level comparisons ignore the time-of-day component.
package datemath

import "time"

// DayOf returns t normalized to midnight (local), dropping the time-of-day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks shifts t by 7n days.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// AddMonths shifts t by n months. If the day-of-month does not exist in the
// target month (e.g. Jan 31 + 1 month), it clamps to the last day of that
// month rather than rolling over.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	my := int(m) - 1 + n
	ty := y + my/12
	tm := my % 12
	if tm < 0 {
		tm += 12
		ty--
	}
	targetMonth := time.Month(tm + 1)
	d = ClampDay(ty, targetMonth, d)
	h, min, sec := t.Clock()
	return time.Date(ty, targetMonth, d, h, min, sec, t.Nanosecond(), t.Location())
}

// AddYears shifts the year of t by n, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func AddYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	ty := y + n
	d = ClampDay(ty, m, d)
	h, min, sec := t.Clock()
	return time.Date(ty, m, d, h, min, sec, t.Nanosecond(), t.Location())
}

// StartOfWeek returns midnight of the first day of the week containing t.
// firstDow is the weekday that starts a week (0=Sunday).
func StartOfWeek(t time.Time, firstDow int) time.Time {
	back := (int(t.Weekday()) - firstDow + 7) % 7
	return DayOf(t).AddDate(0, 0, -back)
}

// EndOfWeek returns the last instant of the last day of the week containing
// t, honoring firstDow (0=Sunday).
func EndOfWeek(t time.Time, firstDow int) time.Time {
	fwd := 6 - (int(t.Weekday())-firstDow+7)%7
	end := DayOf(t).AddDate(0, 0, fwd+1)
	return end.Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BeforeDay reports whether a falls on an earlier calendar day than b.
func BeforeDay(a, b time.Time) bool {
	return DayOf(a).Before(DayOf(b))
}

// AfterDay reports whether a falls on a later calendar day than b.
func AfterDay(a, b time.Time) bool {
	return DayOf(a).After(DayOf(b))
}

// NumDaysInMonth returns the number of days in the given month.
func NumDaysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonth returns every date of the given month in order, at midnight.
func DaysInMonth(y int, m time.Month) []time.Time {
	n := NumDaysInMonth(y, m)
	out := make([]time.Time, 0, n)
	for d := 1; d <= n; d++ {
		out = append(out, time.Date(y, m, d, 0, 0, 0, 0, time.Local))
	}
	return out
}

// FirstWeekdayOfMonth returns the weekday index (0=Sunday) of day 1.
func FirstWeekdayOfMonth(y int, m time.Month) int {
	return int(time.Date(y, m, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// YearBlock returns the aligned block of blockSize consecutive years
// containing year. Block edges are fixed at ((year-1)/blockSize)*blockSize+1,
// so every year within a block yields the same block.
func YearBlock(year, blockSize int) []int {
	if blockSize <= 0 {
		return []int{year}
	}
	start := ((year-1)/blockSize)*blockSize + 1
	out := make([]int, blockSize)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// ClampDay bounds d to the valid day range of the given month.
func ClampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	if max := NumDaysInMonth(y, m); d > max {
		return max
	}
	return d
}
