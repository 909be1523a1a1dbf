// Package dateformat converts dates to and from display strings using a
// small token-substitution pattern language.
//
// Recognized tokens: YYYY, MM, DD, MMMM (full month name), MMM (short month
// name), ddd (short day name), and, when time is enabled, hh (12-hour),
// mm (minute) and K (AM/PM marker). Month and day names come from a fixed
// English table.
//
// Substitution replaces each token at most once, at its first occurrence,
// in a fixed order. Patterns whose tokens overlap or that repeat a token are
// therefore not supported reliably; that is an accepted limitation of the
// scheme, not something callers should paper over.
package dateformat

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"datepick-cli/internal/datemath"
)

// Default patterns used when the caller does not supply one.
const (
	DefaultPattern     = "YYYY-MM-DD"
	DefaultTimePattern = "hh:mm K"
)

// ErrParse is returned for any input that does not parse back to a valid
// date under the given pattern. Callers treat it as "no change".
var ErrParse = errors.New("dateformat: input does not match pattern")

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dayNamesShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthName returns the fixed English name of m (1-based).
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// MonthNameShort returns the three-letter English name of m.
func MonthNameShort(m time.Month) string {
	return monthNames[int(m)-1][:3]
}

// WithTime appends the default time segment to a date pattern unless the
// pattern already carries time tokens.
func WithTime(pattern string) string {
	if strings.Contains(pattern, "hh") || strings.Contains(pattern, "K") {
		return pattern
	}
	return pattern + " " + DefaultTimePattern
}

// Format renders t according to pattern. Time tokens are substituted first
// when includeTime is set, then the date tokens, longest month form first.
func Format(t time.Time, pattern string, includeTime bool) string {
	out := pattern
	if includeTime {
		h12 := t.Hour() % 12
		if h12 == 0 {
			h12 = 12
		}
		marker := "AM"
		if t.Hour() >= 12 {
			marker = "PM"
		}
		out = replaceOnce(out, "hh", pad2(h12))
		out = replaceOnce(out, "mm", pad2(t.Minute()))
		out = replaceOnce(out, "K", marker)
	}
	out = replaceOnce(out, "YYYY", strconv.Itoa(t.Year()))
	out = replaceOnce(out, "MMMM", MonthName(t.Month()))
	out = replaceOnce(out, "MMM", MonthNameShort(t.Month()))
	out = replaceOnce(out, "MM", pad2(int(t.Month())))
	out = replaceOnce(out, "DD", pad2(t.Day()))
	out = replaceOnce(out, "ddd", dayNamesShort[int(t.Weekday())])
	return out
}

// Parse recovers a date from s, locating each token's span by its first
// occurrence in pattern and reading the same offsets out of s. Fields the
// pattern does not carry default to today's value (zero for time fields).
//
// The parsed components must round-trip: day 31 in a 30-day month (or any
// non-numeric slice) yields ErrParse.
func Parse(s, pattern string, includeTime bool) (time.Time, error) {
	now := time.Now()
	year, okY := sliceInt(s, pattern, "YYYY")
	if !okY {
		year = now.Year()
	}
	month, okM := sliceInt(s, pattern, "MM")
	if !okM {
		month = int(now.Month())
	}
	day, okD := sliceInt(s, pattern, "DD")
	if !okD {
		day = now.Day()
	}
	if year < 0 || month < 0 || day < 0 {
		return time.Time{}, ErrParse
	}

	hour, minute := 0, 0
	if includeTime {
		if h, ok := sliceInt(s, pattern, "hh"); ok {
			if h < 0 {
				return time.Time{}, ErrParse
			}
			hour = h
		}
		if m, ok := sliceInt(s, pattern, "mm"); ok {
			if m < 0 {
				return time.Time{}, ErrParse
			}
			minute = m
		}
		if idx := strings.Index(pattern, "K"); idx >= 0 {
			if idx+2 > len(s) {
				return time.Time{}, ErrParse
			}
			switch strings.ToUpper(s[idx : idx+2]) {
			case "PM":
				if hour < 12 {
					hour += 12
				}
			case "AM":
				if hour == 12 {
					hour = 0
				}
			default:
				return time.Time{}, ErrParse
			}
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, ErrParse
	}
	return t, nil
}

// ParseDay is Parse restricted to day granularity: the time-of-day of the
// result is always midnight.
func ParseDay(s, pattern string) (time.Time, error) {
	t, err := Parse(s, pattern, false)
	if err != nil {
		return time.Time{}, err
	}
	return datemath.DayOf(t), nil
}

// sliceInt reads the numeric field for token out of s at the token's offset
// in pattern. The second result is false when the pattern lacks the token;
// a present-but-unparseable field reports -1, true.
func sliceInt(s, pattern, token string) (int, bool) {
	idx := tokenIndex(pattern, token)
	if idx < 0 {
		return 0, false
	}
	end := idx + len(token)
	if idx >= len(s) || end > len(s) {
		return -1, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[idx:end]))
	if err != nil {
		return -1, true
	}
	return n, true
}

// tokenIndex locates token's first stand-alone occurrence in pattern. A run
// of the token's letter longer than the token itself (MM inside MMM or MMMM)
// does not count; that run belongs to the longer token.
func tokenIndex(pattern, token string) int {
	ch := token[0]
	for idx := strings.Index(pattern, token); idx >= 0; {
		beforeOK := idx == 0 || pattern[idx-1] != ch
		afterOK := idx+len(token) >= len(pattern) || pattern[idx+len(token)] != ch
		if beforeOK && afterOK {
			return idx
		}
		rest := strings.Index(pattern[idx+1:], token)
		if rest < 0 {
			return -1
		}
		idx += 1 + rest
	}
	return -1
}

func replaceOnce(s, token, val string) string {
	return strings.Replace(s, token, val, 1)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
