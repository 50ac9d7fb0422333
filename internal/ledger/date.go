package ledger

import "time"

// DayLayout is the business-day format stored in every record's date
// column. Records are matched by exact string equality on this value, so
// the layout must never change once data exists.
const DayLayout = "02/01/2006"

// Day formats a time as a business-day string.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Today returns the current business-day string.
func Today() string {
	return Day(time.Now())
}

// ParseDay parses a business-day string back into a time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// TrailingDays returns day strings for the n calendar days ending at ref,
// ordered oldest to newest, ref inclusive.
func TrailingDays(ref time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, Day(ref.AddDate(0, 0, -i)))
	}
	return days
}
