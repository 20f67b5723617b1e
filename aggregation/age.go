// Package aggregation derives summaries from a child's raw activity, growth,
// milestone and vaccination records. Nothing here performs I/O; callers load
// the records and pass the current instant explicitly.
package aggregation

import "time"

const dayMillis = 24 * 60 * 60 * 1000

type Age struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// AgeAt reads the elapsed time since birthday as a UTC date anchored at the
// Unix epoch. The result drifts near month boundaries; callers rely on the
// exact numbers so keep it that way.
func AgeAt(birthday, now time.Time) Age {
	diff := now.Sub(birthday).Milliseconds()
	if diff < 0 {
		return Age{}
	}
	d := time.UnixMilli(diff).UTC()
	return Age{
		Years:  d.Year() - 1970,
		Months: int(d.Month()) - 1,
		Days:   d.Day() - 1,
	}
}

// AgeInDays is the number of whole days since birthday.
func AgeInDays(birthday, now time.Time) int {
	diff := now.Sub(birthday).Milliseconds()
	if diff < 0 {
		return 0
	}
	return int(diff / dayMillis)
}

// DaysSince counts whole days between t and now.
func DaysSince(t, now time.Time) int {
	return AgeInDays(t, now)
}
