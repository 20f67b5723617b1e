package aggregation

import "time"

const DefaultTip = "Enjoy your time with your baby today!"

// TipOfTheDay picks the tip for a child's age in days. Ages past the last
// keyed day cycle back to the start; the same tip is returned all day.
func TipOfTheDay(tips map[int][]string, ageInDays int, now time.Time) string {
	maxDay := -1
	for day := range tips {
		if day > maxDay {
			maxDay = day
		}
	}
	if maxDay < 0 {
		return DefaultTip
	}

	day := ageInDays
	if day > maxDay {
		day = day % (maxDay + 1)
	}
	list := tips[day]
	if len(list) == 0 {
		return DefaultTip
	}
	return list[now.YearDay()%len(list)]
}
