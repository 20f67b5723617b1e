package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTipOfTheDay(t *testing.T) {
	tips := map[int][]string{
		0: {"a0", "b0"},
		1: {"a1"},
		2: {"a2", "b2", "c2"},
	}
	jan2 := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC) // year day 2

	assert.Equal(t, "a0", TipOfTheDay(tips, 0, jan2))
	assert.Equal(t, "a1", TipOfTheDay(tips, 1, jan2))
	assert.Equal(t, "c2", TipOfTheDay(tips, 2, jan2))
	assert.Equal(t, "a1", TipOfTheDay(tips, 4, jan2), "day 4 cycles back to day 1")
}

func TestTipOfTheDayFallsBack(t *testing.T) {
	now := time.Now()
	assert.Equal(t, DefaultTip, TipOfTheDay(nil, 3, now))
	assert.Equal(t, DefaultTip, TipOfTheDay(map[int][]string{0: {"x"}, 5: {"y"}}, 3, now))
}
