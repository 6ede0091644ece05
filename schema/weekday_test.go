package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOrderSequence(t *testing.T) {
	sunday := SundayFirst.Sequence()
	require.Len(t, sunday, DaysPerWeek)
	assert.Equal(t, time.Sunday, sunday[0])
	assert.Equal(t, time.Saturday, sunday[6])

	monday := MondayFirst.Sequence()
	require.Len(t, monday, DaysPerWeek)
	assert.Equal(t, time.Monday, monday[0])
	assert.Equal(t, time.Sunday, monday[6])

	// Both orders are chronological rotations covering each day once.
	for _, seq := range [][]time.Weekday{sunday, monday} {
		seen := make(map[time.Weekday]bool)
		for i, d := range seq {
			assert.False(t, seen[d], "Weekday %v repeated", d)
			seen[d] = true
			next := seq[(i+1)%DaysPerWeek]
			assert.Equal(t, (d+1)%7, next%7, "%v must be followed by the next calendar day", d)
		}
	}
}

// TestWeekdayOrderSequenceIsCopy guards against callers mutating a shared slice.
func TestWeekdayOrderSequenceIsCopy(t *testing.T) {
	first := SundayFirst.Sequence()
	first[0] = time.Friday
	assert.Equal(t, time.Sunday, SundayFirst.Sequence()[0])
}

func TestWeekdayOrderValid(t *testing.T) {
	assert.True(t, SundayFirst.Valid())
	assert.True(t, MondayFirst.Valid())
	assert.False(t, WeekdayOrder("friday-first").Valid())
	assert.False(t, WeekdayOrder("").Valid())
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayLabel(time.Sunday))
	assert.Equal(t, "Wed", WeekdayLabel(time.Wednesday))
	assert.Equal(t, "Sat", WeekdayLabel(time.Saturday))
}
