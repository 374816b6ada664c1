package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMake_BadBounds(t *testing.T) {
	_, err := Make("2025-09-xx", "2025-09-03")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Make("2025-09-01", "")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Make("2025-09-05", "2025-09-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMake_Valid(t *testing.T) {
	r, err := Make("2025-09-01", "2025-09-01")
	assert.NoError(t, err)
	assert.True(t, r.SingleDay())
	assert.Equal(t, 1, r.NumDays())
}

func TestDays_CountUniqueAscending(t *testing.T) {
	r, err := Make("2025-08-30", "2025-09-03")
	assert.NoError(t, err)
	assert.Equal(t, 5, r.NumDays())

	seen := make(map[string]bool)
	var prev time.Time
	count := 0
	for d := range r.Days() {
		key := Key(d)
		assert.False(t, seen[key], "day %s yielded twice", key)
		seen[key] = true
		if count > 0 {
			assert.True(t, d.After(prev), "days not ascending")
		}
		prev = d
		count++
	}
	assert.Equal(t, 5, count)
}

func TestDays_Restartable(t *testing.T) {
	r, _ := Make("2025-09-01", "2025-09-02")

	first := 0
	for range r.Days() {
		first++
	}
	second := 0
	for range r.Days() {
		second++
	}
	assert.Equal(t, first, second)
}

func TestKey_RoundTrip(t *testing.T) {
	d := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	parsed, err := ParseKey(Key(d))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(d))
}

func TestFormat(t *testing.T) {
	d := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07/09/2025", Format(d))
	assert.Equal(t, "2025-09-07", Key(d))
}

func TestDay_TruncatesTimestamp(t *testing.T) {
	ts := time.Date(2025, 9, 7, 23, 15, 4, 0, time.Local)
	day := Day(ts)
	assert.Equal(t, "2025-09-07", Key(day))
	assert.Equal(t, 0, day.Hour())
}
