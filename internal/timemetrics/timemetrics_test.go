package timemetrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(h, m int) *time.Time {
	t := time.Date(2025, 9, 1, h, m, 0, 0, time.UTC)
	return &t
}

func TestElapsedMinutes(t *testing.T) {
	assert.Equal(t, 90.0, ElapsedMinutes(ts(8, 0), ts(9, 30)))
	assert.Equal(t, 0.0, ElapsedMinutes(nil, ts(9, 30)))
	assert.Equal(t, 0.0, ElapsedMinutes(ts(8, 0), nil))
}

func TestElapsedMinutes_InvertedPairIsZero(t *testing.T) {
	// Start after end is tolerated as a dirty row, not rejected.
	assert.Equal(t, 0.0, ElapsedMinutes(ts(10, 0), ts(9, 0)))
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "01:30", FormatHM(90))
	assert.Equal(t, "00:00", FormatHM(0))
	assert.Equal(t, "02:00", FormatHM(119.6))
	assert.Equal(t, "10:05", FormatHM(605.2))
}

func TestFormatHMWords(t *testing.T) {
	assert.Equal(t, "1 hours 30 minutes", FormatHMWords(90))
	assert.Equal(t, "0 hours 0 minutes", FormatHMWords(0.2))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "08:00 - 09:30", FormatRange(ts(8, 0), ts(9, 30)))
	assert.Equal(t, RangePlaceholder, FormatRange(nil, ts(9, 30)))
	assert.Equal(t, RangePlaceholder, FormatRange(ts(8, 0), nil))
}
