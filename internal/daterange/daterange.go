package daterange

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

const (
	keyLayout     = "2006-01-02"
	displayLayout = "02/01/2006"
)

var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive span of local calendar days. Bounds are stored as
// midnights so day comparison never depends on a timezone offset.
type Range struct {
	From time.Time
	To   time.Time
}

func Make(from, to string) (Range, error) {
	const op = "daterange.Make"

	f, err := time.Parse(keyLayout, from)
	if err != nil {
		return Range{}, fmt.Errorf("%s: bad from %q: %w", op, from, ErrInvalidRange)
	}

	t, err := time.Parse(keyLayout, to)
	if err != nil {
		return Range{}, fmt.Errorf("%s: bad to %q: %w", op, to, ErrInvalidRange)
	}

	if f.After(t) {
		return Range{}, fmt.Errorf("%s: from %s after to %s: %w", op, from, to, ErrInvalidRange)
	}

	return Range{From: f, To: t}, nil
}

// Key returns the YYYY-MM-DD form used for bucketing and API parameters.
func Key(d time.Time) string {
	return d.Format(keyLayout)
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (time.Time, error) {
	return time.Parse(keyLayout, key)
}

// Format returns the DD/MM/YYYY form the dashboard displays.
func Format(d time.Time) string {
	return d.Format(displayLayout)
}

// Day truncates a timestamp to its local calendar day.
func Day(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// Days walks every calendar day from From to To inclusive. The sequence is
// restartable; each range over it starts again at From.
func (r Range) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// NumDays is the inclusive day count of the range.
func (r Range) NumDays() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// SingleDay reports whether the range covers exactly one calendar day.
func (r Range) SingleDay() bool {
	return r.From.Equal(r.To)
}
