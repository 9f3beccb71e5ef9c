// Package filter derives a date-bounded view of a record list. It is pure:
// nothing here holds state except the optional memo wrapper.
package filter

import (
	"fmt"
	"time"

	"github.com/MrRedFox1223/wdash/internal/model"
)

// DateRange bounds a view of the record list, inclusive on both ends.
// Start and End are already formatted YYYY-MM-DD; the fixed-width format
// makes lexicographic comparison safe. A nil *DateRange means no filtering.
type DateRange struct {
	Start string
	End   string
}

// ParseRange builds a DateRange from two YYYY-MM-DD strings. Both empty
// yields nil (no filtering); supplying only one is an error, as is an
// unparseable date or start after end.
func ParseRange(from, to string) (*DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("both --from and --to are required for a date range")
	}
	for _, s := range []string{from, to} {
		if _, err := time.Parse(model.DateLayout, s); err != nil {
			return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
	}
	if from > to {
		return nil, fmt.Errorf("range start %s is after end %s", from, to)
	}
	return &DateRange{Start: from, End: to}, nil
}

// Apply returns the records whose date falls within r. A nil range is the
// identity: the input slice is returned unchanged, same backing array.
func Apply(records []model.WeatherRecord, r *DateRange) []model.WeatherRecord {
	if r == nil {
		return records
	}
	out := make([]model.WeatherRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date >= r.Start && rec.Date <= r.End {
			out = append(out, rec)
		}
	}
	return out
}

// Memo caches the last Apply call. Recomputation is skipped only when both
// inputs are unchanged: the records slice is compared by identity (length
// plus backing array), the range by value. Purely a performance concern —
// Apply itself is always correct to call.
type Memo struct {
	lastRecords []model.WeatherRecord
	lastRange   *DateRange
	lastResult  []model.WeatherRecord
	valid       bool
}

// Apply is a memoized filter.Apply.
func (m *Memo) Apply(records []model.WeatherRecord, r *DateRange) []model.WeatherRecord {
	if m.valid && sameSlice(records, m.lastRecords) && sameRange(r, m.lastRange) {
		return m.lastResult
	}
	m.lastRecords = records
	m.lastRange = cloneRange(r)
	m.lastResult = Apply(records, r)
	m.valid = true
	return m.lastResult
}

func sameSlice(a, b []model.WeatherRecord) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func sameRange(a, b *DateRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneRange(r *DateRange) *DateRange {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
