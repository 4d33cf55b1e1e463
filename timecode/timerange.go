// SPDX-License-Identifier: Apache-2.0

package timecode

import (
	"encoding/json"
	"fmt"
)

// TimeRange is a half-open interval [Start, End) of Position. The zero value
// is invalid; construct with New.
type TimeRange struct {
	start Position
	end   Position
}

// InvalidTimeRangeError reports that a TimeRange was constructed with
// start >= end.
type InvalidTimeRangeError struct {
	Start Position
	End   Position
}

func (e *InvalidTimeRangeError) Error() string {
	return fmt.Sprintf("invalid time range: start %s >= end %s", e.Start, e.End)
}

// New constructs a TimeRange, failing if start >= end.
func New(start, end Position) (TimeRange, error) {
	if start.Cmp(end) >= 0 {
		return TimeRange{}, &InvalidTimeRangeError{Start: start, End: end}
	}
	return TimeRange{start: start, end: end}, nil
}

// MustNew is New but panics on error; reserved for callers (tests, literal
// construction) that hold a statically-known-valid range.
func MustNew(start, end Position) TimeRange {
	tr, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return tr
}

// Start returns the range's start.
func (tr TimeRange) Start() Position {
	return tr.start
}

// End returns the range's exclusive end.
func (tr TimeRange) End() Position {
	return tr.end
}

// Duration returns End - Start.
func (tr TimeRange) Duration() Position {
	return tr.end.Sub(tr.start)
}

// Contains reports whether p falls within [Start, End).
func (tr TimeRange) Contains(p Position) bool {
	return tr.start.Cmp(p) <= 0 && p.Cmp(tr.end) < 0
}

// Overlaps reports whether tr and other share any instant. Adjacency (one
// range's end equals the other's start) does not count as overlap.
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.start.Cmp(other.end) < 0 && other.start.Cmp(tr.end) < 0
}

// WithStart returns a copy of tr with a new start, duration preserved.
func (tr TimeRange) WithStart(start Position) TimeRange {
	return TimeRange{start: start, end: start.Add(tr.Duration())}
}

// WithEnd returns a copy of tr with a new end. Fails if the new end would
// not exceed the current start.
func (tr TimeRange) WithEnd(end Position) (TimeRange, error) {
	return New(tr.start, end)
}

// Shift returns tr moved by delta (may be negative); duration preserved.
func (tr TimeRange) Shift(delta Position) TimeRange {
	return TimeRange{start: tr.start.Add(delta), end: tr.end.Add(delta)}
}

// Equal reports whether tr and other have the same start and end.
func (tr TimeRange) Equal(other TimeRange) bool {
	return tr.start == other.start && tr.end == other.end
}

// String renders the range as "[start, end)".
func (tr TimeRange) String() string {
	return fmt.Sprintf("[%s, %s)", tr.start, tr.end)
}

// jsonTimeRange is TimeRange's wire shape: {"start": ns, "end": ns}.
type jsonTimeRange struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// MarshalJSON implements json.Marshaler.
func (tr TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTimeRange{Start: tr.start, End: tr.end})
}

// UnmarshalJSON implements json.Unmarshaler.
func (tr *TimeRange) UnmarshalJSON(data []byte) error {
	var j jsonTimeRange
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rng, err := New(j.Start, j.End)
	if err != nil {
		return err
	}
	*tr = rng
	return nil
}
