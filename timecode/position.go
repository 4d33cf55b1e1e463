// SPDX-License-Identifier: Apache-2.0

// Package timecode provides the temporal primitives the timeline model and
// scheduler are built on: Position, a monotonic nanosecond offset from
// origin, and TimeRange, a half-open [start, end) interval over Position.
package timecode

import (
	"strconv"
	"time"
)

// Position is a moment in time measured in nanoseconds from the origin of a
// timeline. Valid positions are non-negative, but the type does not enforce
// it: callers that derive a negative value (e.g. by subtracting a larger
// Position) have a bug the type does not hide by clamping.
type Position time.Duration

// Zero is the origin.
const Zero Position = 0

// FromSeconds builds a Position from a floating point second count.
func FromSeconds(seconds float64) Position {
	return Position(time.Duration(seconds * float64(time.Second)))
}

// FromDuration builds a Position from a time.Duration.
func FromDuration(d time.Duration) Position {
	return Position(d)
}

// Duration returns the Position as a time.Duration.
func (p Position) Duration() time.Duration {
	return time.Duration(p)
}

// Seconds returns the Position as a floating point second count.
func (p Position) Seconds() float64 {
	return time.Duration(p).Seconds()
}

// Add returns p + other.
func (p Position) Add(other Position) Position {
	return p + other
}

// Sub returns p - other. The result may be negative; that is a caller bug,
// not a condition this type corrects for.
func (p Position) Sub(other Position) Position {
	return p - other
}

// Before reports whether p < other.
func (p Position) Before(other Position) bool {
	return p < other
}

// After reports whether p > other.
func (p Position) After(other Position) bool {
	return p > other
}

// Cmp returns -1, 0, or 1 as p is less than, equal to, or greater than other.
func (p Position) Cmp(other Position) int {
	switch {
	case p < other:
		return -1
	case p > other:
		return 1
	default:
		return 0
	}
}

// IsNegative reports whether p is less than zero. A timeline consumer can
// use this to detect the caller-bug underflow case described above.
func (p Position) IsNegative() bool {
	return p < 0
}

// String renders the Position as a duration string, e.g. "1.5s".
func (p Position) String() string {
	return time.Duration(p).String()
}

// Max returns the larger of a and b.
func Max(a, b Position) Position {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Position) Position {
	if a < b {
		return a
	}
	return b
}

// MarshalJSON renders the Position as a nanosecond count, matching the
// project file format's field types (spec.md §3/§6).
func (p Position) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(p), 10)), nil
}

// UnmarshalJSON parses a nanosecond count.
func (p *Position) UnmarshalJSON(data []byte) error {
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*p = Position(n)
	return nil
}
