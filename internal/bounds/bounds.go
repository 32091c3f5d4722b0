// Package bounds provides inclusive [min, max] byte-length ranges used to
// screen generated passwords and individual pool words.
package bounds

import (
	"fmt"
	"math"
)

// Unbounded marks a range with no upper limit.
const Unbounded = math.MaxInt

// Bounds is an inclusive [Min, Max] range of byte lengths.
type Bounds struct {
	Min int
	Max int
}

// RangeError reports a user-supplied range whose minimum exceeds its maximum.
type RangeError struct {
	Min int
	Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("minimum %d is greater than maximum %d", e.Min, e.Max)
}

// Resolve produces concrete bounds from optional user values. A nil min falls
// back to defaultMin, a nil max to defaultMax(min); when only the max is
// given, the minimum is clamped down to it so Min <= Max always holds. Both
// given with min > max is a *RangeError.
//
// The defaultMax hook lets password-length resolution default to Unbounded
// while word-length resolution derives its default from the resolved minimum.
func Resolve(min, max *int, defaultMin int, defaultMax func(min int) int) (Bounds, error) {
	switch {
	case min == nil && max == nil:
		return Bounds{Min: defaultMin, Max: defaultMax(defaultMin)}, nil
	case max == nil:
		return Bounds{Min: *min, Max: defaultMax(*min)}, nil
	case min == nil:
		lo := defaultMin
		if *max < lo {
			lo = *max
		}
		return Bounds{Min: lo, Max: *max}, nil
	default:
		if *min > *max {
			return Bounds{}, &RangeError{Min: *min, Max: *max}
		}
		return Bounds{Min: *min, Max: *max}, nil
	}
}

// UnboundedMax is a defaultMax for Resolve that leaves the range open-ended.
func UnboundedMax(int) int { return Unbounded }

// Check reports whether n falls within the range.
func (b Bounds) Check(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Describe renders the range as a phrase fitting "a length of {phrase} bytes".
func (b Bounds) Describe() string {
	switch {
	case b.Min == b.Max:
		return fmt.Sprintf("exactly %d", b.Min)
	case b.Min <= 1 && b.Max == Unbounded:
		return "any number of"
	case b.Min <= 1:
		return fmt.Sprintf("up to %d", b.Max)
	case b.Max == Unbounded:
		return fmt.Sprintf("at least %d", b.Min)
	default:
		return fmt.Sprintf("between %d and %d", b.Min, b.Max)
	}
}
