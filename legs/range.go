package legs

import (
	"fmt"
	"math"
)

// Range is an inclusive angle limit, in degrees.
type Range struct {
	Min float64
	Max float64
}

func MakeRange(min, max float64) Range {
	return Range{Min: min, Max: max}
}

func (r Range) String() string {
	return fmt.Sprintf("[%+.2f°, %+.2f°]", r.Min, r.Max)
}

// Contains returns true if deg is within the range. NaN is never contained.
func (r Range) Contains(deg float64) bool {
	if math.IsNaN(deg) {
		return false
	}

	return deg >= r.Min && deg <= r.Max
}
