package huffdict

import (
	"math"
)

// addFreq adds two frequencies using saturating addition.
func addFreq(a uint64, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
