package huffdict

import (
	"math/rand"
)

// makeTestData returns n pseudo-random bytes with a skewed distribution, so
// that the resulting trees have codes of many different lengths.
func makeTestData(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		x := r.Intn(64)
		b[i] = byte(x * x / 16)
	}
	return b
}

func leafMap(leaves []LeafFrequency) map[byte]uint64 {
	out := make(map[byte]uint64, len(leaves))
	for _, leaf := range leaves {
		out[leaf.Value] = leaf.Frequency
	}
	return out
}

func makeTestDictionary() *Dictionary {
	var d Dictionary
	d.Create([]byte("AAAABBBCCD"))
	return &d
}
