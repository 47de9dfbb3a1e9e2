package huffdict

import (
	"sort"
)

// Frequencies holds the number of occurrences of each byte value.
type Frequencies [256]uint64

// CountFrequencies counts the occurrences of each byte value in data.
func CountFrequencies(data []byte) Frequencies {
	var freqs Frequencies
	for _, ch := range data {
		freqs[ch]++
	}
	return freqs
}

// Add folds the given leaf frequencies into freqs.
func (freqs *Frequencies) Add(leaves []LeafFrequency) {
	for _, leaf := range leaves {
		freqs[leaf.Value] = addFreq(freqs[leaf.Value], leaf.Frequency)
	}
}

// Total returns the sum of all frequencies.
func (freqs *Frequencies) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		total = addFreq(total, freq)
	}
	return total
}

// Sorted returns one leaf per byte value with a nonzero frequency, ordered
// by ascending frequency.  Ties are ordered by ascending byte value.
func (freqs *Frequencies) Sorted() []LeafFrequency {
	out := make(byFreq, 0, 256)
	for value, freq := range freqs {
		if freq != 0 {
			out = append(out, LeafFrequency{Value: byte(value), Frequency: freq})
		}
	}
	out.Sort()
	return out
}

// type byFreq {{{

type byFreq []LeafFrequency

func (list byFreq) Sort() {
	sort.Stable(list)
}

func (list byFreq) Len() int {
	return len(list)
}

func (list byFreq) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreq) Less(i, j int) bool {
	return list[i].Frequency < list[j].Frequency
}

var _ sort.Interface = byFreq(nil)

// }}}
