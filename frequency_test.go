package huffdict

import (
	"reflect"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies([]byte("AAAABBBCCD"))

	expect := map[byte]uint64{'A': 4, 'B': 3, 'C': 2, 'D': 1}
	for value, freq := range freqs {
		if freq != expect[byte(value)] {
			t.Errorf("byte %d: expected frequency %d, got %d", value, expect[byte(value)], freq)
		}
	}
	if total := freqs.Total(); total != 10 {
		t.Errorf("expected total 10, got %d", total)
	}
}

func TestFrequencies_Sorted(t *testing.T) {
	freqs := CountFrequencies([]byte("zzyyxwwwvq"))

	expect := []LeafFrequency{
		{'q', 1},
		{'v', 1},
		{'x', 1},
		{'y', 2},
		{'z', 2},
		{'w', 3},
	}
	actual := freqs.Sorted()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong order:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestFrequencies_SortedEmpty(t *testing.T) {
	freqs := CountFrequencies(nil)
	if actual := freqs.Sorted(); len(actual) != 0 {
		t.Errorf("expected no leaves, got %v", actual)
	}
}

func TestFrequencies_Add(t *testing.T) {
	freqs := CountFrequencies([]byte("abb"))
	freqs.Add([]LeafFrequency{{'b', 5}, {'c', 2}})

	if freqs['a'] != 1 || freqs['b'] != 7 || freqs['c'] != 2 {
		t.Errorf("wrong frequencies: a=%d b=%d c=%d", freqs['a'], freqs['b'], freqs['c'])
	}
}
