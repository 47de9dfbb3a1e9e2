package stream

import (
	"bytes"
	"io"
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffdict"
)

func makeTestData(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		x := r.Intn(48)
		b[i] = 'A' + byte(x*x/40)
	}
	return b
}

func trainedDictionary(t *testing.T, data []byte, opts Options) *huffdict.Dictionary {
	t.Helper()
	var dict huffdict.Dictionary
	n, err := Train(&dict, bytes.NewReader(data), opts)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if n != int64(len(data)) {
		t.Fatalf("expected %d bytes trained, got %d", len(data), n)
	}
	return &dict
}

func TestTrain(t *testing.T) {
	data := makeTestData(5000, 1)
	opts := Options{ChunkSize: 64}
	dict := trainedDictionary(t, data, opts)

	var whole huffdict.Dictionary
	whole.Create(data)
	if dict.Size() != whole.Size() {
		t.Errorf("expected size %d, got %d", whole.Size(), dict.Size())
	}
}

func TestRoundTrip(t *testing.T) {
	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{"empty", nil},
		{"scenario", []byte("AAAABBBCCD")},
		{"single-value", bytes.Repeat([]byte{'z'}, 100)},
		{"skewed", makeTestData(10000, 2)},
	}
	for _, chunkSize := range []int{MinChunkSize, 9, 64, DefaultChunkSize} {
		for _, row := range testData {
			opts := DefaultOptions()
			opts.ChunkSize = chunkSize
			t.Run(row.name+"/"+strconv.Itoa(chunkSize), func(t *testing.T) {
				dict := trainedDictionary(t, row.data, opts)

				var packed bytes.Buffer
				cstats, err := Compress(dict, bytes.NewReader(row.data), &packed, opts)
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				if cstats.BytesIn != int64(len(row.data)) {
					t.Errorf("expected %d bytes in, got %d", len(row.data), cstats.BytesIn)
				}
				if expect := int64((cstats.Bits + 7) / 8); cstats.BytesOut != expect || int64(packed.Len()) != expect {
					t.Errorf("expected %d bytes out, got %d (buffer %d)", expect, cstats.BytesOut, packed.Len())
				}

				var unpacked bytes.Buffer
				dstats, err := Decompress(dict, &packed, &unpacked, dict.Size(), opts)
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(row.data, unpacked.Bytes()) {
					t.Errorf("mismatch: decoded data differs from original")
				}
				if dstats.BytesOut != int64(len(row.data)) {
					t.Errorf("expected %d bytes out, got %d", len(row.data), dstats.BytesOut)
				}
			})
		}
	}
}

func TestCompress_MatchesSingleEncode(t *testing.T) {
	data := makeTestData(3000, 3)
	opts := Options{ChunkSize: 13}
	dict := trainedDictionary(t, data, opts)

	expect := make([]byte, len(data)*4)
	_, bits, err := dict.Encode(expect, data, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expect = expect[:(bits+7)/8]

	var actual bytes.Buffer
	stats, err := Compress(dict, bytes.NewReader(data), &actual, opts)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if stats.Bits != bits {
		t.Errorf("expected %d bits, got %d", bits, stats.Bits)
	}
	if !bytes.Equal(expect, actual.Bytes()) {
		t.Errorf("chunked output differs from a single Encode call")
	}
}

func TestCompress_UnknownSymbol(t *testing.T) {
	opts := DefaultOptions()
	dict := trainedDictionary(t, []byte("abc"), opts)

	var out bytes.Buffer
	_, err := Compress(dict, bytes.NewReader([]byte("abcd")), &out, opts)
	if !errors.Is(err, huffdict.ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %d bytes", out.Len())
	}
}

func TestDecompress_Truncated(t *testing.T) {
	data := makeTestData(2000, 4)
	opts := Options{ChunkSize: 32}
	dict := trainedDictionary(t, data, opts)

	var packed bytes.Buffer
	if _, err := Compress(dict, bytes.NewReader(data), &packed, opts); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	short := packed.Bytes()[:packed.Len()/2]

	var out bytes.Buffer
	_, err := Decompress(dict, bytes.NewReader(short), &out, dict.Size(), opts)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if !bytes.HasPrefix(data, out.Bytes()) {
		t.Errorf("partial output is not a prefix of the original")
	}
}

func TestDecompress_Uninitialized(t *testing.T) {
	var dict huffdict.Dictionary
	var out bytes.Buffer
	_, err := Decompress(&dict, bytes.NewReader([]byte{0xff}), &out, 1, DefaultOptions())
	if !errors.Is(err, huffdict.ErrUninitialized) {
		t.Errorf("expected ErrUninitialized, got %v", err)
	}
}

func TestOptions_Validate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("default options rejected: %v", err)
	}
	bad := Options{ChunkSize: MinChunkSize - 1}
	if err := bad.Validate(); err == nil {
		t.Error("expected an error for a tiny chunk size")
	}

	var dict huffdict.Dictionary
	if _, err := Train(&dict, bytes.NewReader(nil), bad); err == nil {
		t.Error("Train accepted invalid options")
	}
	if _, err := Compress(&dict, bytes.NewReader(nil), io.Discard, bad); err == nil {
		t.Error("Compress accepted invalid options")
	}
	if _, err := Decompress(&dict, bytes.NewReader(nil), io.Discard, 0, bad); err == nil {
		t.Error("Decompress accepted invalid options")
	}
}

func TestDecompress_LimitBeforeEndOfChunk(t *testing.T) {
	data := bytes.Repeat([]byte("pack my box with five dozen liquor jugs. "), 125)
	opts := DefaultOptions()
	dict := trainedDictionary(t, data, opts)

	var packed bytes.Buffer
	if _, err := Compress(dict, bytes.NewReader(data), &packed, opts); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for _, limit := range []uint64{1, 10, uint64(len(data)) - 1} {
		var out bytes.Buffer
		stats, err := Decompress(dict, bytes.NewReader(packed.Bytes()), &out, limit, opts)
		if err != nil {
			t.Fatalf("limit %d: Decompress failed: %v", limit, err)
		}
		if stats.BytesOut != int64(limit) {
			t.Errorf("limit %d: expected %d bytes out, got %d", limit, limit, stats.BytesOut)
		}
		if !bytes.Equal(data[:limit], out.Bytes()) {
			t.Errorf("limit %d: output is not the first %d bytes of the original", limit, limit)
		}
	}
}

func TestDecompress_DeepTree(t *testing.T) {
	// Leaf 0 sits 100 levels down the right spine, so its code is 100
	// zero bits and spans many 8-byte chunks.
	node := huffdict.NewLeaf(0, 1)
	for i := 1; i <= 100; i++ {
		node = huffdict.NewInternal(huffdict.NewLeaf(byte(i), 1), node)
	}
	dict, err := huffdict.NewDictionary(node)
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	var out bytes.Buffer
	stats, err := Decompress(dict, bytes.NewReader(make([]byte, 64)), &out, 5, Options{ChunkSize: 8})
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if expect := make([]byte, 5); !bytes.Equal(expect, out.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, out.Bytes())
	}
	if stats.Bits != 500 {
		t.Errorf("expected 500 bits, got %d", stats.Bits)
	}

	_, err = Decompress(dict, bytes.NewReader(make([]byte, 64)), io.Discard, 6, Options{ChunkSize: 8})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
