package rle

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestEncodeRecords(t *testing.T) {
	tests := []struct {
		name string
		src  []uint32
		want []uint32
	}{
		{"empty", nil, nil},
		{"single", []uint32{7}, []uint32{1 | Flag, 7}},
		{"solid", []uint32{5, 5, 5, 5}, []uint32{4, 5}},
		{"pair", []uint32{5, 5}, []uint32{2, 5}},
		{"literal then solid", []uint32{1, 2, 3, 9, 9, 9}, []uint32{3 | Flag, 1, 2, 3, 3, 9}},
		{"literal absorbs pair", []uint32{1, 2, 2, 3}, []uint32{4 | Flag, 1, 2, 2, 3}},
		{"solid then literal", []uint32{4, 4, 4, 1, 2}, []uint32{3, 4, 2 | Flag, 1, 2}},
		{"alternating", []uint32{1, 2, 1, 2, 1, 2}, []uint32{6 | Flag, 1, 2, 1, 2, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(nil, tt.src)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 300; n++ {
		size := 1 + rng.IntN(300)
		src := make([]uint32, size)
		// Small alphabets produce a mix of runs and literals.
		alphabet := uint32(1 + rng.IntN(4))
		for i := range src {
			if i > 0 && rng.IntN(3) == 0 {
				src[i] = src[i-1]
				continue
			}
			src[i] = rng.Uint32N(alphabet) * 0x01010101
		}

		enc := Encode(nil, src)
		dst := make([]uint32, size)
		used, err := Decode(dst, enc)
		if err != nil {
			t.Fatalf("Decode() error = %v for %v", err, src)
		}
		if used != len(enc) {
			t.Errorf("Decode() consumed %d words, want %d", used, len(enc))
		}
		if !slices.Equal(dst, src) {
			t.Fatalf("round trip mismatch:\n got %v\nwant %v", dst, src)
		}
	}
}

func TestEncodeAppends(t *testing.T) {
	prefix := []uint32{42}
	got := Encode(prefix, []uint32{3, 3, 3})
	want := []uint32{42, 3, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Encode(prefix, ...) = %v, want %v", got, want)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	tests := []struct {
		name string
		n    int
		data []uint32
	}{
		{"empty stream", 4, nil},
		{"short", 4, []uint32{3, 1}},
		{"overrun solid", 2, []uint32{3, 1}},
		{"overrun literal", 2, []uint32{3 | Flag, 1, 2, 3}},
		{"zero count", 2, []uint32{0, 1}},
		{"truncated literal", 3, []uint32{3 | Flag, 1, 2}},
		{"truncated solid", 3, []uint32{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(make([]uint32, tt.n), tt.data)
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Decode() error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestDecodeStopsAtPixelCount(t *testing.T) {
	// Two streams back to back: the first Decode must stop after its own.
	data := Encode(nil, []uint32{1, 1, 1})
	data = Encode(data, []uint32{2, 3})
	first := make([]uint32, 3)
	used, err := Decode(first, data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	second := make([]uint32, 2)
	if _, err := Decode(second, data[used:]); err != nil {
		t.Fatalf("Decode() second error = %v", err)
	}
	if !slices.Equal(second, []uint32{2, 3}) {
		t.Errorf("second stream = %v, want [2 3]", second)
	}
}

func TestDecoderReusesScratch(t *testing.T) {
	var d Decoder
	a, _, err := d.Decode(Encode(nil, []uint32{9, 9, 9, 9}), 4)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, []uint32{9, 9, 9, 9}) {
		t.Errorf("Decode() = %v", a)
	}
	b, _, err := d.Decode(Encode(nil, []uint32{1, 2}), 2)
	if err != nil {
		t.Fatal(err)
	}
	if &a[0] != &b[0] {
		t.Error("Decoder allocated a new buffer for a smaller row")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	words := Encode(nil, []uint32{0xAABBCCDD, 0xAABBCCDD, 1, 2})
	b := AppendBytes(nil, words)
	if len(b) != len(words)*4 {
		t.Fatalf("AppendBytes() len = %d, want %d", len(b), len(words)*4)
	}
	if b[0] != 2 || b[4] != 0xDD {
		t.Errorf("AppendBytes() not little-endian: % x", b[:8])
	}
	got, err := Words(b)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, words) {
		t.Errorf("Words() = %v, want %v", got, words)
	}
	if _, err := Words(b[:5]); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Words(partial) error = %v, want ErrCorrupt", err)
	}
}

func BenchmarkEncode(b *testing.B) {
	src := make([]uint32, 256)
	for i := range src {
		src[i] = uint32(i / 7)
	}
	buf := make([]uint32, 0, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = Encode(buf[:0], src)
	}
}
