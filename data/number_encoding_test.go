package data

import (
	"reflect"
	"testing"
)

func TestEncodeNumber(t *testing.T) {
	cases := []struct {
		number  int
		encoded [4]byte
	}{
		{0, [4]byte{0x01, 0xFE, 0xFE, 0xFE}},
		{1, [4]byte{0x02, 0xFE, 0xFE, 0xFE}},
		{28, [4]byte{0x1D, 0xFE, 0xFE, 0xFE}},
		{252, [4]byte{0xFD, 0xFE, 0xFE, 0xFE}},
		{253, [4]byte{0x01, 0x02, 0xFE, 0xFE}},
		{254, [4]byte{0x02, 0x02, 0xFE, 0xFE}},
		{12345, [4]byte{0xCA, 0x31, 0xFE, 0xFE}},
		{64008, [4]byte{0xFD, 0xFD, 0xFE, 0xFE}},
		{64009, [4]byte{0x01, 0x01, 0x02, 0xFE}},
		{16194276, [4]byte{0xFD, 0xFD, 0xFD, 0xFE}},
		{16194277, [4]byte{0x01, 0x01, 0x01, 0x02}},
	}

	for _, c := range cases {
		got := EncodeNumber(c.number)
		if got != c.encoded {
			t.Errorf("EncodeNumber(%d) = %v, want %v", c.number, got, c.encoded)
		}
	}
}

func TestDecodeNumber(t *testing.T) {
	cases := []struct {
		encoded []byte
		number  int
	}{
		{[]byte{0x01, 0xFE, 0xFE, 0xFE}, 0},
		{[]byte{0xFD, 0xFE, 0xFE, 0xFE}, 252},
		{[]byte{0x01, 0x02, 0xFE, 0xFE}, 253},
		{[]byte{0xFD, 0xFD, 0xFE, 0xFE}, 64008},
		{[]byte{0x01, 0x01, 0x02, 0xFE}, 64009},
		{[]byte{0xFD, 0xFD, 0xFD, 0xFE}, 16194276},
		{[]byte{0x01, 0x01, 0x01, 0x02}, 16194277},
	}

	for _, c := range cases {
		got := DecodeNumber(c.encoded)
		if got != c.number {
			t.Errorf("DecodeNumber(%v) = %d, want %d", c.encoded, got, c.number)
		}
	}
}

func TestEncodeDecodeNumberRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 252, 253, 64008, 64009, 16194276, 16194277, IntMax - 1} {
		encoded := EncodeNumber(n)
		if got := DecodeNumber(encoded[:]); got != n {
			t.Errorf("round trip of %d = %d", n, got)
		}
	}
}

func TestDecodeNumberStopsAtSentinel(t *testing.T) {
	got := DecodeNumber([]byte{0x02, 0xFE, 0x02, 0x02})
	if got != 1 {
		t.Errorf("DecodeNumber with sentinel = %d, want 1", got)
	}
}

func TestDecodeNumberIgnoresBytesPastFour(t *testing.T) {
	a := DecodeNumber([]byte{0x02, 0x02, 0x02, 0x02, 0x02})
	b := DecodeNumber([]byte{0x02, 0x02, 0x02, 0x02})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("extra bytes changed result: %d vs %d", a, b)
	}
}
