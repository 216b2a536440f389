package encrypt

import "testing"

func TestInterleave(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	want := []byte{0, 5, 1, 4, 2, 3}

	Interleave(data)

	if string(data) != string(want) {
		t.Errorf("Interleave() = %v, want %v", data, want)
	}
}

func TestInterleaveOddLength(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	want := []byte{0, 4, 1, 3, 2}

	Interleave(data)

	if string(data) != string(want) {
		t.Errorf("Interleave() = %v, want %v", data, want)
	}
}

func TestDeinterleave(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	want := []byte{0, 2, 4, 5, 3, 1}

	Deinterleave(data)

	if string(data) != string(want) {
		t.Errorf("Deinterleave() = %v, want %v", data, want)
	}
}

func TestInterleaveDeinterleaveRoundTrip(t *testing.T) {
	for _, data := range [][]byte{
		{0, 1, 2, 3, 4, 5},
		{0, 1, 2, 3, 4},
		{},
		{1},
	} {
		original := append([]byte(nil), data...)
		Interleave(data)
		Deinterleave(data)

		if string(data) != string(original) {
			t.Errorf("round trip of %v = %v", original, data)
		}
	}
}

func TestFlipMSB(t *testing.T) {
	data := []byte{0, 1, 127, 128, 129, 254, 255}
	want := []byte{0, 129, 255, 128, 1, 126, 127}

	FlipMSB(data)

	if string(data) != string(want) {
		t.Errorf("FlipMSB() = %v, want %v", data, want)
	}
}

func TestFlipMSBSelfInverse(t *testing.T) {
	data := []byte{0, 1, 127, 128, 129, 254, 255}
	original := append([]byte(nil), data...)

	FlipMSB(data)
	FlipMSB(data)

	if string(data) != string(original) {
		t.Errorf("FlipMSB twice = %v, want %v", data, original)
	}
}

func TestSwapMultiples(t *testing.T) {
	data := []byte{10, 21, 27}
	want := []byte{10, 27, 21}

	if err := SwapMultiples(data, 3); err != nil {
		t.Fatalf("SwapMultiples() error = %v", err)
	}

	if string(data) != string(want) {
		t.Errorf("SwapMultiples() = %v, want %v", data, want)
	}
}

func TestSwapMultiplesZero(t *testing.T) {
	data := []byte{10, 21, 27}
	want := append([]byte(nil), data...)

	if err := SwapMultiples(data, 0); err != nil {
		t.Fatalf("SwapMultiples() error = %v", err)
	}

	if string(data) != string(want) {
		t.Errorf("SwapMultiples(0) changed data: %v, want %v", data, want)
	}
}

func TestSwapMultiplesNegative(t *testing.T) {
	data := []byte{10, 21, 27}

	if err := SwapMultiples(data, -1); err == nil {
		t.Errorf("SwapMultiples(-1) error = nil, want error")
	}
}
