package data

import "testing"

func TestEncodeString(t *testing.T) {
	input := []byte("Hello, World!")
	want := []byte{0x21, 0x3B, 0x61, 0x2D, 0x5E, 0x48, 0x20, 0x73, 0x5E, 0x33, 0x61, 0x3A, 0x29}

	got := append([]byte(nil), input...)
	EncodeString(got)

	if string(got) != string(want) {
		t.Errorf("EncodeString(%q) = %v, want %v", input, got, want)
	}
}

func TestDecodeString(t *testing.T) {
	input := []byte("Hello, World!")
	encoded := append([]byte(nil), input...)
	EncodeString(encoded)

	DecodeString(encoded)

	if string(encoded) != string(input) {
		t.Errorf("DecodeString(EncodeString(%q)) = %q, want %q", input, encoded, input)
	}
}

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "Hello, World!", "foo bar baz qux"} {
		b := []byte(s)
		EncodeString(b)
		DecodeString(b)
		if string(b) != s {
			t.Errorf("round trip of %q = %q", s, b)
		}
	}
}
