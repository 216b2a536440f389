package data

import "testing"

func TestWriterAddByte(t *testing.T) {
	w := NewEoWriter()
	if err := w.AddByte(0x01); err != nil {
		t.Fatalf("AddByte(0x01) error = %v", err)
	}
	if err := w.AddByte(0x02); err != nil {
		t.Fatalf("AddByte(0x02) error = %v", err)
	}

	want := []byte{0x01, 0x02}
	if got := w.ToBytes(); string(got) != string(want) {
		t.Errorf("ToBytes() = %v, want %v", got, want)
	}
}

func TestWriterAddByteOutOfBounds(t *testing.T) {
	w := NewEoWriter()

	err := w.AddByte(ByteMax)
	if err == nil {
		t.Fatalf("AddByte(ByteMax) error = nil, want error")
	}
	if _, ok := err.(*ValueOutOfBoundsError); !ok {
		t.Errorf("AddByte(ByteMax) error type = %T, want *ValueOutOfBoundsError", err)
	}
}

func TestWriterAddByteNegative(t *testing.T) {
	w := NewEoWriter()

	if err := w.AddByte(-1); err == nil {
		t.Errorf("AddByte(-1) error = nil, want error")
	}
}

func TestWriterAddCharShortThreeInt(t *testing.T) {
	w := NewEoWriter()

	if err := w.AddChar(0); err != nil {
		t.Fatalf("AddChar(0) error = %v", err)
	}
	if err := w.AddShort(253); err != nil {
		t.Fatalf("AddShort(253) error = %v", err)
	}
	if err := w.AddThree(64009); err != nil {
		t.Fatalf("AddThree(64009) error = %v", err)
	}
	if err := w.AddInt(16194277); err != nil {
		t.Fatalf("AddInt(16194277) error = %v", err)
	}

	want := []byte{0x01, 0x01, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x02}
	if got := w.ToBytes(); string(got) != string(want) {
		t.Errorf("ToBytes() = %v, want %v", got, want)
	}
}

func TestWriterAddCharOutOfBounds(t *testing.T) {
	w := NewEoWriter()

	err := w.AddChar(CharMax)
	if err == nil {
		t.Fatalf("AddChar(CharMax) error = nil, want error")
	}

	if _, ok := err.(*ValueOutOfBoundsError); !ok {
		t.Errorf("AddChar(CharMax) error type = %T, want *ValueOutOfBoundsError", err)
	}
}

func TestWriterAddCharNegative(t *testing.T) {
	w := NewEoWriter()

	if err := w.AddChar(-1); err == nil {
		t.Errorf("AddChar(-1) error = nil, want error")
	}
}

func TestWriterAddString(t *testing.T) {
	w := NewEoWriter()
	w.AddString("foo")

	if got := string(w.ToBytes()); got != "foo" {
		t.Errorf("ToBytes() = %q, want %q", got, "foo")
	}
}

func TestWriterAddFixedString(t *testing.T) {
	w := NewEoWriter()
	if err := w.AddFixedString("foo", 3, false); err != nil {
		t.Fatalf("AddFixedString() error = %v", err)
	}

	if got := string(w.ToBytes()); got != "foo" {
		t.Errorf("ToBytes() = %q, want %q", got, "foo")
	}
}

func TestWriterAddFixedStringPadded(t *testing.T) {
	w := NewEoWriter()
	if err := w.AddFixedString("foo", 5, true); err != nil {
		t.Fatalf("AddFixedString() error = %v", err)
	}

	want := []byte{'f', 'o', 'o', 0xFF, 0xFF}
	if got := w.ToBytes(); string(got) != string(want) {
		t.Errorf("ToBytes() = %v, want %v", got, want)
	}
}

func TestWriterAddFixedStringWrongLength(t *testing.T) {
	w := NewEoWriter()

	if err := w.AddFixedString("foo", 4, false); err == nil {
		t.Errorf("AddFixedString() error = nil, want error")
	}
}

func TestWriterAddFixedStringPaddedTooLong(t *testing.T) {
	w := NewEoWriter()

	if err := w.AddFixedString("foobar", 3, true); err == nil {
		t.Errorf("AddFixedString() error = nil, want error")
	}
}

func TestWriterAddEncodedString(t *testing.T) {
	w := NewEoWriter()
	w.AddEncodedString("Hello, World!")

	want := append([]byte(nil), []byte("Hello, World!")...)
	EncodeString(want)

	if got := w.ToBytes(); string(got) != string(want) {
		t.Errorf("ToBytes() = %v, want %v", got, want)
	}
}

func TestWriterStringSanitizationMode(t *testing.T) {
	w := NewEoWriter()
	w.SetStringSanitizationMode(true)

	w.AddString("ÿ")

	want := []byte{'y'}
	if got := w.ToBytes(); string(got) != string(want) {
		t.Errorf("ToBytes() = %v, want %v", got, want)
	}
}

func TestWriterLen(t *testing.T) {
	w := NewEoWriter()
	w.AddBytes([]byte{1, 2, 3})

	if got := w.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
