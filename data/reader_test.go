package data

import "testing"

func TestReaderGetByte(t *testing.T) {
	r := NewEoReader([]byte{0x01, 0x02, 0x03})

	for _, want := range []int{0x01, 0x02, 0x03} {
		if got := r.GetByte(); got != want {
			t.Errorf("GetByte() = %d, want %d", got, want)
		}
	}

	if got := r.GetByte(); got != 0 {
		t.Errorf("GetByte() past end = %d, want 0", got)
	}
}

func TestReaderGetBytesClampsToRemaining(t *testing.T) {
	r := NewEoReader([]byte{0x01, 0x02})

	got := r.GetBytes(5)
	want := []byte{0x01, 0x02}

	if string(got) != string(want) {
		t.Errorf("GetBytes(5) = %v, want %v", got, want)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReaderGetCharShortThreeInt(t *testing.T) {
	r := NewEoReader([]byte{0x01, 0x01, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x02})

	if got := r.GetChar(); got != 0 {
		t.Errorf("GetChar() = %d, want 0", got)
	}
	if got := r.GetShort(); got != 253 {
		t.Errorf("GetShort() = %d, want 253", got)
	}
	if got := r.GetThree(); got != 64009 {
		t.Errorf("GetThree() = %d, want 64009", got)
	}
	if got := r.GetInt(); got != 16194277 {
		t.Errorf("GetInt() = %d, want 16194277", got)
	}
}

func TestReaderGetString(t *testing.T) {
	r := NewEoReader([]byte("Hello"))

	if got := r.GetString(); got != "Hello" {
		t.Errorf("GetString() = %q, want %q", got, "Hello")
	}
}

func TestReaderGetFixedString(t *testing.T) {
	r := NewEoReader([]byte("Hello world"))

	got, err := r.GetFixedString(5, false)
	if err != nil {
		t.Fatalf("GetFixedString() error = %v", err)
	}
	if got != "Hello" {
		t.Errorf("GetFixedString() = %q, want %q", got, "Hello")
	}
	if r.Position() != 5 {
		t.Errorf("Position() = %d, want 5", r.Position())
	}
}

func TestReaderGetFixedStringPadded(t *testing.T) {
	r := NewEoReader([]byte{'a', 'b', 0xFF, 0xFF, 0xFF})

	got, err := r.GetFixedString(5, true)
	if err != nil {
		t.Fatalf("GetFixedString() error = %v", err)
	}
	if got != "ab" {
		t.Errorf("GetFixedString() padded = %q, want %q", got, "ab")
	}
}

func TestReaderGetFixedStringNegativeLength(t *testing.T) {
	r := NewEoReader([]byte("hello"))

	if _, err := r.GetFixedString(-1, false); err != ErrNegativeLength {
		t.Errorf("GetFixedString(-1) error = %v, want ErrNegativeLength", err)
	}
}

func TestReaderGetEncodedString(t *testing.T) {
	encoded := []byte("Hello, World!")
	EncodeString(encoded)

	r := NewEoReader(encoded)

	if got := r.GetEncodedString(); got != "Hello, World!" {
		t.Errorf("GetEncodedString() = %q, want %q", got, "Hello, World!")
	}
}

func TestReaderChunkedReadingMode(t *testing.T) {
	r := NewEoReader([]byte{0x01, 0x02, 0xFF, 0x03, 0x04})
	r.SetChunkedReadingMode(true)

	if !r.ChunkedReadingMode() {
		t.Fatalf("ChunkedReadingMode() = false, want true")
	}
	if got := r.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}

	if got := r.GetBytes(2); string(got) != string([]byte{0x01, 0x02}) {
		t.Errorf("GetBytes(2) = %v, want [1 2]", got)
	}
	if got := r.Remaining(); got != 0 {
		t.Errorf("Remaining() at chunk boundary = %d, want 0", got)
	}

	if err := r.NextChunk(); err != nil {
		t.Fatalf("NextChunk() error = %v", err)
	}
	if got := r.Remaining(); got != 2 {
		t.Errorf("Remaining() after NextChunk() = %d, want 2", got)
	}
	if got := r.GetBytes(2); string(got) != string([]byte{0x03, 0x04}) {
		t.Errorf("GetBytes(2) = %v, want [3 4]", got)
	}
}

func TestReaderNextChunkErrorsOutsideChunkedMode(t *testing.T) {
	r := NewEoReader([]byte{0x01})

	if err := r.NextChunk(); err == nil {
		t.Errorf("NextChunk() error = nil, want error")
	}
}

func TestReaderSlice(t *testing.T) {
	r := NewEoReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	r.GetByte()

	s, err := r.Slice(1, 2)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}

	if got := s.GetBytes(10); string(got) != string([]byte{0x02, 0x03}) {
		t.Errorf("Slice(1, 2).GetBytes(10) = %v, want [2 3]", got)
	}

	if r.Position() != 1 {
		t.Errorf("original reader position changed to %d, want 1", r.Position())
	}
}

func TestReaderSliceOutOfBounds(t *testing.T) {
	r := NewEoReader([]byte{0x01, 0x02})

	s, err := r.Slice(10, 10)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	if got := s.Remaining(); got != 0 {
		t.Errorf("out-of-bounds slice Remaining() = %d, want 0", got)
	}
}

func TestReaderSliceNegative(t *testing.T) {
	r := NewEoReader([]byte{0x01})

	if _, err := r.Slice(-1, 1); err != ErrNegativeLength {
		t.Errorf("Slice(-1, 1) error = %v, want ErrNegativeLength", err)
	}
	if _, err := r.Slice(0, -1); err != ErrNegativeLength {
		t.Errorf("Slice(0, -1) error = %v, want ErrNegativeLength", err)
	}
}
