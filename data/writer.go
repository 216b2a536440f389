package data

// EoWriter writes EO data to a growable byte buffer.
type EoWriter struct {
	data                   []byte
	stringSanitizationMode bool
}

// NewEoWriter creates an empty EoWriter.
func NewEoWriter() *EoWriter {
	return &EoWriter{}
}

// AddByte adds a raw byte to the writer's data.
func (w *EoWriter) AddByte(value int) error {
	if value < 0 || value >= ByteMax {
		return &ValueOutOfBoundsError{Value: value, Max: ByteMax - 1}
	}
	w.data = append(w.data, byte(value))
	return nil
}

// AddBytes adds an array of raw bytes to the writer's data.
func (w *EoWriter) AddBytes(bytes []byte) {
	w.data = append(w.data, bytes...)
}

// AddChar adds an encoded 1-byte integer to the writer's data.
func (w *EoWriter) AddChar(number int) error {
	return w.addNumber(number, CharMax, 1)
}

// AddShort adds an encoded 2-byte integer to the writer's data.
func (w *EoWriter) AddShort(number int) error {
	return w.addNumber(number, ShortMax, 2)
}

// AddThree adds an encoded 3-byte integer to the writer's data.
func (w *EoWriter) AddThree(number int) error {
	return w.addNumber(number, ThreeMax, 3)
}

// AddInt adds an encoded 4-byte integer to the writer's data.
func (w *EoWriter) AddInt(number int) error {
	return w.addNumber(number, IntMax, 4)
}

// AddString adds a string to the writer's data.
func (w *EoWriter) AddString(s string) {
	w.AddBytes(w.sanitize(encodeANSI(s)))
}

// AddFixedString adds a fixed-length string to the writer's data. If
// padded, the string may be shorter than length; it is padded out to
// length with trailing 0xFF bytes.
func (w *EoWriter) AddFixedString(s string, length int, padded bool) error {
	if err := checkStringLength(s, length, padded); err != nil {
		return err
	}

	b := w.sanitize(encodeANSI(s))
	if padded {
		b = addPadding(b, length)
	}

	w.AddBytes(b)
	return nil
}

// AddEncodedString adds an encoded string to the writer's data.
func (w *EoWriter) AddEncodedString(s string) {
	b := w.sanitize(encodeANSI(s))
	EncodeString(b)
	w.AddBytes(b)
}

// AddFixedEncodedString adds a fixed-length encoded string to the
// writer's data. If padded, the string may be shorter than length; it is
// padded out to length with trailing 0xFF bytes.
func (w *EoWriter) AddFixedEncodedString(s string, length int, padded bool) error {
	if err := checkStringLength(s, length, padded); err != nil {
		return err
	}

	b := w.sanitize(encodeANSI(s))
	if padded {
		b = addPadding(b, length)
	}
	EncodeString(b)

	w.AddBytes(b)
	return nil
}

// StringSanitizationMode reports whether string sanitization mode is
// enabled.
func (w *EoWriter) StringSanitizationMode() bool {
	return w.stringSanitizationMode
}

// SetStringSanitizationMode enables or disables string sanitization
// mode. When enabled, the writer replaces any raw 0xFF byte ('ÿ') in a
// string with 0x79 ('y') before writing it, since 0xFF is a
// meaningful control byte elsewhere in the protocol (chunk/padding
// delimiter).
func (w *EoWriter) SetStringSanitizationMode(enabled bool) {
	w.stringSanitizationMode = enabled
}

// Len returns the number of bytes that have been written to the writer.
func (w *EoWriter) Len() int {
	return len(w.data)
}

// ToBytes returns a copy of the writer's underlying data.
func (w *EoWriter) ToBytes() []byte {
	result := make([]byte, len(w.data))
	copy(result, w.data)
	return result
}

func (w *EoWriter) addNumber(number, limit, width int) error {
	if number < 0 || number >= limit {
		return &ValueOutOfBoundsError{Value: number, Max: limit - 1}
	}

	encoded := EncodeNumber(number)
	w.AddBytes(encoded[:width])
	return nil
}

func (w *EoWriter) sanitize(b []byte) []byte {
	if !w.stringSanitizationMode {
		return b
	}

	result := make([]byte, len(b))
	copy(result, b)
	for i, c := range result {
		if c == 0xFF {
			result[i] = 'y'
		}
	}
	return result
}

func checkStringLength(s string, length int, padded bool) error {
	encoded := encodeANSI(s)
	if padded {
		if len(encoded) > length {
			return &StringLengthError{String: s, Expected: length, Padded: true}
		}
	} else if len(encoded) != length {
		return &StringLengthError{String: s, Expected: length, Padded: false}
	}
	return nil
}

func addPadding(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	result := make([]byte, length)
	copy(result, b)
	for i := len(b); i < length; i++ {
		result[i] = 0xFF
	}
	return result
}
