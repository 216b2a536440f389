package data

import "bytes"

// EoReader reads EO data from a byte sequence.
//
// EoReader features a chunked reading mode, which is important for
// accurate emulation of the official game client. See the chunked
// reading documentation at:
// https://github.com/cirras/eo-protocol/blob/master/docs/chunks.md
type EoReader struct {
	data              []byte
	position          int
	chunkedReadingMode bool
	chunkStart        int
	nextBreak         int
}

// NewEoReader creates a new EoReader for the given data. The reader does
// not copy the slice; callers must not mutate it while the reader (or any
// reader derived from it via Slice) is in use.
func NewEoReader(data []byte) *EoReader {
	return &EoReader{data: data, nextBreak: -1}
}

// Slice creates a new EoReader whose input data is a shared subsequence
// of this reader's data, starting at index and containing up to length
// bytes. The new reader's position is zero and its chunked reading mode
// is disabled; it is independent of the parent reader going forward.
func (r *EoReader) Slice(index, length int) (*EoReader, error) {
	if index < 0 {
		return nil, ErrNegativeLength
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}

	begin := clamp(index, 0, len(r.data))
	end := begin + min(len(r.data)-begin, length)

	return NewEoReader(r.data[begin:end]), nil
}

// SliceFromPosition is equivalent to Slice(r.Position(), r.Remaining()).
func (r *EoReader) SliceFromPosition() (*EoReader, error) {
	return r.Slice(r.Position(), r.Remaining())
}

// GetByte reads a raw byte from the input data. Returns 0 if no bytes
// remain; over-reads are never an error (§7, reader over-read).
func (r *EoReader) GetByte() int {
	if r.Remaining() > 0 {
		b := r.data[r.position]
		r.position++
		return int(b)
	}
	return 0
}

// GetBytes reads an array of raw bytes from the input data, clamped to
// the bytes remaining in the current chunk/reader.
func (r *EoReader) GetBytes(length int) []byte {
	return r.readBytes(length)
}

// GetChar reads an encoded 1-byte integer from the input data.
func (r *EoReader) GetChar() int {
	return DecodeNumber(r.readBytes(1))
}

// GetShort reads an encoded 2-byte integer from the input data.
func (r *EoReader) GetShort() int {
	return DecodeNumber(r.readBytes(2))
}

// GetThree reads an encoded 3-byte integer from the input data.
func (r *EoReader) GetThree() int {
	return DecodeNumber(r.readBytes(3))
}

// GetInt reads an encoded 4-byte integer from the input data.
func (r *EoReader) GetInt() int {
	return DecodeNumber(r.readBytes(4))
}

// GetString reads a string from the input data, consuming all remaining
// bytes in the current chunk (or the whole reader outside chunked mode).
func (r *EoReader) GetString() string {
	return decodeANSI(r.readBytes(r.Remaining()))
}

// GetFixedString reads a string with a fixed length from the input data.
// If padded, a trailing run starting at the first 0xFF byte is stripped.
func (r *EoReader) GetFixedString(length int, padded bool) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	b := r.readBytes(length)
	if padded {
		b = removePadding(b)
	}
	return decodeANSI(b), nil
}

// GetEncodedString reads an encoded string, consuming all remaining bytes
// in the current chunk/reader, then decodes it per the string
// obfuscation scheme.
func (r *EoReader) GetEncodedString() string {
	b := r.readBytes(r.Remaining())
	DecodeString(b)
	return decodeANSI(b)
}

// GetFixedEncodedString reads an encoded string with a fixed length, then
// decodes it per the string obfuscation scheme.
func (r *EoReader) GetFixedEncodedString(length int, padded bool) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	b := r.readBytes(length)
	DecodeString(b)
	if padded {
		b = removePadding(b)
	}
	return decodeANSI(b), nil
}

// ChunkedReadingMode reports whether chunked reading mode is enabled.
func (r *EoReader) ChunkedReadingMode() bool {
	return r.chunkedReadingMode
}

// SetChunkedReadingMode enables or disables chunked reading mode.
//
// In chunked reading mode:
//   - The reader treats 0xFF bytes as the end of the current chunk.
//   - NextChunk can be called to move to the next chunk.
func (r *EoReader) SetChunkedReadingMode(enabled bool) {
	r.chunkedReadingMode = enabled
	if r.nextBreak == -1 {
		r.nextBreak = r.findNextBreakIndex()
	}
}

// Remaining reports the number of bytes remaining in the current chunk if
// chunked reading mode is enabled, otherwise the total number of bytes
// remaining in the input data.
func (r *EoReader) Remaining() int {
	if r.chunkedReadingMode {
		return r.nextBreak - min(r.position, r.nextBreak)
	}
	return len(r.data) - r.position
}

// NextChunk moves the reader position to the start of the next chunk in
// the input data.
func (r *EoReader) NextChunk() error {
	if !r.chunkedReadingMode {
		return errNotChunkedReadingMode
	}

	r.position = r.nextBreak
	if r.position < len(r.data) {
		r.position++ // skip the break byte
	}

	r.chunkStart = r.position
	r.nextBreak = r.findNextBreakIndex()

	return nil
}

// Position reports the current position in the input data.
func (r *EoReader) Position() int {
	return r.position
}

func (r *EoReader) readBytes(length int) []byte {
	if length > r.Remaining() {
		length = r.Remaining()
	}

	result := make([]byte, length)
	copy(result, r.data[r.position:r.position+length])
	r.position += length

	return result
}

func (r *EoReader) findNextBreakIndex() int {
	idx := bytes.IndexByte(r.data[r.chunkStart:], 0xFF)
	if idx == -1 {
		return len(r.data)
	}
	return r.chunkStart + idx
}

func removePadding(b []byte) []byte {
	idx := bytes.IndexByte(b, 0xFF)
	if idx != -1 {
		return b[:idx]
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
