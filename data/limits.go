// Package data implements the EO client/server wire codec: the base-253
// variable-width integer encoding, the reversible string obfuscation, and
// the Reader/Writer cursors that generated protocol code is built on.
package data

// Maximum (exclusive) values for the four EO encoded integer widths. The
// largest valid value of a given type is one less than its max.
const (
	CharMax  = 253
	ShortMax = CharMax * CharMax
	ThreeMax = CharMax * CharMax * CharMax
	IntMax   = CharMax * CharMax * CharMax * CharMax
)

// ByteMax is the maximum (exclusive) value of a raw byte written by
// AddByte: bytes are not base-253 encoded, so the only constraint is
// that the value fits in a single octet.
const ByteMax = 256
