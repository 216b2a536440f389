package data

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// decodeANSI decodes windows-1252 bytes to a string. Undefined code points
// decode to the Unicode replacement character, mirroring Python's
// `bytes.decode('windows-1252', 'replace')`.
func decodeANSI(bytes []byte) string {
	decoded, _ := encoding.ReplaceUnsupported(charmap.Windows1252.NewDecoder()).Bytes(bytes)
	return string(decoded)
}

// encodeANSI encodes a string to windows-1252 bytes. Runes with no
// windows-1252 representation are replaced, mirroring Python's
// `str.encode('windows-1252', 'replace')`.
func encodeANSI(s string) []byte {
	encoded, _ := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).Bytes([]byte(s))
	return encoded
}
