package generate

import "strconv"

// length represents a <field>/<array>/<length> "length" XML attribute,
// which may be a numeric literal, the name of a referenced length
// field, or unspecified.
type length struct {
	str  string
	has  bool
	ival int
}

func lengthUnspecified() length {
	return length{}
}

func lengthFromString(s string) length {
	l := length{str: s, has: true}
	if n, err := strconv.Atoi(s); err == nil {
		l.ival = n
	} else {
		l.ival = -1
	}
	return l
}

func (l length) specified() bool {
	return l.has
}

// asInteger returns the length as an int, or -1 if it isn't a numeric
// literal (e.g. because it refers to another field by name, or is
// unspecified).
func (l length) asInteger() int {
	if !l.has {
		return -1
	}
	return l.ival
}

func (l length) String() string {
	if !l.has {
		return "[unspecified]"
	}
	return l.str
}
