package generate

// dataType describes an EO wire type as understood by the code
// generator: its name, its fixed size in bytes (if any), and whether it
// is "bounded" (has a statically knowable maximum size).
type dataType interface {
	Name() string
	FixedSize() (int, bool)
	Bounded() bool
}

// basicType marks the primitive wire types the generator knows how to
// read and write directly (as opposed to custom struct/enum types).
type basicType interface {
	dataType
	isBasicType()
}

// hasUnderlyingType is implemented by types that may be backed by a
// different wire representation than their logical name suggests
// (bools and enums are both backed by an integer type).
type hasUnderlyingType interface {
	dataType
	UnderlyingType() dataType
}

// customType marks struct and enum types, which are defined in schema
// files rather than being built in.
type customType interface {
	dataType
	SourcePath() string
}

// integerType is one of the four EO integer widths: byte, char, short,
// three, or int.
type integerType struct {
	name string
	size int
}

func (t *integerType) Name() string             { return t.name }
func (t *integerType) FixedSize() (int, bool)    { return t.size, true }
func (t *integerType) Bounded() bool             { return true }
func (t *integerType) isBasicType()              {}

// boolType is an integer type that is exposed to generated code as a
// Go bool.
type boolType struct {
	underlying dataType
}

func (t *boolType) Name() string          { return "bool" }
func (t *boolType) Bounded() bool         { return true }
func (t *boolType) isBasicType()          {}
func (t *boolType) UnderlyingType() dataType { return t.underlying }
func (t *boolType) FixedSize() (int, bool) { return t.underlying.FixedSize() }

// stringType is either "string" or "encoded_string", optionally with a
// fixed length.
type stringType struct {
	name   string
	length length
}

func (t *stringType) Name() string { return t.name }
func (t *stringType) Bounded() bool { return t.length.specified() }
func (t *stringType) isBasicType()  {}
func (t *stringType) FixedSize() (int, bool) {
	if n := t.length.asInteger(); n >= 0 {
		return n, true
	}
	return 0, false
}

// blobType consumes the remainder of the input; it has no fixed size
// and is never bounded.
type blobType struct{}

func (t *blobType) Name() string             { return "blob" }
func (t *blobType) Bounded() bool            { return false }
func (t *blobType) isBasicType()             {}
func (t *blobType) FixedSize() (int, bool)   { return 0, false }

// enumValue is a single named, ordinal-valued member of an enumType.
type enumValue struct {
	ordinal int
	name    string
	goName  string
}

// enumType is a custom type backed by an integer type, whose values are
// named in the schema.
type enumType struct {
	name       string
	sourcePath string
	underlying dataType
	values     []enumValue
}

func (t *enumType) Name() string             { return t.name }
func (t *enumType) SourcePath() string       { return t.sourcePath }
func (t *enumType) Bounded() bool            { return t.underlying.Bounded() }
func (t *enumType) UnderlyingType() dataType { return t.underlying }
func (t *enumType) FixedSize() (int, bool)   { return t.underlying.FixedSize() }

func (t *enumType) valueByOrdinal(ordinal int) *enumValue {
	for i := range t.values {
		if t.values[i].ordinal == ordinal {
			return &t.values[i]
		}
	}
	return nil
}

func (t *enumType) valueByName(name string) *enumValue {
	for i := range t.values {
		if t.values[i].name == name {
			return &t.values[i]
		}
	}
	return nil
}

// structType is a custom type whose shape is defined by a <struct> or
// <packet> schema element.
type structType struct {
	name       string
	fixedSize  int
	hasFixed   bool
	bounded    bool
	sourcePath string
}

func (t *structType) Name() string       { return t.name }
func (t *structType) SourcePath() string { return t.sourcePath }
func (t *structType) Bounded() bool      { return t.bounded }
func (t *structType) FixedSize() (int, bool) {
	return t.fixedSize, t.hasFixed
}
