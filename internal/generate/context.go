package generate

import (
	"fmt"
	"sort"
)

// fieldData records what a generateContext needs to remember about a
// field once it has been declared, so that later instructions (a
// <length> referencing it, a <switch> keyed on it) can find it again.
type fieldData struct {
	name        string
	fieldType   dataType
	offset      int
	isArray     bool
	goName      string
	storageName string
}

// generateContext tracks the state that accumulates while walking the
// instructions of a single struct, packet, or switch case body.
type generateContext struct {
	chunkedReadingEnabled  bool
	reachedOptionalField   bool
	reachedDummy           bool
	needsOldWriterLength   bool
	accessibleFields       map[string]fieldData
	lengthFieldReferenced  map[string]bool
}

// checkLengthFieldsReferenced reports an error naming the first length
// field (in alphabetical order) declared in this scope but never
// referenced by a field/array "length" attribute, mirroring a dangling
// array reference: the field exists on the wire contract but nothing
// says what it measures.
func (c *generateContext) checkLengthFieldsReferenced() error {
	names := make([]string, 0, len(c.lengthFieldReferenced))
	for name := range c.lengthFieldReferenced {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !c.lengthFieldReferenced[name] {
			return fmt.Errorf("length field %q is never referenced by a field or array", name)
		}
	}
	return nil
}

func newGenerateContext() *generateContext {
	return &generateContext{
		accessibleFields:      map[string]fieldData{},
		lengthFieldReferenced: map[string]bool{},
	}
}

// clone produces an independent copy for use while generating a switch
// case, mirroring the source's use of a deep copy per case so that
// sibling cases don't see each other's fields.
func (c *generateContext) clone() *generateContext {
	clone := &generateContext{
		chunkedReadingEnabled: c.chunkedReadingEnabled,
		reachedOptionalField:  c.reachedOptionalField,
		reachedDummy:          c.reachedDummy,
		needsOldWriterLength:  c.needsOldWriterLength,
		accessibleFields:      map[string]fieldData{},
		lengthFieldReferenced: map[string]bool{},
	}
	for k, v := range c.accessibleFields {
		clone.accessibleFields[k] = v
	}
	for k, v := range c.lengthFieldReferenced {
		clone.lengthFieldReferenced[k] = v
	}
	return clone
}

// objectData is the work-in-progress output of generating a single Go
// struct: its field declarations and the bodies of its Serialize and
// Deserialize methods, plus any auxiliary types (switch case structs)
// it needed along the way.
type objectData struct {
	typeName     string
	implements   []string
	fields       *codeBuilder
	extraMethods *codeBuilder
	serialize    *codeBuilder
	deserialize  *codeBuilder
	auxiliary    *codeBuilder
	doc          string
}

func newObjectData(typeName string) *objectData {
	return &objectData{
		typeName:     typeName,
		fields:       newCodeBuilder(),
		extraMethods: newCodeBuilder(),
		serialize:    newCodeBuilder(),
		deserialize:  newCodeBuilder(),
		auxiliary:    newCodeBuilder(),
	}
}
