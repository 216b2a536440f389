package generate

import "fmt"

// objectGenerator walks the <field>/<array>/<length>/<dummy>/<switch>/
// <chunked>/<break> instructions of a struct, packet, or switch case and
// assembles the Go struct, and its Serialize/Deserialize methods, that
// implement them.
type objectGenerator struct {
	typeFactory *typeFactory
	context     *generateContext
	data        *objectData
	tempVarSeq  int
}

// tempVar returns a fresh, unique local variable name prefixed with
// base, so that sibling fields generating similarly-shaped statements
// (e.g. two struct-typed fields in a row) never redeclare the same
// name in the same block.
func (g *objectGenerator) tempVar(base string) string {
	g.tempVarSeq++
	return fmt.Sprintf("%s%d", base, g.tempVarSeq)
}

func newObjectGenerator(typeName string, tf *typeFactory, ctx *generateContext) *objectGenerator {
	if ctx == nil {
		ctx = newGenerateContext()
	}
	return &objectGenerator{typeFactory: tf, context: ctx, data: newObjectData(typeName)}
}

// generateInstruction dispatches a single schema instruction element to
// the appropriate generation step.
func (g *objectGenerator) generateInstruction(node *xmlNode) error {
	if g.context.reachedDummy {
		return fmt.Errorf("<dummy> elements must not be followed by any other elements")
	}

	switch node.tag() {
	case "field":
		return g.generateField(node)
	case "array":
		return g.generateArray(node)
	case "length":
		return g.generateLength(node)
	case "dummy":
		return g.generateDummy(node)
	case "switch":
		return g.generateSwitch(node)
	case "chunked":
		return g.generateChunked(node)
	case "break":
		return g.generateBreak()
	}
	return nil
}

func (g *objectGenerator) checkOptionalField(optional bool) error {
	if g.context.reachedOptionalField && !optional {
		return fmt.Errorf("optional fields may not be followed by non-optional fields")
	}
	return nil
}

func (g *objectGenerator) resolveType(node *xmlNode) (dataType, length, error) {
	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return nil, length{}, err
	}
	l := createTypeLengthForField(node)
	t, err := g.typeFactory.GetType(typeName, l)
	return t, l, err
}

func fieldGoType(t dataType, isArray, optional bool) (string, error) {
	base, err := goTypeName(t)
	if err != nil {
		return "", err
	}
	if isArray {
		return "[]" + base, nil
	}
	if optional && base[0] != '*' {
		return "*" + base, nil
	}
	return base, nil
}

func (g *objectGenerator) generateField(node *xmlNode) error {
	optional := node.boolAttr("optional", false)
	if err := g.checkOptionalField(optional); err != nil {
		return err
	}

	name, _ := node.attr("name")
	t, l, err := g.resolveType(node)
	if err != nil {
		return err
	}
	padded := node.boolAttr("padded", false)
	hardcoded := node.text()

	if name == "" {
		if hardcoded == "" {
			return fmt.Errorf("unnamed fields must specify a hardcoded field value")
		}
		// Unnamed hardcoded fields only contribute serialize/deserialize
		// statements; see generateHardcodedField.
		return g.generateHardcodedField(t, l, hardcoded, padded)
	}

	goName := snakeToPascal(name)
	goType, err := fieldGoType(t, false, optional)
	if err != nil {
		return err
	}
	storageName := unexported(goName)

	lengthExpr := ""
	lengthStorage := ""
	if l.specified() {
		lengthExpr, lengthStorage, err = g.resolveLength(l)
		if err != nil {
			return err
		}
	}

	g.context.accessibleFields[name] = fieldData{
		name: name, fieldType: t, isArray: false, goName: goName, storageName: storageName,
	}
	g.data.fields.Line("%s %s", storageName, goType)

	notice := deprecationNotice(g.data.typeName, goName)
	g.generateAccessors(goName, storageName, goType, notice, lengthStorage)

	// A struct field's Go type is already a pointer (matching
	// DeserializeXxx's return type), so an optional struct field needs
	// no extra allocation or dereferencing: nil already means absent.
	structLike := isStructField(t)

	target := "result." + storageName
	valueExpr := "result." + storageName
	if optional && !structLike {
		target = "(*result." + storageName + ")"
		valueExpr = "*result." + storageName
	}

	if optional {
		g.beginOptionalGuard(storageName)
		defer g.endOptionalGuard()
	}

	if optional && !structLike {
		g.data.deserialize.Line("result.%s = new(%s)", storageName, mustDeref(goType))
	}

	if err := g.writeValue(t, valueExpr, lengthExpr, padded); err != nil {
		return err
	}
	if err := g.readValue(t, target, lengthExpr, padded); err != nil {
		return err
	}

	if optional {
		g.context.reachedOptionalField = true
	}

	return nil
}

// generateAccessors emits the read-only accessor every named field gets,
// and a writer accessor alongside it. When lengthStorage names the
// unexported storage field of a paired length field, the writer
// accessor also re-syncs it to len(value), mirroring the source's
// setter-side length bookkeeping.
func (g *objectGenerator) generateAccessors(goName, storageName, goType, notice, lengthStorage string) {
	typeName := g.data.typeName

	getter := newCodeBuilder()
	if notice != "" {
		getter.Line("// %s", notice)
	}
	getter.BeginBlock("func (v *%s) %s() %s", typeName, goName, goType)
	getter.Line("return v.%s", storageName)
	getter.EndBlock()
	g.data.extraMethods.Append(getter)
	g.data.extraMethods.Blank()

	setter := newCodeBuilder()
	if notice != "" {
		setter.Line("// %s", notice)
	}
	setter.BeginBlock("func (v *%s) Set%s(%s %s)", typeName, goName, storageName, goType)
	setter.Line("v.%s = %s", storageName, storageName)
	if lengthStorage != "" {
		setter.Line("v.%s = len(%s)", lengthStorage, storageName)
	}
	setter.EndBlock()
	g.data.extraMethods.Append(setter)
	g.data.extraMethods.Blank()
}

// isStructField reports whether t (after resolving any underlying-type
// override) is a struct/packet type, whose Go representation is already
// a pointer.
func isStructField(t dataType) bool {
	real := t
	if u, ok := t.(hasUnderlyingType); ok {
		real = u.UnderlyingType()
	}
	_, ok := real.(*structType)
	return ok
}

func mustDeref(goType string) string {
	if len(goType) > 0 && goType[0] == '*' {
		return goType[1:]
	}
	return goType
}

// beginOptionalGuard wraps subsequent serialize/deserialize statements
// in a nil/remaining-bytes check. The caller must pair this with
// endOptionalGuard.
func (g *objectGenerator) beginOptionalGuard(storageName string) {
	g.data.serialize.BeginBlock("if result.%s != nil", storageName)
	g.data.deserialize.BeginBlock("if reader.Remaining() > 0")
}

func (g *objectGenerator) endOptionalGuard() {
	g.data.serialize.EndBlock()
	g.data.deserialize.EndBlock()
}

// resolveLength turns a <field>/<array> "length" attribute into the Go
// expression used to read it at runtime, and — when it names a length
// field rather than a numeric literal — the unexported storage name a
// paired writer accessor should keep synced to len(value). A named
// reference must resolve to a declared length field, and a given
// length field may only be referenced once; resolveLength records the
// reference and reports an error for an unknown or duplicate one.
func (g *objectGenerator) resolveLength(l length) (expr string, lengthStorage string, err error) {
	if !l.specified() {
		return "", "", nil
	}
	if n := l.asInteger(); n >= 0 {
		return fmt.Sprintf("%d", n), "", nil
	}

	name := l.String()
	referenced, ok := g.context.lengthFieldReferenced[name]
	if !ok {
		return "", "", fmt.Errorf("length attribute %q does not refer to a length field", name)
	}
	if referenced {
		return "", "", fmt.Errorf("length field %q must not be referenced by multiple fields", name)
	}
	g.context.lengthFieldReferenced[name] = true

	fd := g.context.accessibleFields[name]
	return "result." + fd.storageName, fd.storageName, nil
}

func (g *objectGenerator) generateHardcodedField(t dataType, l length, hardcoded string, padded bool) error {
	valueExpr := hardcoded
	if _, ok := t.(*stringType); ok {
		valueExpr = fmt.Sprintf("%q", hardcoded)
	}

	lengthExpr := ""
	if l.specified() {
		var err error
		lengthExpr, _, err = g.resolveLength(l)
		if err != nil {
			return err
		}
	}

	if err := g.writeValue(t, valueExpr, lengthExpr, padded); err != nil {
		return err
	}

	// Hardcoded fields are validated on write only; on read the bytes are
	// still consumed so the cursor advances correctly, but the value is
	// discarded.
	discardTarget := "_"
	return g.readValue(t, discardTarget, lengthExpr, padded)
}

func (g *objectGenerator) generateArray(node *xmlNode) error {
	optional := node.boolAttr("optional", false)
	if err := g.checkOptionalField(optional); err != nil {
		return err
	}

	_, delimited := node.attr("delimited")
	if delimited && !g.context.chunkedReadingEnabled {
		return fmt.Errorf("cannot generate a delimited array instruction unless chunked reading is enabled")
	}

	name, err := node.requiredStringAttr("name")
	if err != nil {
		return err
	}
	// An array's "length" attribute counts elements, so the element type
	// is resolved without it.
	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return err
	}
	elementType, err := g.typeFactory.GetType(typeName, lengthUnspecified())
	if err != nil {
		return err
	}

	if !delimited && !elementType.Bounded() {
		return fmt.Errorf("unbounded element type (%s) forbidden in non-delimited array", elementType.Name())
	}

	goName := snakeToPascal(name)
	goType, err := fieldGoType(elementType, true, optional)
	if err != nil {
		return err
	}
	storageName := unexported(goName)

	lengthStr, hasLength := node.attr("length")
	trailingDelimiter := node.boolAttr("trailing-delimiter", true)

	lengthExpr := ""
	lengthStorage := ""
	if hasLength {
		lengthExpr, lengthStorage, err = g.resolveLength(lengthFromString(lengthStr))
		if err != nil {
			return err
		}
	}

	g.context.accessibleFields[name] = fieldData{
		name: name, fieldType: elementType, isArray: true, goName: goName, storageName: storageName,
	}
	g.data.fields.Line("%s %s", storageName, goType)
	g.generateAccessors(goName, storageName, goType, "", lengthStorage)

	if optional {
		g.beginOptionalGuard(storageName)
		defer g.endOptionalGuard()
	}

	elemGoType, _ := goTypeName(elementType)

	// Serialize.
	sizeExpr := lengthExpr
	if sizeExpr == "" {
		sizeExpr = fmt.Sprintf("len(result.%s)", storageName)
	}
	g.data.serialize.BeginBlock("for i := 0; i < %s; i++ ", sizeExpr)
	if delimited && !trailingDelimiter {
		g.data.serialize.BeginBlock("if i > 0")
		g.data.serialize.Line("if err := writer.AddByte(0xFF); err != nil {")
		g.data.serialize.Indent().Line("return err").Unindent()
		g.data.serialize.Line("}")
		g.data.serialize.EndBlock()
	}
	if err := g.writeValue(elementType, fmt.Sprintf("result.%s[i]", storageName), "", false); err != nil {
		return err
	}
	if delimited && trailingDelimiter {
		g.data.serialize.Line("if err := writer.AddByte(0xFF); err != nil {")
		g.data.serialize.Indent().Line("return err").Unindent()
		g.data.serialize.Line("}")
	}
	g.data.serialize.EndBlock()

	// Deserialize.
	arrayLenExpr := lengthExpr
	if arrayLenExpr == "" && !delimited {
		if size, ok := elementType.FixedSize(); ok {
			varName := storageName + "Length"
			g.data.deserialize.Line("%s := reader.Remaining() / %d", varName, size)
			arrayLenExpr = varName
		}
	}

	g.data.deserialize.Line("result.%s = nil", storageName)
	if arrayLenExpr == "" {
		g.data.deserialize.BeginBlock("for reader.Remaining() > 0")
	} else {
		g.data.deserialize.BeginBlock("for i := 0; i < %s; i++ ", arrayLenExpr)
	}
	g.data.deserialize.Line("var element %s", elemGoType)
	if err := g.readValue(elementType, "element", "", false); err != nil {
		return err
	}
	g.data.deserialize.Line("result.%s = append(result.%s, element)", storageName, storageName)
	if delimited {
		needsGuard := !trailingDelimiter && arrayLenExpr != ""
		if needsGuard {
			g.data.deserialize.BeginBlock("if i+1 < %s", arrayLenExpr)
		}
		g.data.deserialize.Line("if err := reader.NextChunk(); err != nil {")
		g.data.deserialize.Indent().Line("return nil, err").Unindent()
		g.data.deserialize.Line("}")
		if needsGuard {
			g.data.deserialize.EndBlock()
		}
	}
	g.data.deserialize.EndBlock()

	if optional {
		g.context.reachedOptionalField = true
	}

	return nil
}

// generateLength handles a <length> element. The length field is stored
// on the struct (so its value survives a read-modify-write round trip
// verbatim), but external code can only set it indirectly: the writer
// accessor of whichever field references it via a "length" attribute
// re-syncs it to len(value), so it can never drift from the data it
// describes.
func (g *objectGenerator) generateLength(node *xmlNode) error {
	optional := node.boolAttr("optional", false)
	if err := g.checkOptionalField(optional); err != nil {
		return err
	}

	name, err := node.requiredStringAttr("name")
	if err != nil {
		return err
	}
	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return err
	}
	t, err := g.typeFactory.GetType(typeName, lengthUnspecified())
	if err != nil {
		return err
	}
	if _, ok := t.(*integerType); !ok {
		return fmt.Errorf("%s is not a numeric type, so it is not allowed for a length field", t.Name())
	}

	goName := snakeToPascal(name)
	storageName := unexported(goName)
	goType, err := fieldGoType(t, false, false)
	if err != nil {
		return err
	}

	g.context.accessibleFields[name] = fieldData{
		name: name, fieldType: t, goName: goName, storageName: storageName,
	}
	g.context.lengthFieldReferenced[name] = false

	// The storage field is written verbatim rather than recomputed from
	// len(), so a round trip preserves whatever value was read even if
	// it doesn't match the referencing field's actual length. A length
	// field has no writer accessor of its own: the only way to change
	// it is through the writer accessor of the field that references
	// it, which keeps this storage field in sync with len(value).
	g.data.fields.Line("%s %s", storageName, goType)

	getter := newCodeBuilder()
	getter.BeginBlock("func (v *%s) %s() %s", g.data.typeName, goName, goType)
	getter.Line("return v.%s", storageName)
	getter.EndBlock()
	g.data.extraMethods.Append(getter)
	g.data.extraMethods.Blank()

	stmt, fallible, err := basicWriteExpr(t, "result."+storageName, "", false)
	if err != nil {
		return err
	}
	if fallible {
		g.data.serialize.Line("if err := %s; err != nil {", stmt)
		g.data.serialize.Indent().Line("return err").Unindent()
		g.data.serialize.Line("}")
	} else {
		g.data.serialize.Line("%s", stmt)
	}

	readExpr, _, err := basicReadExpr(t, "", false)
	if err != nil {
		return err
	}
	g.data.deserialize.Line("result.%s = %s", storageName, readExpr)

	if optional {
		g.context.reachedOptionalField = true
	}

	return nil
}

func (g *objectGenerator) generateDummy(node *xmlNode) error {
	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return err
	}
	t, err := g.typeFactory.GetType(typeName, lengthUnspecified())
	if err != nil {
		return err
	}
	hardcoded := node.text()

	needsGuards := !g.data.serialize.Empty() || !g.data.deserialize.Empty()

	if needsGuards {
		g.data.serialize.BeginBlock("if writer.Len() == oldWriterLength")
		g.data.deserialize.BeginBlock("if reader.Position() == readerStartPosition")
	}

	valueExpr := hardcoded
	if _, ok := t.(*stringType); ok {
		valueExpr = fmt.Sprintf("%q", hardcoded)
	}
	if err := g.writeValue(t, valueExpr, "", false); err != nil {
		return err
	}
	if err := g.readValue(t, "_", "", false); err != nil {
		return err
	}

	if needsGuards {
		g.data.serialize.EndBlock()
		g.data.deserialize.EndBlock()
	}

	g.context.reachedDummy = true
	if needsGuards {
		g.context.needsOldWriterLength = true
	}

	return nil
}

func (g *objectGenerator) generateChunked(node *xmlNode) error {
	wasEnabled := g.context.chunkedReadingEnabled
	if !wasEnabled {
		g.context.chunkedReadingEnabled = true
		g.data.deserialize.Line("reader.SetChunkedReadingMode(true)")
		g.data.serialize.Line("writer.SetStringSanitizationMode(true)")
	}

	for _, instr := range node.instructions() {
		if err := g.generateInstruction(instr); err != nil {
			return err
		}
	}

	if !wasEnabled {
		g.context.chunkedReadingEnabled = false
		g.data.deserialize.Line("reader.SetChunkedReadingMode(false)")
		g.data.serialize.Line("writer.SetStringSanitizationMode(false)")
	}

	return nil
}

func (g *objectGenerator) generateSwitch(node *xmlNode) error {
	fieldName, err := node.requiredStringAttr("field")
	if err != nil {
		return err
	}

	sg := newSwitchGenerator(fieldName, g.typeFactory, g.context, g.data)
	cases := node.children("case")

	sg.generateCaseDataInterface()
	sg.generateCaseDataField()

	reachedOptionalField := g.context.reachedOptionalField
	reachedDummy := g.context.reachedDummy

	for i, c := range cases {
		caseContext, err := sg.generateCase(g.data.typeName, c, i == 0, g.typeFactory)
		if err != nil {
			return err
		}
		reachedOptionalField = reachedOptionalField || caseContext.reachedOptionalField
		reachedDummy = reachedDummy || caseContext.reachedDummy
	}
	if len(cases) > 0 {
		sg.closeChain()
	}

	g.context.reachedOptionalField = reachedOptionalField
	g.context.reachedDummy = reachedDummy

	return nil
}

func (g *objectGenerator) generateBreak() error {
	if !g.context.chunkedReadingEnabled {
		return fmt.Errorf("cannot generate a break instruction unless chunked reading is enabled")
	}

	g.context.reachedOptionalField = false
	g.context.reachedDummy = false

	g.data.serialize.Line("if err := writer.AddByte(0xFF); err != nil {")
	g.data.serialize.Indent().Line("return err").Unindent()
	g.data.serialize.Line("}")
	g.data.deserialize.Line("if err := reader.NextChunk(); err != nil {")
	g.data.deserialize.Indent().Line("return nil, err").Unindent()
	g.data.deserialize.Line("}")

	return nil
}

// Build assembles the struct definition, Serialize method, and
// DeserializeXxx factory function into a single codeBuilder, ready to
// become the body of an outputFile. Auxiliary types recorded on g.data
// (a <switch> field's case-data interface and case structs) are declared
// ahead of the struct when non-empty; extra methods (accessors, and
// Family/Action for packets) follow the ByteSize accessor.
func (g *objectGenerator) Build() *codeBuilder {
	body := newCodeBuilder()
	body.AddImport("github.com/cirras/eolib-go/data")

	if !g.data.auxiliary.Empty() {
		body.Append(g.data.auxiliary)
		body.Blank()
	}

	if g.data.doc != "" {
		body.Line("// %s", g.data.doc)
	}
	body.BeginBlock("type %s struct", g.data.typeName)
	body.Append(g.data.fields)
	if !g.data.fields.Empty() {
		body.Blank()
	}
	body.Line("byteSize int")
	body.EndBlock()
	body.Blank()

	body.BeginBlock("func (v *%s) ByteSize() int", g.data.typeName)
	body.Line("return v.byteSize")
	body.EndBlock()
	body.Blank()

	body.Append(g.data.extraMethods)
	if !g.data.extraMethods.Empty() {
		body.Blank()
	}

	body.BeginBlock("func (result *%s) Serialize(writer *data.EoWriter) error", g.data.typeName)
	body.Line("oldSanitizationMode := writer.StringSanitizationMode()")
	body.Line("defer writer.SetStringSanitizationMode(oldSanitizationMode)")
	if g.context.needsOldWriterLength {
		body.Blank()
		body.Line("oldWriterLength := writer.Len()")
	}
	body.Blank()
	body.Append(g.data.serialize)
	body.Blank()
	body.Line("return nil")
	body.EndBlock()
	body.Blank()

	body.BeginBlock("func Deserialize%s(reader *data.EoReader) (*%s, error)", g.data.typeName, g.data.typeName)
	body.Line("result := &%s{}", g.data.typeName)
	body.Blank()
	body.Line("oldChunkedReadingMode := reader.ChunkedReadingMode()")
	body.Line("defer reader.SetChunkedReadingMode(oldChunkedReadingMode)")
	body.Blank()
	body.Line("readerStartPosition := reader.Position()")
	body.Blank()
	body.Append(g.data.deserialize)
	body.Blank()
	body.Line("result.byteSize = reader.Position() - readerStartPosition")
	body.Line("return result, nil")
	body.EndBlock()

	return body
}
