package generate

import "fmt"

// switchGenerator turns a <switch> schema element into a Go interface
// (one per discriminator field) plus one concrete struct per <case>,
// replacing the source project's Union type alias with a native Go sum
// type: each case struct implements a private marker method so that
// only this package's generated types can satisfy the interface.
type switchGenerator struct {
	fieldName string
	tf        *typeFactory
	ctx       *generateContext
	data      *objectData
}

func newSwitchGenerator(fieldName string, tf *typeFactory, ctx *generateContext, data *objectData) *switchGenerator {
	return &switchGenerator{fieldName: fieldName, tf: tf, ctx: ctx, data: data}
}

func (s *switchGenerator) interfaceName() string {
	return snakeToPascal(s.fieldName) + "Data"
}

func (s *switchGenerator) fieldGoName() string {
	return snakeToPascal(s.fieldName) + "Data"
}

func (s *switchGenerator) markerMethod() string {
	return unexported(s.interfaceName())
}

func (s *switchGenerator) fieldInfo() (fieldData, error) {
	fd, ok := s.ctx.accessibleFields[s.fieldName]
	if !ok {
		return fieldData{}, fmt.Errorf("referenced %s is not accessible", s.fieldName)
	}
	return fd, nil
}

// generateCaseDataInterface emits the sealed interface type that every
// case struct for this switch implements.
func (s *switchGenerator) generateCaseDataInterface() {
	iface := newCodeBuilder()
	iface.Line("// %s is the data associated with one value of the %s field.", s.interfaceName(), s.fieldName)
	iface.BeginBlock("type %s interface", s.interfaceName())
	iface.Line("%s()", s.markerMethod())
	iface.EndBlock()
	s.data.auxiliary.Append(iface)
	s.data.auxiliary.Blank()
}

func (s *switchGenerator) storageName() string {
	return unexported(s.fieldGoName())
}

// generateCaseDataField declares the interface-typed field that holds
// whichever case struct is active, plus its read/write accessor pair.
func (s *switchGenerator) generateCaseDataField() {
	goName := s.fieldGoName()
	storageName := s.storageName()
	goType := s.interfaceName()

	s.data.fields.Line("%s %s", storageName, goType)

	getter := newCodeBuilder()
	getter.BeginBlock("func (v *%s) %s() %s", s.data.typeName, goName, goType)
	getter.Line("return v.%s", storageName)
	getter.EndBlock()
	s.data.extraMethods.Append(getter)
	s.data.extraMethods.Blank()

	setter := newCodeBuilder()
	setter.BeginBlock("func (v *%s) Set%s(%s %s)", s.data.typeName, goName, storageName, goType)
	setter.Line("v.%s = %s", storageName, storageName)
	setter.EndBlock()
	s.data.extraMethods.Append(setter)
	s.data.extraMethods.Blank()
}

func (s *switchGenerator) caseTypeName(parentName string, node *xmlNode, isDefault bool) (string, error) {
	if isDefault {
		return parentName + s.interfaceName() + "Default", nil
	}
	value, err := node.requiredStringAttr("value")
	if err != nil {
		return "", err
	}

	fd, err := s.fieldInfo()
	if err != nil {
		return "", err
	}

	if enumType, ok := fd.fieldType.(*enumType); ok {
		v := enumType.valueByName(value)
		if v == nil {
			return "", fmt.Errorf("%q is not a valid value for enum type %s", value, enumType.name)
		}
		return parentName + s.interfaceName() + v.goName, nil
	}

	return parentName + s.interfaceName() + snakeToPascal("value_"+value), nil
}

func (s *switchGenerator) caseValueExpr(node *xmlNode, isDefault bool) (string, error) {
	if isDefault {
		return "", nil
	}

	fd, err := s.fieldInfo()
	if err != nil {
		return "", err
	}
	if fd.isArray {
		return "", fmt.Errorf("%q field referenced by switch must not be an array", s.fieldName)
	}

	value, err := node.requiredStringAttr("value")
	if err != nil {
		return "", err
	}

	switch ft := fd.fieldType.(type) {
	case *integerType:
		return value, nil
	case *enumType:
		v := ft.valueByName(value)
		if v == nil {
			return "", fmt.Errorf("%q is not a valid value for enum type %s", value, ft.name)
		}
		// Generated enum constants are named <EnumName><ValueName>, Go's
		// usual stand-in for a namespaced enum member.
		return ft.name + v.goName, nil
	default:
		return "", fmt.Errorf("%q field referenced by switch must be a numeric or enumeration type", s.fieldName)
	}
}

// generateCase emits the serialize/deserialize branch for a single
// <case>, and (when the case has its own instructions) the case struct
// itself, added to s.data.auxiliary.
func (s *switchGenerator) generateCase(parentName string, node *xmlNode, start bool, tf *typeFactory) (*generateContext, error) {
	isDefault := node.boolAttr("default", false)
	if isDefault && start {
		return nil, fmt.Errorf("standalone default case is not allowed")
	}

	caseContext := s.ctx.clone()
	caseContext.accessibleFields = map[string]fieldData{}
	caseContext.lengthFieldReferenced = map[string]bool{}

	caseTypeName, err := s.caseTypeName(parentName, node, isDefault)
	if err != nil {
		return nil, err
	}

	fd, err := s.fieldInfo()
	if err != nil {
		return nil, err
	}

	var condition string
	if !isDefault {
		valueExpr, err := s.caseValueExpr(node, isDefault)
		if err != nil {
			return nil, err
		}
		condition = fmt.Sprintf("result.%s == %s", fd.storageName, valueExpr)
	}

	// Cases form a single if/else-if/else chain: the first case opens
	// it, every later case (default or not) continues it on the same
	// line as the previous case's closing brace.
	switch {
	case isDefault:
		s.data.serialize.NextBlock("else")
		s.data.deserialize.NextBlock("else")
	case start:
		s.data.serialize.BeginBlock("if %s", condition)
		s.data.deserialize.BeginBlock("if %s", condition)
	default:
		s.data.serialize.NextBlock("else if %s", condition)
		s.data.deserialize.NextBlock("else if %s", condition)
	}

	hasInstructions := len(node.instructions()) > 0

	fieldGoName := s.fieldGoName()
	storageName := s.storageName()

	if !hasInstructions {
		s.data.serialize.BeginBlock("if result.%s != nil", storageName)
		s.data.serialize.Line(
			"return fmt.Errorf(\"expected %s to be nil for %s value %%v\", result.%s)",
			fieldGoName, s.fieldName, fd.storageName,
		)
		s.data.serialize.EndBlock()
		s.data.serialize.AddImport("fmt")

		s.data.deserialize.Line("result.%s = nil", storageName)
	} else {
		caseGen := newObjectGenerator(caseTypeName, tf, caseContext)
		for _, instr := range node.instructions() {
			if err := caseGen.generateInstruction(instr); err != nil {
				return nil, err
			}
		}
		if err := caseGen.context.checkLengthFieldsReferenced(); err != nil {
			return nil, fmt.Errorf("%s: %w", caseTypeName, err)
		}

		s.data.auxiliary.Append(s.buildCaseStruct(caseGen))
		s.data.auxiliary.Blank()

		caseVar := unexported(caseTypeName)
		s.data.serialize.Line("%s, ok := result.%s.(*%s)", caseVar, storageName, caseTypeName)
		s.data.serialize.BeginBlock("if !ok")
		s.data.serialize.Line(
			"return fmt.Errorf(\"expected %s to be type %s for %s value %%v\", result.%s)",
			fieldGoName, caseTypeName, s.fieldName, fd.storageName,
		)
		s.data.serialize.EndBlock()
		s.data.serialize.Line("if err := %s.Serialize(writer); err != nil {", caseVar)
		s.data.serialize.Indent().Line("return err").Unindent()
		s.data.serialize.Line("}")
		s.data.serialize.AddImport("fmt")

		s.data.deserialize.Line("%s, err := Deserialize%s(reader)", caseVar, caseTypeName)
		s.data.deserialize.Line("if err != nil {")
		s.data.deserialize.Indent().Line("return nil, err").Unindent()
		s.data.deserialize.Line("}")
		s.data.deserialize.Line("result.%s = %s", storageName, caseVar)

		caseContext = caseGen.context
	}

	return caseContext, nil
}

// closeChain closes the if/else-if/else chain opened by the first call
// to generateCase. Must be called exactly once, after the last case has
// been generated, and only if there was at least one case.
func (s *switchGenerator) closeChain() {
	s.data.serialize.EndBlock()
	s.data.deserialize.EndBlock()
}

// buildCaseStruct renders a case's generator output as a standalone
// type (its own struct, Serialize method, and DeserializeXxx factory),
// plus the marker method that seals it to the switch's interface.
func (s *switchGenerator) buildCaseStruct(caseGen *objectGenerator) *codeBuilder {
	body := caseGen.Build()
	body.Blank()
	body.BeginBlock("func (v *%s) %s()", caseGen.data.typeName, s.markerMethod())
	body.EndBlock()
	return body
}
