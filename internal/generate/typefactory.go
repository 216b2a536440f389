package generate

import (
	"fmt"
	"strconv"
	"strings"
)

// unresolvedCustomType is a <enum> or <struct> schema element that has
// been indexed but not yet turned into a dataType. Types are resolved
// lazily, on first reference, so that schema files can reference types
// defined in files indexed later.
type unresolvedCustomType struct {
	xml        *xmlNode
	sourcePath string
}

// typeFactory resolves schema type names (like "char", "short",
// "encoded_string:short", or a custom struct/enum name) to dataType
// instances, caching the result of each resolution.
//
// A typeFactory is used for exactly one generation run; Clear resets it
// for reuse.
type typeFactory struct {
	unresolved map[string]unresolvedCustomType
	resolved   map[string]dataType
}

func newTypeFactory() *typeFactory {
	return &typeFactory{
		unresolved: map[string]unresolvedCustomType{},
		resolved:   map[string]dataType{},
	}
}

// GetType resolves name (optionally with a length, for string types) to
// a dataType.
func (f *typeFactory) GetType(name string, l length) (dataType, error) {
	if !l.specified() {
		l = lengthUnspecified()
	}

	if l.specified() {
		return createTypeWithSpecifiedLength(name, l)
	}

	if t, ok := f.resolved[name]; ok {
		return t, nil
	}

	t, err := f.createType(name, l)
	if err != nil {
		return nil, err
	}

	f.resolved[name] = t
	return t, nil
}

// DefineCustomType indexes a <enum> or <struct> element under its name
// attribute. Returns an error if the name has already been defined.
func (f *typeFactory) DefineCustomType(node *xmlNode, sourcePath string) error {
	name, err := node.requiredStringAttr("name")
	if err != nil {
		return err
	}
	if _, ok := f.unresolved[name]; ok {
		return fmt.Errorf("%s type cannot be redefined", name)
	}
	f.unresolved[name] = unresolvedCustomType{xml: node, sourcePath: sourcePath}
	return nil
}

// Clear resets the factory so that it may be used for a fresh run.
func (f *typeFactory) Clear() {
	f.unresolved = map[string]unresolvedCustomType{}
	f.resolved = map[string]dataType{}
}

func (f *typeFactory) createType(name string, l length) (dataType, error) {
	underlying, baseName, err := f.readUnderlyingType(name)
	if err != nil {
		return nil, err
	}
	if underlying != nil {
		name = baseName
	}

	var result dataType

	switch name {
	case "byte", "char":
		result = &integerType{name: name, size: 1}
	case "short":
		result = &integerType{name: name, size: 2}
	case "three":
		result = &integerType{name: name, size: 3}
	case "int":
		result = &integerType{name: name, size: 4}
	case "bool":
		u := underlying
		if u == nil {
			u, err = f.GetType("char", lengthUnspecified())
			if err != nil {
				return nil, err
			}
		}
		result = &boolType{underlying: u}
	case "string", "encoded_string":
		result = &stringType{name: name, length: l}
	case "blob":
		result = &blobType{}
	default:
		result, err = f.createCustomType(name, underlying)
		if err != nil {
			return nil, err
		}
	}

	if underlying != nil {
		if _, ok := result.(hasUnderlyingType); !ok {
			return nil, fmt.Errorf(
				"%s has no underlying type, so %s is not allowed as an underlying type override",
				result.Name(), underlying.Name(),
			)
		}
	}

	return result, nil
}

// readUnderlyingType parses the "name:underlying" override syntax used
// by <field type="bool:three"> and similar.
func (f *typeFactory) readUnderlyingType(name string) (dataType, string, error) {
	parts := strings.Split(name, ":")

	switch len(parts) {
	case 1:
		return nil, name, nil
	case 2:
		typeName, underlyingName := parts[0], parts[1]
		if typeName == underlyingName {
			return nil, "", fmt.Errorf("%s type cannot specify itself as an underlying type", typeName)
		}
		underlying, err := f.GetType(underlyingName, lengthUnspecified())
		if err != nil {
			return nil, "", err
		}
		if _, ok := underlying.(*integerType); !ok {
			return nil, "", fmt.Errorf(
				"%s is not a numeric type, so it cannot be specified as an underlying type",
				underlying.Name(),
			)
		}
		return underlying, typeName, nil
	default:
		return nil, "", fmt.Errorf("%q type syntax is invalid (only one colon is allowed)", name)
	}
}

func (f *typeFactory) createCustomType(name string, underlyingOverride dataType) (dataType, error) {
	unresolved, ok := f.unresolved[name]
	if !ok {
		return nil, fmt.Errorf("%s type is not defined", name)
	}

	switch unresolved.xml.tag() {
	case "enum":
		return f.createEnumType(unresolved.xml, underlyingOverride, unresolved.sourcePath)
	case "struct":
		return f.createStructType(unresolved.xml, unresolved.sourcePath)
	default:
		return nil, fmt.Errorf("unhandled custom type xml element: <%s>", unresolved.xml.tag())
	}
}

func (f *typeFactory) createEnumType(node *xmlNode, underlyingOverride dataType, sourcePath string) (dataType, error) {
	underlying := underlyingOverride
	enumName, err := node.requiredStringAttr("name")
	if err != nil {
		return nil, err
	}

	if underlying == nil {
		underlyingName, err := node.requiredStringAttr("type")
		if err != nil {
			return nil, err
		}
		if enumName == underlyingName {
			return nil, fmt.Errorf("%s type cannot specify itself as an underlying type", enumName)
		}
		def, err := f.GetType(underlyingName, lengthUnspecified())
		if err != nil {
			return nil, err
		}
		if _, ok := def.(*integerType); !ok {
			return nil, fmt.Errorf(
				"%s is not a numeric type, so it cannot be specified as an underlying type", def.Name(),
			)
		}
		underlying = def
	}

	var values []enumValue
	ordinals := map[int]bool{}
	names := map[string]bool{}

	for _, v := range node.children("value") {
		text := v.text()
		ordinal, err := strconv.Atoi(text)
		if err != nil {
			valueName, _ := v.requiredStringAttr("name")
			return nil, fmt.Errorf("%s.%s has invalid ordinal value %q", enumName, valueName, text)
		}

		valueName, err := v.requiredStringAttr("name")
		if err != nil {
			return nil, err
		}
		goName := snakeToPascal(valueName)

		if ordinals[ordinal] {
			return nil, fmt.Errorf("%s.%s cannot redefine ordinal value %d", enumName, valueName, ordinal)
		}
		ordinals[ordinal] = true

		if names[valueName] {
			return nil, fmt.Errorf("%s enum cannot redefine value name %s", enumName, valueName)
		}
		names[valueName] = true

		values = append(values, enumValue{ordinal: ordinal, name: valueName, goName: goName})
	}

	return &enumType{name: enumName, sourcePath: sourcePath, underlying: underlying, values: values}, nil
}

func (f *typeFactory) createStructType(node *xmlNode, sourcePath string) (dataType, error) {
	name, err := node.requiredStringAttr("name")
	if err != nil {
		return nil, err
	}

	size, hasFixed, err := f.calculateFixedStructSize(node)
	if err != nil {
		return nil, err
	}

	bounded, err := f.isBounded(node)
	if err != nil {
		return nil, err
	}

	return &structType{name: name, fixedSize: size, hasFixed: hasFixed, bounded: bounded, sourcePath: sourcePath}, nil
}

func (f *typeFactory) calculateFixedStructSize(node *xmlNode) (int, bool, error) {
	size := 0

	instructions, err := flattenInstructions(node)
	if err != nil {
		return 0, false, err
	}

	for _, instr := range instructions {
		var instrSize int
		var has bool

		switch instr.tag() {
		case "field":
			instrSize, has, err = f.calculateFixedFieldSize(instr)
		case "array":
			instrSize, has, err = f.calculateFixedArraySize(instr)
		case "dummy":
			instrSize, has, err = f.calculateFixedDummySize(instr)
		case "chunked", "switch":
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		if !has {
			return 0, false, nil
		}

		size += instrSize
	}

	return size, true, nil
}

func (f *typeFactory) calculateFixedFieldSize(node *xmlNode) (int, bool, error) {
	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return 0, false, err
	}
	typeLength := createTypeLengthForField(node)
	t, err := f.GetType(typeName, typeLength)
	if err != nil {
		return 0, false, err
	}

	size, has := t.FixedSize()
	if !has {
		return 0, false, nil
	}

	if _, ok := node.attr("optional"); ok {
		return 0, false, nil
	}

	return size, true, nil
}

func (f *typeFactory) calculateFixedArraySize(node *xmlNode) (int, bool, error) {
	lengthStr, ok := node.attr("length")
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(lengthStr)
	if err != nil {
		return 0, false, nil
	}

	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return 0, false, err
	}
	t, err := f.GetType(typeName, lengthUnspecified())
	if err != nil {
		return 0, false, err
	}

	elementSize, has := t.FixedSize()
	if !has {
		return 0, false, nil
	}

	if _, ok := node.attr("optional"); ok {
		return 0, false, nil
	}
	if _, ok := node.attr("delimited"); ok {
		return 0, false, nil
	}

	return n * elementSize, true, nil
}

func (f *typeFactory) calculateFixedDummySize(node *xmlNode) (int, bool, error) {
	typeName, err := node.requiredStringAttr("type")
	if err != nil {
		return 0, false, err
	}
	t, err := f.GetType(typeName, lengthUnspecified())
	if err != nil {
		return 0, false, err
	}
	size, has := t.FixedSize()
	return size, has, nil
}

func (f *typeFactory) isBounded(node *xmlNode) (bool, error) {
	result := true

	instructions, err := flattenInstructions(node)
	if err != nil {
		return false, err
	}

	for _, instr := range instructions {
		if !result {
			result = instr.tag() == "break"
			continue
		}

		switch instr.tag() {
		case "field":
			typeName, err := instr.requiredStringAttr("type")
			if err != nil {
				return false, err
			}
			t, err := f.GetType(typeName, createTypeLengthForField(instr))
			if err != nil {
				return false, err
			}
			result = t.Bounded()
		case "array":
			typeName, err := instr.requiredStringAttr("type")
			if err != nil {
				return false, err
			}
			t, err := f.GetType(typeName, lengthUnspecified())
			if err != nil {
				return false, err
			}
			_, hasLength := instr.attr("length")
			result = t.Bounded() && hasLength
		case "dummy":
			typeName, err := instr.requiredStringAttr("type")
			if err != nil {
				return false, err
			}
			t, err := f.GetType(typeName, lengthUnspecified())
			if err != nil {
				return false, err
			}
			result = t.Bounded()
		}
	}

	return result, nil
}

func flattenInstruction(node *xmlNode, result *[]*xmlNode) {
	*result = append(*result, node)

	switch node.tag() {
	case "chunked":
		for _, child := range node.instructions() {
			flattenInstruction(child, result)
		}
	case "switch":
		for _, c := range node.children("case") {
			for _, child := range c.instructions() {
				flattenInstruction(child, result)
			}
		}
	}
}

func flattenInstructions(node *xmlNode) ([]*xmlNode, error) {
	var result []*xmlNode
	for _, instr := range node.instructions() {
		flattenInstruction(instr, &result)
	}
	return result, nil
}

func createTypeLengthForField(node *xmlNode) length {
	if lengthStr, ok := node.attr("length"); ok {
		return lengthFromString(lengthStr)
	}
	return lengthUnspecified()
}

func createTypeWithSpecifiedLength(name string, l length) (dataType, error) {
	if name == "string" || name == "encoded_string" {
		return &stringType{name: name, length: l}, nil
	}
	return nil, fmt.Errorf("%s type with length %s is invalid (only string types may specify a length)", name, l)
}
