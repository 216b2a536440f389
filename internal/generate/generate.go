// Package generate implements the protocol code generator: it reads
// "protocol.xml" schema files describing the Endless Online network
// protocol and emits Go source for the structs, enums, and packets they
// describe.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dataImportPath     = "github.com/cirras/eolib-go/data"
	protocolImportPath = "github.com/cirras/eolib-go/protocol"
)

// Generate reads every "protocol.xml" beneath inputRoot and writes the
// Go source files they describe beneath outputRoot, mirroring the
// schema's directory layout.
func Generate(inputRoot, outputRoot string) error {
	if err := Clean(outputRoot); err != nil {
		return err
	}

	s := newSchema(inputRoot)
	if err := s.index(); err != nil {
		return err
	}

	for _, pf := range s.files {
		if err := generateSourceFile(s, pf, outputRoot); err != nil {
			return err
		}
	}

	return nil
}

// Clean removes every previously generated Go source file beneath
// outputRoot, identified by the "Code generated ... DO NOT EDIT"
// header Write stamps on each one. Hand-written files are left alone.
func Clean(outputRoot string) error {
	const marker = "// Code generated from the eo-protocol XML specification. DO NOT EDIT."

	return filepath.WalkDir(outputRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".go" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(string(raw), marker) {
			return nil
		}
		return os.Remove(path)
	})
}

func generateSourceFile(s *schema, pf protocolFile, outputRoot string) error {
	packageName := packageNameForSourcePath(pf.sourcePath)

	for _, node := range pf.root.children("enum") {
		out, err := generateEnum(s, pf, node, packageName)
		if err != nil {
			return err
		}
		if err := out.Write(outputRoot); err != nil {
			return err
		}
	}

	for _, node := range pf.root.children("struct") {
		out, err := generateStruct(s, pf, node, packageName)
		if err != nil {
			return err
		}
		if err := out.Write(outputRoot); err != nil {
			return err
		}
	}

	for _, node := range pf.root.children("packet") {
		out, err := generatePacket(s, pf, node, packageName)
		if err != nil {
			return err
		}
		if err := out.Write(outputRoot); err != nil {
			return err
		}
	}

	return nil
}

func packageNameForSourcePath(sourcePath string) string {
	if sourcePath == "" || sourcePath == "." {
		return "protocol"
	}
	parts := strings.Split(sourcePath, "/")
	return parts[len(parts)-1]
}

func outputPath(sourcePath, typeName string) string {
	return filepath.Join(sourcePath, pascalToSnake(typeName)+".go")
}

func generateEnum(s *schema, pf protocolFile, node *xmlNode, packageName string) (*outputFile, error) {
	typeName, err := node.requiredStringAttr("name")
	if err != nil {
		return nil, err
	}

	t, err := s.typeFactory.GetType(typeName, lengthUnspecified())
	if err != nil {
		return nil, err
	}
	enum, ok := t.(*enumType)
	if !ok {
		return nil, fmt.Errorf("%s is not a valid enum type", typeName)
	}

	underlyingGoType, err := goTypeName(enum.underlying)
	if err != nil {
		return nil, err
	}

	body := newCodeBuilder()
	if comment := node.comment(); comment != "" {
		body.Line("// %s %s", typeName, comment)
	} else {
		body.Line("// %s is a generated protocol enum.", typeName)
	}
	body.Line("type %s %s", typeName, underlyingGoType)
	body.Blank()

	body.BeginBlock("const ")
	for _, v := range node.children("value") {
		valueName, err := v.requiredStringAttr("name")
		if err != nil {
			return nil, err
		}
		ev := enum.valueByName(valueName)
		if ev == nil {
			return nil, fmt.Errorf("%s: value %q was not resolved", typeName, valueName)
		}
		if comment := v.comment(); comment != "" {
			body.Line("// %s", comment)
		}
		body.Line("%s%s %s = %d", typeName, ev.goName, typeName, ev.ordinal)
	}
	body.EndBlock()

	return &outputFile{relativePath: outputPath(pf.sourcePath, typeName), packageName: packageName, body: body}, nil
}

func generateStruct(s *schema, pf protocolFile, node *xmlNode, packageName string) (*outputFile, error) {
	typeName, err := node.requiredStringAttr("name")
	if err != nil {
		return nil, err
	}

	t, err := s.typeFactory.GetType(typeName, lengthUnspecified())
	if err != nil {
		return nil, err
	}
	if _, ok := t.(*structType); !ok {
		return nil, fmt.Errorf("%s is not a valid struct type", typeName)
	}

	g := newObjectGenerator(typeName, s.typeFactory, nil)
	if comment := node.comment(); comment != "" {
		g.data.doc = fmt.Sprintf("%s %s", typeName, comment)
	}
	for _, instr := range node.instructions() {
		if err := g.generateInstruction(instr); err != nil {
			return nil, fmt.Errorf("%s: %w", typeName, err)
		}
	}
	if err := g.context.checkLengthFieldsReferenced(); err != nil {
		return nil, fmt.Errorf("%s: %w", typeName, err)
	}

	return &outputFile{relativePath: outputPath(pf.sourcePath, typeName), packageName: packageName, body: g.Build()}, nil
}

func generatePacket(s *schema, pf protocolFile, node *xmlNode, packageName string) (*outputFile, error) {
	suffix, err := packetSuffix(pf.sourcePath)
	if err != nil {
		return nil, err
	}

	familyAttr, err := node.requiredStringAttr("family")
	if err != nil {
		return nil, err
	}
	actionAttr, err := node.requiredStringAttr("action")
	if err != nil {
		return nil, err
	}
	typeName := familyAttr + actionAttr + suffix

	familyType, err := s.typeFactory.GetType("PacketFamily", lengthUnspecified())
	if err != nil {
		return nil, err
	}
	familyEnum, ok := familyType.(*enumType)
	if !ok {
		return nil, fmt.Errorf("PacketFamily enum is missing")
	}
	actionType, err := s.typeFactory.GetType("PacketAction", lengthUnspecified())
	if err != nil {
		return nil, err
	}
	actionEnum, ok := actionType.(*enumType)
	if !ok {
		return nil, fmt.Errorf("PacketAction enum is missing")
	}

	familyValue := familyEnum.valueByName(familyAttr)
	if familyValue == nil {
		return nil, fmt.Errorf("unknown packet family %q", familyAttr)
	}
	actionValue := actionEnum.valueByName(actionAttr)
	if actionValue == nil {
		return nil, fmt.Errorf("unknown packet action %q", actionAttr)
	}

	g := newObjectGenerator(typeName, s.typeFactory, nil)
	if comment := node.comment(); comment != "" {
		g.data.doc = fmt.Sprintf("%s %s", typeName, comment)
	}
	for _, instr := range node.instructions() {
		if err := g.generateInstruction(instr); err != nil {
			return nil, fmt.Errorf("%s: %w", typeName, err)
		}
	}
	if err := g.context.checkLengthFieldsReferenced(); err != nil {
		return nil, fmt.Errorf("%s: %w", typeName, err)
	}

	g.data.extraMethods.Line("func (v *%s) Family() protocol.PacketFamily {", typeName)
	g.data.extraMethods.Indent().Line("return protocol.PacketFamily%s", familyValue.goName).Unindent()
	g.data.extraMethods.Line("}")
	g.data.extraMethods.Blank()
	g.data.extraMethods.Line("func (v *%s) Action() protocol.PacketAction {", typeName)
	g.data.extraMethods.Indent().Line("return protocol.PacketAction%s", actionValue.goName).Unindent()
	g.data.extraMethods.Line("}")

	body := g.Build()
	body.AddImport(protocolImportPath)

	return &outputFile{relativePath: outputPath(pf.sourcePath, typeName), packageName: packageName, body: body}, nil
}

func packetSuffix(sourcePath string) (string, error) {
	switch sourcePath {
	case "net/client":
		return "ClientPacket", nil
	case "net/server":
		return "ServerPacket", nil
	default:
		return "", fmt.Errorf("cannot create packet name suffix for path %s", sourcePath)
	}
}
