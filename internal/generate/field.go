package generate

import (
	"fmt"
)

// goTypeName returns the Go type used to represent a dataType in
// generated struct fields and method signatures.
func goTypeName(t dataType) (string, error) {
	switch v := t.(type) {
	case *integerType:
		return "int", nil
	case *stringType:
		return "string", nil
	case *boolType:
		return "bool", nil
	case *blobType:
		return "[]byte", nil
	case *enumType:
		return v.name, nil
	case *structType:
		return "*" + v.name, nil
	default:
		return "", fmt.Errorf("unhandled type %T", t)
	}
}

// basicWriteExpr returns the EoWriter call used to write valueExpr as
// the given basic type, and whether that call returns an error that
// must be checked (numeric writes can exceed their maximum value;
// fixed-length string writes can violate the fixed length; unbounded
// string writes never fail).
func basicWriteExpr(t dataType, valueExpr string, lengthExpr string, padded bool) (string, bool, error) {
	name := t.Name()
	switch name {
	case "byte":
		return fmt.Sprintf("writer.AddByte(%s)", valueExpr), true, nil
	case "char":
		return fmt.Sprintf("writer.AddChar(%s)", valueExpr), true, nil
	case "short":
		return fmt.Sprintf("writer.AddShort(%s)", valueExpr), true, nil
	case "three":
		return fmt.Sprintf("writer.AddThree(%s)", valueExpr), true, nil
	case "int":
		return fmt.Sprintf("writer.AddInt(%s)", valueExpr), true, nil
	case "string":
		if lengthExpr == "" {
			return fmt.Sprintf("writer.AddString(%s)", valueExpr), false, nil
		}
		return fmt.Sprintf("writer.AddFixedString(%s, %s, %t)", valueExpr, lengthExpr, padded), true, nil
	case "encoded_string":
		if lengthExpr == "" {
			return fmt.Sprintf("writer.AddEncodedString(%s)", valueExpr), false, nil
		}
		return fmt.Sprintf("writer.AddFixedEncodedString(%s, %s, %t)", valueExpr, lengthExpr, padded), true, nil
	default:
		return "", false, fmt.Errorf("unhandled basic type %s", name)
	}
}

func basicReadExpr(t dataType, lengthExpr string, padded bool) (string, bool, error) {
	name := t.Name()
	switch name {
	case "byte":
		return "reader.GetByte()", false, nil
	case "char":
		return "reader.GetChar()", false, nil
	case "short":
		return "reader.GetShort()", false, nil
	case "three":
		return "reader.GetThree()", false, nil
	case "int":
		return "reader.GetInt()", false, nil
	case "string":
		if lengthExpr == "" {
			return "reader.GetString()", false, nil
		}
		return fmt.Sprintf("reader.GetFixedString(%s, %t)", lengthExpr, padded), true, nil
	case "encoded_string":
		if lengthExpr == "" {
			return "reader.GetEncodedString()", false, nil
		}
		return fmt.Sprintf("reader.GetFixedEncodedString(%s, %t)", lengthExpr, padded), true, nil
	default:
		return "", false, fmt.Errorf("unhandled basic type %s", name)
	}
}

// writeValue appends the statement(s) needed to write a single value of
// type t, already bound to valueExpr, possibly wrapped for an
// underlying-type override (bool/enum).
func (g *objectGenerator) writeValue(t dataType, valueExpr string, lengthExpr string, padded bool) error {
	real := t
	underlying := t
	if u, ok := t.(hasUnderlyingType); ok {
		underlying = u.UnderlyingType()
	}

	expr := valueExpr
	switch real.(type) {
	case *boolType:
		expr = fmt.Sprintf("func() int { if %s { return 1 }; return 0 }()", expr)
	case *enumType:
		expr = fmt.Sprintf("int(%s)", expr)
	}

	switch underlying.(type) {
	case *structType:
		g.data.serialize.Line("if err := %s.Serialize(writer); err != nil {", expr)
		g.data.serialize.Indent().Line("return err").Unindent()
		g.data.serialize.Line("}")
		return nil
	case *blobType:
		g.data.serialize.Line("writer.AddBytes(%s)", expr)
		return nil
	}

	stmt, fallible, err := basicWriteExpr(underlying, expr, lengthExpr, padded)
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

	return nil
}

// readValue appends the statement(s) needed to read a single value of
// type t into targetExpr (an assignment target, e.g. "result.Foo" or
// "element").
func (g *objectGenerator) readValue(t dataType, targetExpr string, lengthExpr string, padded bool) error {
	real := t
	underlying := t
	if u, ok := t.(hasUnderlyingType); ok {
		underlying = u.UnderlyingType()
	}

	switch st := underlying.(type) {
	case *structType:
		varName := g.tempVar("value")
		g.data.deserialize.Line("%s, err := Deserialize%s(reader)", varName, st.name)
		g.data.deserialize.Line("if err != nil {")
		g.data.deserialize.Indent().Line("return nil, err").Unindent()
		g.data.deserialize.Line("}")
		g.data.deserialize.Line("%s = %s", targetExpr, varName)
		return nil
	case *blobType:
		g.data.deserialize.Line("%s = reader.GetBytes(reader.Remaining())", targetExpr)
		return nil
	}

	expr, fallible, err := basicReadExpr(underlying, lengthExpr, padded)
	if err != nil {
		return err
	}

	switch real.(type) {
	case *boolType:
		if fallible {
			rawVar := g.tempVar("rawValue")
			g.data.deserialize.Line("%s, err := %s", rawVar, expr)
			g.data.deserialize.Line("if err != nil {")
			g.data.deserialize.Indent().Line("return nil, err").Unindent()
			g.data.deserialize.Line("}")
			g.data.deserialize.Line("%s = %s != 0", targetExpr, rawVar)
		} else {
			g.data.deserialize.Line("%s = %s != 0", targetExpr, expr)
		}
	case *enumType:
		enumName := real.(*enumType).name
		if fallible {
			rawVar := g.tempVar("rawValue")
			g.data.deserialize.Line("%s, err := %s", rawVar, expr)
			g.data.deserialize.Line("if err != nil {")
			g.data.deserialize.Indent().Line("return nil, err").Unindent()
			g.data.deserialize.Line("}")
			g.data.deserialize.Line("%s = %s(%s)", targetExpr, enumName, rawVar)
		} else {
			g.data.deserialize.Line("%s = %s(%s)", targetExpr, enumName, expr)
		}
	default:
		if fallible {
			rawVar := g.tempVar("rawValue")
			g.data.deserialize.Line("%s, err := %s", rawVar, expr)
			g.data.deserialize.Line("if err != nil {")
			g.data.deserialize.Indent().Line("return nil, err").Unindent()
			g.data.deserialize.Line("}")
			g.data.deserialize.Line("%s = %s", targetExpr, rawVar)
		} else {
			g.data.deserialize.Line("%s = %s", targetExpr, expr)
		}
	}

	return nil
}
