package generate

import (
	"fmt"
	"sort"
	"strings"
)

// codeBuilder accumulates Go source text line by line, tracking
// indentation and the set of packages that need to be imported. It is
// the Go analogue of assembling a source file from sections: fields,
// methods, serialize/deserialize bodies, and auxiliary types are each
// built up independently and stitched together at the end.
type codeBuilder struct {
	lines   []string
	imports map[string]bool
	indent  int
}

func newCodeBuilder() *codeBuilder {
	return &codeBuilder{imports: map[string]bool{}}
}

// Line appends a single formatted line at the current indentation.
func (b *codeBuilder) Line(format string, args ...interface{}) *codeBuilder {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	b.lines = append(b.lines, strings.Repeat("\t", b.indent)+text)
	return b
}

// Blank appends an empty line.
func (b *codeBuilder) Blank() *codeBuilder {
	b.lines = append(b.lines, "")
	return b
}

// Indent increases the indentation level for subsequent lines.
func (b *codeBuilder) Indent() *codeBuilder {
	b.indent++
	return b
}

// Unindent decreases the indentation level for subsequent lines.
func (b *codeBuilder) Unindent() *codeBuilder {
	b.indent--
	return b
}

// BeginBlock opens a brace-delimited block, e.g. BeginBlock("if x") emits
// "if x {" and indents subsequent lines.
func (b *codeBuilder) BeginBlock(format string, args ...interface{}) *codeBuilder {
	b.Line(format+" {", args...)
	return b.Indent()
}

// NextBlock closes the current block and opens another chained onto it,
// e.g. NextBlock("else") emits "} else {".
func (b *codeBuilder) NextBlock(format string, args ...interface{}) *codeBuilder {
	b.Unindent()
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	b.lines = append(b.lines, strings.Repeat("\t", b.indent)+"} "+text+" {")
	return b.Indent()
}

// EndBlock closes a brace-delimited block opened with BeginBlock.
func (b *codeBuilder) EndBlock() *codeBuilder {
	b.Unindent()
	return b.Line("}")
}

// Append merges another builder's lines and imports into this one at
// the current indentation.
func (b *codeBuilder) Append(other *codeBuilder) *codeBuilder {
	for path := range other.imports {
		b.imports[path] = true
	}
	for _, line := range other.lines {
		if line == "" {
			b.lines = append(b.lines, "")
		} else {
			b.lines = append(b.lines, strings.Repeat("\t", b.indent)+line)
		}
	}
	return b
}

// AddImport records that the generated file needs to import path.
func (b *codeBuilder) AddImport(path string) *codeBuilder {
	b.imports[path] = true
	return b
}

// Empty reports whether any lines have been written.
func (b *codeBuilder) Empty() bool {
	return len(b.lines) == 0
}

// String renders the accumulated lines, without a package clause or
// import block.
func (b *codeBuilder) String() string {
	return strings.Join(b.lines, "\n")
}

// ImportLines returns a formatted `import (...)` block covering every
// package recorded via AddImport/Append, or "" if there are none.
func (b *codeBuilder) ImportLines() string {
	if len(b.imports) == 0 {
		return ""
	}

	paths := make([]string, 0, len(b.imports))
	for p := range b.imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var sb strings.Builder
	sb.WriteString("import (\n")
	for _, p := range paths {
		sb.WriteString(fmt.Sprintf("\t%q\n", p))
	}
	sb.WriteString(")\n")
	return sb.String()
}
