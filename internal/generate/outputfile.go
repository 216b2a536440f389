package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// outputFile is a single generated Go source file: a package name, a
// path relative to the output root, and the body text produced by an
// objectGenerator or a plain enum emitter.
type outputFile struct {
	relativePath string
	packageName  string
	body         *codeBuilder
}

// Write renders the file and writes it beneath root, creating parent
// directories as needed.
func (f *outputFile) Write(root string) error {
	outputPath := filepath.Join(root, f.relativePath)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	var content string
	content += "// Code generated from the eo-protocol XML specification. DO NOT EDIT.\n\n"
	content += fmt.Sprintf("package %s\n\n", f.packageName)
	if imports := f.body.ImportLines(); imports != "" {
		content += imports + "\n"
	}
	content += f.body.String()
	if len(content) == 0 || content[len(content)-1] != '\n' {
		content += "\n"
	}

	return os.WriteFile(outputPath, []byte(content), 0o644)
}
