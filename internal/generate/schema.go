package generate

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// protocolFile is a single indexed "protocol.xml" document: its root
// element, and its path relative to the schema root (used to derive
// the generated package layout, e.g. "net/client").
type protocolFile struct {
	sourcePath string
	root       *xmlNode
}

// schema indexes every protocol.xml beneath an input root: it registers
// all <enum>/<struct> custom types with the typeFactory up front, before
// any is resolved (so that a schema file may reference a type defined in
// a different file), and catches packets
// that redeclare the same family/action pair within one file.
type schema struct {
	inputRoot   string
	files       []protocolFile
	typeFactory *typeFactory
}

func newSchema(inputRoot string) *schema {
	return &schema{inputRoot: inputRoot, typeFactory: newTypeFactory()}
}

// index walks inputRoot looking for files literally named "protocol.xml".
func (s *schema) index() error {
	return filepath.WalkDir(s.inputRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "protocol.xml" {
			return nil
		}
		return s.indexFile(path)
	})
}

func (s *schema) indexFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var root xmlNode
	if err := xml.Unmarshal(raw, &root); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if root.tag() != "protocol" {
		return fmt.Errorf("%s: expected a root <protocol> element", path)
	}

	sourcePath, err := filepath.Rel(s.inputRoot, filepath.Dir(path))
	if err != nil {
		return err
	}
	sourcePath = filepath.ToSlash(sourcePath)

	for _, node := range root.children("enum", "struct") {
		if err := s.typeFactory.DefineCustomType(node, sourcePath); err != nil {
			name, _ := node.attr("name")
			return fmt.Errorf("%s: %s: %w", path, name, err)
		}
	}

	seen := map[string]bool{}
	for _, packet := range root.children("packet") {
		family, err := packet.requiredStringAttr("family")
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		action, err := packet.requiredStringAttr("action")
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		key := family + "_" + action
		if seen[key] {
			return fmt.Errorf("%s: %s packet cannot be redefined in the same file", path, key)
		}
		seen[key] = true
	}

	s.files = append(s.files, protocolFile{sourcePath: sourcePath, root: &root})
	return nil
}
