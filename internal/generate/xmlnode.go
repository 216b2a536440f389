package generate

import (
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"
)

// xmlNode is a generic XML element, decoded without a fixed schema so
// that the same type can represent <protocol>, <enum>, <struct>,
// <packet>, <field>, <array>, <switch>, <case>, and every other element
// the schema format uses.
type xmlNode struct {
	XMLName  xml.Name   `xml:""`
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func (n *xmlNode) tag() string {
	return n.XMLName.Local
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *xmlNode) stringAttr(name, def string) string {
	if v, ok := n.attr(name); ok {
		return v
	}
	return def
}

func (n *xmlNode) requiredStringAttr(name string) (string, error) {
	if v, ok := n.attr(name); ok {
		return v, nil
	}
	return "", fmt.Errorf(`required attribute "%s" is missing`, name)
}

func (n *xmlNode) intAttr(name string, def int) (int, error) {
	v, ok := n.attr(name)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s attribute has an invalid integer value: %s", name, v)
	}
	return i, nil
}

func (n *xmlNode) requiredIntAttr(name string) (int, error) {
	v, ok := n.attr(name)
	if !ok {
		return 0, fmt.Errorf(`required attribute "%s" is missing`, name)
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s attribute has an invalid integer value: %s", name, v)
	}
	return i, nil
}

func (n *xmlNode) boolAttr(name string, def bool) bool {
	v, ok := n.attr(name)
	if !ok {
		return def
	}
	return strings.EqualFold(v, "true")
}

// children returns the direct child elements matching any of the given
// tags, in document order.
func (n *xmlNode) children(tags ...string) []*xmlNode {
	var result []*xmlNode
	for i := range n.Children {
		c := &n.Children[i]
		for _, tag := range tags {
			if c.tag() == tag {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// instructions returns the direct child elements that are serialization
// instructions: field, array, length, dummy, switch, chunked, or break.
func (n *xmlNode) instructions() []*xmlNode {
	return n.children("field", "array", "length", "dummy", "switch", "chunked", "break")
}

// comment returns the text of this element's <comment> child, if any.
func (n *xmlNode) comment() string {
	for i := range n.Children {
		if n.Children[i].tag() == "comment" {
			return n.Children[i].text()
		}
	}
	return ""
}

// text returns this element's own character data, unescaped. Matches
// the source format's convention of putting a hardcoded field value (or
// an enum value's ordinal) directly inside the element.
func (n *xmlNode) text() string {
	return strings.TrimSpace(html.UnescapeString(strings.TrimSpace(n.Text)))
}
