package generate

// deprecatedField is a single legacy field name the generator still
// knows about, carried over from the source project's special-casing
// rather than built out into a general versioning mechanism.
type deprecatedField struct {
	typeName   string
	oldName    string
	replacedBy string
	since      string
}

// deprecatedFields is intentionally a short, hand-maintained list, not
// a registry consumers can extend: the schema format has no concept of
// field deprecation, so every entry here documents a one-off rename
// the generator needs to keep explaining to callers.
var deprecatedFields = []deprecatedField{
	{typeName: "WalkPlayerServerPacket", oldName: "Direction", replacedBy: "direction", since: "1.1.0"},
}

// deprecationNotice returns the doc comment line for fieldGoName on
// typeName, or "" if the field isn't deprecated.
func deprecationNotice(typeName, fieldGoName string) string {
	for _, f := range deprecatedFields {
		if f.typeName == typeName && f.oldName == fieldGoName {
			return "Deprecated: superseded by the " + f.replacedBy + " field as of v" + f.since + "."
		}
	}
	return ""
}
