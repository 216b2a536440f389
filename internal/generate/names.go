package generate

import "strings"

// snakeToPascal converts a snake_case schema identifier (as used for
// field and enum value names) into an exported Go identifier.
func snakeToPascal(name string) string {
	var b strings.Builder
	upperNext := true

	for _, c := range name {
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(toUpper(c))
			upperNext = false
		} else {
			b.WriteRune(toLower(c))
		}
	}

	return b.String()
}

func toUpper(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// unexported returns name with its first rune lowercased, for use as a
// private struct field or local variable name.
func unexported(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = toLower(r[0])
	return string(r)
}

// pascalToSnake converts an exported Go-style or schema PascalCase type
// name to snake_case, used to derive generated file names.
func pascalToSnake(name string) string {
	var b strings.Builder

	for i, c := range name {
		if i > 0 && c >= 'A' && c <= 'Z' {
			prevLower := name[i-1] >= 'a' && name[i-1] <= 'z'
			nextLower := i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(toLower(c))
	}

	return b.String()
}
