package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidIdent is returned for names that cannot be spelled as a target
// identifier, not even in raw form.
var ErrInvalidIdent = errors.New("name is not a valid identifier")

// keywords are the strict and reserved keywords of the target language. A
// field with one of these names is written as a raw identifier, r#type.
var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "match": true, "mod": true, "move": true,
	"mut": true, "pub": true, "ref": true, "return": true, "static": true,
	"struct": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,

	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"gen": true, "macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// pathKeywords have no raw form.
var pathKeywords = map[string]bool{
	"self": true, "Self": true, "super": true, "crate": true, "_": true,
}

// Ident returns name as a field identifier of the target language. Keywords
// become raw identifiers; path keywords and names that are not identifiers
// are rejected with ErrInvalidIdent.
func Ident(name string) (string, error) {
	if raw, ok := strings.CutPrefix(name, "r#"); ok && keywords[raw] {
		return name, nil
	}

	if pathKeywords[name] || !isIdent(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdent, name)
	}

	if keywords[name] {
		return "r#" + name, nil
	}

	return name, nil
}

// FieldIdent is the identifier of a Go field: the tag name when set, the
// snake_case Go name otherwise.
func FieldIdent(goName, tag string) (string, error) {
	if tag == "" {
		tag = SnakeCase(goName)
	}

	return Ident(tag)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}

	return true
}
