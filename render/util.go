package render

import (
	"reflect"
	"strconv"
)

// typeStr spells a Go type for error messages.
func typeStr(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}

// declPrefix joins the non-empty attribute and visibility prefixes, each
// followed by a single space.
func declPrefix(attrs, vis string) string {
	var prefix string
	if attrs != "" {
		prefix += attrs + " "
	}

	if vis != "" {
		prefix += vis + " "
	}

	return prefix
}
