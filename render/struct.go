package render

import (
	"fmt"
	"reflect"
	"strings"

	"const-generator/internal/naming"
)

// field is a struct field that takes part in rendering.
type field struct {
	index int
	name  string
	typ   reflect.Type
	err   error // name is not an identifier; only fatal where names are written
}

// renderedFields lists the exported fields of a struct in declaration order.
// The target field name comes from the `const:"name"` tag, or is the snake_case
// Go name, with keywords spelled as raw identifiers. Fields tagged `const:"-"`
// are skipped.
func renderedFields(t reflect.Type) []field {
	var out []field

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("const"), ",")
		if name == "-" {
			continue
		}

		ident, err := naming.FieldIdent(f.Name, name)
		if err != nil {
			ident, err = f.Name, fmt.Errorf("%w: %w", ErrInvalidFieldName, err)
		}

		out = append(out, field{index: i, name: ident, typ: f.Type, err: err})
	}

	return out
}

// opaque reports whether a struct hides all of its state in unexported fields,
// as time.Time or sync.Mutex do. Such structs cannot be derived.
func opaque(t reflect.Type) bool {
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return false
		}
	}

	return t.NumField() > 0
}

// inferShape is the shape of an unregistered struct: a unit when nothing is
// rendered, a record otherwise. The generator infers shapes the same way.
func inferShape(t reflect.Type) Shape {
	if len(renderedFields(t)) == 0 {
		return ShapeUnit
	}

	return ShapeRecord
}

func (r *Registry) structType(t reflect.Type) (string, error) {
	if t.Name() == "" {
		if t.NumField() == 0 {
			return "()", nil
		}

		return "", fmt.Errorf("%w: anonymous %s", ErrUnsupportedType, typeStr(t))
	}

	if opaque(t) {
		return "", fmt.Errorf("%w: %s has no exported fields", ErrUnsupportedType, typeStr(t))
	}

	return r.structOptions(t).Name, nil
}

func (r *Registry) structValue(v reflect.Value) (string, error) {
	if _, err := r.structType(v.Type()); err != nil {
		return "", err
	}

	if v.Type().Name() == "" {
		return "()", nil
	}

	opts := r.structOptions(v.Type())

	return r.composite(opts.Name, opts.Shape, v, renderedFields(v.Type()), false)
}

// composite renders a struct or enum variant literal field by field.
func (r *Registry) composite(name string, shape Shape, v reflect.Value, fields []field, compact bool) (string, error) {
	if shape == ShapeUnit {
		return name, nil
	}

	values := make([]Field, len(fields))
	for i, f := range fields {
		if shape == ShapeRecord && f.err != nil {
			return "", fmt.Errorf("%s.%s: %w", name, f.name, f.err)
		}

		val, err := r.value(v.Field(f.index))
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", name, f.name, err)
		}

		values[i] = Field{Name: f.name, Value: val}
	}

	return Literal(name, shape, compact, values...), nil
}
