package render

import "strings"

// Field is one field of a struct or enum variant: its target name (empty for
// tuple fields), its rendered type-name and its rendered value-literal. Only
// the part needed by the called function has to be set.
type Field struct {
	Name  string
	Type  string
	Value string
}

// Literal spells a struct or variant literal from rendered field values.
//
//	record:  Name { a: 1u8, b: 2u8, }   (compact: Name{a:1u8,b:2u8,})
//	tuple:   Name(1u8,2u8,)
//	unit:    Name
//
// Enum variants use the compact form.
func Literal(name string, shape Shape, compact bool, fields ...Field) string {
	if shape == ShapeUnit {
		return name
	}

	var sb strings.Builder

	sb.WriteString(name)

	switch {
	case shape == ShapeTuple:
		sb.WriteByte('(')
	case compact:
		sb.WriteByte('{')
	default:
		sb.WriteString(" { ")
	}

	for _, f := range fields {
		switch {
		case shape == ShapeTuple:
			sb.WriteString(f.Value)
			sb.WriteByte(',')
		case compact:
			sb.WriteString(f.Name)
			sb.WriteByte(':')
			sb.WriteString(f.Value)
			sb.WriteByte(',')
		default:
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			sb.WriteString(f.Value)
			sb.WriteString(", ")
		}
	}

	if shape == ShapeTuple {
		sb.WriteByte(')')
	} else {
		sb.WriteByte('}')
	}

	return sb.String()
}

// StructDefinition spells "struct Name{ a: u8, }", "struct Name( u8, );" or
// "struct Name;" from rendered field types. The visibility applies to the
// item and to its fields.
func StructDefinition(attrs, vis, name string, shape Shape, fields ...Field) string {
	fieldVis := ""
	if vis != "" {
		fieldVis = vis + " "
	}

	def := declPrefix(attrs, vis) + "struct " + name + fieldTypes(shape, fields, fieldVis)
	if shape != ShapeRecord {
		def += ";"
	}

	return def
}

// fieldTypes spells the field list after a struct or variant name.
func fieldTypes(shape Shape, fields []Field, fieldVis string) string {
	if shape == ShapeUnit {
		return ""
	}

	var sb strings.Builder

	if shape == ShapeTuple {
		sb.WriteByte('(')
	} else {
		sb.WriteByte('{')
	}

	for _, f := range fields {
		sb.WriteByte(' ')
		sb.WriteString(fieldVis)

		if shape != ShapeTuple {
			sb.WriteString(f.Name)
			sb.WriteString(": ")
		}

		sb.WriteString(f.Type)
		sb.WriteByte(',')
	}

	if shape == ShapeTuple {
		sb.WriteString(" )")
	} else {
		sb.WriteString(" }")
	}

	return sb.String()
}
