package render

import (
	"fmt"
	"reflect"
	"strings"
)

// variantValue renders a variant literal. Variants use the compact record
// form, e.g. "Enum::Variant{named:0u8,}", to stay byte-compatible with
// previously generated output.
func (r *Registry) variantValue(info *enumInfo, variant Variant, v reflect.Value) (string, error) {
	return r.composite(info.name+"::"+variant.Name, variant.Shape, v, renderedFields(variant.Type), true)
}

// enumDefinition spells "enum Name{ A, B( u8, ), C{ named: u8, }, }".
func (r *Registry) enumDefinition(info *enumInfo, attrs, vis string) (string, error) {
	var sb strings.Builder

	sb.WriteString(declPrefix(attrs, vis))
	sb.WriteString("enum ")
	sb.WriteString(info.name)
	sb.WriteByte('{')

	for _, v := range info.variants {
		sb.WriteByte(' ')
		sb.WriteString(v.Name)

		fields, err := r.fieldTypes(v.Shape, renderedFields(v.Type))
		if err != nil {
			return "", fmt.Errorf("%s::%s: %w", info.name, v.Name, err)
		}

		sb.WriteString(fieldTypes(v.Shape, fields, ""))
		sb.WriteByte(',')
	}

	sb.WriteString(" }")

	return sb.String(), nil
}
