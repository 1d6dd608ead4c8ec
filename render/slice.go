package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"const-generator/primitive"
)

// sliceType spells []T as a static slice reference, since the length of a
// slice is not part of its type.
func (r *Registry) sliceType(t reflect.Type) (string, error) {
	elem, err := r.TypeOf(t.Elem())
	if err != nil {
		return "", err
	}

	return "&'static [" + elem + "]", nil
}

func (r *Registry) arrayType(t reflect.Type) (string, error) {
	elem, err := r.TypeOf(t.Elem())
	if err != nil {
		return "", err
	}

	return sizedArray(elem, t.Len()), nil
}

func (r *Registry) sliceValue(v reflect.Value) (string, error) {
	elems, err := r.elements(v)
	if err != nil {
		return "", err
	}

	return "&[" + strings.Join(elems, ",") + "]", nil
}

func (r *Registry) arrayValue(v reflect.Value) (string, error) {
	elems, err := r.elements(v)
	if err != nil {
		return "", err
	}

	return "[" + strings.Join(elems, ",") + "]", nil
}

// elements renders every element of a slice or array in order.
func (r *Registry) elements(v reflect.Value) ([]string, error) {
	out := make([]string, v.Len())
	for i := range v.Len() {
		s, err := r.value(v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out[i] = s
	}

	return out, nil
}

// ArrayTypeOf returns the type-name of v declared as a sized array. Unlike
// TypeOf, the length is read from the value.
func (r *Registry) ArrayTypeOf(v any) (_ string, err error) {
	defer recoverError(&err)

	return r.sizedType(reflect.ValueOf(v))
}

// ArrayValueOf returns the literal of v declared as a sized array.
func (r *Registry) ArrayValueOf(v any) (_ string, err error) {
	defer recoverError(&err)

	return r.sizedValue(reflect.ValueOf(v))
}

func (r *Registry) sizedType(v reflect.Value) (string, error) {
	v, err := deref(v)
	if err != nil {
		return "", err
	}

	t := v.Type()
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case NestedArray:
			return x.ConstArrayTypeIn(r), nil
		case ArrayConst:
			return x.ConstArrayType(), nil
		}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elem, err := r.TypeOf(t.Elem())
		if err != nil {
			return "", err
		}

		return sizedArray(elem, v.Len()), nil

	case reflect.String:
		return primitive.Str(v.String()).ConstArrayType(), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrNotArray, typeStr(t))
	}
}

func (r *Registry) sizedValue(v reflect.Value) (string, error) {
	v, err := deref(v)
	if err != nil {
		return "", err
	}

	t := v.Type()
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case NestedArray:
			return x.ConstArrayValIn(r), nil
		case ArrayConst:
			return x.ConstArrayVal(), nil
		}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return r.arrayValue(v)

	case reflect.String:
		return primitive.Str(v.String()).ConstArrayVal(), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrNotArray, typeStr(t))
	}
}

// hasArrayForm reports whether t implements ArrayConst or NestedArray.
func hasArrayForm(t reflect.Type) bool {
	return t.Implements(nestedArrayIface) || t.Implements(arrayConstIface)
}

// deref strips pointers and interfaces that do not have an array form themselves.
func deref(v reflect.Value) (reflect.Value, error) {
	for v.IsValid() {
		k := v.Kind()
		if k != reflect.Pointer && k != reflect.Interface {
			return v, nil
		}

		if v.IsNil() {
			return v, fmt.Errorf("%w: %s", ErrNilValue, typeStr(v.Type()))
		}

		if k == reflect.Pointer && hasArrayForm(v.Type()) && !hasArrayForm(v.Type().Elem()) {
			return v, nil
		}

		v = v.Elem()
	}

	return v, ErrNilValue
}

func sizedArray(elem string, n int) string {
	return "[" + elem + "; " + strconv.Itoa(n) + "]"
}
