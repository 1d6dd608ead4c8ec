package render

import (
	"fmt"
	"reflect"

	"const-generator/primitive"
)

// TypeOf returns the type-name expression for t. The result depends on the
// type alone, so empty containers render the same as full ones.
func (r *Registry) TypeOf(t reflect.Type) (_ string, err error) {
	defer recoverError(&err)

	if t == nil {
		return "", ErrNilValue
	}

	if f, ok := r.custom(t); ok {
		return f.Type(), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if pointerOnlyConst(t) {
			s, _ := r.selfType(t)
			return s, nil
		}

		return r.TypeOf(t.Elem())

	case reflect.Interface:
		if info, ok := r.enum(t); ok {
			return info.name, nil
		}

		return "", fmt.Errorf("%w: %s", ErrUnregisteredInterface, typeStr(t))
	}

	if s, ok := r.selfType(t); ok {
		return s, nil
	}

	if info, _, ok := r.variantOf(t); ok {
		return info.name, nil
	}

	if k := primitive.FromReflectType(t); k != 0 {
		return k.Keyword(), nil
	}

	switch t.Kind() {
	case reflect.Slice:
		return r.sliceType(t)
	case reflect.Array:
		return r.arrayType(t)
	case reflect.Map:
		return r.mapType(t)
	case reflect.Struct:
		return r.structType(t)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, typeStr(t))
	}
}

// ValueOf returns the value-literal expression for v.
func (r *Registry) ValueOf(v any) (string, error) {
	return r.valueOf(reflect.ValueOf(v))
}

func (r *Registry) valueOf(v reflect.Value) (_ string, err error) {
	defer recoverError(&err)

	return r.value(v)
}

func (r *Registry) value(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return "", ErrNilValue
	}

	t := v.Type()
	if f, ok := r.custom(t); ok {
		return f.Value(v)
	}

	switch t.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return "", fmt.Errorf("%w: %s", ErrNilValue, typeStr(t))
		}

		if pointerOnlyConst(t) {
			if s, ok := r.selfValue(v); ok {
				return s, nil
			}
		}

		return r.value(v.Elem())

	case reflect.Interface:
		if v.IsNil() {
			return "", fmt.Errorf("%w: %s", ErrNilValue, typeStr(t))
		}

		return r.interfaceValue(v)
	}

	if s, ok := r.selfValue(v); ok {
		return s, nil
	}

	if info, variant, ok := r.variantOf(t); ok {
		return r.variantValue(info, variant, v)
	}

	if k := primitive.FromReflectType(t); k != 0 {
		return primitive.Literal(k, v), nil
	}

	switch t.Kind() {
	case reflect.Slice:
		return r.sliceValue(v)
	case reflect.Array:
		return r.arrayValue(v)
	case reflect.Map:
		return r.mapValue(v)
	case reflect.Struct:
		return r.structValue(v)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, typeStr(t))
	}
}

// interfaceValue renders the dynamic value held by an enum interface, which
// must be one of its variants or render itself.
func (r *Registry) interfaceValue(v reflect.Value) (string, error) {
	info, ok := r.enum(v.Type())
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnregisteredInterface, typeStr(v.Type()))
	}

	elem := v.Elem()
	if rendersItself(elem.Type()) {
		return r.value(elem)
	}

	owner, variant, ok := r.variantOf(elem.Type())
	if !ok || owner != info {
		return "", fmt.Errorf("%w: %s in %s", ErrUnknownVariant, typeStr(elem.Type()), info.name)
	}

	return r.variantValue(info, variant, elem)
}

// rendersItself reports whether t implements Const or Nested.
func rendersItself(t reflect.Type) bool {
	return t.Implements(nestedIface) || t.Implements(constIface)
}

// pointerOnlyConst reports whether *T renders itself through pointer
// receivers while T does not.
func pointerOnlyConst(t reflect.Type) bool {
	return rendersItself(t) && !rendersItself(t.Elem())
}

// selfType spells the type of a type that renders itself. Nested wins over
// Const.
func (r *Registry) selfType(t reflect.Type) (string, bool) {
	switch {
	case t.Implements(nestedIface):
		return zero(t).(Nested).ConstTypeIn(r), true
	case t.Implements(constIface):
		return zero(t).(Const).ConstType(), true
	default:
		return "", false
	}
}

func (r *Registry) selfValue(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}

	switch x := v.Interface().(type) {
	case Nested:
		return x.ConstValIn(r), true
	case Const:
		return x.ConstVal(), true
	default:
		return "", false
	}
}

// zero returns a usable zero value of t: a pointer to a zero T for pointer types.
func zero(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}

	return reflect.Zero(t).Interface()
}
