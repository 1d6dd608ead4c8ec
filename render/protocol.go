package render

import "reflect"

// Const is implemented by types that render themselves.
//
// ConstType must not read its receiver: it is called on zero values to spell
// the type of containers that hold no elements.
type Const interface {
	ConstType() string
	ConstVal() string
}

// ArrayConst is implemented by types that can also be declared as a sized
// array. The type-name embeds the length of this particular value.
type ArrayConst interface {
	ConstArrayType() string
	ConstArrayVal() string
}

// Definer is implemented by types that can emit their own structural
// definition. The result must be empty for types that already exist in the
// target program.
type Definer interface {
	ConstDefinition(attrs, vis string) string
}

// Nested is implemented by wrapper types that hold other values, such as
// Option or Vec. The dispatcher prefers it over Const, so the held values
// resolve against the registry doing the rendering. The methods report
// failure by panicking with an error, as the Must helpers do.
type Nested interface {
	ConstTypeIn(r *Registry) string
	ConstValIn(r *Registry) string
}

// NestedArray is the ArrayConst counterpart of Nested.
type NestedArray interface {
	ConstArrayTypeIn(r *Registry) string
	ConstArrayValIn(r *Registry) string
}

var (
	constIface       = reflect.TypeFor[Const]()
	arrayConstIface  = reflect.TypeFor[ArrayConst]()
	definerIface     = reflect.TypeFor[Definer]()
	nestedIface      = reflect.TypeFor[Nested]()
	nestedArrayIface = reflect.TypeFor[NestedArray]()
)

// TypeOf returns the type-name expression for t using the default registry.
func TypeOf(t reflect.Type) (string, error) {
	return Default.TypeOf(t)
}

// TypeFor returns the type-name expression for T using the default registry.
func TypeFor[T any]() (string, error) {
	return Default.TypeOf(reflect.TypeFor[T]())
}

// MustTypeFor is like TypeFor but panics if T cannot be rendered.
func MustTypeFor[T any]() string {
	return MustTypeIn[T](Default)
}

// MustTypeIn returns the type-name expression for T using r, and panics if T
// cannot be rendered.
func MustTypeIn[T any](r *Registry) string {
	return must(r.TypeOf(reflect.TypeFor[T]()))
}

// MustTypeLike is like MustTypeFor, with T inferred from the argument. The
// argument itself is not read.
func MustTypeLike[T any](T) string {
	return MustTypeFor[T]()
}

// ValueOf returns the value-literal expression for v using the default registry.
func ValueOf(v any) (string, error) {
	return Default.ValueOf(v)
}

// MustValue is like ValueOf but panics if v cannot be rendered.
func MustValue(v any) string {
	return must(Default.ValueOf(v))
}

// ValueFor is like ValueOf but keeps the static type T, so a value held in an
// enum interface renders through its enum and a nil one fails with ErrNilValue.
func ValueFor[T any](v T) (string, error) {
	return Default.valueOf(reflect.ValueOf(&v).Elem())
}

// MustValueFor is like ValueFor but panics if v cannot be rendered.
func MustValueFor[T any](v T) string {
	return MustValueIn(Default, v)
}

// MustValueIn is like MustValueFor but renders with r.
func MustValueIn[T any](r *Registry, v T) string {
	return must(r.valueOf(reflect.ValueOf(&v).Elem()))
}

// ArrayTypeOf returns the sized-array type-name for v using the default registry.
func ArrayTypeOf(v any) (string, error) {
	return Default.ArrayTypeOf(v)
}

// ArrayValueOf returns the sized-array literal for v using the default registry.
func ArrayValueOf(v any) (string, error) {
	return Default.ArrayValueOf(v)
}

// MustArrayType is like ArrayTypeOf but panics if v has no array form.
func MustArrayType(v any) string {
	return must(Default.ArrayTypeOf(v))
}

// MustArrayValue is like ArrayValueOf but panics if v has no array form.
func MustArrayValue(v any) string {
	return must(Default.ArrayValueOf(v))
}

// MustArrayTypeIn is like MustArrayType but renders with r.
func MustArrayTypeIn(r *Registry, v any) string {
	return must(r.ArrayTypeOf(v))
}

// MustArrayValueIn is like MustArrayValue but renders with r.
func MustArrayValueIn(r *Registry, v any) string {
	return must(r.ArrayValueOf(v))
}

func must(s string, err error) string {
	if err != nil {
		panic(err)
	}

	return s
}

// recoverError turns a panic raised by a Must helper inside a nested Const
// implementation back into an error. Other panics are re-raised.
func recoverError(err *error) {
	p := recover()
	if p == nil {
		return
	}

	e, ok := p.(error)
	if !ok {
		panic(p)
	}

	*err = e
}
