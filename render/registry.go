package render

import (
	"fmt"
	"reflect"
	"sync"
)

// Shape is the field layout of a derived struct or enum variant.
type Shape int

const (
	ShapeRecord Shape = iota // named fields: Name { a: 1, }
	ShapeTuple               // positional fields: Name(1,)
	ShapeUnit                // no fields: Name
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeRecord:
		return "record"
	case ShapeTuple:
		return "tuple"
	case ShapeUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// StructOptions describes how a struct type is derived.
type StructOptions struct {
	// Name overrides the Go type name.
	Name  string
	Shape Shape
}

// Variant is one alternative of an enum. Type is the Go struct type carrying
// the variant's fields.
type Variant struct {
	Type  reflect.Type
	Name  string
	Shape Shape
}

// UnitVariant describes a variant without fields.
func UnitVariant[T any](name string) Variant {
	return Variant{Type: reflect.TypeFor[T](), Name: name, Shape: ShapeUnit}
}

// TupleVariant describes a variant with positional fields.
func TupleVariant[T any](name string) Variant {
	return Variant{Type: reflect.TypeFor[T](), Name: name, Shape: ShapeTuple}
}

// RecordVariant describes a variant with named fields.
func RecordVariant[T any](name string) Variant {
	return Variant{Type: reflect.TypeFor[T](), Name: name, Shape: ShapeRecord}
}

// Func renders a foreign type that cannot implement Const itself.
type Func struct {
	// Type returns the type-name; it must not depend on a value.
	Type func() string
	// Value returns the literal for v, whose type is the registered type.
	Value func(v reflect.Value) (string, error)
}

type enumInfo struct {
	name     string
	iface    reflect.Type
	variants []Variant
}

// Registry holds struct shapes, enums and custom renderers.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	structs  map[reflect.Type]StructOptions
	enums    map[reflect.Type]*enumInfo // keyed by interface type
	variants map[reflect.Type]*enumInfo // keyed by variant type
	funcs    map[reflect.Type]Func
	backend  Backend
}

// Default is the registry used by the package-level functions.
var Default = NewRegistry()

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		structs:  make(map[reflect.Type]StructOptions),
		enums:    make(map[reflect.Type]*enumInfo),
		variants: make(map[reflect.Type]*enumInfo),
		funcs:    make(map[reflect.Type]Func),
		backend:  PHF,
	}
}

// RegisterStruct records the shape of a named struct type.
func (r *Registry) RegisterStruct(t reflect.Type, opts StructOptions) error {
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
		return fmt.Errorf("%w: %s is not a named struct", ErrInvalidRegistration, typeStr(t))
	}

	if opts.Name == "" {
		opts.Name = t.Name()
	}

	if opts.Shape == ShapeUnit && len(renderedFields(t)) > 0 {
		return fmt.Errorf("%w: unit struct %s has fields", ErrInvalidRegistration, typeStr(t))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.structs[t] = opts

	return nil
}

// RegisterEnum records iface as an enum whose values are the given variants.
// Every variant type must be a named struct implementing iface.
func (r *Registry) RegisterEnum(iface reflect.Type, name string, variants ...Variant) error {
	if iface == nil || iface.Kind() != reflect.Interface {
		return fmt.Errorf("%w: enum %s is not an interface", ErrInvalidRegistration, typeStr(iface))
	}

	if name == "" {
		name = iface.Name()
	}

	info := &enumInfo{name: name, iface: iface}
	for _, v := range variants {
		if v.Type == nil || v.Type.Kind() != reflect.Struct {
			return fmt.Errorf("%w: variant %q of %s is not a struct", ErrInvalidRegistration, v.Name, name)
		}

		if !v.Type.Implements(iface) {
			return fmt.Errorf("%w: variant %s does not implement %s", ErrInvalidRegistration, typeStr(v.Type), typeStr(iface))
		}

		if v.Name == "" {
			v.Name = v.Type.Name()
		}

		if v.Shape == ShapeUnit && len(renderedFields(v.Type)) > 0 {
			return fmt.Errorf("%w: unit variant %s::%s has fields", ErrInvalidRegistration, name, v.Name)
		}

		info.variants = append(info.variants, v)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.enums[iface] = info
	for _, v := range info.variants {
		r.variants[v.Type] = info
	}

	return nil
}

// RegisterFunc installs a custom renderer for t.
func (r *Registry) RegisterFunc(t reflect.Type, f Func) error {
	if t == nil || f.Type == nil || f.Value == nil {
		return fmt.Errorf("%w: incomplete renderer for %s", ErrInvalidRegistration, typeStr(t))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcs[t] = f

	return nil
}

func (r *Registry) structOptions(t reflect.Type) StructOptions {
	r.mu.RLock()
	opts, ok := r.structs[t]
	r.mu.RUnlock()

	if !ok {
		opts = StructOptions{Name: t.Name(), Shape: inferShape(t)}
	}

	return opts
}

func (r *Registry) enum(iface reflect.Type) (*enumInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.enums[iface]

	return info, ok
}

// variantOf returns the enum and variant a struct type belongs to.
func (r *Registry) variantOf(t reflect.Type) (*enumInfo, Variant, bool) {
	r.mu.RLock()
	info, ok := r.variants[t]
	r.mu.RUnlock()

	if !ok {
		return nil, Variant{}, false
	}

	for _, v := range info.variants {
		if v.Type == t {
			return info, v, true
		}
	}

	return nil, Variant{}, false
}

func (r *Registry) custom(t reflect.Type) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.funcs[t]

	return f, ok
}

// RegisterStruct records the shape of T in the default registry.
func RegisterStruct[T any](opts StructOptions) error {
	return Default.RegisterStruct(reflect.TypeFor[T](), opts)
}

// MustRegisterStruct is like RegisterStruct but panics on error.
func MustRegisterStruct[T any](opts StructOptions) {
	if err := RegisterStruct[T](opts); err != nil {
		panic(err)
	}
}

// RegisterEnum records the interface I as an enum in the default registry.
func RegisterEnum[I any](name string, variants ...Variant) error {
	return Default.RegisterEnum(reflect.TypeFor[I](), name, variants...)
}

// MustRegisterEnum is like RegisterEnum but panics on error.
func MustRegisterEnum[I any](name string, variants ...Variant) {
	if err := RegisterEnum[I](name, variants...); err != nil {
		panic(err)
	}
}

// RegisterFunc installs a custom renderer for T in the default registry.
func RegisterFunc[T any](f Func) error {
	return Default.RegisterFunc(reflect.TypeFor[T](), f)
}
