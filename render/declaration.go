package render

import (
	"fmt"
	"reflect"
)

// DeclarationType is the kind of item a declaration emits.
type DeclarationType int

const (
	DeclarationConst DeclarationType = iota
	DeclarationStatic
)

// String returns the keyword of the declaration type.
func (d DeclarationType) String() string {
	switch d {
	case DeclarationConst:
		return "const"
	case DeclarationStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Declaration renders v as a named item:
//
//	{attrs} {vis} {kind} {name}: {type} = {value};
//
// The separator after attrs and vis is only written when they are not empty.
func (r *Registry) Declaration(v any, attrs, vis string, kind DeclarationType, name string) (string, error) {
	typ, err := r.TypeOf(reflect.TypeOf(v))
	if err != nil {
		return "", fmt.Errorf("declaring %s: %w", name, err)
	}

	val, err := r.ValueOf(v)
	if err != nil {
		return "", fmt.Errorf("declaring %s: %w", name, err)
	}

	return assemble(attrs, vis, kind, name, typ, val), nil
}

// ArrayDeclaration is like Declaration, but declares v as a sized array whose
// length is the length of v.
func (r *Registry) ArrayDeclaration(v any, attrs, vis string, kind DeclarationType, name string) (string, error) {
	typ, err := r.ArrayTypeOf(v)
	if err != nil {
		return "", fmt.Errorf("declaring %s: %w", name, err)
	}

	val, err := r.ArrayValueOf(v)
	if err != nil {
		return "", fmt.Errorf("declaring %s: %w", name, err)
	}

	return assemble(attrs, vis, kind, name, typ, val), nil
}

func assemble(attrs, vis string, kind DeclarationType, name, typ, val string) string {
	return declPrefix(attrs, vis) + kind.String() + " " + name + ": " + typ + " = " + val + ";"
}

// Declaration renders v with the default registry.
func Declaration(v any, attrs, vis string, kind DeclarationType, name string) (string, error) {
	return Default.Declaration(v, attrs, vis, kind, name)
}

// ConstDeclaration renders v as a const item.
func ConstDeclaration(v any, attrs, vis, name string) (string, error) {
	return Default.Declaration(v, attrs, vis, DeclarationConst, name)
}

// StaticDeclaration renders v as a static item.
func StaticDeclaration(v any, attrs, vis, name string) (string, error) {
	return Default.Declaration(v, attrs, vis, DeclarationStatic, name)
}

// ArrayDeclaration renders v as a sized array with the default registry.
func ArrayDeclaration(v any, attrs, vis string, kind DeclarationType, name string) (string, error) {
	return Default.ArrayDeclaration(v, attrs, vis, kind, name)
}

// ConstArrayDeclaration renders v as a const sized array.
func ConstArrayDeclaration(v any, attrs, vis, name string) (string, error) {
	return Default.ArrayDeclaration(v, attrs, vis, DeclarationConst, name)
}

// StaticArrayDeclaration renders v as a static sized array.
func StaticArrayDeclaration(v any, attrs, vis, name string) (string, error) {
	return Default.ArrayDeclaration(v, attrs, vis, DeclarationStatic, name)
}
