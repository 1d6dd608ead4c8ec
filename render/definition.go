package render

import (
	"fmt"
	"reflect"
	"strings"
)

// Definition returns the structural definition of t: a struct or enum item
// for derived types, and an empty string for every type that already exists
// in the target program.
func (r *Registry) Definition(t reflect.Type, attrs, vis string) (_ string, err error) {
	defer recoverError(&err)

	if t == nil {
		return "", ErrNilValue
	}

	if _, ok := r.custom(t); ok {
		return "", nil
	}

	if t.Kind() == reflect.Interface {
		if info, ok := r.enum(t); ok {
			return r.enumDefinition(info, attrs, vis)
		}

		return "", fmt.Errorf("%w: %s", ErrUnregisteredInterface, typeStr(t))
	}

	if t.Implements(definerIface) {
		return zero(t).(Definer).ConstDefinition(attrs, vis), nil
	}

	if t.Kind() == reflect.Pointer {
		return r.Definition(t.Elem(), attrs, vis)
	}

	if info, _, ok := r.variantOf(t); ok {
		return r.enumDefinition(info, attrs, vis)
	}

	if !r.isDerived(t) {
		return "", nil
	}

	return r.structDefinition(t, attrs, vis)
}

// isDerived reports whether t is a struct rendered by derivation, i.e. a
// user type whose definition is not already known to the target program.
func (r *Registry) isDerived(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.Name() == "" || opaque(t) {
		return false
	}

	if _, ok := r.custom(t); ok {
		return false
	}

	return !rendersItself(t) || t.Implements(definerIface)
}

func (r *Registry) structDefinition(t reflect.Type, attrs, vis string) (string, error) {
	opts := r.structOptions(t)

	fields, err := r.fieldTypes(opts.Shape, renderedFields(t))
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.Name, err)
	}

	return StructDefinition(attrs, vis, opts.Name, opts.Shape, fields...), nil
}

// fieldTypes renders the type-name of every field.
func (r *Registry) fieldTypes(shape Shape, fields []field) ([]Field, error) {
	out := make([]Field, len(fields))
	for i, f := range fields {
		if shape == ShapeRecord && f.err != nil {
			return nil, fmt.Errorf("field %s: %w", f.name, f.err)
		}

		typ, err := r.TypeOf(f.typ)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.name, err)
		}

		out[i] = Field{Name: f.name, Type: typ}
	}

	return out, nil
}

// Definitions returns the definitions of every derived type reachable from
// the given types, one per line, with each type after the types it embeds by
// value. It fails with ErrRecursiveType when a type contains itself without
// going through a slice or map.
func (r *Registry) Definitions(attrs, vis string, types ...reflect.Type) (string, error) {
	g := &defGraph{
		r:        r,
		index:    make(map[reflect.Type]int),
		visiting: make(map[reflect.Type]bool),
	}
	for _, t := range types {
		g.walk(t, -1, true)
	}

	order, stuck := dependencyOrder(g.deps)
	if len(stuck) > 0 {
		names := make([]string, len(stuck))
		for i, idx := range stuck {
			names[i] = typeStr(g.nodes[idx])
		}

		return "", fmt.Errorf("%w: among %s", ErrRecursiveType, strings.Join(names, ", "))
	}

	var defs []string

	for _, i := range order {
		def, err := r.Definition(g.nodes[i], attrs, vis)
		if err != nil {
			return "", err
		}

		if def != "" {
			defs = append(defs, def)
		}
	}

	return strings.Join(defs, "\n"), nil
}

// defGraph collects derived types and the by-value containment between them.
type defGraph struct {
	r     *Registry
	index map[reflect.Type]int
	nodes []reflect.Type
	deps  [][]int // deps[i] must be defined before nodes[i]

	// wrappers on the current path; guards self-referencing opaque types
	visiting map[reflect.Type]bool
}

// walk visits t as contained in nodes[owner] (owner < 0 for roots). byValue is
// false once the path goes through a reference such as a slice or map.
func (g *defGraph) walk(t reflect.Type, owner int, byValue bool) {
	if t == nil {
		return
	}

	if _, ok := g.r.custom(t); ok {
		return
	}

	if node, ok := g.nodeType(t); ok {
		idx := g.add(node)
		if owner >= 0 && byValue {
			g.deps[owner] = append(g.deps[owner], idx)
		}

		return
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Array:
		g.walk(t.Elem(), owner, byValue)
	case reflect.Slice:
		g.walk(t.Elem(), owner, false)
	case reflect.Map:
		g.walk(t.Key(), owner, false)
		g.walk(t.Elem(), owner, false)
	case reflect.Struct:
		if g.visiting[t] {
			return
		}

		g.visiting[t] = true
		defer delete(g.visiting, t)

		// wrappers such as Option or tuples hold their elements by value
		for i := range t.NumField() {
			g.walk(t.Field(i).Type, owner, byValue)
		}
	}
}

// nodeType maps t to the type whose definition covers it, if any.
func (g *defGraph) nodeType(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Interface {
		_, ok := g.r.enum(t)
		return t, ok
	}

	if info, _, ok := g.r.variantOf(t); ok {
		return info.iface, true
	}

	return t, g.r.isDerived(t)
}

// add registers a node and walks its fields the first time it is seen.
func (g *defGraph) add(t reflect.Type) int {
	if idx, ok := g.index[t]; ok {
		return idx
	}

	idx := len(g.nodes)
	g.index[t] = idx
	g.nodes = append(g.nodes, t)
	g.deps = append(g.deps, nil)

	if t.Kind() == reflect.Interface {
		info, _ := g.r.enum(t)
		for _, v := range info.variants {
			for _, f := range renderedFields(v.Type) {
				g.walk(f.typ, idx, true)
			}
		}

		return idx
	}

	for _, f := range renderedFields(t) {
		g.walk(f.typ, idx, true)
	}

	return idx
}

// Definition returns the definition of t using the default registry.
func Definition(t reflect.Type, attrs, vis string) (string, error) {
	return Default.Definition(t, attrs, vis)
}

// DefinitionFor returns the definition of T using the default registry.
func DefinitionFor[T any](attrs, vis string) (string, error) {
	return Default.Definition(reflect.TypeFor[T](), attrs, vis)
}

// Definitions returns the definitions of every derived type reachable from
// the types of values, using the default registry.
func Definitions(attrs, vis string, values ...any) (string, error) {
	types := make([]reflect.Type, len(values))
	for i, v := range values {
		types[i] = reflect.TypeOf(v)
	}

	return Default.Definitions(attrs, vis, types...)
}
