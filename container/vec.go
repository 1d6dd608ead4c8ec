package container

import (
	"strconv"
	"strings"

	"const-generator/render"
)

// Vec is a growable sequence. It renders as a static slice, or as a sized
// array on the array path.
type Vec[T any] []T

func (v Vec[T]) ConstType() string      { return v.ConstTypeIn(render.Default) }
func (v Vec[T]) ConstVal() string       { return v.ConstValIn(render.Default) }
func (v Vec[T]) ConstArrayType() string { return v.ConstArrayTypeIn(render.Default) }
func (v Vec[T]) ConstArrayVal() string  { return v.ConstArrayValIn(render.Default) }

func (Vec[T]) ConstTypeIn(r *render.Registry) string {
	return "&'static [" + render.MustTypeIn[T](r) + "]"
}

func (v Vec[T]) ConstValIn(r *render.Registry) string {
	return "&[" + v.elements(r) + "]"
}

func (v Vec[T]) ConstArrayTypeIn(r *render.Registry) string {
	return "[" + render.MustTypeIn[T](r) + "; " + strconv.Itoa(len(v)) + "]"
}

func (v Vec[T]) ConstArrayValIn(r *render.Registry) string {
	return "[" + v.elements(r) + "]"
}

func (v Vec[T]) elements(r *render.Registry) string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = render.MustValueIn(r, e)
	}

	return strings.Join(parts, ",")
}
