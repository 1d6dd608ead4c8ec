package container

import "const-generator/render"

// Ref is a smart pointer that the target program dereferences implicitly.
// It renders exactly like the value it points to, on both the value and the
// array path.
type Ref[T any] struct {
	Value T
}

// Box, Rc, Arc and Cow name the owning pointers of the target program. A
// constant holds its data directly, so all of them render as their content.
type (
	Box[T any] = Ref[T]
	Rc[T any]  = Ref[T]
	Arc[T any] = Ref[T]
	Cow[T any] = Ref[T]
)

// NewRef wraps v.
func NewRef[T any](v T) Ref[T] {
	return Ref[T]{Value: v}
}

func (p Ref[T]) ConstType() string      { return p.ConstTypeIn(render.Default) }
func (p Ref[T]) ConstVal() string       { return p.ConstValIn(render.Default) }
func (p Ref[T]) ConstArrayType() string { return p.ConstArrayTypeIn(render.Default) }
func (p Ref[T]) ConstArrayVal() string  { return p.ConstArrayValIn(render.Default) }

func (Ref[T]) ConstTypeIn(r *render.Registry) string {
	return render.MustTypeIn[T](r)
}

func (p Ref[T]) ConstValIn(r *render.Registry) string {
	return render.MustValueIn(r, p.Value)
}

func (p Ref[T]) ConstArrayTypeIn(r *render.Registry) string {
	return render.MustArrayTypeIn(r, p.Value)
}

func (p Ref[T]) ConstArrayValIn(r *render.Registry) string {
	return render.MustArrayValueIn(r, p.Value)
}
