package container

import "const-generator/render"

// Option is a value that may be absent: Option<T>.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) ConstType() string {
	return o.ConstTypeIn(render.Default)
}

func (o Option[T]) ConstVal() string {
	return o.ConstValIn(render.Default)
}

func (Option[T]) ConstTypeIn(r *render.Registry) string {
	return "Option<" + render.MustTypeIn[T](r) + ">"
}

func (o Option[T]) ConstValIn(r *render.Registry) string {
	if !o.ok {
		return "None"
	}

	return "Some(" + render.MustValueIn(r, o.value) + ")"
}
