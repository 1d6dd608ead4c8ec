package container

import "const-generator/render"

const eitherPath = "::either::Either"

// Either holds one of two values. It renders through the either crate.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding the left value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either holding the right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsRight reports whether e holds the right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether e holds it.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether e holds it.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) ConstType() string {
	return e.ConstTypeIn(render.Default)
}

func (e Either[L, R]) ConstVal() string {
	return e.ConstValIn(render.Default)
}

func (Either[L, R]) ConstTypeIn(r *render.Registry) string {
	return eitherPath + "<" + render.MustTypeIn[L](r) + "," + render.MustTypeIn[R](r) + ">"
}

func (e Either[L, R]) ConstValIn(r *render.Registry) string {
	if e.isRight {
		return eitherPath + "::Right(" + render.MustValueIn(r, e.right) + ")"
	}

	return eitherPath + "::Left(" + render.MustValueIn(r, e.left) + ")"
}
