package container

import (
	"const-generator/render"
)

// Map is an insertion-ordered map. Unlike a Go map, whose entries are sorted
// by key when rendered, a Map keeps the order its entries were set in.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewMap returns an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Set stores v under k. Setting an existing key keeps its position.
func (m *Map[K, V]) Set(k K, v V) *Map[K, V] {
	if m.values == nil {
		m.values = make(map[K]V)
	}

	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}

	m.values[k] = v

	return m
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

func (m *Map[K, V]) ConstType() string { return m.ConstTypeIn(render.Default) }
func (m *Map[K, V]) ConstVal() string  { return m.ConstValIn(render.Default) }

// ConstTypeIn spells the map with the backend of r.
func (*Map[K, V]) ConstTypeIn(r *render.Registry) string {
	return r.Backend().MapType(render.MustTypeIn[K](r), render.MustTypeIn[V](r))
}

func (m *Map[K, V]) ConstValIn(r *render.Registry) string {
	entries := make([]render.Entry, len(m.keys))
	for i, k := range m.keys {
		entries[i] = render.Entry{Key: render.MustValueIn(r, k), Value: render.MustValueIn(r, m.values[k])}
	}

	return r.Backend().MapLiteral(entries)
}

// Set is an insertion-ordered set.
type Set[E comparable] struct {
	elems []E
	seen  map[E]struct{}
}

// NewSet returns a Set holding elems, without duplicates.
func NewSet[E comparable](elems ...E) *Set[E] {
	s := &Set[E]{seen: make(map[E]struct{})}
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts e unless it is already present.
func (s *Set[E]) Add(e E) *Set[E] {
	if s.seen == nil {
		s.seen = make(map[E]struct{})
	}

	if _, ok := s.seen[e]; !ok {
		s.seen[e] = struct{}{}
		s.elems = append(s.elems, e)
	}

	return s
}

// Contains reports whether e is in the set.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.seen[e]
	return ok
}

// Len returns the number of elements.
func (s *Set[E]) Len() int {
	return len(s.elems)
}

func (s *Set[E]) ConstType() string { return s.ConstTypeIn(render.Default) }
func (s *Set[E]) ConstVal() string  { return s.ConstValIn(render.Default) }

func (*Set[E]) ConstTypeIn(r *render.Registry) string {
	return r.Backend().SetType(render.MustTypeIn[E](r))
}

func (s *Set[E]) ConstValIn(r *render.Registry) string {
	elems := make([]string, len(s.elems))
	for i, e := range s.elems {
		elems[i] = render.MustValueIn(r, e)
	}

	return r.Backend().SetLiteral(elems)
}
