package render

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Backend names the perfect-hash crate whose map and set literals are emitted
// for Go maps. The crate itself lives in the target program.
type Backend struct {
	// Path is the crate path, e.g. "phf".
	Path string
	// MapMacro and SetMacro are the literal macro names, e.g. "phf_map".
	MapMacro, SetMacro string
}

// PHF is the default backend.
var PHF = Backend{Path: "phf", MapMacro: "phf_map", SetMacro: "phf_set"}

// MapType returns "{Path}::Map<K, V>".
func (b Backend) MapType(key, val string) string {
	return b.Path + "::Map<" + key + ", " + val + ">"
}

// SetType returns "{Path}::Set<E>".
func (b Backend) SetType(elem string) string {
	return b.Path + "::Set<" + elem + ">"
}

// MapLiteral returns "{Path}::{MapMacro}!{k => v,...}" for rendered entries.
func (b Backend) MapLiteral(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Key + " => " + e.Value
	}

	return b.Path + "::" + b.MapMacro + "!{" + strings.Join(parts, ",") + "}"
}

// SetLiteral returns "{Path}::{SetMacro}!{e,...}" for rendered elements.
func (b Backend) SetLiteral(elems []string) string {
	return b.Path + "::" + b.SetMacro + "!{" + strings.Join(elems, ",") + "}"
}

// Entry is a rendered key/value pair.
type Entry struct {
	Key, Value string
}

// SortEntries orders entries by their key literal. Go map iteration order is
// random, so sorting makes the output identical across calls and builds.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

// SetBackend replaces the backend used for Go maps.
func (r *Registry) SetBackend(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend = b
}

// Backend returns the backend used for Go maps.
func (r *Registry) Backend() Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.backend
}

// isSet reports whether a map type is used as a set: map[K]struct{}.
func isSet(t reflect.Type) bool {
	return t.Elem() == reflect.TypeFor[struct{}]()
}

func (r *Registry) mapType(t reflect.Type) (string, error) {
	key, err := r.TypeOf(t.Key())
	if err != nil {
		return "", err
	}

	if isSet(t) {
		return r.Backend().SetType(key), nil
	}

	val, err := r.TypeOf(t.Elem())
	if err != nil {
		return "", err
	}

	return r.Backend().MapType(key, val), nil
}

func (r *Registry) mapValue(v reflect.Value) (string, error) {
	set := isSet(v.Type())
	entries := make([]Entry, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		key, err := r.value(iter.Key())
		if err != nil {
			return "", fmt.Errorf("map key: %w", err)
		}

		var val string
		if !set {
			val, err = r.value(iter.Value())
			if err != nil {
				return "", fmt.Errorf("map value for key %s: %w", key, err)
			}
		}

		entries = append(entries, Entry{Key: key, Value: val})
	}

	SortEntries(entries)

	if set {
		keys := make([]string, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
		}

		return r.Backend().SetLiteral(keys), nil
	}

	return r.Backend().MapLiteral(entries), nil
}
