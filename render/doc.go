// Package render turns Go values into constant declarations for a Rust
// program that embeds them at compile time.
//
// Every value is rendered as a pair of strings: a type-name expression that
// depends only on the static Go type, and a value-literal expression that
// evaluates to an equal value when compiled.
//
// Dispatch order for a type:
//   - custom functions registered with RegisterFunc (foreign types)
//   - types implementing Const (hand-written or generated renderers)
//   - registered enums and their variants
//   - scalars (see package primitive)
//   - slices, arrays, maps and pointers, recursively
//   - structs, derived field by field
//
// Struct and enum shapes are kept in a Registry. Plain structs need no
// registration and derive as record structs.
package render
