// Package gen provides deterministic Go code generation for constant
// renderers.
//
// Generation approach uses text/template + go/format for readable Go code.
// One file is written per annotated package, next to its sources.
//
// Codegen patterns:
//   - ConstType returning the target type or enum name
//   - ConstVal composing render.Literal from each field's render.MustValueFor
//   - ConstDefinition composing render.StructDefinition from each field's
//     render.MustTypeLike
//   - an init function registering every enum with its variants
package gen
