// Package analyze loads Go packages and collects the types annotated for
// constant generation.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. Three
// directives are recognized in the doc comment of a type declaration:
//
//	//constgen:derive [tuple|unit] [name=X]    on a struct
//	//constgen:enum [name=X]                   on an interface
//	//constgen:variant [tuple|unit] [name=X] [enum=I]
//	                                           on a struct implementing an enum
//
// Key types:
//   - TypeID: package import path + type name
//   - Derived: a struct or enum variant with its rendered fields
//   - Enum: an interface and the variants implementing it
package analyze
