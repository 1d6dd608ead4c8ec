package analyze

import (
	"go/token"
	"go/types"

	"const-generator/internal/diagnostic"
	"const-generator/render"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "const-generator/store"
	Name    string // e.g., "Product"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldInfo describes a struct field that takes part in rendering.
type FieldInfo struct {
	GoName    string     // Go field name
	ConstName string     // target field name: tag or snake_case Go name
	Type      types.Type // field type
	TypeStr   string     // field type as spelled inside its package

	nameErr error // ConstName is not an identifier
}

// Derived is a struct that gets generated renderers, either on its own or as
// the variant of an enum.
type Derived struct {
	ID     TypeID
	Name   string       // target type or variant name
	Shape  render.Shape // record, tuple or unit
	Fields []FieldInfo
	Enum   *Enum // owning enum for variants, nil for plain structs
	Pos    token.Position
}

// IsVariant reports whether d is an enum variant.
func (d *Derived) IsVariant() bool {
	return d.Enum != nil
}

// Enum is an interface whose implementations render as the variants of a
// target enum.
type Enum struct {
	ID       TypeID
	Name     string
	Variants []*Derived
	Pos      token.Position

	iface *types.Interface
}

// PackageInfo holds the annotated types of a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Files []string // Go files, absolute

	Derived []*Derived // plain structs and variants, in source order
	Enums   []*Enum    // in source order
}

// Empty reports whether the package has nothing to generate.
func (p *PackageInfo) Empty() bool {
	return len(p.Derived) == 0 && len(p.Enums) == 0
}

// Result holds the analyzed packages and the problems found in them.
type Result struct {
	Packages    []*PackageInfo
	Diagnostics diagnostic.Diagnostics
}
