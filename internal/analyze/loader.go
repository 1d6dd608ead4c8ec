package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"const-generator/internal/common"
	"const-generator/internal/diagnostic"
	"const-generator/internal/match"
	"const-generator/internal/naming"
	"const-generator/render"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects their annotated types.
type Analyzer struct {
	dir        string
	skipSuffix string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the directory patterns are resolved in.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithGeneratedSuffix hides files ending in suffix while type-checking, so a
// stale generated file cannot keep its package from loading.
func WithGeneratedSuffix(suffix string) Option {
	return func(a *Analyzer) {
		a.skipSuffix = suffix
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and collects their annotated types.
// Patterns are standard Go package patterns (e.g., "./store", "const-generator/store").
//
// Problems with directives are reported as diagnostics in the result; the
// returned error is only set when the packages cannot be loaded.
func (a *Analyzer) LoadPackages(patterns ...string) (*Result, error) {
	overlay, err := a.overlay(patterns)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	res := &Result{}
	for _, pkg := range pkgs {
		res.Packages = append(res.Packages, a.processPackage(pkg, &res.Diagnostics))
	}

	return res, nil
}

// overlay blanks out previously generated files, keeping only their package
// clause.
func (a *Analyzer) overlay(patterns []string) (map[string][]byte, error) {
	if a.skipSuffix == "" {
		return nil, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	overlay := make(map[string][]byte)

	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			if strings.HasSuffix(file, a.skipSuffix) {
				overlay[file] = []byte("package " + pkg.Name + "\n")
			}
		}
	}

	return overlay, nil
}

// annotated is a type declaration carrying a directive.
type annotated struct {
	obj *types.TypeName
	dir Directive
	pos token.Position
}

// processPackage extracts annotated types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, diags *diagnostic.Diagnostics) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Files: pkg.GoFiles,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	var items []annotated

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				pos := pkg.Fset.Position(ts.Name.Pos())
				id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}

				dir, ok, err := directiveOf(doc)
				if err != nil {
					code := diagnostic.CodeBadOption
					if errors.Is(err, ErrUnknownDirective) {
						code = diagnostic.CodeUnknownDirective
					}

					diags.AddError(code, err.Error(), id.String(), pos.String())

					continue
				}

				if !ok {
					continue
				}

				obj, _ := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if obj == nil {
					continue
				}

				items = append(items, annotated{obj: obj, dir: dir, pos: pos})
			}
		}
	}

	// enums first: variants refer to them
	for _, it := range items {
		if it.dir.Kind == DirectiveEnum {
			if e := a.enum(pkg, it, diags); e != nil {
				info.Enums = append(info.Enums, e)
			}
		}
	}

	for _, it := range items {
		if it.dir.Kind == DirectiveEnum {
			continue
		}

		d := a.derived(pkg, it, diags)
		if d == nil {
			continue
		}

		if it.dir.Kind == DirectiveVariant {
			e := a.owner(it, info.Enums, diags)
			if e == nil {
				continue
			}

			d.Enum = e
			e.Variants = append(e.Variants, d)
		}

		info.Derived = append(info.Derived, d)
	}

	for _, e := range info.Enums {
		if len(e.Variants) == 0 {
			diags.AddWarning(diagnostic.CodeEmptyEnum, "enum has no variants", e.ID.String(), e.Pos.String())
		}
	}

	return info
}

func (a *Analyzer) enum(pkg *packages.Package, it annotated, diags *diagnostic.Diagnostics) *Enum {
	id := TypeID{PkgPath: pkg.PkgPath, Name: it.obj.Name()}

	iface, ok := it.obj.Type().Underlying().(*types.Interface)
	if !ok || it.obj.IsAlias() {
		diags.AddError(diagnostic.CodeWrongTarget, "enum directive requires an interface type", id.String(), it.pos.String())
		return nil
	}

	name := it.dir.Name
	if name == "" {
		name = id.Name
	}

	return &Enum{ID: id, Name: name, Pos: it.pos, iface: iface}
}

func (a *Analyzer) derived(pkg *packages.Package, it annotated, diags *diagnostic.Diagnostics) *Derived {
	id := TypeID{PkgPath: pkg.PkgPath, Name: it.obj.Name()}

	named, isNamed := it.obj.Type().(*types.Named)
	st, isStruct := it.obj.Type().Underlying().(*types.Struct)

	if !isNamed || !isStruct || it.obj.IsAlias() {
		diags.AddError(diagnostic.CodeWrongTarget, it.dir.Kind.String()+" directive requires a struct type", id.String(), it.pos.String())
		return nil
	}

	if named.TypeParams().Len() > 0 {
		diags.AddError(diagnostic.CodeWrongTarget, "generic types cannot be derived", id.String(), it.pos.String())
		return nil
	}

	if opaque(st) {
		diags.AddError(diagnostic.CodeWrongTarget, "struct has no exported fields", id.String(), it.pos.String())
		return nil
	}

	fields, ok := a.fields(pkg, st, id, it.pos, diags)
	if !ok {
		return nil
	}

	d := &Derived{
		ID:     id,
		Name:   it.dir.Name,
		Shape:  render.ShapeRecord,
		Fields: fields,
		Pos:    it.pos,
	}

	if d.Name == "" {
		d.Name = id.Name
	}

	switch {
	case it.dir.HasShape:
		d.Shape = it.dir.Shape
	case len(fields) == 0:
		d.Shape = render.ShapeUnit
	}

	if d.Shape == render.ShapeUnit && len(fields) > 0 {
		diags.AddError(diagnostic.CodeUnitWithFields, "unit shape requires a struct without rendered fields", id.String(), it.pos.String())
		return nil
	}

	if d.Shape != render.ShapeRecord {
		return d
	}

	for _, f := range fields {
		if f.nameErr != nil {
			diags.AddError(diagnostic.CodeInvalidFieldName, fmt.Sprintf("field %s: %v", f.GoName, f.nameErr), id.String(), it.pos.String())
			d = nil
		}
	}

	return d
}

// opaque reports whether st keeps all of its fields unexported. Such structs
// fail at runtime too.
func opaque(st *types.Struct) bool {
	for i := range st.NumFields() {
		if st.Field(i).Exported() {
			return false
		}
	}

	return st.NumFields() > 0
}

// fields lists the rendered fields of st: exported, not tagged `const:"-"`.
func (a *Analyzer) fields(
	pkg *packages.Package, st *types.Struct, id TypeID, pos token.Position, diags *diagnostic.Diagnostics,
) ([]FieldInfo, bool) {
	var out []FieldInfo

	ok := true

	for i := range st.NumFields() {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}

		name, _, _ := strings.Cut(reflect.StructTag(st.Tag(i)).Get("const"), ",")
		if name == "-" {
			continue
		}

		ident, nameErr := naming.FieldIdent(f.Name(), name)
		if nameErr != nil {
			ident = f.Name()
		}

		if bad := unsupported(f.Type(), make(map[types.Type]bool)); bad != nil {
			diags.AddError(diagnostic.CodeUnsupportedField,
				fmt.Sprintf("field %s: %s has no constant representation", f.Name(), bad),
				id.String(), pos.String())

			ok = false

			continue
		}

		out = append(out, FieldInfo{
			GoName:    f.Name(),
			ConstName: ident,
			Type:      f.Type(),
			TypeStr:   types.TypeString(f.Type(), types.RelativeTo(pkg.Types)),
			nameErr:   nameErr,
		})
	}

	return out, ok
}

// owner finds the enum a variant belongs to among the package's enums.
func (a *Analyzer) owner(it annotated, enums []*Enum, diags *diagnostic.Diagnostics) *Enum {
	id := TypeID{PkgPath: it.obj.Pkg().Path(), Name: it.obj.Name()}
	t := it.obj.Type()

	var (
		candidates []*Enum
		viaPointer bool
	)

	for _, e := range enums {
		if it.dir.Enum != "" && it.dir.Enum != e.ID.Name {
			continue
		}

		switch {
		case types.Implements(t, e.iface):
			candidates = append(candidates, e)
		case types.Implements(types.NewPointer(t), e.iface):
			viaPointer = true
		}
	}

	declared := common.Names(enums, enumName)

	switch {
	case len(candidates) > 1:
		diags.AddError(diagnostic.CodeAmbiguousVariant,
			"variant implements several enums ("+strings.Join(common.Names(candidates, enumName), ", ")+"); choose one with enum=",
			id.String(), it.pos.String())

		return nil

	case len(candidates) == 0 && viaPointer:
		diags.AddError(diagnostic.CodePointerReceiver,
			"variant implements its enum only through pointer receivers", id.String(), it.pos.String())

		return nil

	case len(candidates) == 0 && it.dir.Enum != "" && !slices.Contains(declared, it.dir.Enum):
		diags.AddError(diagnostic.CodeOrphanVariant,
			fmt.Sprintf("enum=%s names no enum of its package%s", it.dir.Enum, match.Hint(it.dir.Enum, declared)),
			id.String(), it.pos.String())

		return nil

	case len(candidates) == 0:
		diags.AddError(diagnostic.CodeOrphanVariant, "variant implements no enum of its package", id.String(), it.pos.String())
		return nil
	}

	e, _ := common.Sole(candidates)

	return e
}

func enumName(e *Enum) string {
	return e.ID.Name
}

// unsupported returns the part of t that cannot be rendered, or nil.
func unsupported(t types.Type, seen map[types.Type]bool) types.Type {
	if seen[t] {
		return nil
	}

	seen[t] = true

	switch tt := t.Underlying().(type) {
	case *types.Chan, *types.Signature:
		return t
	case *types.Basic:
		if tt.Info()&types.IsComplex != 0 || tt.Kind() == types.UnsafePointer {
			return t
		}
	case *types.Pointer:
		return unsupported(tt.Elem(), seen)
	case *types.Slice:
		return unsupported(tt.Elem(), seen)
	case *types.Array:
		return unsupported(tt.Elem(), seen)
	case *types.Map:
		if bad := unsupported(tt.Key(), seen); bad != nil {
			return bad
		}

		return unsupported(tt.Elem(), seen)
	}

	return nil
}
