package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"const-generator/internal/analyze"
	"const-generator/render"
)

func storePackage(t *testing.T) *analyze.PackageInfo {
	t.Helper()

	res, err := analyze.NewAnalyzer(analyze.WithGeneratedSuffix(DefaultSuffix)).LoadPackages("const-generator/store")
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Error())
	require.Len(t, res.Packages, 1)

	return res.Packages[0]
}

func TestGenerator_Generate_Store(t *testing.T) {
	pkg := storePackage(t)

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(context.Background(), []*analyze.PackageInfo{pkg})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "store_const.go", files[0].Filename)
	assert.Equal(t, pkg.Dir, files[0].Dir)

	// the checked-in file must be what the generator produces
	want, err := os.ReadFile(files[0].Path())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(files[0].Content))
}

func TestGenerator_Generate_SimpleStruct(t *testing.T) {
	pkg := &analyze.PackageInfo{
		Path: "example/shop",
		Name: "shop",
		Dir:  t.TempDir(),
		Derived: []*analyze.Derived{{
			ID:    analyze.TypeID{PkgPath: "example/shop", Name: "Order"},
			Name:  "Order",
			Shape: render.ShapeRecord,
			Fields: []analyze.FieldInfo{
				{GoName: "ID", ConstName: "id"},
				{GoName: "TotalCents", ConstName: "total"},
			},
		}},
	}

	config := DefaultGeneratorConfig()
	config.GenerateComments = false

	files, err := NewGenerator(config, nil).Generate(context.Background(), []*analyze.PackageInfo{pkg})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Equal(t, "shop_const.go", files[0].Filename)
	assert.Contains(t, content, "package shop")
	assert.Contains(t, content, `import "const-generator/render"`)
	assert.Contains(t, content, "func (Order) ConstType() string {\n\treturn \"Order\"\n}")
	assert.Contains(t, content, `render.Literal("Order", render.ShapeRecord, false,`)
	assert.Contains(t, content, `render.Field{Name: "total", Value: render.MustValueFor(v.TotalCents)},`)
	assert.Contains(t, content, `render.StructDefinition(attrs, vis, "Order", render.ShapeRecord,`)
	assert.Contains(t, content, `render.Field{Name: "id", Type: render.MustTypeLike(v.ID)},`)
	assert.NotContains(t, content, "// ConstType implements")
	assert.NotContains(t, content, "func init()")
}

func TestGenerator_Generate_Enum(t *testing.T) {
	enum := &analyze.Enum{
		ID:   analyze.TypeID{PkgPath: "example/geo", Name: "Shape"},
		Name: "Figure",
	}
	circle := &analyze.Derived{
		ID:     analyze.TypeID{PkgPath: "example/geo", Name: "Circle"},
		Name:   "Circle",
		Shape:  render.ShapeTuple,
		Fields: []analyze.FieldInfo{{GoName: "Radius", ConstName: "radius"}},
		Enum:   enum,
	}
	empty := &analyze.Derived{
		ID:    analyze.TypeID{PkgPath: "example/geo", Name: "Empty"},
		Name:  "Empty",
		Shape: render.ShapeUnit,
		Enum:  enum,
	}
	enum.Variants = []*analyze.Derived{circle, empty}

	pkg := &analyze.PackageInfo{
		Path:    "example/geo",
		Name:    "geo",
		Dir:     t.TempDir(),
		Derived: []*analyze.Derived{circle, empty},
		Enums:   []*analyze.Enum{enum},
	}

	config := DefaultGeneratorConfig()
	config.RenderImport = "example/vendor/render"

	files, err := NewGenerator(config, nil).Generate(context.Background(), []*analyze.PackageInfo{pkg})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Contains(t, content, `import "example/vendor/render"`)
	assert.Contains(t, content, "func (Circle) ConstType() string {\n\treturn \"Figure\"\n}")
	assert.Contains(t, content, `render.Literal("Figure::Circle", render.ShapeTuple, true,`)
	assert.Contains(t, content, "func (Empty) ConstVal() string {\n\treturn render.Literal(\"Figure::Empty\", render.ShapeUnit, true)\n}")
	assert.NotContains(t, content, "ConstDefinition")
	assert.Contains(t, content, "render.MustRegisterEnum[Shape](\"Figure\",\n\t\trender.TupleVariant[Circle](\"Circle\"),\n\t\trender.UnitVariant[Empty](\"Empty\"),\n\t)")
}

func TestGenerator_Generate_SkipsEmpty(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	files, err := NewGenerator(DefaultGeneratorConfig(), zap.New(core)).Generate(context.Background(), []*analyze.PackageInfo{
		{Path: "example/empty", Name: "empty"},
	})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 1, logs.FilterMessage("skipping package without annotated types").Len())
}

func TestGenerator_Generate_FormatFailure(t *testing.T) {
	dir := t.TempDir()
	pkg := &analyze.PackageInfo{
		Path: "example/bad",
		Name: "bad",
		Dir:  dir,
		Derived: []*analyze.Derived{{
			ID:    analyze.TypeID{PkgPath: "example/bad", Name: "Not A Name"},
			Name:  "Bad",
			Shape: render.ShapeUnit,
		}},
	}

	_, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(context.Background(), []*analyze.PackageInfo{pkg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating example/bad")

	raw, err := os.ReadFile(filepath.Join(dir, "bad_const.go"+unformattedSuffix))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "func (Not A Name) ConstType() string")
}

func TestGenerator_Generate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pkg := &analyze.PackageInfo{
		Path: "example/shop",
		Name: "shop",
		Derived: []*analyze.Derived{{
			ID:    analyze.TypeID{PkgPath: "example/shop", Name: "Order"},
			Name:  "Order",
			Shape: render.ShapeUnit,
		}},
	}

	_, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(ctx, []*analyze.PackageInfo{pkg})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Generate_KeepsPackageOrder(t *testing.T) {
	var pkgs []*analyze.PackageInfo

	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		pkgs = append(pkgs, &analyze.PackageInfo{
			Path: "example/" + name,
			Name: name,
			Derived: []*analyze.Derived{{
				ID:    analyze.TypeID{PkgPath: "example/" + name, Name: "T"},
				Name:  "T",
				Shape: render.ShapeUnit,
			}},
		})
	}

	config := DefaultGeneratorConfig()
	config.Parallelism = 2

	files, err := NewGenerator(config, nil).Generate(context.Background(), pkgs)
	require.NoError(t, err)
	require.Len(t, files, 4)

	for i, name := range []string{"alpha", "beta", "gamma", "delta"} {
		assert.Equal(t, name+"_const.go", files[i].Filename)
	}
}

func TestWriteFiles(t *testing.T) {
	pkgDir := filepath.Join(t.TempDir(), "nested", "pkg")
	files := []GeneratedFile{{Dir: pkgDir, Filename: "pkg_const.go", Content: []byte("package pkg\n")}}

	written, err := WriteFiles(files, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(pkgDir, "pkg_const.go")}, written)

	got, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "package pkg\n", string(got))

	override := t.TempDir()
	written, err = WriteFiles(files, override)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(override, "pkg_const.go")}, written)

	_, err = WriteFiles([]GeneratedFile{{Filename: "x_const.go"}}, "")
	require.Error(t, err)
}
