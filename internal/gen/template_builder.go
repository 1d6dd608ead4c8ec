package gen

import (
	"strconv"

	"const-generator/internal/analyze"
	"const-generator/render"
)

// templateData holds all data needed for the const template.
type templateData struct {
	PackageName      string
	Filename         string
	RenderImport     string
	GenerateComments bool
	Types            []typeData
	Enums            []enumData
}

// typeData describes the renderers of one derived struct or variant.
type typeData struct {
	GoName    string
	TypeName  string // quoted: returned by ConstType
	LitName   string // quoted: the name in the literal, "Enum::Variant" for variants
	Shape     string // render.Shape constant
	Compact   bool
	IsVariant bool
	EnumName  string // Go name of the owning enum
	Fields    []fieldData
}

// fieldData describes one rendered field.
type fieldData struct {
	GoName    string
	ConstName string // quoted
}

// enumData describes the registration of one enum.
type enumData struct {
	GoName   string
	Name     string // quoted
	Variants []variantData
}

// variantData describes one registered variant.
type variantData struct {
	Ctor   string // render.UnitVariant, render.TupleVariant or render.RecordVariant
	GoName string
	Name   string // quoted
}

// buildTemplateData constructs the template data of a package.
func (g *Generator) buildTemplateData(pkg *analyze.PackageInfo) *templateData {
	data := &templateData{
		PackageName:      pkg.Name,
		Filename:         g.filename(pkg),
		RenderImport:     g.config.RenderImport,
		GenerateComments: g.config.GenerateComments,
	}

	for _, d := range pkg.Derived {
		td := typeData{
			GoName:    d.ID.Name,
			TypeName:  strconv.Quote(d.Name),
			LitName:   strconv.Quote(d.Name),
			Shape:     shapeConst(d.Shape),
			IsVariant: d.IsVariant(),
		}

		if d.IsVariant() {
			td.TypeName = strconv.Quote(d.Enum.Name)
			td.LitName = strconv.Quote(d.Enum.Name + "::" + d.Name)
			td.Compact = true
			td.EnumName = d.Enum.ID.Name
		}

		for _, f := range d.Fields {
			td.Fields = append(td.Fields, fieldData{GoName: f.GoName, ConstName: strconv.Quote(f.ConstName)})
		}

		data.Types = append(data.Types, td)
	}

	for _, e := range pkg.Enums {
		ed := enumData{GoName: e.ID.Name, Name: strconv.Quote(e.Name)}
		for _, v := range e.Variants {
			ed.Variants = append(ed.Variants, variantData{
				Ctor:   variantCtor(v.Shape),
				GoName: v.ID.Name,
				Name:   strconv.Quote(v.Name),
			})
		}

		data.Enums = append(data.Enums, ed)
	}

	return data
}

func shapeConst(s render.Shape) string {
	switch s {
	case render.ShapeTuple:
		return "render.ShapeTuple"
	case render.ShapeUnit:
		return "render.ShapeUnit"
	default:
		return "render.ShapeRecord"
	}
}

func variantCtor(s render.Shape) string {
	switch s {
	case render.ShapeTuple:
		return "render.TupleVariant"
	case render.ShapeUnit:
		return "render.UnitVariant"
	default:
		return "render.RecordVariant"
	}
}
