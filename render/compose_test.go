package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"const-generator/render"
)

func TestLiteral(t *testing.T) {
	t.Parallel()

	fields := []render.Field{{Name: "a", Value: "1u8"}, {Name: "b", Value: "true"}}

	assert.Equal(t, "P { a: 1u8, b: true, }", render.Literal("P", render.ShapeRecord, false, fields...))
	assert.Equal(t, "E::P{a:1u8,b:true,}", render.Literal("E::P", render.ShapeRecord, true, fields...))
	assert.Equal(t, "P(1u8,true,)", render.Literal("P", render.ShapeTuple, false, fields...))
	assert.Equal(t, "P", render.Literal("P", render.ShapeUnit, false, fields...))
	assert.Equal(t, "P { }", render.Literal("P", render.ShapeRecord, false))
}

func TestStructDefinition(t *testing.T) {
	t.Parallel()

	fields := []render.Field{{Name: "a", Type: "u8"}, {Name: "b", Type: "bool"}}

	assert.Equal(t, "struct P{ a: u8, b: bool, }", render.StructDefinition("", "", "P", render.ShapeRecord, fields...))
	assert.Equal(t, "#[derive(Clone)] pub struct P( pub u8, pub bool, );",
		render.StructDefinition("#[derive(Clone)]", "pub", "P", render.ShapeTuple, fields...))
	assert.Equal(t, "struct P;", render.StructDefinition("", "", "P", render.ShapeUnit))
	assert.Equal(t, "u8", render.MustTypeLike(uint8(0)))

	var e TestEnum
	assert.Panics(t, func() { render.MustTypeLike(e) }, "TestEnum is only registered in local registries")
}
