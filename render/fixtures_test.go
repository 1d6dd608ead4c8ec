package render_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"const-generator/render"
)

type TestStruct struct {
	TestU8  uint8
	TestVec []string
}

type TestTup struct {
	A uint8
	B uint16
}

type TestEnum interface {
	isTestEnum()
}

type Variant1 struct{}

type Variant2 struct {
	V0 uint8
}

type Variant3 struct {
	Named uint8
}

func (Variant1) isTestEnum() {}
func (Variant2) isTestEnum() {}
func (Variant3) isTestEnum() {}

// stray implements TestEnum without being one of its registered variants.
type stray struct{}

func (stray) isTestEnum() {}

func newRegistry(t *testing.T) *render.Registry {
	t.Helper()

	reg := render.NewRegistry()
	require.NoError(t, reg.RegisterStruct(reflect.TypeFor[TestTup](), render.StructOptions{Shape: render.ShapeTuple}))
	require.NoError(t, reg.RegisterEnum(reflect.TypeFor[TestEnum](), "",
		render.UnitVariant[Variant1](""),
		render.TupleVariant[Variant2](""),
		render.RecordVariant[Variant3](""),
	))

	return reg
}
