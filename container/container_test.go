package container_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"const-generator/container"
	"const-generator/render"
)

type Dir interface {
	dir()
}

type North struct{}

type Step struct {
	N uint8
}

func (North) dir() {}
func (Step) dir()  {}

// Turn is only known to the registry built in TestCustomRegistry.
type Turn interface {
	turn()
}

type Port struct{}

type Starboard struct {
	Deg uint8
}

func (Port) turn()      {}
func (Starboard) turn() {}

type Listener struct {
	Port    container.Option[uint16]
	Tags    container.Vec[string]
	Backlog container.Box[uint32]
}

func init() {
	render.MustRegisterEnum[Dir]("Dir", render.UnitVariant[North](""), render.TupleVariant[Step](""))
}

func ExampleOption() {
	fmt.Println(render.ConstDeclaration(container.Some[uint8](5), "", "", "SOME"))
	fmt.Println(render.ConstDeclaration(container.None[string](), "", "", "NONE"))
	fmt.Println(render.ConstDeclaration(container.Some[Dir](Step{N: 3}), "", "", "STEP"))

	// Output:
	// const SOME: Option<u8> = Some(5u8); <nil>
	// const NONE: Option<&'static str> = None; <nil>
	// const STEP: Option<Dir> = Some(Dir::Step(3u8,)); <nil>
}

func ExampleEither() {
	fmt.Println(render.ConstDeclaration(container.Left[uint8, string](1), "", "", "LEFT"))
	fmt.Println(render.ConstDeclaration(container.Right[uint8, string]("r"), "", "", "RIGHT"))

	// Output:
	// const LEFT: ::either::Either<u8,&'static str> = ::either::Either::Left(1u8); <nil>
	// const RIGHT: ::either::Either<u8,&'static str> = ::either::Either::Right("r"); <nil>
}

func ExampleNewTuple2() {
	tup := container.NewTuple2([]Dir{Step{N: 0}}, container.Vec[int8]{1, 2, 3})

	fmt.Println(render.ConstArrayDeclaration(tup, "", "", "TEST_CONST_TUP"))

	// Output:
	// const TEST_CONST_TUP: ([Dir; 1],[i8; 3]) = ([Dir::Step(0u8,)],[1i8,2i8,3i8]); <nil>
}

func TestTuples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		typ   string
		lit   string
	}{
		{"unit", container.Tuple0{}, "()", "()"},
		{"single", container.NewTuple1(uint8(1)), "(u8,)", "(1u8,)"},
		{"triple", container.NewTuple3(uint8(1), "a", true), "(u8,&'static str,bool)", `(1u8,"a",true)`},
		{"nested", container.NewTuple2(container.NewTuple1[Dir](North{}), []int16{-1}), "((Dir,),&'static [i16])", "((Dir::North,),&[-1i16])"},
		{
			"sixteen",
			container.NewTuple16[int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, int8](
				0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15),
			"(i8,i8,i8,i8,i8,i8,i8,i8,i8,i8,i8,i8,i8,i8,i8,i8)",
			"(0i8,1i8,2i8,3i8,4i8,5i8,6i8,7i8,8i8,9i8,10i8,11i8,12i8,13i8,14i8,15i8)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := render.ConstDeclaration(tt.value, "", "", "TUP")
			require.NoError(t, err)
			assert.Equal(t, "const TUP: "+tt.typ+" = "+tt.lit+";", res)
		})
	}

	_, err := render.ArrayTypeOf(container.NewTuple2(1, 2))
	require.ErrorIs(t, err, render.ErrNotArray)
}

func TestRef(t *testing.T) {
	t.Parallel()

	res, err := render.ConstDeclaration(container.Cow[string]{Value: "I'm a string!"}, "", "", "TEST_COW")
	require.NoError(t, err)
	assert.Equal(t, `const TEST_COW: &'static str = "I'm a string!";`, res)

	boxed := container.NewRef([]Dir{North{}, Step{N: 7}, North{}})

	res, err = render.ConstArrayDeclaration(boxed, "", "", "TEST_CONST_SLICE")
	require.NoError(t, err)
	assert.Equal(t, "const TEST_CONST_SLICE: [Dir; 3] = [Dir::North,Dir::Step(7u8,),Dir::North];", res)

	res, err = render.ConstDeclaration(container.Arc[container.Rc[int64]]{Value: container.NewRef(int64(-9))}, "", "", "SHARED")
	require.NoError(t, err)
	assert.Equal(t, "const SHARED: i64 = -9i64;", res)
}

func TestVec(t *testing.T) {
	t.Parallel()

	v := container.Vec[uint8]{1, 2}

	res, err := render.ConstDeclaration(v, "", "", "VEC")
	require.NoError(t, err)
	assert.Equal(t, "const VEC: &'static [u8] = &[1u8,2u8];", res)

	res, err = render.StaticArrayDeclaration(v, "", "pub", "ARR")
	require.NoError(t, err)
	assert.Equal(t, "pub static ARR: [u8; 2] = [1u8,2u8];", res)

	res, err = render.ConstArrayDeclaration(container.Vec[Dir]{}, "", "", "EMPTY")
	require.NoError(t, err)
	assert.Equal(t, "const EMPTY: [Dir; 0] = [];", res)
}

func TestMapAndSet(t *testing.T) {
	t.Parallel()

	m := container.NewMap[string, uint8]().Set("z", 1).Set("a", 2).Set("z", 3)
	assert.Equal(t, 2, m.Len())

	res, err := render.ConstDeclaration(m, "", "", "ORDERED")
	require.NoError(t, err)
	assert.Equal(t, `const ORDERED: phf::Map<&'static str, u8> = phf::phf_map!{"z" => 3u8,"a" => 2u8};`, res)

	s := container.NewSet[int32](3, 1, 3)
	assert.True(t, s.Contains(1))
	assert.Equal(t, 2, s.Len())

	res, err = render.ConstDeclaration(s, "", "", "IDS")
	require.NoError(t, err)
	assert.Equal(t, "const IDS: phf::Set<i32> = phf::phf_set!{3i32,1i32};", res)
}

func TestStructFields(t *testing.T) {
	t.Parallel()

	l := Listener{
		Port:    container.Some[uint16](80),
		Tags:    container.Vec[string]{"a"},
		Backlog: container.NewRef[uint32](128),
	}

	res, err := render.ConstDeclaration(l, "", "", "LISTENER")
	require.NoError(t, err)
	assert.Equal(t, `const LISTENER: Listener = Listener { port: Some(80u16), tags: &["a"], backlog: 128u32, };`, res)

	res, err = render.Definitions("", "", l)
	require.NoError(t, err)
	assert.Equal(t, "struct Listener{ port: Option<u16>, tags: &'static [&'static str], backlog: u32, }", res)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := render.ValueOf(container.Some[Dir](nil))
	require.ErrorIs(t, err, render.ErrNilValue)

	_, err = render.ValueOf(container.Vec[chan int]{nil})
	require.ErrorIs(t, err, render.ErrUnsupportedType)

	_, err = render.TypeOf(nil)
	require.ErrorIs(t, err, render.ErrNilValue)
}

func TestCustomRegistry(t *testing.T) {
	t.Parallel()

	reg := render.NewRegistry()
	require.NoError(t, reg.RegisterEnum(reflect.TypeFor[Turn](), "Turn",
		render.UnitVariant[Port](""),
		render.TupleVariant[Starboard](""),
	))
	reg.SetBackend(render.Backend{Path: "other", MapMacro: "m", SetMacro: "s"})

	tests := []struct {
		name  string
		value any
		want  string
		plain bool // renders in the default registry too
	}{
		{"option", container.Some[Turn](Port{}), "const X: Option<Turn> = Some(Turn::Port);", false},
		{
			"either",
			container.Right[uint8, Turn](Starboard{Deg: 9}),
			"const X: ::either::Either<u8,Turn> = ::either::Either::Right(Turn::Starboard(9u8,));",
			false,
		},
		{"vec", container.Vec[Turn]{Port{}}, "const X: &'static [Turn] = &[Turn::Port];", false},
		{"ref", container.NewRef[Turn](Starboard{Deg: 1}), "const X: Turn = Turn::Starboard(1u8,);", false},
		{"tuple", container.NewTuple2[Turn, uint8](Port{}, 1), "const X: (Turn,u8) = (Turn::Port,1u8);", false},
		{
			"map",
			container.NewMap[string, Turn]().Set("a", Port{}),
			`const X: other::Map<&'static str, Turn> = other::m!{"a" => Turn::Port};`,
			false,
		},
		{"set", container.NewSet[uint8](2), "const X: other::Set<u8> = other::s!{2u8};", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := reg.Declaration(tt.value, "", "", render.DeclarationConst, "X")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)

			_, err = render.ConstDeclaration(tt.value, "", "", "X")
			if !tt.plain {
				require.ErrorIs(t, err, render.ErrUnregisteredInterface)
			}
		})
	}

	res, err := reg.ArrayDeclaration(container.NewTuple1(container.Vec[Turn]{Port{}, Port{}}), "", "", render.DeclarationConst, "A")
	require.NoError(t, err)
	assert.Equal(t, "const A: ([Turn; 2],) = ([Turn::Port,Turn::Port],);", res)
}
