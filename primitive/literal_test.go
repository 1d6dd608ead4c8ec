package primitive_test

import (
	"const-generator/primitive"
	"fmt"
	"math"
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type scalar interface {
	ConstType() string
	ConstVal() string
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		val      scalar
		typeName string
		literal  string
	}{
		{primitive.U8(math.MaxUint8), "u8", "255u8"},
		{primitive.U16(math.MaxUint16), "u16", "65535u16"},
		{primitive.U32(math.MaxUint32), "u32", "4294967295u32"},
		{primitive.U64(math.MaxUint64), "u64", "18446744073709551615u64"},
		{primitive.Usize(7), "usize", "7usize"},
		{primitive.I8(math.MinInt8), "i8", "-128i8"},
		{primitive.I16(math.MaxInt16), "i16", "32767i16"},
		{primitive.I32(math.MaxInt32), "i32", "2147483647i32"},
		{primitive.I64(math.MaxInt64), "i64", "9223372036854775807i64"},
		{primitive.Isize(-3), "isize", "-3isize"},
		{primitive.F32(math.MaxFloat32), "f32", "340282350000000000000000000000000000000f32"},
		{primitive.F64(1.5), "f64", "1.5f64"},
		{primitive.F64(2), "f64", "2f64"},
		{primitive.U128{Hi: math.MaxUint64, Lo: math.MaxUint64}, "u128", "340282366920938463463374607431768211455u128"},
		{primitive.I128{Hi: math.MaxInt64, Lo: math.MaxUint64}, "i128", "170141183460469231731687303715884105727i128"},
		{primitive.I128{Hi: -1, Lo: math.MaxUint64}, "i128", "-1i128"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.typeName, tt.val.ConstType())
			assert.Equal(t, tt.literal, tt.val.ConstVal())
		})
	}
}

func TestFormatFloat_NonFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "f64::NAN", primitive.FormatFloat(primitive.KindF64, math.NaN()))
	assert.Equal(t, "f32::INFINITY", primitive.FormatFloat(primitive.KindF32, math.Inf(1)))
	assert.Equal(t, "f64::NEG_INFINITY", primitive.FormatFloat(primitive.KindF64, math.Inf(-1)))
}

func TestBoolAndChar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bool", primitive.Bool(true).ConstType())
	assert.Equal(t, "true", primitive.Bool(true).ConstVal())
	assert.Equal(t, "false", primitive.Bool(false).ConstVal())

	assert.Equal(t, "char", primitive.Char('x').ConstType())
	assert.Equal(t, "'x'", primitive.Char('x').ConstVal())
	assert.Equal(t, `'\''`, primitive.Char('\'').ConstVal())
	assert.Equal(t, `'"'`, primitive.Char('"').ConstVal())
	assert.Equal(t, `'\\'`, primitive.Char('\\').ConstVal())
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "I'm a string!", `"I'm a string!"`},
		{"empty", "", `""`},
		{"quotes", `say "hi"`, `"say \"hi\""`},
		{"backslash", `C:\dir`, `"C:\\dir"`},
		{"controls", "a\nb\tc\r\x00", `"a\nb\tc\r\0"`},
		{"bell", "\a", `"\u{7}"`},
		{"unicode", "héllo, 世界", `"héllo, 世界"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, primitive.Quote(tt.in))
		})
	}
}

func TestInvalidUnicode(t *testing.T) {
	t.Parallel()

	for _, c := range []primitive.Char{0xD800, -1, utf8.MaxRune + 1} {
		assert.PanicsWithError(t, fmt.Sprintf("text is not valid Unicode: char %#x", rune(c)), func() { _ = c.ConstVal() })
	}

	bad := primitive.Str("ok\xff")
	for name, f := range map[string]func() string{
		"value":      bad.ConstVal,
		"array type": bad.ConstArrayType,
		"array":      bad.ConstArrayVal,
	} {
		assert.Panics(t, func() { _ = f() }, name)
	}

	assert.Equal(t, "'\u{10ffff}'", primitive.Char(utf8.MaxRune).ConstVal())
}

func TestStr(t *testing.T) {
	t.Parallel()

	s := primitive.Str("Hello")
	assert.Equal(t, "&'static str", s.ConstType())
	assert.Equal(t, `"Hello"`, s.ConstVal())
	assert.Equal(t, "[char; 5]", s.ConstArrayType())
	assert.Equal(t, "['H','e','l','l','o',]", s.ConstArrayVal())

	assert.Equal(t, "[char; 2]", primitive.Str("日本").ConstArrayType())
	assert.Equal(t, "[char; 0]", primitive.Str("").ConstArrayType())
	assert.Equal(t, "[]", primitive.Str("").ConstArrayVal())
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42u16", primitive.Literal(primitive.KindU16, reflect.ValueOf(uint16(42))))
	assert.Equal(t, "-1isize", primitive.Literal(primitive.KindIsize, reflect.ValueOf(-1)))
	assert.Equal(t, "0.25f32", primitive.Literal(primitive.KindF32, reflect.ValueOf(float32(0.25))))
	assert.Equal(t, `"x"`, primitive.Literal(primitive.KindStr, reflect.ValueOf("x")))
	assert.Equal(t, "'z'", primitive.Literal(primitive.KindChar, reflect.ValueOf(primitive.Char('z'))))
	assert.Equal(t, "true", primitive.Literal(primitive.KindBool, reflect.ValueOf(true)))

	assert.Panics(t, func() { _ = primitive.Kind(0).Keyword() })
}
