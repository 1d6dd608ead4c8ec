package primitive

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Named scalar types. Each one renders as the target scalar of the same name
// and can be used wherever a Go value needs an explicit target type (for
// example Char, since a Go rune is indistinguishable from int32).
type (
	U8    uint8
	U16   uint16
	U32   uint32
	U64   uint64
	Usize uint
	I8    int8
	I16   int16
	I32   int32
	I64   int64
	Isize int
	F32   float32
	F64   float64
	Bool  bool
	Char  rune
	Str   string
)

func (U8) ConstType() string    { return KindU8.Keyword() }
func (v U8) ConstVal() string   { return FormatUint(KindU8, uint64(v)) }
func (U16) ConstType() string   { return KindU16.Keyword() }
func (v U16) ConstVal() string  { return FormatUint(KindU16, uint64(v)) }
func (U32) ConstType() string   { return KindU32.Keyword() }
func (v U32) ConstVal() string  { return FormatUint(KindU32, uint64(v)) }
func (U64) ConstType() string   { return KindU64.Keyword() }
func (v U64) ConstVal() string  { return FormatUint(KindU64, uint64(v)) }
func (Usize) ConstType() string { return KindUsize.Keyword() }
func (v Usize) ConstVal() string {
	return FormatUint(KindUsize, uint64(v))
}

func (I8) ConstType() string    { return KindI8.Keyword() }
func (v I8) ConstVal() string   { return FormatInt(KindI8, int64(v)) }
func (I16) ConstType() string   { return KindI16.Keyword() }
func (v I16) ConstVal() string  { return FormatInt(KindI16, int64(v)) }
func (I32) ConstType() string   { return KindI32.Keyword() }
func (v I32) ConstVal() string  { return FormatInt(KindI32, int64(v)) }
func (I64) ConstType() string   { return KindI64.Keyword() }
func (v I64) ConstVal() string  { return FormatInt(KindI64, int64(v)) }
func (Isize) ConstType() string { return KindIsize.Keyword() }
func (v Isize) ConstVal() string {
	return FormatInt(KindIsize, int64(v))
}

func (F32) ConstType() string  { return KindF32.Keyword() }
func (v F32) ConstVal() string { return FormatFloat(KindF32, float64(v)) }
func (F64) ConstType() string  { return KindF64.Keyword() }
func (v F64) ConstVal() string { return FormatFloat(KindF64, float64(v)) }

func (Bool) ConstType() string  { return KindBool.Keyword() }
func (v Bool) ConstVal() string { return FormatBool(bool(v)) }

func (Char) ConstType() string  { return KindChar.Keyword() }
func (v Char) ConstVal() string { return QuoteChar(rune(v)) }

func (Str) ConstType() string  { return KindStr.Keyword() }
func (v Str) ConstVal() string { return Quote(string(v)) }

// ConstArrayType spells the string as a char array sized by its rune count.
func (v Str) ConstArrayType() string {
	mustValid(string(v))

	return "[char; " + strconv.Itoa(utf8.RuneCountInString(string(v))) + "]"
}

// ConstArrayVal lists every char followed by a comma, e.g. "['H','i',]".
func (v Str) ConstArrayVal() string {
	mustValid(string(v))

	var sb strings.Builder

	sb.WriteByte('[')
	for _, r := range string(v) {
		sb.WriteString(QuoteChar(r))
		sb.WriteByte(',')
	}
	sb.WriteByte(']')

	return sb.String()
}

// U128 is an unsigned 128-bit integer split into two 64-bit halves.
type U128 struct {
	Hi, Lo uint64
}

// Big returns the value as a big.Int.
func (v U128) Big() *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Lsh(b, 64)

	return b.Or(b, new(big.Int).SetUint64(v.Lo))
}

func (U128) ConstType() string  { return KindU128.Keyword() }
func (v U128) ConstVal() string { return v.Big().String() + KindU128.Keyword() }

// I128 is a signed 128-bit integer in two's complement: Hi carries the sign.
type I128 struct {
	Hi int64
	Lo uint64
}

// Big returns the value as a big.Int.
func (v I128) Big() *big.Int {
	b := big.NewInt(v.Hi)
	b.Lsh(b, 64)

	return b.Add(b, new(big.Int).SetUint64(v.Lo))
}

func (I128) ConstType() string  { return KindI128.Keyword() }
func (v I128) ConstVal() string { return v.Big().String() + KindI128.Keyword() }
