package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind enumerates the scalar kinds of the target language.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindUsize
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindIsize
	KindF32
	KindF64
	KindBool
	KindChar
	KindStr

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var keywords = [...]string{
	KindU8:    "u8",
	KindU16:   "u16",
	KindU32:   "u32",
	KindU64:   "u64",
	KindU128:  "u128",
	KindUsize: "usize",
	KindI8:    "i8",
	KindI16:   "i16",
	KindI32:   "i32",
	KindI64:   "i64",
	KindI128:  "i128",
	KindIsize: "isize",
	KindF32:   "f32",
	KindF64:   "f64",
	KindBool:  "bool",
	KindChar:  "char",
	KindStr:   "&'static str",
}

// Keyword returns the type-name of the kind as written in a declaration.
func (k Kind) Keyword() string {
	if k <= 0 || int(k) >= KindTotal {
		panic("keyword requested for invalid kind: " + k.String())
	}

	return keywords[k]
}

func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindF32, KindF64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindI8, KindI16, KindI32, KindI64, KindI128, KindIsize:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindU8, KindU16, KindU32, KindU64, KindU128, KindUsize:
		return true
	}
}

// Bits returns the width of a numeric kind. Pointer-sized kinds report 64.
func (k Kind) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32, KindF32:
		return 32
	case KindU64, KindI64, KindF64, KindUsize, KindIsize:
		return 64
	case KindU128, KindI128:
		return 128
	}
}

// FromReflectType maps a Go basic type onto the scalar kind it renders as.
// Named types are classified by their underlying kind. Types that are not
// scalars (including rune-typed values, which are plain int32) return 0
// unless they are one of this package's named types.
func FromReflectType(rtype reflect.Type) Kind {
	if rtype == nil {
		return 0
	}

	if rtype == reflect.TypeFor[Char]() {
		return KindChar
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Uint8:
		return KindU8
	case reflect.Uint16:
		return KindU16
	case reflect.Uint32:
		return KindU32
	case reflect.Uint64:
		return KindU64
	case reflect.Uint, reflect.Uintptr:
		return KindUsize
	case reflect.Int8:
		return KindI8
	case reflect.Int16:
		return KindI16
	case reflect.Int32:
		return KindI32
	case reflect.Int64:
		return KindI64
	case reflect.Int:
		return KindIsize
	case reflect.Float32:
		return KindF32
	case reflect.Float64:
		return KindF64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindStr
	}
}
