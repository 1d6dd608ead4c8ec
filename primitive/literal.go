package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidUnicode is the panic value, wrapped, of Quote and QuoteChar for
// text the target cannot represent: strings that are not UTF-8, surrogates
// and code points out of range.
var ErrInvalidUnicode = errors.New("text is not valid Unicode")

// FormatInt renders a signed integer literal with the kind's suffix, e.g. "-4i16".
func FormatInt(k Kind, v int64) string {
	return strconv.FormatInt(v, 10) + k.Keyword()
}

// FormatUint renders an unsigned integer literal with the kind's suffix, e.g. "255u8".
func FormatUint(k Kind, v uint64) string {
	return strconv.FormatUint(v, 10) + k.Keyword()
}

// FormatFloat renders a float literal. The digits are the shortest decimal
// representation that round-trips at the kind's width, never in exponent form.
// Non-finite values have no literal form and render as the associated constants.
func FormatFloat(k Kind, v float64) string {
	kw := k.Keyword()

	switch {
	case math.IsNaN(v):
		return kw + "::NAN"
	case math.IsInf(v, 1):
		return kw + "::INFINITY"
	case math.IsInf(v, -1):
		return kw + "::NEG_INFINITY"
	}

	return strconv.FormatFloat(v, 'f', -1, k.Bits()) + kw
}

func FormatBool(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

// Quote renders s as a double-quoted string literal.
//
// Quotes, backslashes and non-printable characters are escaped; everything
// else, including non-ASCII text, is emitted verbatim. It panics with an error
// wrapping ErrInvalidUnicode if s is not valid UTF-8.
func Quote(s string) string {
	mustValid(s)

	var sb strings.Builder
	sb.Grow(len(s) + 2)

	sb.WriteByte('"')
	for _, r := range s {
		writeEscaped(&sb, r, '"')
	}
	sb.WriteByte('"')

	return sb.String()
}

// QuoteChar renders r as a single-quoted char literal. It panics with an error
// wrapping ErrInvalidUnicode if r is not a Unicode scalar value.
func QuoteChar(r rune) string {
	if !utf8.ValidRune(r) {
		panic(fmt.Errorf("%w: char %#x", ErrInvalidUnicode, r))
	}

	var sb strings.Builder

	sb.WriteByte('\'')
	writeEscaped(&sb, r, '\'')
	sb.WriteByte('\'')

	return sb.String()
}

func mustValid(s string) {
	if !utf8.ValidString(s) {
		panic(fmt.Errorf("%w: string %q", ErrInvalidUnicode, s))
	}
}

func writeEscaped(sb *strings.Builder, r rune, delim rune) {
	switch r {
	case delim, '\\':
		sb.WriteByte('\\')
		sb.WriteRune(r)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\t':
		sb.WriteString(`\t`)
	case 0:
		sb.WriteString(`\0`)
	default:
		if unicode.IsPrint(r) {
			sb.WriteRune(r)
			return
		}

		sb.WriteString(`\u{`)
		sb.WriteString(strconv.FormatInt(int64(r), 16))
		sb.WriteByte('}')
	}
}

// Literal renders a scalar reflect.Value as the kind k.
// It panics if the value's Go kind does not carry k.
func Literal(k Kind, v reflect.Value) string {
	switch {
	case k == KindBool:
		return FormatBool(v.Bool())
	case k == KindStr:
		return Quote(v.String())
	case k == KindChar:
		return QuoteChar(rune(v.Int()))
	case k.IsFloat():
		return FormatFloat(k, v.Float())
	case k.IsSigned():
		return FormatInt(k, v.Int())
	case k.IsUnsigned():
		return FormatUint(k, v.Uint())
	default:
		panic("no literal form for kind: " + k.String())
	}
}
