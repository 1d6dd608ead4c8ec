package container

import "strings"

//go:generate go run gen_tuples.go

// Tuple0 is the unit tuple: ().
type Tuple0 struct{}

func (Tuple0) ConstType() string      { return "()" }
func (Tuple0) ConstVal() string       { return "()" }
func (Tuple0) ConstArrayType() string { return "()" }
func (Tuple0) ConstArrayVal() string  { return "()" }

// tuple joins positional parts. A single part keeps its trailing comma, since
// "(x)" is a parenthesized expression and not a 1-tuple.
func tuple(parts ...string) string {
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ",") + ")"
}
