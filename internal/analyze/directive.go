package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"const-generator/internal/match"
	"const-generator/render"
)

const directivePrefix = "//constgen:"

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrBadOption        = errors.New("bad directive option")
)

var verbs = []string{"derive", "enum", "variant"}

// DirectiveKind is the verb of a directive.
type DirectiveKind int

const (
	DirectiveDerive DirectiveKind = iota + 1
	DirectiveEnum
	DirectiveVariant
)

// String returns the verb as written in source.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveDerive:
		return "derive"
	case DirectiveEnum:
		return "enum"
	case DirectiveVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// options lists the option keys the verb accepts.
func (k DirectiveKind) options() []string {
	switch k {
	case DirectiveEnum:
		return []string{"name"}
	case DirectiveVariant:
		return []string{"tuple", "unit", "name", "enum"}
	default:
		return []string{"tuple", "unit", "name"}
	}
}

// Directive is a parsed //constgen: comment.
type Directive struct {
	Kind DirectiveKind
	// Shape is only meaningful when HasShape is set; otherwise the shape is
	// inferred from the fields.
	Shape    render.Shape
	HasShape bool
	Name     string
	Enum     string // variant only: the enum interface to join
}

// ParseDirective parses a single comment line. It returns false when the
// line is not a directive at all.
func ParseDirective(line string) (Directive, bool, error) {
	rest, ok := strings.CutPrefix(line, directivePrefix)
	if !ok {
		return Directive{}, false, nil
	}

	words := strings.Fields(rest)
	if len(words) == 0 {
		return Directive{}, true, fmt.Errorf("%w: empty", ErrUnknownDirective)
	}

	var d Directive

	switch words[0] {
	case "derive":
		d.Kind = DirectiveDerive
	case "enum":
		d.Kind = DirectiveEnum
	case "variant":
		d.Kind = DirectiveVariant
	default:
		return Directive{}, true, fmt.Errorf("%w: %q%s", ErrUnknownDirective, words[0], match.Hint(words[0], verbs))
	}

	for _, w := range words[1:] {
		key, val, hasVal := strings.Cut(w, "=")

		switch {
		case !hasVal && (key == "tuple" || key == "unit") && d.Kind != DirectiveEnum:
			if d.HasShape {
				return Directive{}, true, fmt.Errorf("%w: shape given twice in %q", ErrBadOption, line)
			}

			d.HasShape = true
			d.Shape = render.ShapeTuple
			if key == "unit" {
				d.Shape = render.ShapeUnit
			}

		case hasVal && key == "name" && val != "":
			d.Name = val

		case hasVal && key == "enum" && val != "" && d.Kind == DirectiveVariant:
			d.Enum = val

		default:
			return Directive{}, true, fmt.Errorf("%w: %q is not valid for %s%s", ErrBadOption, w, d.Kind, match.Hint(key, d.Kind.options()))
		}
	}

	return d, true, nil
}

// directiveOf returns the directive in a doc comment, if any.
func directiveOf(doc *ast.CommentGroup) (Directive, bool, error) {
	if doc == nil {
		return Directive{}, false, nil
	}

	for _, c := range doc.List {
		d, ok, err := ParseDirective(c.Text)
		if ok || err != nil {
			return d, ok, err
		}
	}

	return Directive{}, false, nil
}
