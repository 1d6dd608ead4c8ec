//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArity = 16

type arity struct {
	N      int
	Params []string
}

func (a arity) TypeParams() string {
	return strings.Join(a.Params, ", ") + " any"
}

func (a arity) TypeArgs() string {
	return strings.Join(a.Params, ", ")
}

var tmpl = template.Must(template.New("tuples").Parse(`// Code generated by gen_tuples.go; DO NOT EDIT.

package container

import "const-generator/render"
{{ range . }}
// Tuple{{ .N }} is a tuple of {{ .N }} elements.
type Tuple{{ .N }}[{{ .TypeParams }}] struct {
{{- range $i, $p := .Params }}
	V{{ $i }} {{ $p }}
{{- end }}
}

// NewTuple{{ .N }} returns a tuple of the given elements.
func NewTuple{{ .N }}[{{ .TypeParams }}]({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}v{{ $i }} {{ $p }}{{ end }}) Tuple{{ .N }}[{{ .TypeArgs }}] {
	return Tuple{{ .N }}[{{ .TypeArgs }}]{ {{- range $i, $p := .Params }}{{ if $i }}, {{ end }}v{{ $i }}{{ end -}} }
}

func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstType() string      { return t.ConstTypeIn(render.Default) }
func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstVal() string       { return t.ConstValIn(render.Default) }
func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstArrayType() string { return t.ConstArrayTypeIn(render.Default) }
func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstArrayVal() string  { return t.ConstArrayValIn(render.Default) }

func (Tuple{{ .N }}[{{ .TypeArgs }}]) ConstTypeIn(r *render.Registry) string {
	return tuple({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}render.MustTypeIn[{{ $p }}](r){{ end }})
}

func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstValIn(r *render.Registry) string {
	return tuple({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}render.MustValueIn(r, t.V{{ $i }}){{ end }})
}

func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstArrayTypeIn(r *render.Registry) string {
	return tuple({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}render.MustArrayTypeIn(r, t.V{{ $i }}){{ end }})
}

func (t Tuple{{ .N }}[{{ .TypeArgs }}]) ConstArrayValIn(r *render.Registry) string {
	return tuple({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}render.MustArrayValueIn(r, t.V{{ $i }}){{ end }})
}
{{ end }}`))

func main() {
	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		params := make([]string, n)
		for i := range params {
			params[i] = string(rune('A' + i))
		}

		arities = append(arities, arity{N: n, Params: params})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatal(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(fmt.Errorf("formatting generated tuples: %w", err))
	}

	if err := os.WriteFile("tuple_gen.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
