package gen

import "text/template"

var constTemplate = template.Must(template.New("const").Parse(`// Code generated by constgen. DO NOT EDIT.

package {{ .PackageName }}

import "{{ .RenderImport }}"
{{ range .Types }}
{{ if $.GenerateComments }}// ConstType implements render.Const.
{{ end -}}
func ({{ .GoName }}) ConstType() string {
	return {{ .TypeName }}
}

{{ if $.GenerateComments }}// ConstVal implements render.Const.
{{ end -}}
func ({{ if .Fields }}v {{ end }}{{ .GoName }}) ConstVal() string {
	return render.Literal({{ .LitName }}, {{ .Shape }}, {{ .Compact }}{{ if .Fields }},{{ range .Fields }}
		render.Field{Name: {{ .ConstName }}, Value: render.MustValueFor(v.{{ .GoName }})},{{ end }}
	{{ end }})
}
{{ if not .IsVariant }}
{{ if $.GenerateComments }}// ConstDefinition implements render.Definer.
{{ end -}}
func ({{ if .Fields }}v {{ end }}{{ .GoName }}) ConstDefinition(attrs, vis string) string {
	return render.StructDefinition(attrs, vis, {{ .TypeName }}, {{ .Shape }}{{ if .Fields }},{{ range .Fields }}
		render.Field{Name: {{ .ConstName }}, Type: render.MustTypeLike(v.{{ .GoName }})},{{ end }}
	{{ end }})
}
{{ end }}
{{- end }}
{{- if .Enums }}
func init() {
{{- range .Enums }}
	render.MustRegisterEnum[{{ .GoName }}]({{ .Name }}{{ if .Variants }},{{ range .Variants }}
		{{ .Ctor }}[{{ .GoName }}]({{ .Name }}),{{ end }}
	{{ end }})
{{- end }}
}
{{ end }}`))
