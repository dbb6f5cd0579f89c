package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// javaString escapes s for use inside a Java string literal.
func javaString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\%03o`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

var templates = template.Must(template.New("idtoname").Funcs(template.FuncMap{
	"java": javaString,
}).Parse(`
{{- define "header"}}public class {{.ClassName}} {
	public static String {{.Method}}(int id) {
		switch(id) {
{{end}}

{{- define "case"}}			case {{.Qualifier}}.{{.Name}}:
				return "{{java .Name}}";
{{end}}

{{- define "trailer"}}			default: throw new IllegalArgumentException("{{java .Message}}");
		}
	}
}
{{end}}
`))
