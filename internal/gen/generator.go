package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"variantgen/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the generated package name. Empty means the
	// record's declared package.
	PackageName string
	// OutputDir is the directory where generated files are written. Only
	// used here for the unformatted-debug fallback; WriteFiles does the
	// actual writing.
	OutputDir string
}

// Generator turns a derivation plan into Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "person_variants.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces the variant-definitions file and the capabilities file
// for one derivation plan.
func (g *Generator) Generate(p *plan.DerivationPlan) ([]GeneratedFile, error) {
	variants, caps := buildFileData(p, g.config.PackageName)

	variantsFile, err := g.render(variantsTemplate, variants.Filename, variants)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", variants.Filename, err)
	}

	capsFile, err := g.render(capabilitiesTemplate, caps.Filename, caps)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", caps.Filename, err)
	}

	return []GeneratedFile{*variantsFile, *capsFile}, nil
}

// render executes a template and formats the result. On a formatting
// failure the unformatted source is written to a debug sidecar and also
// returned, to aid diagnosing bad templates.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var variantsTemplate = template.Must(template.New("variants").Parse(`// Code generated by variantgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Variants}}
// {{.Name}} {{if .Canonical}}is the canonical record of this variant family.{{else}}is derived from {{$.Canonical}}.{{end}}
{{range .Attrs}}// {{.}}
{{end}}type {{.Name}} struct {
{{range .Fields}}	{{.GoName}} {{.Type}}
{{end}}}
{{end}}
{{range .Conversions}}
{{if .HasFrom}}
// {{.FromName}} converts a {{.Source}} into a {{.Target}}{{if .DefaultAssigns}}, synthesizing the
// fields {{.Source}} lacks from their declared fallback values{{end}}.
func {{.FromName}}(src {{.Source}}) {{.Target}} {
	return {{.Target}}{
{{range .CommonAssigns}}		{{.GoName}}: src.{{.GoName}},
{{end}}{{range .DefaultAssigns}}{{if .Expr}}		{{.GoName}}: {{.Expr}},
{{end}}{{end}}	}
}
{{end}}
{{if .HasInto}}
// {{.IntoName}} converts the {{.Source}} into a {{.Target}}, taking every
// field {{.Source}} lacks as an explicit argument.
func (src {{.Source}}) {{.IntoName}}({{range $i, $a := .IntoArgs}}{{if $i}}, {{end}}{{$a.Param}} {{$a.Type}}{{end}}) {{.Target}} {
	return {{.Target}}{
{{range .CommonAssigns}}		{{.GoName}}: src.{{.GoName}},
{{end}}{{range .IntoArgs}}		{{.GoName}}: {{.Param}},
{{end}}	}
}

// {{.IntoDefaultsName}} converts the {{.Source}} into a {{.Target}}, taking the
// non-defaultable missing fields as arguments and synthesizing the rest.
func (src {{.Source}}) {{.IntoDefaultsName}}({{range $i, $a := .RequiredArgs}}{{if $i}}, {{end}}{{$a.Param}} {{$a.Type}}{{end}}) {{.Target}} {
	return {{.Target}}{
{{range .CommonAssigns}}		{{.GoName}}: src.{{.GoName}},
{{end}}{{range .DefaultAssigns}}{{if .Expr}}		{{.GoName}}: {{.Expr}},
{{end}}{{end}}{{range .RequiredArgs}}		{{.GoName}}: {{.Param}},
{{end}}	}
}
{{end}}
{{end}}`))

var capabilitiesTemplate = template.Must(template.New("capabilities").Parse(`// Code generated by variantgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Capabilities}}
// {{.InterfaceName}} is implemented by every variant that owns the {{.FieldName}} field.
type {{.InterfaceName}} interface {
	{{.GetterName}}() {{.Type}}
	{{.SetterName}}({{.Type}})
}

// {{.MarkerName}} marks variants that lack the {{.FieldName}} field.
type {{.MarkerName}} interface {
	{{.MarkerMethod}}()
}
{{$cap := .}}
{{range .Owners}}
func (v *{{.}}) {{$cap.GetterName}}() {{$cap.Type}} { return v.{{$cap.GoName}} }

func (v *{{.}}) {{$cap.SetterName}}(value {{$cap.Type}}) { v.{{$cap.GoName}} = value }

var _ {{$cap.InterfaceName}} = (*{{.}})(nil)
{{end}}
{{range .Absent}}
func ({{.}}) {{$cap.MarkerMethod}}() {}

var _ {{$cap.MarkerName}} = {{.}}{}
{{end}}
{{end}}`))
