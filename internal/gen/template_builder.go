package gen

import (
	"go/token"
	"sort"

	"variantgen/internal/common"
	"variantgen/internal/plan"
	"variantgen/internal/registry"
)

// variantsFileData holds everything the variants template needs.
type variantsFileData struct {
	PackageName string
	Filename    string
	Canonical   string
	Imports     []string
	Variants    []variantDef
	Conversions []conversionDef
}

// capabilitiesFileData holds everything the capabilities template needs.
type capabilitiesFileData struct {
	PackageName  string
	Filename     string
	Imports      []string
	Capabilities []capabilityDef
}

// variantDef is one emitted struct definition.
type variantDef struct {
	Name      string
	Canonical bool
	Attrs     []string
	Fields    []fieldDef
}

type fieldDef struct {
	GoName string
	Type   string
}

// capabilityDef is one per-field interface pair with its implementors.
type capabilityDef struct {
	FieldName     string // declared name, used in doc comments
	GoName        string
	Type          string
	InterfaceName string // HasAge
	MarkerName    string // HasNoAge
	MarkerMethod  string // hasNoAge
	GetterName    string // GetAge
	SetterName    string // SetAge
	Owners        []string
	Absent        []string
}

// conversionDef is the template form of one plan.ConversionEdge.
type conversionDef struct {
	Source string
	Target string

	HasFrom  bool
	FromName string

	HasInto          bool
	IntoName         string
	IntoDefaultsName string

	CommonAssigns  []assign
	DefaultAssigns []assign
	IntoArgs       []arg
	RequiredArgs   []arg
}

// assign is one field-copy line in a conversion body. An empty Expr means
// the field is left at its Go zero value and omitted from the literal.
type assign struct {
	GoName string
	Expr   string
}

// arg is one conversion method parameter bound to its target field.
type arg struct {
	Param  string
	Type   string
	GoName string
}

// buildFileData constructs both files' template data from a derivation plan.
func buildFileData(p *plan.DerivationPlan, pkgOverride string) (*variantsFileData, *capabilitiesFileData) {
	pkg := p.Record.Package
	if pkgOverride != "" {
		pkg = pkgOverride
	}

	base := common.PascalToSnake(p.Record.Name)

	variants := &variantsFileData{
		PackageName: pkg,
		Filename:    base + "_variants.go",
		Canonical:   p.Registry.Canonical,
		Imports:     collectImports(p, true),
	}

	for _, v := range p.Registry.Variants() {
		variants.Variants = append(variants.Variants, variantDef{
			Name:      v.Name,
			Canonical: v.Name == p.Registry.Canonical,
			Attrs:     v.Attrs,
			Fields:    fieldDefs(v.Fields),
		})
	}

	for _, e := range p.Edges {
		variants.Conversions = append(variants.Conversions, buildConversion(e))
	}

	caps := &capabilitiesFileData{
		PackageName: pkg,
		Filename:    base + "_capabilities.go",
		Imports:     collectImports(p, false),
	}

	for _, spec := range p.Record.Fields {
		goName := spec.GoName()
		caps.Capabilities = append(caps.Capabilities, capabilityDef{
			FieldName:     spec.Name,
			GoName:        goName,
			Type:          spec.Type,
			InterfaceName: "Has" + goName,
			MarkerName:    "HasNo" + goName,
			MarkerMethod:  "hasNo" + goName,
			GetterName:    "Get" + goName,
			SetterName:    "Set" + goName,
			Owners:        p.Registry.Owners(spec.Name),
			Absent:        p.Registry.Absent(spec.Name),
		})
	}

	return variants, caps
}

func buildConversion(e plan.ConversionEdge) conversionDef {
	c := conversionDef{
		Source:           e.Source.Name,
		Target:           e.Target.Name,
		HasFrom:          e.HasFrom,
		FromName:         e.FromName,
		HasInto:          e.HasInto,
		IntoName:         e.IntoName,
		IntoDefaultsName: e.IntoDefaultsName,
	}

	for _, f := range e.Common {
		c.CommonAssigns = append(c.CommonAssigns, assign{GoName: f.Spec.GoName()})
	}

	for _, f := range e.MissingDefault {
		c.DefaultAssigns = append(c.DefaultAssigns, assign{
			GoName: f.Spec.GoName(),
			Expr:   f.Spec.DefaultExpr,
		})
	}

	for _, f := range e.Missing {
		c.IntoArgs = append(c.IntoArgs, arg{
			Param:  paramName(f.Spec.Name),
			Type:   f.Spec.Type,
			GoName: f.Spec.GoName(),
		})
	}

	for _, f := range e.MissingRequired {
		c.RequiredArgs = append(c.RequiredArgs, arg{
			Param:  paramName(f.Spec.Name),
			Type:   f.Spec.Type,
			GoName: f.Spec.GoName(),
		})
	}

	return c
}

// paramName keeps the declared field name as the method parameter, stepping
// aside for the receiver's name and for Go keywords ("type" -> "typeArg").
func paramName(name string) string {
	if name == "src" || token.IsKeyword(name) {
		return name + "Arg"
	}

	return name
}

func fieldDefs(fields []registry.Field) []fieldDef {
	var out []fieldDef
	for _, f := range fields {
		out = append(out, fieldDef{GoName: f.Spec.GoName(), Type: f.Spec.Type})
	}

	return out
}

// collectImports gathers the distinct import paths declared by the canonical
// fields, sorted for deterministic output. The capabilities file references
// every field's type in its interface; the variants file only references
// types of fields at least one variant owns (a not_in covering every variant
// drops the field from all structs).
func collectImports(p *plan.DerivationPlan, onlyOwned bool) []string {
	seen := make(map[string]bool)

	var out []string
	for _, f := range p.Record.Fields {
		if f.Import == "" || seen[f.Import] {
			continue
		}

		if onlyOwned && common.IsEmpty(p.Registry.Owners(f.Name)) {
			continue
		}

		seen[f.Import] = true
		out = append(out, f.Import)
	}

	sort.Strings(out)

	return out
}
