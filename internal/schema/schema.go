package schema

import (
	"variantgen/internal/common"
	"variantgen/internal/diagnostic"
)

// Record is the canonical record definition from which all variants derive.
type Record struct {
	// Name of the canonical variant (e.g., "Person").
	Name string `yaml:"record"`

	// Package is the package name for the generated output.
	// Defaults to the snake_case form of Name.
	Package string `yaml:"package,omitempty"`

	// Variants lists additional variant names to derive, in declaration order.
	// The canonical name is always part of the family and must not be listed.
	Variants []string `yaml:"variants,omitempty"`

	// Attrs holds record-level raw annotations. The only recognized shape is
	// attr_for(variant_name, "decoration text").
	Attrs []string `yaml:"attrs,omitempty"`

	// Fields is the ordered canonical field list.
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec is one field of the canonical record. Immutable after parse;
// the default flag lives on the parsed rule, not here.
type FieldSpec struct {
	// Name is unique within the record. snake_case or exported Go style.
	Name string `yaml:"name"`

	// Type is the Go type, emitted verbatim (e.g., "uint8", "time.Time").
	Type string `yaml:"type"`

	// Import is the import path Type needs, if any (e.g., "time").
	Import string `yaml:"import,omitempty"`

	// Annotations holds raw directive strings consumed by the rule parser.
	Annotations []string `yaml:"annotations,omitempty"`

	// DefaultExpr is the expression emitted for this field when a conversion
	// synthesizes it. Empty means the Go zero value.
	DefaultExpr string `yaml:"default_expr,omitempty"`
}

// GoName returns the exported Go identifier for the field
// ("published_at" -> "PublishedAt").
func (f FieldSpec) GoName() string {
	return common.SnakeToPascal(f.Name)
}

// Validate checks structural invariants of the record: a non-empty record
// name, named fields, and field-name uniqueness. Rule-level validation
// (directive shapes, variant references) happens later, in package rule.
func Validate(rec *Record) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if rec.Name == "" {
		diags.Errorf(diagnostic.CodeMalformedAnnotation, "", "",
			"record name must not be empty")
	}

	seen := make(map[string]bool, len(rec.Fields))
	seenGo := make(map[string]string, len(rec.Fields))
	for i, f := range rec.Fields {
		if f.Name == "" {
			diags.Errorf(diagnostic.CodeUnnamedField, "", "",
				"field #%d has no name", i+1)
			continue
		}

		if seen[f.Name] {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, f.Name, "",
				"field name %q declared more than once", f.Name)
		}
		seen[f.Name] = true

		// Distinct declared names may still collide once exported
		// ("foo_bar" and "FooBar" both become FooBar), which would
		// duplicate struct fields and capability interfaces.
		goName := f.GoName()
		if prev, ok := seenGo[goName]; ok && prev != f.Name {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, f.Name, "",
				"fields %q and %q both map to Go name %q", prev, f.Name, goName)
		} else if !ok {
			seenGo[goName] = f.Name
		}

		if f.Type == "" {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, f.Name, "",
				"field %q has no type", f.Name)
		}
	}

	return diags
}
