package registry

import (
	"variantgen/internal/common"
	"variantgen/internal/diagnostic"
	"variantgen/internal/rule"
	"variantgen/internal/schema"
)

// Field is a canonical field bound to its parsed rule's default flag.
type Field struct {
	Spec schema.FieldSpec
	// Default mirrors the field rule: the field may be synthesized from its
	// fallback expression when a conversion's source lacks it.
	Default bool
}

// Variant is one derived record accumulating its decorations and fields.
type Variant struct {
	// Name of the variant (e.g., "PersonSummary").
	Name string
	// Attrs are raw decoration lines attached via attr_for, verbatim.
	Attrs []string
	// Fields in canonical declaration order, filtered to what this
	// variant owns.
	Fields []Field
}

// Has returns true if the variant owns a field with the given name.
// Field identity is by name only; types are assumed, not checked.
func (v *Variant) Has(fieldName string) bool {
	for _, f := range v.Fields {
		if f.Spec.Name == fieldName {
			return true
		}
	}

	return false
}

// Registry is the populated variant family for one canonical record.
type Registry struct {
	// Canonical is the canonical variant's name. Always present in Names.
	Canonical string
	// Names lists all variant names in declaration order, canonical first.
	Names []string

	variants map[string]*Variant
	// owners maps field name to the variant names implementing the field's
	// capability interface. The complement implements the absence marker.
	owners map[string][]string
}

// Variant returns the named variant, or nil if not declared.
func (r *Registry) Variant(name string) *Variant {
	return r.variants[name]
}

// Variants returns all variants in declaration order.
func (r *Registry) Variants() []*Variant {
	out := make([]*Variant, 0, len(r.Names))
	for _, name := range r.Names {
		out = append(out, r.variants[name])
	}

	return out
}

// Owners returns the variant names owning the field, in declaration order.
func (r *Registry) Owners(fieldName string) []string {
	return r.owners[fieldName]
}

// Absent returns the variant names lacking the field, in declaration order.
// For every field, Owners and Absent partition the full variant set.
func (r *Registry) Absent(fieldName string) []string {
	return common.Filter(r.Names, func(name string) bool {
		return !common.Contains(r.owners[fieldName], name)
	})
}

// Build constructs the registry from a structurally valid record: declares
// the variants, routes record-level decorations, parses each field's rule,
// and distributes fields. Any error diagnostic aborts with a nil registry.
func Build(rec *schema.Record) (*Registry, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	r := &Registry{
		Canonical: rec.Name,
		variants:  make(map[string]*Variant),
		owners:    make(map[string][]string),
	}

	r.declare(rec.Name, &diags)
	for _, name := range rec.Variants {
		r.declare(name, &diags)
	}

	if !r.routeAttrs(rec, &diags) {
		return nil, diags
	}

	if !r.distribute(rec, &diags) {
		return nil, diags
	}

	return r, diags
}

// declare adds one variant entry. A repeated name warns and resets the
// earlier entry: the later declaration wins, at the first position.
func (r *Registry) declare(name string, diags *diagnostic.Diagnostics) {
	if _, ok := r.variants[name]; ok {
		diags.Warnf(diagnostic.CodeDuplicateVariant, "", name,
			"variant %q declared more than once; the later declaration wins", name)
		r.variants[name] = &Variant{Name: name}
		return
	}

	r.Names = append(r.Names, name)
	r.variants[name] = &Variant{Name: name}
}

// routeAttrs parses record-level annotations. Only attr_for(name, "text")
// is recognized; the text is attached verbatim to the named variant.
func (r *Registry) routeAttrs(rec *schema.Record, diags *diagnostic.Diagnostics) bool {
	for _, raw := range rec.Attrs {
		dir, err := rule.ParseDirective(raw)
		if err != nil {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, "", raw, "%v", err)
			return false
		}

		if dir.Name != "attr_for" {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, "", raw,
				"unknown record-level directive %q", dir.Name)
			return false
		}

		if len(dir.Args) != 2 {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, "", raw,
				"attr_for must have exactly two arguments, got %d", len(dir.Args))
			return false
		}

		target, ok := r.variants[dir.Args[0]]
		if !ok {
			diags.Errorf(diagnostic.CodeUnknownVariant, "", raw,
				"variant %q was never declared", dir.Args[0])
			return false
		}

		target.Attrs = append(target.Attrs, dir.Args[1])
	}

	return true
}

// distribute applies each field's rule against the registry, in canonical
// declaration order, so every variant's field order is a subsequence of the
// canonical order.
func (r *Registry) distribute(rec *schema.Record, diags *diagnostic.Diagnostics) bool {
	for _, spec := range rec.Fields {
		fr, ruleDiags := rule.Parse(spec.Name, spec.Annotations, r.Canonical, r.Names)
		diags.Merge(ruleDiags)
		if ruleDiags.HasErrors() {
			return false
		}

		field := Field{Spec: spec, Default: fr.Default}

		for _, name := range r.Names {
			if !common.Contains(fr.Targets, name) {
				continue
			}

			r.variants[name].Fields = append(r.variants[name].Fields, field)
			r.owners[spec.Name] = append(r.owners[spec.Name], name)
		}
	}

	return true
}
