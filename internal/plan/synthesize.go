package plan

import (
	"strings"

	"variantgen/internal/common"
	"variantgen/internal/diagnostic"
	"variantgen/internal/registry"
	"variantgen/internal/schema"
)

// DerivationPlan is the fully resolved output consumed by code generation.
type DerivationPlan struct {
	// Record is the canonical record the plan was derived from.
	Record *schema.Record
	// Registry is the populated variant family.
	Registry *registry.Registry
	// Edges holds one entry per ordered pair of distinct variants,
	// source-major in declaration order.
	Edges []ConversionEdge
}

// ConversionEdge describes the conversions for one ordered (source, target)
// pair of distinct variants.
type ConversionEdge struct {
	Source *registry.Variant
	Target *registry.Variant

	// Common are the fields shared by both, in canonical order.
	Common []registry.Field
	// Missing are the fields the target needs and the source lacks.
	Missing []registry.Field
	// MissingDefault is the default-flagged subset of Missing.
	MissingDefault []registry.Field
	// MissingRequired is the rest of Missing.
	MissingRequired []registry.Field

	// HasFrom is true when the zero-argument conversion exists: every
	// missing field is default-flagged (vacuously true when none missing).
	HasFrom bool
	// FromName is the zero-argument conversion function name,
	// e.g. "PersonFromPersonSummary".
	FromName string

	// HasInto is true when any field is missing; both parameterized
	// conversions exist exactly then.
	HasInto bool
	// IntoName is the required-arguments method name, e.g. "IntoPerson".
	IntoName string
	// IntoDefaultsName is the defaults-favoring method name,
	// e.g. "IntoPersonDefaults".
	IntoDefaultsName string
}

// Synthesize builds the derivation plan for a populated registry.
// The only failure mode is a variant-name pair whose derived method names
// would collide (a declared "X" next to a declared "XDefaults").
func Synthesize(rec *schema.Record, reg *registry.Registry) (*DerivationPlan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if !checkNameCollisions(reg, &diags) {
		return nil, diags
	}

	p := &DerivationPlan{Record: rec, Registry: reg}

	for _, source := range reg.Variants() {
		for _, target := range reg.Variants() {
			if source.Name == target.Name {
				continue
			}

			p.Edges = append(p.Edges, synthesizeEdge(source, target))
		}
	}

	return p, diags
}

func synthesizeEdge(source, target *registry.Variant) ConversionEdge {
	missing := Missing(target, source)

	edge := ConversionEdge{
		Source:  source,
		Target:  target,
		Common:  Common(target, source),
		Missing: missing,

		FromName:         target.Name + "From" + source.Name,
		IntoName:         "Into" + target.Name,
		IntoDefaultsName: "Into" + target.Name + "Defaults",
	}

	for _, f := range missing {
		if f.Default {
			edge.MissingDefault = append(edge.MissingDefault, f)
		} else {
			edge.MissingRequired = append(edge.MissingRequired, f)
		}
	}

	edge.HasFrom = common.IsEmpty(edge.MissingRequired)
	edge.HasInto = !common.IsEmpty(missing)

	return edge
}

// checkNameCollisions rejects variant families whose deterministic method
// names would collide: Into<X>Defaults for a declared "X" equals Into<Y>
// for a declared "Y" == "XDefaults". All other generated names embed both
// pair names and cannot collide for distinct pairs.
func checkNameCollisions(reg *registry.Registry, diags *diagnostic.Diagnostics) bool {
	for _, name := range reg.Names {
		base, found := strings.CutSuffix(name, "Defaults")
		if !found || base == "" {
			continue
		}

		if common.Contains(reg.Names, base) {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, "", name,
				"variant name %q collides with the defaults conversion of variant %q", name, base)
			return false
		}
	}

	return true
}
