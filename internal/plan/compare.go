package plan

import "variantgen/internal/registry"

// Missing returns the fields of a not present, by name, in b.
// Pure and total over any two variants, including a == b (empty result).
func Missing(a, b *registry.Variant) []registry.Field {
	var out []registry.Field
	for _, f := range a.Fields {
		if !b.Has(f.Spec.Name) {
			out = append(out, f)
		}
	}

	return out
}

// Common returns the fields present, by name, in both a and b,
// in a's field order.
func Common(a, b *registry.Variant) []registry.Field {
	var out []registry.Field
	for _, f := range a.Fields {
		if b.Has(f.Spec.Name) {
			out = append(out, f)
		}
	}

	return out
}
