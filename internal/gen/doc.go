// Package gen emits the derived variant family as formatted Go source.
//
// Generation uses text/template + go/format. Two files are produced per
// record family:
//   - <record>_variants.go: one struct per variant (fields in canonical
//     order, attr_for decorations attached) plus every conversion
//   - <record>_capabilities.go: one Has<Field>/HasNo<Field> interface pair
//     per canonical field, with implementations and marker methods
//
// Output is deterministic across runs for identical input: variants keep
// declaration order, conversions keep the planner's source-major order,
// imports are sorted.
package gen
