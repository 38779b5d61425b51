// Package plan computes field-set differences between variants and
// synthesizes the conversion operations between every ordered pair.
//
// For each ordered (source, target) pair the planner derives:
//   - a zero-argument conversion function, iff every field the target needs
//     and the source lacks is default-flagged;
//   - an Into<Target> method taking every missing field as an argument,
//     whenever any field is missing;
//   - an Into<Target>Defaults method taking only the non-default missing
//     fields, whenever any field is missing.
//
// Method names derive deterministically from the target variant's name.
// The plan is recomputed fresh on every invocation; nothing is cached.
package plan
