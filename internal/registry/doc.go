// Package registry builds the variant registry and distributes the
// canonical record's fields across it.
//
// The registry always contains the canonical variant. Each extra declared
// name becomes one Variant with an initially empty field list; record-level
// attr_for decorations are routed to their target variant; then every field
// is appended, in canonical declaration order, to exactly the variants its
// rule targets. For each (field, variant) pair the registry records whether
// the variant owns the field (capability interface) or lacks it (absence
// marker).
package registry
