// Package rule parses raw field annotations into declarative field rules.
//
// Recognized directives:
//   - only_in(name, ...)  field goes only to the listed variants
//   - not_in(name, ...)   field goes to all variants except the listed ones
//   - only_in_self        field goes only to the canonical variant
//   - default             field may be synthesized from its fallback value
//     when a conversion's source lacks it
//
// The three inclusion directives are mutually exclusive; default combines
// with any of them. A field with no inclusion directive goes to every
// declared variant.
package rule
