package rule

import (
	"variantgen/internal/common"
	"variantgen/internal/diagnostic"
)

// FieldRule is the parsed form of one field's annotations.
type FieldRule struct {
	// Default marks the field eligible for fallback synthesis in
	// conversions whose source lacks it.
	Default bool

	// Targets is the set of variant names that receive the field, in
	// registry declaration order.
	Targets []string
}

// Parse consumes a field's raw annotations and produces its FieldRule.
// canonical is the canonical variant name; declared is the full registry
// name list (canonical included, declaration order). Any returned error
// diagnostic aborts the derivation.
func Parse(fieldName string, annotations []string, canonical string, declared []string) (FieldRule, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	r := FieldRule{Targets: declared}

	// Only one of only_in/not_in/only_in_self may appear.
	inclusion := ""

	for _, raw := range annotations {
		dir, err := ParseDirective(raw)
		if err != nil {
			diags.Errorf(diagnostic.CodeMalformedAnnotation, fieldName, raw, "%v", err)
			return FieldRule{}, diags
		}

		switch dir.Name {
		case "default":
			if dir.Args != nil {
				diags.Errorf(diagnostic.CodeMalformedAnnotation, fieldName, raw,
					"`default` takes no arguments")
				return FieldRule{}, diags
			}
			r.Default = true

		case "only_in":
			if conflict(&diags, &inclusion, dir.Name, fieldName, raw) {
				return FieldRule{}, diags
			}
			if !checkDeclared(&diags, dir, fieldName, raw, declared) {
				return FieldRule{}, diags
			}
			r.Targets = common.Filter(declared, func(name string) bool {
				return common.Contains(dir.Args, name)
			})

		case "not_in":
			if conflict(&diags, &inclusion, dir.Name, fieldName, raw) {
				return FieldRule{}, diags
			}
			if !checkDeclared(&diags, dir, fieldName, raw, declared) {
				return FieldRule{}, diags
			}
			r.Targets = common.Filter(declared, func(name string) bool {
				return !common.Contains(dir.Args, name)
			})

		case "only_in_self":
			if conflict(&diags, &inclusion, dir.Name, fieldName, raw) {
				return FieldRule{}, diags
			}
			if dir.Args != nil {
				diags.Errorf(diagnostic.CodeMalformedAnnotation, fieldName, raw,
					"`only_in_self` takes no arguments")
				return FieldRule{}, diags
			}
			r.Targets = []string{canonical}

		default:
			diags.Errorf(diagnostic.CodeMalformedAnnotation, fieldName, raw,
				"unknown directive %q", dir.Name)
			return FieldRule{}, diags
		}
	}

	return r, diags
}

// conflict records the inclusion directive in use and reports an error if a
// second one shows up. Returns true if the derivation must abort.
func conflict(diags *diagnostic.Diagnostics, inclusion *string, name, fieldName, raw string) bool {
	if *inclusion != "" {
		diags.Errorf(diagnostic.CodeConflictingDirective, fieldName, raw,
			"only one of only_in/not_in/only_in_self may be set per field (already has %s)",
			*inclusion)
		return true
	}

	*inclusion = name

	return false
}

// checkDeclared verifies every listed name was declared up front.
func checkDeclared(diags *diagnostic.Diagnostics, dir Directive, fieldName, raw string, declared []string) bool {
	for _, name := range dir.Args {
		if !common.Contains(declared, name) {
			diags.Errorf(diagnostic.CodeUnknownVariant, fieldName, raw,
				"variant %q was never declared", name)
			return false
		}
	}

	return true
}
