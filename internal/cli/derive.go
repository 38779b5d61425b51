// Shared derivation pipeline for the variantgen CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"variantgen/internal/analyze"
	"variantgen/internal/diagnostic"
	"variantgen/internal/plan"
	"variantgen/internal/registry"
	"variantgen/internal/schema"
)

// errDerivationFailed signals that diagnostics were already printed.
var errDerivationFailed = errors.New("derivation failed")

// loadDefinition resolves the canonical record from whichever front end the
// flags select.
func loadDefinition(logger *zap.Logger) (*schema.Record, error) {
	switch {
	case flags.schemaPath != "" && flags.pkgPattern != "":
		return nil, errors.New("--schema and --pkg are mutually exclusive")

	case flags.schemaPath != "":
		logger.Debug("loading YAML schema", zap.String("path", flags.schemaPath))
		return schema.LoadFile(flags.schemaPath)

	case flags.pkgPattern != "":
		if flags.typeName == "" {
			return nil, errors.New("--pkg requires --type")
		}

		logger.Debug("loading annotated struct",
			zap.String("pkg", flags.pkgPattern), zap.String("type", flags.typeName))
		return analyze.LoadRecord(flags.pkgPattern, flags.typeName)

	default:
		return nil, errors.New("one of --schema or --pkg is required")
	}
}

// derive runs the full pipeline: validate, build the registry, synthesize
// conversions. All diagnostics (errors and warnings) are accumulated.
func derive(rec *schema.Record) (*plan.DerivationPlan, diagnostic.Diagnostics) {
	diags := schema.Validate(rec)
	if diags.HasErrors() {
		return nil, diags
	}

	reg, regDiags := registry.Build(rec)
	diags.Merge(regDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	p, planDiags := plan.Synthesize(rec, reg)
	diags.Merge(planDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	return p, diags
}

// reportDiagnostics prints every diagnostic to stderr and returns a
// sentinel error when any error-level diagnostic is present (or, in strict
// mode, any warning).
func reportDiagnostics(diags diagnostic.Diagnostics, strict bool) error {
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	for _, e := range diags.Errors {
		fmt.Fprintln(os.Stderr, "error:", e.String())
	}

	if diags.HasErrors() || (strict && len(diags.Warnings) > 0) {
		return errDerivationFailed
	}

	return nil
}
