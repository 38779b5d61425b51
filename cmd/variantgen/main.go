// Package main provides the CLI entrypoint for variantgen.
//
// variantgen is a build-time Go codegen tool that:
//   - Reads one canonical record definition (YAML schema or annotated struct)
//   - Derives a family of struct variants per field-level visibility rules
//   - Emits per-field capability interfaces and absence markers
//   - Synthesizes conversions between every ordered pair of variants
package main

import "variantgen/internal/cli"

func main() {
	cli.Execute()
}
