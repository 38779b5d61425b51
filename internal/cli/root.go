// Package cli implements the variantgen command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// inputFlags holds the shared input-selection flags.
type inputFlags struct {
	schemaPath string
	pkgPattern string
	typeName   string
}

var (
	flags   inputFlags
	verbose bool
)

// NewRootCmd creates the top-level "variantgen" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "variantgen",
		Short: "Derive struct variants, capability interfaces, and conversions from one canonical record",
		Long: `variantgen is a build-time code generator: given one canonical record
definition annotated with per-field visibility rules, it derives a family
of related struct types, per-field capability interfaces, and conversion
operations between every pair of variants.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.schemaPath, "schema", "", "path to a YAML schema file")
	root.PersistentFlags().StringVar(&flags.pkgPattern, "pkg", "", "Go package pattern holding the annotated struct")
	root.PersistentFlags().StringVar(&flags.typeName, "type", "", "annotated struct name (with --pkg)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
