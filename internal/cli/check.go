// Check command: run the derivation, print diagnostics, write nothing.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkStrict bool

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a definition without writing output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			rec, err := loadDefinition(logger)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			p, diags := derive(rec)
			if err := reportDiagnostics(diags, checkStrict); err != nil {
				return err
			}

			fmt.Printf("ok: %d variants, %d fields, %d conversion pairs\n",
				len(p.Registry.Names), len(rec.Fields), len(p.Edges))

			return nil
		},
	}

	cmd.Flags().BoolVar(&checkStrict, "strict", false, "treat warnings as failures")

	return cmd
}
