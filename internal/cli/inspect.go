// Inspect command: dump the resolved derivation plan for debugging.
package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved derivation plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			rec, err := loadDefinition(logger)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			p, diags := derive(rec)
			if err := reportDiagnostics(diags, false); err != nil {
				return err
			}

			spew.Dump(p)

			return nil
		},
	}
}
