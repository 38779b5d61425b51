// Gen command: run the derivation and write generated files.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"variantgen/internal/gen"
)

var (
	genOutputDir string
	genPackage   string
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Derive variants and write the generated Go source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, "gen:", err)
				os.Exit(exitSysError)
			}

			if genOutputDir != "" {
				cfg.OutputDir = genOutputDir
			}
			if genPackage != "" {
				cfg.Package = genPackage
			}

			rec, err := loadDefinition(logger)
			if err != nil {
				return fmt.Errorf("gen: %w", err)
			}

			p, diags := derive(rec)
			if err := reportDiagnostics(diags, false); err != nil {
				return err
			}

			g := gen.NewGenerator(gen.GeneratorConfig{
				PackageName: cfg.Package,
				OutputDir:   cfg.OutputDir,
			})

			files, err := g.Generate(p)
			if err != nil {
				return fmt.Errorf("gen: %w", err)
			}

			if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
				fmt.Fprintln(os.Stderr, "gen:", err)
				os.Exit(exitSysError)
			}

			logger.Debug("generation complete",
				zap.Int("files", len(files)), zap.String("dir", cfg.OutputDir))

			for _, f := range files {
				fmt.Println("wrote", cfg.OutputDir+"/"+f.Filename)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&genOutputDir, "out", "", "output directory (default from config, ./generated)")
	cmd.Flags().StringVar(&genPackage, "gen-pkg", "", "generated package name (default: the record's package)")

	return cmd
}
