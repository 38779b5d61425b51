// Config loading for the variantgen CLI.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".variantgen"
	configFileType = "yaml"

	// Config keys.
	cfgKeyOutputDir = "output_dir"
	cfgKeyPackage   = "package"

	defaultOutputDir = "./generated"
)

// config holds tool-level settings resolved from the optional config file
// and flag overrides.
type config struct {
	// OutputDir is the directory generated files are written to.
	OutputDir string
	// Package overrides the generated package name. Empty means the
	// record's declared package.
	Package string
}

// loadConfig reads .variantgen.yaml from the working directory using Viper.
// A missing file is fine; defaults apply.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")

	v.SetDefault(cfgKeyOutputDir, defaultOutputDir)
	v.SetDefault(cfgKeyPackage, "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return config{
		OutputDir: v.GetString(cfgKeyOutputDir),
		Package:   v.GetString(cfgKeyPackage),
	}, nil
}
