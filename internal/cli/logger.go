// Logger construction for the variantgen CLI.
package cli

import "go.uber.org/zap"

// newLogger builds the CLI logger. Verbose mode gets the development
// config; otherwise logging is a no-op.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
