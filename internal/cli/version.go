// Version command for the variantgen CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridable at build time with -ldflags.
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the variantgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("variantgen", Version)
		},
	}
}
