// Version command for the abacus CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/pkg/abacus"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the abacus version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("abacus", abacus.Version)
	},
}
