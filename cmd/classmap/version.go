// Version command for the classmap CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the classmap version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("classmap", types.Version)
	},
}
