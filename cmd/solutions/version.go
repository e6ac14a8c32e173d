// Version command for the solutions CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/solutions"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the solutions version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("solutions", solutions.Version)
	},
}
