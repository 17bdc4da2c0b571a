package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("abd %s\n", version)
	},
}
