package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/calcli"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of calcli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calcli version %s\n", strings.TrimSpace(calcli.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
