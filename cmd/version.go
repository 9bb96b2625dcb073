package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awslite/tablexport/src/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tablexport version info.",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
