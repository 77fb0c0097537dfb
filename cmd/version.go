package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the styledselect version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("styledselect", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
