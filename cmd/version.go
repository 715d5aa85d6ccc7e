package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of menuctl",
		Long:  `All software has versions. This is menuctl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set by main via SetVersion.
			fmt.Printf("menuctl version %s\n", rootCmd.Version)
		},
	}
}
