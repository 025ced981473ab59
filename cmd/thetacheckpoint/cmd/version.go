package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version of current binary.",
	Run:   runVersion,
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "Version %s %s\nBuilt at %s\n", version.Version, version.GitHash, version.Timestamp)
}
