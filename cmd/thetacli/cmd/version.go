package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version of current Thetacli binary.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "thetacli %v %s\nBuilt at %s\n", version.Version, version.GitHash, version.Timestamp)
	},
}
