package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/core"
)

// checkpointsCmd prints the hardcoded checkpoints.
var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "Print the hardcoded checkpoints.",
	Run:   runCheckpoints,
}

func init() {
	RootCmd.AddCommand(checkpointsCmd)
}

func runCheckpoints(cmd *cobra.Command, args []string) {
	data := core.GetRegistry()
	out := cmd.OutOrStdout()
	for _, cp := range data.Checkpoints {
		fmt.Fprintf(out, "%10d  %s\n", cp.Height, cp.BlockHash.Hex())
	}
	fmt.Fprintf(out, "\nlast checkpoint time:  %s\n", time.Unix(data.LastCheckpointTimestamp, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "transactions:          %d\n", data.TransactionsAtLastCheckpoint)
	fmt.Fprintf(out, "transactions per day:  %.1f\n", data.TransactionsPerDay)
}
