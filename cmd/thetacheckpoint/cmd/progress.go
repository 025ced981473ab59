package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/core"
)

var (
	chainTxFlag   uint64
	timestampFlag uint64
)

// progressCmd estimates the verification progress for a chain position.
// Example:
//
//	thetacheckpoint progress --tx=20000 --timestamp=1489000000
var progressCmd = &cobra.Command{
	Use:     "progress",
	Short:   "Estimate the verification progress at a chain position.",
	Example: `thetacheckpoint progress --tx=20000 --timestamp=1489000000`,
	Run:     runProgress,
}

func init() {
	progressCmd.Flags().Uint64Var(&chainTxFlag, "tx", 0, "number of transactions from genesis up to the block")
	progressCmd.Flags().Uint64Var(&timestampFlag, "timestamp", 0, "UNIX timestamp of the block")
	RootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) {
	checker := checkpoint.NewChecker(core.GetRegistry(), checkpoint.NewConfigFromViper())
	p := checker.EstimateProgress(&core.BlockIndexNode{ChainTx: chainTxFlag, Timestamp: timestampFlag})
	fmt.Fprintf(cmd.OutOrStdout(), "work done: %.1f, work left: %.1f, progress: %.4f\n", p.WorkBefore, p.WorkAfter, p.Fraction)
}
