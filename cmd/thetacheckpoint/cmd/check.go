package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/core"
)

// checkCmd checks a block against the hardcoded checkpoints.
// Example:
//
//	thetacheckpoint check 9649 0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c
var checkCmd = &cobra.Command{
	Use:          "check <height> <hash>",
	Short:        "Check a block against the hardcoded checkpoints.",
	Example:      `thetacheckpoint check 9649 0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	height, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("Invalid height %v: %v", args[0], err)
	}
	if !common.IsHexHash(args[1]) {
		return fmt.Errorf("Invalid block hash %v", args[1])
	}

	checker := checkpoint.NewChecker(core.GetRegistry(), checkpoint.NewConfigFromViper())
	if err := checker.Verify(height, common.HexToHash(args[1])); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
