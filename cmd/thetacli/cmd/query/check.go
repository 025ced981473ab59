package query

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/cmd/thetacli/cmd/utils"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/rpc"
)

// checkCmd checks a block against the checkpoints of the service.
// Example:
//
//	thetacli query check 9649 0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c
var checkCmd = &cobra.Command{
	Use:     "check <height> <hash>",
	Short:   "Check a block against the checkpoints",
	Example: `thetacli query check 9649 0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		height, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			utils.Error("Invalid height %v: %v\n", args[0], err)
			return
		}
		if !common.IsHexHash(args[1]) {
			utils.Error("Invalid block hash %v\n", args[1])
			return
		}

		res, err := utils.Call("checkpoint.CheckBlock", rpc.CheckBlockArgs{
			Height: common.JSONUint64(height),
			Hash:   common.HexToHash(args[1]),
		})
		if err != nil {
			utils.Error("Failed to check block: %v\n", err)
			return
		}
		fmt.Println(res)
	},
}
