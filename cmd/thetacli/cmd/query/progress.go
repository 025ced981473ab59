package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/cmd/thetacli/cmd/utils"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/rpc"
)

// progressCmd represents the progress command.
// Example:
//
//	thetacli query progress 0x71d89b625667c8f4f6b6c6a70ca68fa8143dda941f896273794e821923b0dd57
var progressCmd = &cobra.Command{
	Use:     "progress <hash>",
	Short:   "Get the verification progress at a block",
	Example: `thetacli query progress 0x71d89b625667c8f4f6b6c6a70ca68fa8143dda941f896273794e821923b0dd57`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !common.IsHexHash(args[0]) {
			utils.Error("Invalid block hash %v\n", args[0])
			return
		}
		res, err := utils.Call("checkpoint.GetVerificationProgress", rpc.GetVerificationProgressArgs{
			Hash: common.HexToHash(args[0]),
		})
		if err != nil {
			utils.Error("Failed to get verification progress: %v\n", err)
			return
		}
		fmt.Println(res)
	},
}
