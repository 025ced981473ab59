package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thetatoken/checkpoints/cmd/thetacli/cmd/utils"
	"github.com/thetatoken/checkpoints/rpc"
)

// statusCmd represents the status command.
// Example:
//
//	thetacli query status
var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Get checkpoint and sync status",
	Long:    `Get checkpoint and sync status.`,
	Example: `thetacli query status`,
	Run: func(cmd *cobra.Command, args []string) {
		res, err := utils.Call("checkpoint.GetStatus", rpc.GetStatusArgs{})
		if err != nil {
			utils.Error("Failed to get status: %v\n", err)
			return
		}
		fmt.Println(res)
	},
}
